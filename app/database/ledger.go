package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/nida-ullah/finance-app/app/models"
	"github.com/nida-ullah/finance-app/app/services"
	"github.com/shopspring/decimal"
)

// Fund movement operations. Each runs as one transaction: the relevant
// account/project rows are locked with SELECT ... FOR UPDATE before the
// precondition check, so concurrent operations against the same rows
// serialize instead of both passing a stale balance check.

// Deposit adds funds to the user's main account and appends a deposit
// transaction. Returns the new balance.
func Deposit(db *sql.DB, userID string, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	tx, err := db.Begin()
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback()

	var accountID string
	var balance decimal.Decimal
	err = tx.QueryRow(`SELECT id, balance FROM main_accounts WHERE user_id = $1 FOR UPDATE`, userID).
		Scan(&accountID, &balance)
	if err == sql.ErrNoRows {
		return decimal.Zero, ErrAccountNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock main account: %v", err)
	}

	newBalance := balance.Add(amount)
	if _, err = tx.Exec(`UPDATE main_accounts SET balance = $1 WHERE id = $2`, newBalance, accountID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to update balance: %v", err)
	}

	if description == "" {
		description = "Deposit to main account"
	}
	_, err = tx.Exec(`INSERT INTO transactions (user_id, type, amount, description) VALUES ($1, 'deposit', $2, $3)`,
		userID, amount, description)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to record transaction: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// Allocate moves funds from the main account into a project. Equal balance
// and amount succeeds, leaving the balance at exactly zero.
func Allocate(db *sql.DB, userID, projectID string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var accountID string
	var balance decimal.Decimal
	err = tx.QueryRow(`SELECT id, balance FROM main_accounts WHERE user_id = $1 FOR UPDATE`, userID).
		Scan(&accountID, &balance)
	if err == sql.ErrNoRows {
		return ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock main account: %v", err)
	}

	var projectName string
	err = tx.QueryRow(`SELECT name FROM projects WHERE id = $1 AND user_id = $2 FOR UPDATE`, projectID, userID).
		Scan(&projectName)
	if err == sql.ErrNoRows {
		return ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock project: %v", err)
	}

	if balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	if _, err = tx.Exec(`UPDATE main_accounts SET balance = balance - $1 WHERE id = $2`, amount, accountID); err != nil {
		return fmt.Errorf("failed to update balance: %v", err)
	}
	if _, err = tx.Exec(`UPDATE projects SET budget = budget + $1 WHERE id = $2`, amount, projectID); err != nil {
		return fmt.Errorf("failed to update project budget: %v", err)
	}

	_, err = tx.Exec(`INSERT INTO transactions (user_id, project_id, type, amount, description) VALUES ($1, $2, 'allocate', $3, $4)`,
		userID, projectID, amount, fmt.Sprintf("Allocated funds to %s", projectName))
	if err != nil {
		return fmt.Errorf("failed to record transaction: %v", err)
	}

	return tx.Commit()
}

// SpendParams carries the inputs for recording an expense against a project.
type SpendParams struct {
	UserID      string
	ProjectID   string
	CategoryID  *string
	Amount      decimal.Decimal
	Description string
	Tags        string
	ReceiptURL  string
}

// Spend decrements the project budget, records the expense and its audit
// transaction, then derives budget alerts from the post-spend state. Alert
// creation is idempotent: the unique (user, project, type) constraint
// absorbs repeats via ON CONFLICT DO NOTHING.
func Spend(db *sql.DB, p SpendParams) (*models.Expense, error) {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var projectName string
	var budget, threshold decimal.Decimal
	err = tx.QueryRow(`SELECT name, budget, low_budget_threshold FROM projects WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		p.ProjectID, p.UserID).Scan(&projectName, &budget, &threshold)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock project: %v", err)
	}

	if p.CategoryID != nil {
		var exists bool
		err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)`,
			*p.CategoryID, p.UserID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check category: %v", err)
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
	}

	if budget.LessThan(p.Amount) {
		return nil, ErrInsufficientBudget
	}

	newBudget := budget.Sub(p.Amount)
	if _, err = tx.Exec(`UPDATE projects SET budget = $1 WHERE id = $2`, newBudget, p.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to update project budget: %v", err)
	}

	expense := &models.Expense{
		ProjectID:   p.ProjectID,
		CategoryID:  p.CategoryID,
		Amount:      p.Amount,
		Description: p.Description,
		Tags:        p.Tags,
		ReceiptURL:  p.ReceiptURL,
	}
	err = tx.QueryRow(`INSERT INTO expenses (project_id, category_id, amount, description, tags, receipt_url)
					   VALUES ($1, $2, $3, $4, $5, $6)
					   RETURNING id, created_at, updated_at`,
		p.ProjectID, p.CategoryID, p.Amount, p.Description, p.Tags, p.ReceiptURL).
		Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %v", err)
	}

	_, err = tx.Exec(`INSERT INTO transactions (user_id, project_id, type, amount, description) VALUES ($1, $2, 'expense', $3, $4)`,
		p.UserID, p.ProjectID, p.Amount, fmt.Sprintf("Expense: %s", p.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %v", err)
	}

	// Alerts are evaluated on the budget left after this spend.
	project := &models.Project{Name: projectName, Budget: newBudget, LowBudgetThreshold: threshold}
	for _, spec := range services.EvaluateBudgetAlerts(project) {
		_, err = tx.Exec(`INSERT INTO budget_alerts (user_id, project_id, alert_type, message)
						  VALUES ($1, $2, $3, $4)
						  ON CONFLICT (user_id, project_id, alert_type) DO NOTHING`,
			p.UserID, p.ProjectID, string(spec.Type), spec.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to create budget alert: %v", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return expense, nil
}

// Transfer moves funds directly between two projects of the same user. A
// single transfer transaction is appended with a fresh reference id. The
// two project rows are locked in id order to avoid deadlocks between
// opposing transfers.
func Transfer(db *sql.DB, userID, fromProjectID, toProjectID string, amount decimal.Decimal, description string) (string, error) {
	if fromProjectID == toProjectID {
		return "", ErrSameProject
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", ErrInvalidAmount
	}

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	lockOrder := []string{fromProjectID, toProjectID}
	if toProjectID < fromProjectID {
		lockOrder[0], lockOrder[1] = toProjectID, fromProjectID
	}

	names := make(map[string]string, 2)
	budgets := make(map[string]decimal.Decimal, 2)
	for _, id := range lockOrder {
		var name string
		var budget decimal.Decimal
		err = tx.QueryRow(`SELECT name, budget FROM projects WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, userID).
			Scan(&name, &budget)
		if err == sql.ErrNoRows {
			return "", ErrProjectNotFound
		}
		if err != nil {
			return "", fmt.Errorf("failed to lock project: %v", err)
		}
		names[id] = name
		budgets[id] = budget
	}

	if budgets[fromProjectID].LessThan(amount) {
		return "", ErrInsufficientBudget
	}

	if _, err = tx.Exec(`UPDATE projects SET budget = budget - $1 WHERE id = $2`, amount, fromProjectID); err != nil {
		return "", fmt.Errorf("failed to debit source project: %v", err)
	}
	if _, err = tx.Exec(`UPDATE projects SET budget = budget + $1 WHERE id = $2`, amount, toProjectID); err != nil {
		return "", fmt.Errorf("failed to credit target project: %v", err)
	}

	if description == "" {
		description = fmt.Sprintf("Transfer from %s to %s", names[fromProjectID], names[toProjectID])
	}

	referenceID := uuid.New().String()
	_, err = tx.Exec(`INSERT INTO transactions (user_id, from_project_id, to_project_id, type, amount, description, reference_id)
					  VALUES ($1, $2, $3, 'transfer', $4, $5, $6)`,
		userID, fromProjectID, toProjectID, amount, description, referenceID)
	if err != nil {
		return "", fmt.Errorf("failed to record transaction: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return referenceID, nil
}

// RefundProject returns a project's remaining budget to the main account and
// deletes the project. The refund transaction keeps the ledger balanced;
// expenses cascade away with the project while transactions keep a nulled
// project reference.
func RefundProject(db *sql.DB, userID, projectID string) (decimal.Decimal, error) {
	tx, err := db.Begin()
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback()

	var accountID string
	err = tx.QueryRow(`SELECT id FROM main_accounts WHERE user_id = $1 FOR UPDATE`, userID).Scan(&accountID)
	if err == sql.ErrNoRows {
		return decimal.Zero, ErrAccountNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock main account: %v", err)
	}

	var projectName string
	var budget decimal.Decimal
	err = tx.QueryRow(`SELECT name, budget FROM projects WHERE id = $1 AND user_id = $2 FOR UPDATE`, projectID, userID).
		Scan(&projectName, &budget)
	if err == sql.ErrNoRows {
		return decimal.Zero, ErrProjectNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock project: %v", err)
	}

	if budget.GreaterThan(decimal.Zero) {
		if _, err = tx.Exec(`UPDATE main_accounts SET balance = balance + $1 WHERE id = $2`, budget, accountID); err != nil {
			return decimal.Zero, fmt.Errorf("failed to refund balance: %v", err)
		}
		_, err = tx.Exec(`INSERT INTO transactions (user_id, type, amount, description) VALUES ($1, 'refund', $2, $3)`,
			userID, budget, fmt.Sprintf("Refund of remaining budget from %s", projectName))
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to record refund: %v", err)
		}
	}

	if _, err = tx.Exec(`DELETE FROM projects WHERE id = $1`, projectID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to delete project: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return budget, nil
}
