package projects

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/nida-ullah/finance-app/app/database"
	"github.com/nida-ullah/finance-app/app/models"
)

func CreateProject(db *sql.DB, project *models.Project) error {
	query := `INSERT INTO projects (user_id, name, budget, budget_limit, low_budget_threshold, description)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	err := db.QueryRow(query,
		project.UserID,
		project.Name,
		project.Budget,
		project.BudgetLimit,
		project.LowBudgetThreshold,
		project.Description,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return database.ErrProjectExists
		}
		return err
	}
	return nil
}

func GetProjectsByUser(db *sql.DB, userID string) ([]*models.Project, error) {
	query := `SELECT id, user_id, name, budget, budget_limit, low_budget_threshold, description, created_at
			  FROM projects
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		p := &models.Project{}
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Budget, &p.BudgetLimit,
			&p.LowBudgetThreshold, &p.Description, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func GetProjectByID(db *sql.DB, userID, projectID string) (*models.Project, error) {
	p := &models.Project{}
	query := `SELECT id, user_id, name, budget, budget_limit, low_budget_threshold, description, created_at
			  FROM projects
			  WHERE id = $1 AND user_id = $2`

	err := db.QueryRow(query, projectID, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Budget, &p.BudgetLimit,
		&p.LowBudgetThreshold, &p.Description, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, database.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProject updates project metadata. The budget itself only moves
// through ledger operations and is never written here.
func UpdateProject(db *sql.DB, project *models.Project) error {
	query := `UPDATE projects
			  SET name = $1, budget_limit = $2, low_budget_threshold = $3, description = $4
			  WHERE id = $5 AND user_id = $6`

	result, err := db.Exec(query,
		project.Name,
		project.BudgetLimit,
		project.LowBudgetThreshold,
		project.Description,
		project.ID,
		project.UserID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return database.ErrProjectExists
		}
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrProjectNotFound
	}
	return nil
}

// GetProjectBalances returns per-project spending totals alongside the
// remaining budget, plus a roll-up summary.
func GetProjectBalances(db *sql.DB, userID string) ([]models.ProjectBalance, *models.ProjectBalanceSummary, error) {
	query := `
		SELECT p.id, p.user_id, p.name, p.budget, p.budget_limit, p.low_budget_threshold,
			   p.description, p.created_at,
			   COALESCE(SUM(e.amount), 0) AS total_spent,
			   COUNT(e.id)
		FROM projects p
		LEFT JOIN expenses e ON e.project_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	balances := []models.ProjectBalance{}
	summary := &models.ProjectBalanceSummary{}
	for rows.Next() {
		var b models.ProjectBalance
		err := rows.Scan(
			&b.ID, &b.UserID, &b.Name, &b.Budget, &b.BudgetLimit, &b.LowBudgetThreshold,
			&b.Description, &b.CreatedAt, &b.TotalSpent, &b.ExpenseCount,
		)
		if err != nil {
			return nil, nil, err
		}
		b.OriginalBudget = b.Budget.Add(b.TotalSpent)

		summary.TotalProjects++
		summary.TotalOriginalBudget = summary.TotalOriginalBudget.Add(b.OriginalBudget)
		summary.TotalSpent = summary.TotalSpent.Add(b.TotalSpent)
		summary.TotalRemaining = summary.TotalRemaining.Add(b.Budget)

		balances = append(balances, b)
	}
	return balances, summary, rows.Err()
}
