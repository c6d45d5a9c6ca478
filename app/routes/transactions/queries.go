package transactions

import (
	"database/sql"
	"fmt"

	"github.com/nida-ullah/finance-app/app/models"
	"github.com/shopspring/decimal"
)

// TransactionFilters represents filtering options for the audit trail
type TransactionFilters struct {
	Type      string
	ProjectID string
	StartDate string
	EndDate   string
	Limit     int
}

func buildFilterClause(userID string, filters TransactionFilters) (string, []interface{}) {
	clause := `WHERE t.user_id = $1`
	args := []interface{}{userID}
	argIdx := 2

	if filters.Type != "" {
		clause += fmt.Sprintf(" AND t.type = $%d", argIdx)
		args = append(args, filters.Type)
		argIdx++
	}
	if filters.ProjectID != "" {
		clause += fmt.Sprintf(" AND (t.project_id = $%d OR t.from_project_id = $%d OR t.to_project_id = $%d)",
			argIdx, argIdx, argIdx)
		args = append(args, filters.ProjectID)
		argIdx++
	}
	if filters.StartDate != "" {
		clause += fmt.Sprintf(" AND t.timestamp >= $%d", argIdx)
		args = append(args, filters.StartDate)
		argIdx++
	}
	if filters.EndDate != "" {
		clause += fmt.Sprintf(" AND t.timestamp <= $%d", argIdx)
		args = append(args, filters.EndDate)
		argIdx++
	}

	return clause, args
}

// ListTransactions returns the filtered audit trail, newest first.
func ListTransactions(db *sql.DB, userID string, filters TransactionFilters) ([]*models.Transaction, error) {
	clause, args := buildFilterClause(userID, filters)

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`SELECT t.id, t.user_id, t.project_id, t.from_project_id, t.to_project_id,
			  t.type, t.amount, t.description, t.reference_id, t.timestamp
			  FROM transactions t
			  %s
			  ORDER BY t.timestamp DESC
			  LIMIT $%d`, clause, len(args)+1)
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []*models.Transaction{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		t := &models.Transaction{}
		err := rows.Scan(
			&t.ID, &t.UserID, &t.ProjectID, &t.FromProjectID, &t.ToProjectID,
			&t.Type, &t.Amount, &t.Description, &t.ReferenceID, &t.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// GetTransactionSummary aggregates per-type totals over the same filtered
// set the listing uses (without the row limit).
func GetTransactionSummary(db *sql.DB, userID string, filters TransactionFilters) (*models.TransactionSummary, error) {
	clause, args := buildFilterClause(userID, filters)

	query := fmt.Sprintf(`SELECT COUNT(*),
			  COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'deposit'), 0),
			  COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'expense'), 0),
			  COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'allocate'), 0),
			  COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'transfer'), 0),
			  COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'refund'), 0)
			  FROM transactions t
			  %s`, clause)

	summary := &models.TransactionSummary{
		TotalDeposits:    decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TotalAllocations: decimal.Zero,
		TotalTransfers:   decimal.Zero,
		TotalRefunds:     decimal.Zero,
	}
	err := db.QueryRow(query, args...).Scan(
		&summary.TotalTransactions,
		&summary.TotalDeposits,
		&summary.TotalExpenses,
		&summary.TotalAllocations,
		&summary.TotalTransfers,
		&summary.TotalRefunds,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
