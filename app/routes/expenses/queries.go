package expenses

import (
	"database/sql"
	"fmt"

	"github.com/nida-ullah/finance-app/app/models"
)

// ExpenseFilters represents filtering options for the expense listing
type ExpenseFilters struct {
	CategoryID string
	ProjectID  string
	StartDate  string
	EndDate    string
}

// ListExpenses returns the caller's expenses, newest first, with optional
// category/project/date filters applied.
func ListExpenses(db *sql.DB, userID string, filters ExpenseFilters) ([]*models.Expense, error) {
	query := `SELECT e.id, e.project_id, e.category_id, e.amount, e.description, e.tags,
			  e.receipt_url, e.created_at, e.updated_at, c.id, c.name, c.color
			  FROM expenses e
			  JOIN projects p ON e.project_id = p.id
			  LEFT JOIN categories c ON e.category_id = c.id
			  WHERE p.user_id = $1`

	args := []interface{}{userID}
	argIdx := 2

	if filters.CategoryID != "" {
		query += fmt.Sprintf(" AND e.category_id = $%d", argIdx)
		args = append(args, filters.CategoryID)
		argIdx++
	}
	if filters.ProjectID != "" {
		query += fmt.Sprintf(" AND e.project_id = $%d", argIdx)
		args = append(args, filters.ProjectID)
		argIdx++
	}
	if filters.StartDate != "" {
		query += fmt.Sprintf(" AND e.created_at >= $%d", argIdx)
		args = append(args, filters.StartDate)
		argIdx++
	}
	if filters.EndDate != "" {
		query += fmt.Sprintf(" AND e.created_at <= $%d", argIdx)
		args = append(args, filters.EndDate)
		argIdx++
	}

	query += " ORDER BY e.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.Expense{}
		var catID, catName, catColor sql.NullString
		err := rows.Scan(
			&e.ID, &e.ProjectID, &e.CategoryID, &e.Amount, &e.Description, &e.Tags,
			&e.ReceiptURL, &e.CreatedAt, &e.UpdatedAt, &catID, &catName, &catColor,
		)
		if err != nil {
			return nil, err
		}

		if catID.Valid {
			e.Category = &models.Category{
				ID:    catID.String,
				Name:  catName.String,
				Color: catColor.String,
			}
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
