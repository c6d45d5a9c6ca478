package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nida-ullah/finance-app/app/models"
	"github.com/nida-ullah/finance-app/app/services"
	"github.com/shopspring/decimal"
)

// Read-only reporting aggregations over the transaction/expense log.
// Everything is recomputed per call; nothing is cached.

// GetOverviewReport returns the financial overview for a time window.
// periodDays is the requested window length; it is echoed back rather than
// recomputed from the timestamps, which can come up a day short across a
// DST transition.
func GetOverviewReport(db *sql.DB, userID string, start, end time.Time, periodDays int) (*models.OverviewReport, error) {
	report := &models.OverviewReport{
		Period:            fmt.Sprintf("%d days", periodDays),
		LowBudgetProjects: []string{},
	}

	err := db.QueryRow(`SELECT balance FROM main_accounts WHERE user_id = $1`, userID).
		Scan(&report.MainAccountBalance)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(budget), 0), COUNT(*) FROM projects WHERE user_id = $1`, userID).
		Scan(&report.TotalProjectBudget, &report.ProjectsCount)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN projects p ON e.project_id = p.id
		WHERE p.user_id = $1 AND e.created_at BETWEEN $2 AND $3
	`, userID, start, end).Scan(&report.TotalExpenses)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT name FROM projects WHERE user_id = $1 AND budget <= low_budget_threshold ORDER BY name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		report.LowBudgetProjects = append(report.LowBudgetProjects, name)
	}

	return report, rows.Err()
}

// GetCategoryReport returns per-category spending within the window,
// restricted to categories with a nonzero sum, largest first.
func GetCategoryReport(db *sql.DB, userID string, start, end time.Time) ([]models.CategoryReportRow, error) {
	query := `
		SELECT c.name, c.color, SUM(e.amount) AS total, COUNT(e.id)
		FROM categories c
		JOIN expenses e ON e.category_id = c.id
		JOIN projects p ON e.project_id = p.id
		WHERE c.user_id = $1 AND p.user_id = $1 AND e.created_at BETWEEN $2 AND $3
		GROUP BY c.id, c.name, c.color
		HAVING SUM(e.amount) > 0
		ORDER BY total DESC
	`
	rows, err := db.Query(query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.CategoryReportRow{}
	for rows.Next() {
		var row models.CategoryReportRow
		if err := rows.Scan(&row.Name, &row.Color, &row.Amount, &row.ExpenseCount); err != nil {
			return nil, err
		}
		categories = append(categories, row)
	}
	return categories, rows.Err()
}

// GetProjectReport returns per-project window spending with current budget
// standing.
func GetProjectReport(db *sql.DB, userID string, start, end time.Time) ([]models.ProjectReportRow, error) {
	query := `
		SELECT p.name, p.budget, p.budget_limit, p.low_budget_threshold,
			   COALESCE(SUM(e.amount) FILTER (WHERE e.created_at BETWEEN $2 AND $3), 0)
		FROM projects p
		LEFT JOIN expenses e ON e.project_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id, p.name, p.budget, p.budget_limit, p.low_budget_threshold
		ORDER BY p.name
	`
	rows, err := db.Query(query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.ProjectReportRow{}
	for rows.Next() {
		var row models.ProjectReportRow
		var threshold decimal.Decimal
		if err := rows.Scan(&row.Name, &row.CurrentBudget, &row.BudgetLimit, &threshold, &row.PeriodExpenses); err != nil {
			return nil, err
		}
		p := &models.Project{
			Budget:             row.CurrentBudget,
			BudgetLimit:        row.BudgetLimit,
			LowBudgetThreshold: threshold,
		}
		row.BudgetStatus = services.BudgetStatus(p)
		row.IsBudgetLow = services.IsBudgetLow(p)
		projects = append(projects, row)
	}
	return projects, rows.Err()
}

// GetTrendsReport returns per-day spending within the window, ascending by
// day. The average divides by the number of distinct days that saw an
// expense; empty days are not zero-filled and an empty window averages 0.
func GetTrendsReport(db *sql.DB, userID string, start, end time.Time) (*models.TrendsReport, error) {
	query := `
		SELECT DATE(e.created_at) AS day, SUM(e.amount), COUNT(e.id)
		FROM expenses e
		JOIN projects p ON e.project_id = p.id
		WHERE p.user_id = $1 AND e.created_at BETWEEN $2 AND $3
		GROUP BY DATE(e.created_at)
		ORDER BY day ASC
	`
	rows, err := db.Query(query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := &models.TrendsReport{DailyTrends: []models.DailyTrend{}}
	total := decimal.Zero
	for rows.Next() {
		var trend models.DailyTrend
		var day time.Time
		if err := rows.Scan(&day, &trend.Total, &trend.Count); err != nil {
			return nil, err
		}
		trend.Day = day.Format("2006-01-02")
		total = total.Add(trend.Total)
		report.DailyTrends = append(report.DailyTrends, trend)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(report.DailyTrends) > 0 {
		report.AverageDailySpending = total.Div(decimal.NewFromInt(int64(len(report.DailyTrends)))).Round(2)
	} else {
		report.AverageDailySpending = decimal.Zero
	}

	return report, nil
}
