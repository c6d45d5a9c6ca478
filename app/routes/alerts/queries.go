package alerts

import (
	"database/sql"

	"github.com/nida-ullah/finance-app/app/database"
	"github.com/nida-ullah/finance-app/app/models"
)

func GetAlertsByUser(db *sql.DB, userID string, unreadOnly bool) ([]*models.BudgetAlert, error) {
	query := `SELECT id, user_id, project_id, alert_type, message, is_read, created_at
			  FROM budget_alerts
			  WHERE user_id = $1`
	if unreadOnly {
		query += ` AND is_read = false`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []*models.BudgetAlert{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		a := &models.BudgetAlert{}
		err := rows.Scan(&a.ID, &a.UserID, &a.ProjectID, &a.Type, &a.Message, &a.IsRead, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func CountAlerts(db *sql.DB, userID string) (unread int, total int, err error) {
	query := `SELECT COUNT(*) FILTER (WHERE is_read = false), COUNT(*)
			  FROM budget_alerts WHERE user_id = $1`
	err = db.QueryRow(query, userID).Scan(&unread, &total)
	return unread, total, err
}

// MarkAlertRead flips is_read. Marking is the only way an alert clears;
// budget recovery never resolves alerts automatically.
func MarkAlertRead(db *sql.DB, userID, alertID string) error {
	result, err := db.Exec(`UPDATE budget_alerts SET is_read = true WHERE id = $1 AND user_id = $2`, alertID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrAlertNotFound
	}
	return nil
}
