package models

import "time"

type AlertType string

const (
	AlertLowBudget AlertType = "low_budget"
	AlertNoFunds   AlertType = "no_funds"

	// Reserved alert types. No derivation rule produces these yet.
	AlertBudgetExceeded AlertType = "budget_exceeded"
	AlertLargeExpense   AlertType = "large_expense"
)

// BudgetAlert is a system-generated notice for a project. At most one alert
// of a given type exists per (user, project); creation is idempotent and
// alerts are only ever cleared by marking them read.
type BudgetAlert struct {
	ID        string    `json:"id" validate:"required,uuid"`
	UserID    string    `json:"user_id" validate:"required,uuid"`
	ProjectID string    `json:"project_id" validate:"required,uuid"`
	Type      AlertType `json:"alert_type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
