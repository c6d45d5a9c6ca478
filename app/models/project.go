package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a budget envelope owned by one user. Budget holds the funds
// currently available, not the original allocation; BudgetLimit is the
// optional ceiling used for status percentages.
type Project struct {
	ID                 string              `json:"id" validate:"required,uuid"`
	UserID             string              `json:"user_id" validate:"required,uuid"`
	Name               string              `json:"name" validate:"required"`
	Budget             decimal.Decimal     `json:"budget"`
	BudgetLimit        decimal.NullDecimal `json:"budget_limit,omitempty"`
	LowBudgetThreshold decimal.Decimal     `json:"low_budget_threshold"`
	Description        string              `json:"description,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}
