package models

import "github.com/shopspring/decimal"

// MainAccount is the user's central cash pool. Every user has exactly one,
// created at signup. The balance only moves through ledger operations.
type MainAccount struct {
	ID      string          `json:"id" validate:"required,uuid"`
	UserID  string          `json:"user_id" validate:"required,uuid"`
	Balance decimal.Decimal `json:"balance"`
}
