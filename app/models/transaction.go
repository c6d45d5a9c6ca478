package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionAllocate TransactionType = "allocate"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
	TransactionRefund   TransactionType = "refund"
)

// Transaction is an immutable audit record. Rows are only ever inserted;
// project references are nulled if the project goes away.
type Transaction struct {
	ID            string          `json:"id" validate:"required,uuid"`
	UserID        string          `json:"user_id" validate:"required,uuid"`
	ProjectID     *string         `json:"project_id,omitempty"`
	FromProjectID *string         `json:"from_project_id,omitempty"`
	ToProjectID   *string         `json:"to_project_id,omitempty"`
	Type          TransactionType `json:"type" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

// TransactionSummary aggregates per-type totals for a transaction listing.
type TransactionSummary struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalDeposits     decimal.Decimal `json:"total_deposits"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	TotalAllocations  decimal.Decimal `json:"total_allocations"`
	TotalTransfers    decimal.Decimal `json:"total_transfers"`
	TotalRefunds      decimal.Decimal `json:"total_refunds"`
}
