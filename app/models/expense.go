package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense records spending against a project. Tags are stored as a
// comma-separated string, the same way the receipts column stores a URL.
type Expense struct {
	ID          string          `json:"id" validate:"required,uuid"`
	ProjectID   string          `json:"project_id" validate:"required,uuid"`
	CategoryID  *string         `json:"category_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
	Tags        string          `json:"tags,omitempty"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Category    *Category       `json:"category,omitempty"` // optional for JSON responses
}

// TagsList splits the comma-separated tags field into trimmed values.
func (e *Expense) TagsList() []string {
	var tags []string
	for _, t := range strings.Split(e.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
