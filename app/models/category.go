package models

import "time"

type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

type Category struct {
	ID          string       `json:"id" validate:"required,uuid"`
	UserID      string       `json:"user_id" validate:"required,uuid"`
	Name        string       `json:"name" validate:"required"`
	Type        CategoryType `json:"type"`
	Color       string       `json:"color"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
