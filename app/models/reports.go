package models

import "github.com/shopspring/decimal"

// Report payloads. All values are recomputed per call from the
// transaction/expense log; nothing here is materialized.

type OverviewReport struct {
	Period             string          `json:"period"`
	MainAccountBalance decimal.Decimal `json:"main_account_balance"`
	TotalProjectBudget decimal.Decimal `json:"total_project_budget"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	ProjectsCount      int             `json:"projects_count"`
	LowBudgetProjects  []string        `json:"low_budget_projects"`
}

type CategoryReportRow struct {
	Name         string          `json:"name"`
	Color        string          `json:"color"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseCount int             `json:"expense_count"`
}

type ProjectReportRow struct {
	Name           string              `json:"name"`
	CurrentBudget  decimal.Decimal     `json:"current_budget"`
	BudgetLimit    decimal.NullDecimal `json:"budget_limit,omitempty"`
	PeriodExpenses decimal.Decimal     `json:"period_expenses"`
	BudgetStatus   string              `json:"budget_status"`
	IsBudgetLow    bool                `json:"is_budget_low"`
}

type DailyTrend struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type TrendsReport struct {
	DailyTrends          []DailyTrend    `json:"daily_trends"`
	AverageDailySpending decimal.Decimal `json:"average_daily_spending"`
}

// ProjectBalance is one row of the project balances listing: how much a
// project has spent versus what remains.
type ProjectBalance struct {
	Project
	TotalSpent     decimal.Decimal `json:"total_spent"`
	OriginalBudget decimal.Decimal `json:"original_budget"`
	ExpenseCount   int             `json:"expense_count"`
}

type ProjectBalanceSummary struct {
	TotalProjects       int             `json:"total_projects"`
	TotalOriginalBudget decimal.Decimal `json:"total_original_budget"`
	TotalSpent          decimal.Decimal `json:"total_spent"`
	TotalRemaining      decimal.Decimal `json:"total_remaining"`
}
