package services

import (
	"fmt"

	"github.com/nida-ullah/finance-app/app/models"
	"github.com/shopspring/decimal"
)

// AlertSpec describes an alert that should exist for a project. The
// database layer turns specs into idempotent inserts keyed on
// (user, project, type).
type AlertSpec struct {
	Type    models.AlertType
	Message string
}

var oneHundred = decimal.NewFromInt(100)

// EvaluateBudgetAlerts derives the alerts due for a project's current state.
// It must be called on post-mutation state: thresholds are evaluated on the
// budget left after a spend, not before it. budget_exceeded and
// large_expense are reserved types with no rule here.
func EvaluateBudgetAlerts(p *models.Project) []AlertSpec {
	var specs []AlertSpec

	if IsBudgetLow(p) {
		specs = append(specs, AlertSpec{
			Type:    models.AlertLowBudget,
			Message: fmt.Sprintf("Project '%s' budget is running low ($%s remaining)", p.Name, p.Budget.StringFixed(2)),
		})
	}

	if p.Budget.LessThanOrEqual(decimal.Zero) {
		specs = append(specs, AlertSpec{
			Type:    models.AlertNoFunds,
			Message: fmt.Sprintf("Project '%s' has no remaining budget", p.Name),
		})
	}

	return specs
}

// IsBudgetLow reports whether the project budget is at or below its
// low-budget threshold.
func IsBudgetLow(p *models.Project) bool {
	return p.Budget.LessThanOrEqual(p.LowBudgetThreshold)
}

// BudgetStatus classifies how much of the project's budget limit remains.
// Boundaries are inclusive on the lower bucket: exactly 10% is "critical".
func BudgetStatus(p *models.Project) string {
	if !p.BudgetLimit.Valid || p.BudgetLimit.Decimal.IsZero() {
		return "unlimited"
	}

	percentage := p.Budget.Div(p.BudgetLimit.Decimal).Mul(oneHundred)
	switch {
	case percentage.LessThanOrEqual(decimal.NewFromInt(10)):
		return "critical"
	case percentage.LessThanOrEqual(decimal.NewFromInt(25)):
		return "low"
	case percentage.LessThanOrEqual(decimal.NewFromInt(50)):
		return "medium"
	default:
		return "good"
	}
}
