package services

import (
	"testing"

	"github.com/nida-ullah/finance-app/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func project(budget string, limit string, threshold string) *models.Project {
	p := &models.Project{
		Name:               "Renovation",
		Budget:             decimal.RequireFromString(budget),
		LowBudgetThreshold: decimal.RequireFromString(threshold),
	}
	if limit != "" {
		p.BudgetLimit = decimal.NewNullDecimal(decimal.RequireFromString(limit))
	}
	return p
}

func TestBudgetStatus(t *testing.T) {
	tests := []struct {
		name   string
		budget string
		limit  string
		want   string
	}{
		{"no limit is unlimited", "500.00", "", "unlimited"},
		{"exactly 10 percent is critical", "100.00", "1000.00", "critical"},
		{"below 10 percent is critical", "99.99", "1000.00", "critical"},
		{"exactly 25 percent is low", "250.00", "1000.00", "low"},
		{"just above 25 percent is medium", "251.00", "1000.00", "medium"},
		{"exactly 50 percent is medium", "500.00", "1000.00", "medium"},
		{"above 50 percent is good", "500.01", "1000.00", "good"},
		{"full budget is good", "1000.00", "1000.00", "good"},
		{"zero budget is critical", "0.00", "1000.00", "critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := project(tt.budget, tt.limit, "50.00")
			assert.Equal(t, tt.want, BudgetStatus(p))
		})
	}
}

func TestIsBudgetLow(t *testing.T) {
	assert.True(t, IsBudgetLow(project("50.00", "", "50.00")), "equal to threshold counts as low")
	assert.True(t, IsBudgetLow(project("10.00", "", "50.00")))
	assert.False(t, IsBudgetLow(project("50.01", "", "50.00")))
}

func TestEvaluateBudgetAlerts_AboveThreshold(t *testing.T) {
	specs := EvaluateBudgetAlerts(project("200.00", "", "50.00"))
	assert.Empty(t, specs)
}

func TestEvaluateBudgetAlerts_LowBudget(t *testing.T) {
	specs := EvaluateBudgetAlerts(project("40.00", "", "50.00"))

	assert.Len(t, specs, 1)
	assert.Equal(t, models.AlertLowBudget, specs[0].Type)
	assert.Contains(t, specs[0].Message, "Renovation")
	assert.Contains(t, specs[0].Message, "$40.00")
}

func TestEvaluateBudgetAlerts_ExactlyAtThreshold(t *testing.T) {
	specs := EvaluateBudgetAlerts(project("50.00", "", "50.00"))

	assert.Len(t, specs, 1)
	assert.Equal(t, models.AlertLowBudget, specs[0].Type)
}

func TestEvaluateBudgetAlerts_NoFunds(t *testing.T) {
	specs := EvaluateBudgetAlerts(project("0.00", "", "50.00"))

	// Zero budget is below the default threshold too, so both fire.
	assert.Len(t, specs, 2)
	assert.Equal(t, models.AlertLowBudget, specs[0].Type)
	assert.Equal(t, models.AlertNoFunds, specs[1].Type)
	assert.Contains(t, specs[1].Message, "no remaining budget")
}

func TestEvaluateBudgetAlerts_ZeroBudgetZeroThreshold(t *testing.T) {
	specs := EvaluateBudgetAlerts(project("0.00", "", "0.00"))
	assert.Len(t, specs, 2)
}
