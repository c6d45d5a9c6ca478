package transactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilterClause_NoFilters(t *testing.T) {
	clause, args := buildFilterClause("user-1", TransactionFilters{})

	assert.Equal(t, "WHERE t.user_id = $1", clause)
	assert.Equal(t, []interface{}{"user-1"}, args)
}

func TestBuildFilterClause_TypeOnly(t *testing.T) {
	clause, args := buildFilterClause("user-1", TransactionFilters{Type: "deposit"})

	assert.Equal(t, "WHERE t.user_id = $1 AND t.type = $2", clause)
	assert.Equal(t, []interface{}{"user-1", "deposit"}, args)
}

func TestBuildFilterClause_ProjectMatchesAllColumns(t *testing.T) {
	clause, args := buildFilterClause("user-1", TransactionFilters{ProjectID: "proj-1"})

	assert.Contains(t, clause, "t.project_id = $2")
	assert.Contains(t, clause, "t.from_project_id = $2")
	assert.Contains(t, clause, "t.to_project_id = $2")
	assert.Equal(t, []interface{}{"user-1", "proj-1"}, args)
}

func TestBuildFilterClause_AllFilters(t *testing.T) {
	clause, args := buildFilterClause("user-1", TransactionFilters{
		Type:      "expense",
		ProjectID: "proj-1",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})

	assert.Equal(t,
		"WHERE t.user_id = $1 AND t.type = $2"+
			" AND (t.project_id = $3 OR t.from_project_id = $3 OR t.to_project_id = $3)"+
			" AND t.timestamp >= $4 AND t.timestamp <= $5",
		clause)
	assert.Equal(t, []interface{}{"user-1", "expense", "proj-1", "2026-01-01", "2026-01-31"}, args)
}
