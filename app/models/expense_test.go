package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagsList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{"empty", "", nil},
		{"single tag", "urgent", []string{"urgent"}},
		{"multiple tags", "urgent,materials,site-a", []string{"urgent", "materials", "site-a"}},
		{"whitespace trimmed", " urgent , materials ", []string{"urgent", "materials"}},
		{"empty segments dropped", "urgent,,materials,", []string{"urgent", "materials"}},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Expense{Tags: tt.tags}
			assert.Equal(t, tt.want, e.TagsList())
		})
	}
}
