package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page        string
		perPage     string
		wantPage    int
		wantPerPage int
		wantErr     bool
	}{
		{"defaults", "", "", 1, 10, false},
		{"explicit values", "3", "25", 3, 25, false},
		{"zero page", "0", "", 0, 0, true},
		{"negative page", "-1", "", 0, 0, true},
		{"non-numeric page", "abc", "", 0, 0, true},
		{"per_page over cap", "", "500", 0, 0, true},
		{"non-numeric per_page", "", "x", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage, err := ValidatePaginationParams(tt.page, tt.perPage)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
	assert.Equal(t, items, Paginate(items, 1, 100))
}
