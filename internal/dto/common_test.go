package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

func TestNewPaginationResponse(t *testing.T) {
	testCases := []struct {
		name          string
		page, limit   int
		total         int64
		expectedPages int64
		expectedLimit int
	}{
		{"exact multiple", 1, 10, 30, 3, 10},
		{"partial last page", 2, 10, 31, 4, 10},
		{"empty result", 1, 20, 0, 0, 20},
		{"zero limit clamps instead of dividing by zero", 1, 0, 3, 3, 1},
		{"negative limit clamps", 1, -5, 3, 3, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := dto.NewPaginationResponse(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.expectedPages, resp.Pages)
			assert.Equal(t, tc.expectedLimit, resp.Limit)
			assert.Equal(t, tc.total, resp.Total)
		})
	}
}

func TestPaginationParamsOffset(t *testing.T) {
	assert.Equal(t, 0, dto.PaginationParams{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, dto.PaginationParams{Page: 3, Limit: 20}.Offset())
}
