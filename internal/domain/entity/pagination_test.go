package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioworks/payment-service/internal/domain/entity"
)

func TestPaginationParams_Clamp(t *testing.T) {
	tests := []struct {
		name         string
		params       entity.PaginationParams
		wantPage     int
		wantPageSize int
	}{
		{"valid params pass through", entity.PaginationParams{Page: 2, PageSize: 50}, 2, 50},
		{"negative page becomes zero", entity.PaginationParams{Page: -1, PageSize: 50}, 0, 50},
		{"zero page size falls back to default", entity.PaginationParams{Page: 0, PageSize: 0}, 0, entity.DefaultPageSize},
		{"negative page size falls back to default", entity.PaginationParams{Page: 0, PageSize: -10}, 0, entity.DefaultPageSize},
		{"oversized page size falls back to default", entity.PaginationParams{Page: 0, PageSize: 5000}, 0, entity.DefaultPageSize},
		{"minimum page size is allowed", entity.PaginationParams{Page: 0, PageSize: 1}, 0, 1},
		{"maximum page size is allowed", entity.PaginationParams{Page: 0, PageSize: entity.MaxPageSize}, 0, entity.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Clamp()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantPageSize, tt.params.PageSize)
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	params := entity.PaginationParams{Page: 3, PageSize: 20}
	assert.Equal(t, 60, params.Offset())

	params = entity.PaginationParams{Page: 0, PageSize: 100}
	assert.Equal(t, 0, params.Offset())
}
