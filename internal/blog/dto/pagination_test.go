package dto_test

import (
	"testing"

	"github.com/arbelcharny-source/blog-service/internal/blog/dto"
	"github.com/arbelcharny-source/blog-service/pkg/constant"
	"github.com/stretchr/testify/assert"
)

func TestPageParams_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   dto.PageParams
		want dto.PageParams
	}{
		{"zero values fall back to defaults", dto.PageParams{}, dto.PageParams{Page: 1, Limit: 10}},
		{"negative values fall back to defaults", dto.PageParams{Page: -3, Limit: -1}, dto.PageParams{Page: 1, Limit: 10}},
		{"in-range values pass through", dto.PageParams{Page: 4, Limit: 25}, dto.PageParams{Page: 4, Limit: 25}},
		{"limit at the maximum passes through", dto.PageParams{Page: 1, Limit: 100}, dto.PageParams{Page: 1, Limit: 100}},
		{"limit above the maximum clamps to it", dto.PageParams{Page: 1, Limit: 101}, dto.PageParams{Page: 1, Limit: constant.MaxPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.PageParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, dto.PageParams{Page: 5, Limit: 10}.Offset())
}

func TestNewPagination(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		p := dto.NewPagination(dto.PageParams{Page: 2, Limit: 10}, 25)

		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, 25, p.Total)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("empty collection has zero pages", func(t *testing.T) {
		p := dto.NewPagination(dto.PageParams{Page: 1, Limit: 10}, 0)

		assert.Equal(t, 0, p.TotalPages)
	})
}
