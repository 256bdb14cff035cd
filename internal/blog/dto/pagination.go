package dto

import (
	"github.com/arbelcharny-source/blog-service/pkg/constant"
)

type PageParams struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit the same way for every listing endpoint.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = constant.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = constant.DefaultPageSize
	}
	if p.Limit > constant.MaxPageSize {
		p.Limit = constant.MaxPageSize
	}

	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func NewPagination(params PageParams, total int) Pagination {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
