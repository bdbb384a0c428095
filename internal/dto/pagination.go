package dto

import "github.com/yukikurage/piyuclean-api/internal/utils"

// PaginationResponse is the pagination block of list responses
type PaginationResponse = utils.PaginationResponse

// NewPagination builds the pagination block for a page of total items
func NewPagination(params utils.PaginationParams, total int64) PaginationResponse {
	return PaginationResponse{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	}
}
