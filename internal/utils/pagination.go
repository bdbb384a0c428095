package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/constants"
)

// PaginationParams is a resolved page window. The zero value means
// "no paging" to the database scopes.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse is the pagination block of list responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams reads ?page and ?limit. A missing, malformed or
// non-positive value falls back to its default; limit is capped at
// constants.MaxPageSize.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page := queryInt(c, "page", constants.DefaultPage)
	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}

	limit := queryInt(c, "limit", constants.DefaultPageSize)
	switch {
	case limit < constants.MinPageSize:
		limit = constants.DefaultPageSize
	case limit > constants.MaxPageSize:
		limit = constants.MaxPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return n
}
