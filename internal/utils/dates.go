package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/models"
)

// DateQuery reads an optional YYYY-MM-DD query parameter.
func DateQuery(c *gin.Context, key string) (*models.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &d, nil
}

// DateRangeQuery reads the start and end query parameters. Both must be
// present for a range to apply; a single bound is rejected.
func DateRangeQuery(c *gin.Context) (start, end *models.Date, err error) {
	if start, err = DateQuery(c, "start"); err != nil {
		return nil, nil, err
	}
	if end, err = DateQuery(c, "end"); err != nil {
		return nil, nil, err
	}
	if (start == nil) != (end == nil) {
		return nil, nil, fmt.Errorf("start and end must be given together")
	}
	return start, end, nil
}
