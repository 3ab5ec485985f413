package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxPageLimit caps the limit query parameter.
const MaxPageLimit = 10000

// ParsePagination parses the offset and limit query parameters. A missing
// limit yields 0, meaning no limit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 || limit > MaxPageLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 0 and %d", MaxPageLimit)
	}

	return offset, limit, nil
}

// Page returns the window of items selected by offset and limit.
func Page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
