package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Result list bounds shared by the session endpoints
const (
	MinListLimit = 1
	MaxListLimit = 200
)

// ClampLimit forces limit into [min, max]
func ClampLimit(limit, min, max int) int {
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}

// ParseLimitParam extracts the 'limit' query parameter, falling back to def
// when absent or non-numeric, then clamps it to [MinListLimit, MaxListLimit].
func ParseLimitParam(c *gin.Context, def int) int {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = def
	}
	return ClampLimit(limit, MinListLimit, MaxListLimit)
}

// Round2 rounds to 2 decimal places, halves away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
