package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 1, ClampLimit(0, MinListLimit, MaxListLimit))
	assert.Equal(t, 1, ClampLimit(-10, MinListLimit, MaxListLimit))
	assert.Equal(t, 1, ClampLimit(1, MinListLimit, MaxListLimit))
	assert.Equal(t, 50, ClampLimit(50, MinListLimit, MaxListLimit))
	assert.Equal(t, 200, ClampLimit(200, MinListLimit, MaxListLimit))
	assert.Equal(t, 200, ClampLimit(500, MinListLimit, MaxListLimit))
}

func TestParseLimitParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		query    string
		def      int
		expected int
	}{
		{"absent falls back to the default", "", 100, 100},
		{"valid value passes through", "limit=25", 100, 25},
		{"non-numeric falls back to the default", "limit=abc", 50, 50},
		{"zero is clamped up", "limit=0", 100, 1},
		{"excess is clamped down", "limit=500", 100, 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/sessions?"+tc.query, nil)

			assert.Equal(t, tc.expected, ParseLimitParam(c, tc.def))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.67, Round2(14.0/3.0))
	assert.Equal(t, 2.33, Round2(7.0/3.0))
	assert.Equal(t, 3.0, Round2(3.0))
	assert.Equal(t, 2.35, Round2(2.345000001))
}
