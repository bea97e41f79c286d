package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"air-relatorios/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_LocalLimiter(t *testing.T) {
	t.Parallel()

	s := NewService(nil, observability.NewLogger())
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	ctx := context.Background()

	first := s.CheckRateLimit(ctx, "ip", 2)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)
	assert.True(t, s.CheckRateLimit(ctx, "ip", 2).Allowed)

	denied := s.CheckRateLimit(ctx, "ip", 2)
	assert.False(t, denied.Allowed)
	assert.Equal(t, 30_000, denied.RetryAfterMs)

	assert.True(t, s.CheckRateLimit(ctx, "other", 2).Allowed)

	clock = clock.Add(30 * time.Second)
	assert.True(t, s.CheckRateLimit(ctx, "ip", 2).Allowed)
}

func TestService_ZeroLimitDisables(t *testing.T) {
	t.Parallel()

	s := NewService(nil, observability.NewLogger())
	for range 10 {
		assert.True(t, s.CheckRateLimit(context.Background(), "ip", 0).Allowed)
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	s := NewService(nil, observability.NewLogger())
	r := gin.New()
	r.GET("/public", s.Middleware("public", 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, do().Code)
	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}
