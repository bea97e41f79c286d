package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"air-relatorios/internal/clients/httpx"
	"air-relatorios/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	inviteUsed := fmt.Errorf("invite already used: %w", domain.ErrConflict)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad input", fmt.Errorf("invalid date %q: %w", "31-31-2020", domain.ErrBadInput), http.StatusBadRequest, `invalid date "31-31-2020"`},
		{"not found kind only", domain.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"wrapped sentinel", fmt.Errorf("failed to redeem: %w", inviteUsed), http.StatusConflict, "invite already used"},
		{"forbidden", fmt.Errorf("page not permitted: %w", domain.ErrForbidden), http.StatusForbidden, "page not permitted"},
		{"unauthorized", fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized), http.StatusUnauthorized, "invalid email or password"},
		{"timeout", &httpx.TimeoutError{Op: "ai", Err: errors.New("deadline")}, http.StatusGatewayTimeout, ""},
		{"upstream", fmt.Errorf("classify: %w", &httpx.UpstreamError{Status: 503}), http.StatusBadGateway, ""},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "An internal error occurred. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Message)
			}
		})
	}
}

func TestMapError_PassesThroughAPIError(t *testing.T) {
	original := TooManyRequests("slow down")
	assert.Same(t, original, MapError(fmt.Errorf("wrapped: %w", original)))
	assert.Nil(t, MapError(nil))
}

func TestRespondWithError_WritesSanitizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithError(c, errors.New("secret table name leaked"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.Contains(t, w.Body.String(), CodeInternalError)
}
