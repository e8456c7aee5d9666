//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"stand-ledger/internal/handler/httperr"
	"stand-ledger/internal/handler/middleware"
	"stand-ledger/internal/pkg/config"
	"stand-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLogger() *middleware.Logger {
	return middleware.NewLogger(config.LogConfig{
		Level:          "error",
		TimeZone:       "UTC",
		TimeFormat:     "2006-01-02 15:04:05.000",
		TimeZoneOffset: 0,
	})
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(newLogger().LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")
		id := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("caller id is echoed", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", map[string]string{"X-Request-ID": "abc-123"})
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "abc-123"})
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/public-error", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "conflict"
		_ = c.Error(&gin.Error{Err: errors.New("boom"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	router.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})
	router.GET("/ok", func(c *gin.Context) {})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/public-error", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "conflict")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/private-error", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
