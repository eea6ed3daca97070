//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coupon-portal/internal/handler/middleware"
	"coupon-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().Log

	newRouter := func(buf *bytes.Buffer, status int) *gin.Engine {
		logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		r := gin.New()
		r.Use(middleware.LoggingMiddleware(logger, cfg))
		r.GET("/x", func(c *gin.Context) {
			c.Set("session_id", "sess-1")
			c.Status(status)
		})
		return r
	}

	t.Run("generates a request id and logs the session", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.NewRecorder()
		newRouter(&buf, http.StatusOK).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := w.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		assert.Contains(t, buf.String(), "request_id="+id)
		assert.Contains(t, buf.String(), "session_id=sess-1")
		assert.Contains(t, buf.String(), "level=INFO msg=\"Request completed\"")
	})

	t.Run("keeps an incoming request id", func(t *testing.T) {
		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", "abc")
		w := httptest.NewRecorder()
		newRouter(&buf, http.StatusOK).ServeHTTP(w, req)

		assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		var buf bytes.Buffer
		newRouter(&buf, http.StatusConflict).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Contains(t, buf.String(), "level=WARN")
	})
}
