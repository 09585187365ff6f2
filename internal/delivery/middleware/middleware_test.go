package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"afrimart/config"
	deliverycontext "afrimart/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(NewRequestIDMiddleware(newBufferLogger(&buf)).Process)
	e.GET("/ping", func(c echo.Context) error {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, nil).Info("handled")

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})

	t.Run("propagates header", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Body.String())
		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), "request_id=req-42")
	})

	t.Run("generates when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog bool
	}{
		{name: "success hidden outside debug", path: "/ok", status: http.StatusOK},
		{name: "success logged in debug", debug: true, path: "/ok", status: http.StatusOK, wantLog: true},
		{name: "server error always logged", path: "/fail", status: http.StatusInternalServerError, wantLog: true},
		{name: "health skipped", debug: true, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(newBufferLogger(&buf), cfg).Handle)
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantLog {
				assert.Contains(t, buf.String(), "HTTP Request")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
