package loggingmw

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/logging"
)

// RequestLogger assigns every request an id, seeds the context logger that
// handlers pull via logging.FromContext, and writes one completion line per
// request. Fields attached to the context logger further down the chain (the
// auth middleware adds user_id) appear on the completion line, so log lines
// can be correlated with audit entries. Health probes are not logged.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.HasPrefix(c.Request().URL.Path, "/health/") {
				return next(c)
			}

			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			l := base.With(
				"request_id", rid,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
			)
			c.SetRequest(c.Request().WithContext(logging.IntoContext(c.Request().Context(), l)))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
			}

			status := c.Response().Status
			fields := []any{
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes", c.Response().Size,
			}
			if err != nil {
				fields = append(fields, "error", fmt.Sprintf("%v", err))
			}

			done := logging.FromContext(c.Request().Context())
			switch {
			case err != nil || status >= 500:
				done.Error("request completed", fields...)
			case status >= 400:
				done.Warn("request completed", fields...)
			default:
				done.Info("request completed", fields...)
			}
			return nil
		}
	}
}
