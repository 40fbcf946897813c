package logger

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const headerRequestID = "X-Request-ID"

// EchoMiddleware attaches a request-scoped logger to the request context and
// logs one line per completed request.
func EchoMiddleware(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(headerRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, reqID)

			l := base.With().
				Str("request_id", reqID).
				Str("method", req.Method).
				Str("path", c.Path()).
				Logger()
			ctx := WithRequestID(WithLogger(req.Context(), l), reqID)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			ev := l.Info()
			if err != nil {
				ev = l.Warn().Err(err)
			}
			ev.Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("request completed")
			return nil
		}
	}
}
