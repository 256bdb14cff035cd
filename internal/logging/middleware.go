package logging

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger injects a request-scoped logger into the request context and
// logs every completed request with its status and duration.
func RequestLogger(base *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := base.With(
			"method", c.Method(),
			"path", c.Path(),
			"remote_ip", c.IP(),
		)

		c.SetUserContext(IntoContext(c.UserContext(), l))

		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
		case status >= fiber.StatusBadRequest:
			l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
		default:
			l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds())
		}

		return err
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
