package observability

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

// RequestLogger logs one line per request and feeds the route counters. It
// runs before the error handler has written the response, so the status of a
// failed request is taken from the returned error.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusOf(err)
		}

		metrics.RecordRequest(RoutePath(c), c.Method(), status, latency)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.IP()),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
		return err
	}
}

// RoutePath returns the matched route pattern, which keeps ids out of counter
// keys. Unmatched requests fall back to the raw path.
func RoutePath(c *fiber.Ctx) string {
	if path := c.Route().Path; path != "" && path != "/" {
		return path
	}
	return c.Path()
}

// StatusOf reports the HTTP status an error will be rendered with.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return errorutil.ToDomainError(err).HTTPStatus
}
