package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Locals keys shared between handlers and the request logger.
const (
	LocalRequestID = "requestid"
	LocalMode      = "mode"
)

// RequestLogger writes one line per request. Bodies carry user data and
// are never logged, only their size.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			// the app ErrorHandler runs after this middleware returns
			status = fiber.StatusInternalServerError
			if e, ok := chainErr.(*fiber.Error); ok {
				status = e.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("request_size", len(c.Request().Body())),
		}
		if id, ok := c.Locals(LocalRequestID).(string); ok {
			fields = append(fields, zap.String("request_id", id))
		}
		if mode, ok := c.Locals(LocalMode).(string); ok {
			fields = append(fields, zap.String("mode", mode))
		}
		if chainErr != nil {
			fields = append(fields, zap.Error(chainErr))
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("Request failed", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request handled", fields...)
		}
		return chainErr
	}
}
