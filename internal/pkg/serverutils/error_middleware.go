package serverutils

import (
	"fmt"

	"skincare-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts unhandled handler errors and panics into
// the plain 500 "Error" contract, after logging. Handlers that want a
// different error body respond themselves before returning nil.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "Recovered from panic", map[string]interface{}{
					"path":  ctx.Path(),
					"panic": fmt.Sprintf("%v", r),
				})
				err = ctx.Status(fiber.StatusInternalServerError).SendString("Error")
			}
		}()

		if err := ctx.Next(); err != nil {
			log.Error("http", "Unhandled handler error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).SendString("Error")
		}
		return nil
	}
}
