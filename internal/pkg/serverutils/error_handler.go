package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"conevibes-be/pkg/llm"
)

// ErrorHandlerMiddleware maps errors returned by handlers to HTTP responses.
// Validation failures become 400s, a model backend that cannot be reached
// becomes a 502 (the pipeline never fabricates a recommendation), everything
// else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Validation failed",
				"fields":  validationErr.Fields,
			})
		}

		var unavailableErr *llm.UnavailableError
		if errors.As(err, &unavailableErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(
				ErrorResponse("Model backend unavailable"),
			)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponse("Internal server error"),
		)
	}
}
