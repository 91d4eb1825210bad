package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tasks-api/pkg/logger"
	"tasks-api/pkg/utils"
)

// ErrorHandler normalizes errors that escape handlers into the
// standard response envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusUnprocessableEntity:
				errCode = utils.ErrCodeValidation
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled request error", "status", code, "error", err)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
