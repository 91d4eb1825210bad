package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserContext is the authenticated identity attached to a request by
// the auth middleware.
type UserContext struct {
	ID       uuid.UUID
	Email    string
	FullName string
}

const userContextKey = "user"

func SetUserContext(c *fiber.Ctx, user *UserContext) {
	c.Locals(userContextKey, user)
}

func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	user, ok := c.Locals(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.New("user not found in context")
	}
	return user, nil
}
