package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tasks-api/domain/repositories"
	"tasks-api/pkg/logger"
	"tasks-api/pkg/token"
	"tasks-api/pkg/utils"
)

// genericAuthMessage is the only message clients see for any
// authentication failure. The failure kind (missing header, bad
// signature, expiry, unknown subject) is logged server-side but never
// disclosed, so the endpoint cannot be used as an oracle.
const genericAuthMessage = "Could not validate credentials"

// Protected validates the bearer token and resolves it to a stored
// user before the handler runs. The resolved identity is attached to
// the request context.
func Protected(tokens *token.Manager, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		tokenString := extractBearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" {
			logger.WarnContext(ctx, "Missing or malformed authorization header", "path", c.Path())
			return utils.UnauthorizedResponse(c, genericAuthMessage)
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			logger.WarnContext(ctx, "Token verification failed", "path", c.Path(), "reason", err)
			return utils.UnauthorizedResponse(c, genericAuthMessage)
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.WarnContext(ctx, "Token subject is not a valid user ID", "path", c.Path())
			return utils.UnauthorizedResponse(c, genericAuthMessage)
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			logger.WarnContext(ctx, "Token subject not resolvable", "path", c.Path(), "user_id", userID)
			return utils.UnauthorizedResponse(c, genericAuthMessage)
		}

		utils.SetUserContext(c, &utils.UserContext{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		})

		return c.Next()
	}
}

// extractBearerToken returns the credential part of a
// "Bearer <token>" header, or "" when the header is absent or uses a
// different scheme.
func extractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
