// Package middleware provides authentication, rate limiting, logging, tracing
// and metrics middleware for the HTTP server.
package middleware

import (
	"context"
	"errors"
	"strings"

	"helphub/internal/auth"
	"helphub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserLookup loads the account a verified token refers to.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthRequired is a middleware that enforces authentication for protected routes.
// On success the user is available as c.Locals("user") and its id as
// c.Locals("userID").
func AuthRequired(issuer *auth.TokenIssuer, users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			AuthFailures.WithLabelValues("missing_header").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Not authorized, no token"))
		}

		scheme, tokenString, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
		tokenString = strings.TrimSpace(tokenString)
		if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			AuthFailures.WithLabelValues("bad_scheme").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Not authorized, no token"))
		}

		userID, err := issuer.Verify(tokenString)
		if err != nil {
			AuthFailures.WithLabelValues("invalid_token").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Not authorized, token failed"))
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			if models.ErrorCode(err) != models.CodeNotFound {
				// A store fault is not a credential failure.
				Logger.ErrorContext(c.UserContext(), "auth user lookup failed",
					"user_id", userID, "error", err)
				AuthFailures.WithLabelValues("lookup_error").Inc()
				if models.ErrorCode(err) == "" {
					err = models.NewInternalError(err)
				}
				return models.RespondWithError(c, fiber.StatusInternalServerError, err)
			}
			AuthFailures.WithLabelValues("unknown_user").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Not authorized, token failed"))
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, user.ID))

		return c.Next()
	}
}

// CurrentUserID returns the id stored by AuthRequired.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return 0, errors.New("no authenticated user")
	}
	return userID, nil
}
