package serverutils

import (
	"errors"

	"chatbot-assistant-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// AuthCookieName is the cookie carrying the token in cookie transport mode.
	AuthCookieName = "auth_token"

	// TransportHeader and TransportCookie select where the auth guard looks
	// for the token.
	TransportHeader = "header"
	TransportCookie = "cookie"

	localsUserIdKey = "user_id"
)

// AuthGuard verifies the identity token before handler dispatch and
// short-circuits with an error response on failure. Missing token reads as
// 400, expired or otherwise invalid as 401.
func AuthGuard(tokenService *token.Service, transport string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := extractToken(ctx, transport)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unauthorized"})
		}

		userId, err := tokenService.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has expired"})
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		ctx.Locals(localsUserIdKey, userId)
		return ctx.Next()
	}
}

func extractToken(ctx *fiber.Ctx, transport string) string {
	if transport == TransportCookie {
		return ctx.Cookies(AuthCookieName)
	}
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}

// UserId returns the authenticated user id set by AuthGuard.
func UserId(ctx *fiber.Ctx) uuid.UUID {
	if id, ok := ctx.Locals(localsUserIdKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
