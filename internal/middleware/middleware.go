package middleware

import (
	"crypto/subtle"
	"strings"

	"fridgify/domain"
	"fridgify/internal/api/presenters"
	"fridgify/internal/utils"
	"fridgify/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		CronMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Cron-Secret",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenInvalid)
		}

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// CronMiddleware gates the notification sweep behind a shared secret so only
// the periodic trigger can invoke it.
func (m *middleware) CronMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := utils.GetConfig("CRON_SECRET")
		if secret == "" {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, "cron secret not configured", nil)
		}
		provided := c.Get("X-Cron-Secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(provided)) != 1 {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, "invalid cron secret", nil)
		}
		return c.Next()
	}
}
