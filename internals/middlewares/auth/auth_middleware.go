// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sekolahku_backend/internals/configs"
)

// AuthMiddleware memverifikasi bearer token JWT dan menaruh
// user_id + role ke locals untuk dipakai controller.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", userID)
		c.Locals("user_role", role)
		c.Locals("user_name", claims["user_name"])

		return c.Next()
	}
}

// LoggedUserRole membaca role hasil AuthMiddleware dari locals (kosong jika tidak ada)
func LoggedUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		// fallback: cookie access_token
		if cookie := c.Cookies("access_token"); cookie != "" {
			return cookie, nil
		}
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token format")
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing exp claim")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fiber.NewError(fiber.StatusUnauthorized, "token expired")
	}
	return nil
}
