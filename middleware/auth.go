// middleware/auth.go
package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth returns the bearer-token middleware. The signing secret is
// injected at startup; there is no env fallback here.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Access token required"})
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("userId", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// TokenClaims are the claims carried by an access token.
type TokenClaims struct {
	UserID uint
	Email  string
}

// ParseToken validates an HS256 token and extracts its claims.
func ParseToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return nil, errors.New("missing userId claim")
	}

	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: uint(userID), Email: email}, nil
}

// GenerateToken issues a 24h access token for the user.
func GenerateToken(userID uint, email, secret string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetUserID reads the authenticated user id set by Auth.
func GetUserID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("userId").(uint)
	if !ok {
		return 0, errors.New("user not authenticated")
	}
	return id, nil
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
