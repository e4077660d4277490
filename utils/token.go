package utils

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a 24h HS256 token carrying the user id and role.
func GenerateToken(secret string, userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetUserIDFromContext extracts the authenticated user id set by the JWT
// middleware.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, fmt.Errorf("user id not found in context")
	}
	switch v := val.(type) {
	case uint:
		return v, nil
	case float64:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("user id is of unknown type: %T", val)
	}
}
