package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/curio/backend/internal/infrastructure/auth"
	"github.com/curio/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Auth context keys
const (
	ClaimsKey     = "auth_claims"
	OwnerIDKey    = "auth_owner_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthMiddleware validates the bearer token and stores the owner id in
// the request context. Every route behind it can assume an owner.
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			unauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			unauthorized(c, "Authorization header must use the Bearer scheme")
			return
		}

		token := strings.TrimPrefix(header, BearerPrefix)
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				unauthorized(c, "Token has expired")
				return
			}
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(OwnerIDKey, claims.OwnerID())
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// GetOwnerID returns the authenticated owner id, or empty if the
// request did not pass the auth middleware.
func GetOwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}

// GetClaims returns the validated token claims, if present
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
