package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gadogest/backend/internal/infrastructure/auth"
	"github.com/gadogest/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTNameKey    = "jwt_name"
	JWTFarmKey    = "jwt_farm"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for the JWT middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// SkipPaths don't require authentication
	SkipPaths []string
}

// DefaultJWTConfig returns the default skip list for the public endpoints
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/ping",
			"/api/v1/auth/login",
			"/api/v1/auth/register",
			"/api/v1/bootstrap",
		},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Token de autenticação ausente")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Formato do token inválido")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, "Token de autenticação ausente")
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Sessão expirada")
				return
			}
			abortUnauthorized(c, "Token inválido")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTNameKey, claims.Name)
		c.Set(JWTFarmKey, claims.Farm)
		c.Next()
	}
}

// GetJWTUserID returns the authenticated user id from the context
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTClaims returns the validated claims from the context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}
