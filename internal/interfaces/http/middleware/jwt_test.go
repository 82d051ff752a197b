package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/gadogest/backend/internal/infrastructure/auth"
	"github.com/gadogest/backend/internal/infrastructure/config"
	"github.com/gadogest/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(t *testing.T, expiration time.Duration) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-middleware",
		TokenExpiration: expiration,
		Issuer:          "gadogest",
	})
}

func newProtectedEngine(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuthMiddleware(jwtService))

	echo := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetJWTUserID(c),
			"name":    c.GetString(JWTNameKey),
			"farm":    c.GetString(JWTFarmKey),
		})
	}
	engine.GET("/health", echo)
	engine.GET("/api/v1/ping", echo)
	engine.POST("/api/v1/auth/login", echo)
	engine.POST("/api/v1/auth/register", echo)
	engine.GET("/api/v1/bootstrap", echo)
	engine.GET("/api/v1/animals", echo)
	return engine
}

func signToken(t *testing.T, jwtService *auth.JWTService) (*identity.User, string) {
	t.Helper()
	user, err := identity.NewUser("Maria Silva", "maria@fazenda.com", "senha123", "Fazenda Boa Vista")
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	return user, token.Value
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	engine := newProtectedEngine(newJWTService(t, time.Hour))

	skipped := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/api/v1/ping"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodGet, "/api/v1/bootstrap"},
	}
	for _, route := range skipped {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(route.method, route.path, nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, route.path)
	}
}

func TestJWTAuthMiddleware_RejectsUnauthenticated(t *testing.T) {
	engine := newProtectedEngine(newJWTService(t, time.Hour))

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Token de autenticação ausente"},
		{"wrong scheme", "Basic abc123", "Formato do token inválido"},
		{"empty bearer", "Bearer ", "Token de autenticação ausente"},
		{"garbage token", "Bearer not-a-jwt", "Token inválido"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/v1/animals", nil)
			if tt.header != "" {
				req.Header.Set(AuthHeaderKey, tt.header)
			}
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtService := newJWTService(t, -time.Minute)
	engine := newProtectedEngine(jwtService)
	_, token := signToken(t, jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/animals", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sessão expirada", resp.Message)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := newJWTService(t, time.Hour)
	engine := newProtectedEngine(jwtService)
	user, token := signToken(t, jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/animals", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, user.ID.String(), payload["user_id"])
	assert.Equal(t, "Maria Silva", payload["name"])
	assert.Equal(t, "Fazenda Boa Vista", payload["farm"])
}
