package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/curio/backend/internal/infrastructure/auth"
	"github.com/curio/backend/internal/infrastructure/config"
	"github.com/curio/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

type stubRegistrar struct{}

func (s *stubRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "development", Port: "8080"},
		JWT: config.JWTConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			Expiration: time.Hour,
			Issuer:     "curio-backend",
		},
		HTTP: config.HTTPConfig{
			CORSAllowOrigins: []string{"http://localhost:5173"},
			CORSAllowMethods: []string{"GET", "POST"},
			CORSAllowHeaders: []string{"Content-Type", "Authorization"},
		},
	}
}

func setupRouter(t *testing.T) (*Router, *auth.JWTService) {
	t.Helper()
	cfg := testConfig()
	jwtService := auth.NewJWTService(cfg.JWT)

	r := New(cfg, zap.NewNop())
	r.Register(&stubRegistrar{})
	r.Setup(jwtService, handler.NewHealthHandler(stubPinger{}, "test"))
	return r, jwtService
}

func TestHealthEndpointsAreUnauthenticated(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyReportsUnavailableDatabase(t *testing.T) {
	cfg := testConfig()
	r := New(cfg, zap.NewNop())
	r.Setup(auth.NewJWTService(cfg.JWT), handler.NewHealthHandler(stubPinger{err: context.DeadlineExceeded}, "test"))

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAPIRequiresAuthentication(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIAcceptsValidToken(t *testing.T) {
	r, jwtService := setupRouter(t)

	token, _, err := jwtService.GenerateToken("owner-1", "owner@example.com", "Owner")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSEchoesAllowedOrigin(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
