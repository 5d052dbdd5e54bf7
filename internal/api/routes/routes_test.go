package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"capstone-backend/internal/auth"
	"capstone-backend/internal/config"
	"capstone-backend/internal/database/models"
	"capstone-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.NewSQLiteDB(t)
	cfg := &config.Config{
		JWTSecret:      "routes-test-secret",
		JWTIssuer:      "capstone-backend",
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	router, err := SetupRoutes(db, cfg)
	require.NoError(t, err)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	require.NoError(t, err)
	studentToken, err := authService.GenerateJWT(uuid.New(), models.UserRoleStudent)
	require.NoError(t, err)

	do := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("health is public", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/health", "").Code)
	})

	t.Run("metrics are exposed", func(t *testing.T) {
		w := do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "capstone_http_requests_total")
	})

	t.Run("api requires a token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/teams/"+uuid.New().String(), "").Code)
	})

	t.Run("admin routes reject students", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(http.MethodDelete, "/api/v1/users/"+uuid.New().String(), studentToken).Code)
	})

	t.Run("authenticated lookups reach the services", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/api/v1/teams/"+uuid.New().String(), studentToken).Code)
	})
}
