package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"capstone-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-jwt-operations"

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(testSecret, "capstone-backend")
	require.NoError(t, err)
	return service
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService("", "capstone-backend")
	assert.Error(t, err)
}

func TestJWTOperations(t *testing.T) {
	service := newTestService(t)
	userID := uuid.New()

	token, err := service.GenerateJWT(userID, models.UserRoleAdvisor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, models.UserRoleAdvisor, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsForeignTokens(t *testing.T) {
	service := newTestService(t)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService("another-secret", "capstone-backend")
		require.NoError(t, err)
		token, err := other.GenerateJWT(uuid.New(), models.UserRoleStudent)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewAuthService(testSecret, "someone-else")
		require.NoError(t, err)
		token, err := other.GenerateJWT(uuid.New(), models.UserRoleStudent)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := service.GenerateJWT(uuid.New(), models.UserRole("JANITOR"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{
			UserID: uuid.New(),
			Role:   models.UserRoleStudent,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "capstone-backend",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireRole(models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	studentID := uuid.New()
	studentToken, err := service.GenerateJWT(studentID, models.UserRoleStudent)
	require.NoError(t, err)
	adminToken, err := service.GenerateJWT(uuid.New(), models.UserRoleAdmin)
	require.NoError(t, err)

	testCases := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
	}{
		{name: "missing header", path: "/me", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "not a bearer token", path: "/me", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "invalid token", path: "/me", header: "Bearer nope", expectedStatus: http.StatusUnauthorized},
		{name: "valid token", path: "/me", header: "Bearer " + studentToken, expectedStatus: http.StatusOK},
		{name: "role not allowed", path: "/admin", header: "Bearer " + studentToken, expectedStatus: http.StatusForbidden},
		{name: "role allowed", path: "/admin", header: "Bearer " + adminToken, expectedStatus: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), studentID.String())
			}
		})
	}
}
