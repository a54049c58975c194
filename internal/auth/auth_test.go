package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCrewMember() *models.CrewMember {
	return &models.CrewMember{
		TenantModel: models.TenantModel{BaseModel: models.BaseModel{ID: uuid.New()}},
		FullName:    "Dana Reyes",
		Email:       "dana.reyes@example.com",
		Role:        models.CrewRoleTechnician,
	}
}

func TestNewAuthService(t *testing.T) {
	t.Run("valid secret", func(t *testing.T) {
		service, err := NewAuthService("test-signing-key", time.Hour)
		assert.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("missing secret", func(t *testing.T) {
		service, err := NewAuthService("", time.Hour)
		assert.Error(t, err)
		assert.Nil(t, service)
		assert.Contains(t, err.Error(), "jwt secret is required")
	})

	t.Run("non-positive ttl defaults to one hour", func(t *testing.T) {
		service, err := NewAuthService("test-signing-key", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, service.tokenTTL)
	})
}

func TestTokenOperations(t *testing.T) {
	service, err := NewAuthService("test-signing-key-for-token-operations", time.Hour)
	require.NoError(t, err)

	tenantID := uuid.New()
	member := testCrewMember()

	// Test token generation
	token, err := service.GenerateToken(tenantID, member)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Test token validation
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, member.ID.String(), claims.UserID)
	assert.Equal(t, tenantID.String(), claims.TenantID)
	assert.Equal(t, member.Email, claims.Email)
	assert.Equal(t, string(models.CrewRoleTechnician), claims.Role)

	t.Run("wrong signing key", func(t *testing.T) {
		other, err := NewAuthService("a-different-signing-key", time.Hour)
		require.NoError(t, err)

		_, err = other.ValidateToken(token)
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := &AuthService{secret: []byte("test-signing-key-for-token-operations"), tokenTTL: -time.Minute}
		expired, err := shortLived.GenerateToken(tenantID, member)
		require.NoError(t, err)

		_, err = service.ValidateToken(expired)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService("test-signing-key-for-middleware", time.Hour)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	tenantID := uuid.New()
	member := testCrewMember()

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		gotTenant, ok := GetTenantID(c)
		require.True(t, ok)
		gotUser, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"tenant_id": gotTenant, "user_id": gotUser})
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := service.GenerateToken(tenantID, member)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tenantID.String(), body["tenant_id"])
		assert.Equal(t, member.ID.String(), body["user_id"])
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService("test-signing-key-for-roles", time.Hour)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/supervisor-only", middleware.RequireAuth(), middleware.RequireRole("supervisor"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allowed role", func(t *testing.T) {
		member := testCrewMember()
		member.Role = models.CrewRoleSupervisor
		token, err := service.GenerateToken(uuid.New(), member)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/supervisor-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden role", func(t *testing.T) {
		token, err := service.GenerateToken(uuid.New(), testCrewMember())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/supervisor-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
