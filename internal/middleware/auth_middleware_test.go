package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/pkg/auth"
)

func testRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "internhub-test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	authed := router.Group("/", m.JWTAuth())
	authed.GET("/any", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	authed.GET("/staff", m.RoleRequired(models.RoleAdmin, models.RoleFaculty), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 1, Username: "u", Role: role})
	require.NoError(t, err)
	return access
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := testRouter(t)
	rec := doRequest(router, "/any", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthBadFormat(t *testing.T) {
	router, _ := testRouter(t)
	rec := doRequest(router, "/any", "tokenwithoutscheme")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := testRouter(t)
	rec := doRequest(router, "/any", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := testRouter(t)
	rec := doRequest(router, "/any", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := testRouter(t)

	rec := doRequest(router, "/staff", "Bearer "+tokenFor(t, jwtService, models.RoleFaculty))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, "/staff", "Bearer "+tokenFor(t, jwtService, models.RoleAdmin))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, "/staff", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
