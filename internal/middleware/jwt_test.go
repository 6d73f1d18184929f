package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyspot/seat-booking/internal/utils"
)

func protectedEcho(secret string, roles ...string) *echo.Echo {
	e := echo.New()
	g := e.Group("/v1/admin")
	g.Use(JWTAuth(secret))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	return e
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	e := protectedEcho("sekrit", "ADMIN")
	tok, err := utils.NewAccessToken("sekrit", 1, "ADMIN", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthRejectsMissingAndForgedTokens(t *testing.T) {
	e := protectedEcho("sekrit", "ADMIN")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	forged, err := utils.NewAccessToken("other-secret", 1, "ADMIN", 5)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+forged.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	e := protectedEcho("sekrit", "ADMIN")
	tok, err := utils.NewAccessToken("sekrit", 1, "VIEWER", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
