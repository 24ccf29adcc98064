package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/pkg/auth"
)

// staticResolver assigns fixed roles per identity.
type staticResolver struct {
	roles map[string]models.Role
}

func (r *staticResolver) Resolve(ctx context.Context, telegramID string) (models.Role, error) {
	if telegramID == "" {
		return models.RoleAnonymous, nil
	}
	if role, ok := r.roles[telegramID]; ok {
		return role, nil
	}
	return models.RoleStudent, nil
}

func setupGateRouter(t *testing.T, minRole models.Role, handlerCalls *int) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "praktika.test",
	})

	resolver := &staticResolver{roles: map[string]models.Role{
		"admin":   models.RoleAdministrator,
		"curator": models.RoleCurator,
		"student": models.RoleStudent,
	}}

	m := NewAuthMiddleware(jwtService, resolver)

	router := gin.New()
	router.Use(m.Authenticate())
	router.GET("/guarded", m.RequireRole(minRole), func(c *gin.Context) {
		*handlerCalls++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, jwtService
}

func doGet(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRole_AnonymousRejectedBeforeHandler(t *testing.T) {
	calls := 0
	router, _ := setupGateRouter(t, models.RoleAdministrator, &calls)

	w := doGet(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, calls)
}

func TestRequireRole_InsufficientRoleForbidden(t *testing.T) {
	calls := 0
	router, jwtService := setupGateRouter(t, models.RoleAdministrator, &calls)

	token, _, err := jwtService.GenerateToken("student", "")
	require.NoError(t, err)

	w := doGet(router, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, calls)
}

func TestRequireRole_SufficientRolePasses(t *testing.T) {
	calls := 0
	router, jwtService := setupGateRouter(t, models.RoleCurator, &calls)

	// The role ordering is a lattice: administrator satisfies a curator
	// requirement.
	for _, id := range []string{"curator", "admin"} {
		token, _, err := jwtService.GenerateToken(id, "")
		require.NoError(t, err)

		w := doGet(router, token)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, calls)
}

func TestAuthenticate_InvalidTokenRejected(t *testing.T) {
	calls := 0
	router, _ := setupGateRouter(t, models.RoleStudent, &calls)

	w := doGet(router, "not-a-valid-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, calls)
}

func TestAuthenticate_ExpiredTokenRejected(t *testing.T) {
	calls := 0
	router, _ := setupGateRouter(t, models.RoleStudent, &calls)

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "praktika.test",
	})
	token, _, err := expired.GenerateToken("student", "")
	require.NoError(t, err)

	w := doGet(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, calls)
}
