package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-team/clinic-booking-api/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(tokens *auth.TokenService, gates ...gin.HandlerFunc) (*gin.Engine, *bool) {
	reached := false
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(tokens)}, gates...)
	handlers = append(handlers, func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/protected/:id", handlers...)
	return r, &reached
}

func doGet(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r, reached := protectedRouter(tokens)

	w := doGet(t, r, "/protected/abc", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r, reached := protectedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected/abc", nil)
	req.Header.Set("Authorization", "Token abcdef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAuthBadToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r, reached := protectedRouter(tokens)

	w := doGet(t, r, "/protected/abc", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAuthValidTokenSetsContext(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	token, err := tokens.Issue("user-1", "u@example.com", auth.RoleClient)
	require.NoError(t, err)

	var gotID, gotEmail, gotRole string
	r := gin.New()
	r.GET("/me", RequireAuth(tokens), func(c *gin.Context) {
		gotID = c.GetString(ContextUserID)
		gotEmail = c.GetString(ContextUserEmail)
		gotRole = c.GetString(ContextUserRole)
		c.Status(http.StatusOK)
	})

	w := doGet(t, r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotID)
	assert.Equal(t, "u@example.com", gotEmail)
	assert.Equal(t, auth.RoleClient, gotRole)
}

func TestAllowRoles(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r, reached := protectedRouter(tokens, AllowRoles(auth.RoleAdmin, auth.RoleClinicAdmin))

	doctorToken, err := tokens.Issue("d1", "d@x.y", auth.RoleDoctor)
	require.NoError(t, err)
	w := doGet(t, r, "/protected/abc", doctorToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)

	adminToken, err := tokens.Issue("a1", "a@x.y", auth.RoleAdmin)
	require.NoError(t, err)
	w = doGet(t, r, "/protected/abc", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestAllowRolesOrSelf(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r, reached := protectedRouter(tokens,
		AllowRolesOrSelf(auth.RoleDoctor, auth.RoleAdmin, auth.RoleClinicAdmin))

	// A doctor may read their own record only.
	selfToken, err := tokens.Issue("doc-1", "d@x.y", auth.RoleDoctor)
	require.NoError(t, err)

	w := doGet(t, r, "/protected/doc-2", selfToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)

	w = doGet(t, r, "/protected/doc-1", selfToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)

	// Privileged roles pass regardless of the id.
	*reached = false
	adminToken, err := tokens.Issue("a1", "a@x.y", auth.RoleClinicAdmin)
	require.NoError(t, err)
	w = doGet(t, r, "/protected/doc-2", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestRequireSelf(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r, reached := protectedRouter(tokens, RequireSelf())

	token, err := tokens.Issue("c1", "c@x.y", auth.RoleClient)
	require.NoError(t, err)

	w := doGet(t, r, "/protected/c2", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)

	w = doGet(t, r, "/protected/c1", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestRequireSelfRole(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r, reached := protectedRouter(tokens, RequireSelfRole(auth.RoleAssistant))

	// Matching id but wrong role.
	doctorToken, err := tokens.Issue("s1", "d@x.y", auth.RoleDoctor)
	require.NoError(t, err)
	w := doGet(t, r, "/protected/s1", doctorToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)

	assistantToken, err := tokens.Issue("s1", "s@x.y", auth.RoleAssistant)
	require.NoError(t, err)
	w = doGet(t, r, "/protected/s1", assistantToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}
