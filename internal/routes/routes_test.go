package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/handlers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires the real route table against an empty Handler. Only routes
// that never reach a repository are exercised here; the handler-level behavior
// is covered package by package.
func testRouter() (*gin.Engine, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	r := gin.New()
	Register(r, &handlers.Handler{Tokens: tokens}, tokens)
	return r, tokens
}

func TestWelcomeRoute(t *testing.T) {
	r, _ := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"welcomeMessage":"Welcome To Our Clinic Booking System"}`, w.Body.String())
}

func TestUnknownRouteEnvelope(t *testing.T) {
	r, _ := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/definitely/not/here", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route is Not Found"}`, w.Body.String())
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r, _ := testRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/clients"},
		{http.MethodGet, "/assistants"},
		{http.MethodGet, "/doctors"},
		{http.MethodPost, "/reservations/api"},
		{http.MethodPost, "/reservations/clinic"},
		{http.MethodGet, "/reservations/64b0c8f2a1d2e3f4a5b6c7d8"},
		{http.MethodDelete, "/clients/64b0c8f2a1d2e3f4a5b6c7d8"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestRoleGatesRejectWrongRole(t *testing.T) {
	r, tokens := testRouter()

	clientToken, err := tokens.Issue("64b0c8f2a1d2e3f4a5b6c7d8", "c@x.y", auth.RoleClient)
	require.NoError(t, err)

	// Assistant listing is admin-only.
	req := httptest.NewRequest(http.MethodGet, "/assistants", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Doctor listing takes admins and clinic admins only.
	req = httptest.NewRequest(http.MethodGet, "/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidObjectIDRejectedBeforeAuth(t *testing.T) {
	r, _ := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clinic/not-an-id", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Not Valid Id"}`, w.Body.String())
}

func TestDashboardLoginRedirectsByRole(t *testing.T) {
	r, _ := testRouter()

	cases := []struct {
		role     string
		location string
	}{
		{auth.RoleClinicAdmin, "/clinic-admins/login"},
		{auth.RoleDoctor, "/doctors/login"},
		{auth.RoleAssistant, "/assistants/login"},
	}
	for _, tc := range cases {
		body := strings.NewReader(`{"role":"` + tc.role + `"}`)
		req := httptest.NewRequest(http.MethodGet, "/dashboard/login", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, tc.location, w.Header().Get("Location"))
	}
}

func TestDashboardLoginUnknownRole(t *testing.T) {
	r, _ := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/login", strings.NewReader(`{"role":"pilot"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Unknown role"}`, w.Body.String())
}
