package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yookve/api/pkg/jwt"
)

// ============================================================================
// Test Helpers
// ============================================================================

// mockAuthService implements AuthService for testing
type mockAuthService struct {
	claims *jwt.Claims
	err    error
}

func (m *mockAuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

func validAuthService() *mockAuthService {
	return &mockAuthService{
		claims: &jwt.Claims{
			UserID:   "user-123",
			Username: "alice",
		},
	}
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Auth Tests
// ============================================================================

func TestAuth_ValidBearerToken_CallsHandler(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	authMiddleware := Auth(validAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()

	authMiddleware(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Fatal("expected handler to be called")
	}
	if got := GetUserID(handler.ctx); got != "user-123" {
		t.Errorf("expected user ID 'user-123' in context, got %q", got)
	}
}

func TestAuth_ValidSessionCookie_CallsHandler(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	authMiddleware := Auth(validAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid-token"})
	rr := httptest.NewRecorder()

	authMiddleware(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Fatal("expected handler to be called with session cookie")
	}
	if got := GetUserID(handler.ctx); got != "user-123" {
		t.Errorf("expected user ID 'user-123' in context, got %q", got)
	}
}

func TestAuth_MissingCredentials_Returns401(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	authMiddleware := Auth(validAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rr := httptest.NewRecorder()

	authMiddleware(handler).ServeHTTP(rr, req)

	if handler.called {
		t.Error("handler should not be called without credentials")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Non autenticato") {
		t.Errorf("expected 'Non autenticato' in body, got %q", rr.Body.String())
	}
}

func TestAuth_MalformedAuthorizationHeader_Returns401(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"valid-token", "Basic dXNlcjpwYXNz", "Bearer"} {
		handler := &captureHandler{}
		authMiddleware := Auth(validAuthService())

		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()

		authMiddleware(handler).ServeHTTP(rr, req)

		if handler.called {
			t.Errorf("handler should not be called for header %q", header)
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", header, http.StatusUnauthorized, rr.Code)
		}
	}
}

func TestAuth_InvalidToken_Returns401(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	authMiddleware := Auth(&mockAuthService{err: jwt.ErrInvalidSignature})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer tampered-token")
	rr := httptest.NewRecorder()

	authMiddleware(handler).ServeHTTP(rr, req)

	if handler.called {
		t.Error("handler should not be called with invalid token")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAuth_ExpiredToken_Returns401(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	authMiddleware := Auth(&mockAuthService{err: jwt.ErrTokenExpired})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rr := httptest.NewRecorder()

	authMiddleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Non autenticato") {
		t.Errorf("expected 'Non autenticato' in body, got %q", rr.Body.String())
	}
}

func TestGetUserID_Missing_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	if got := GetUserID(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
