package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"someswar-temple/internal/auth"
)

func testManager() *auth.Manager {
	return &auth.Manager{
		Secret:    []byte("test-secret"),
		AccessTTL: time.Hour,
		Issuer:    "someswar-temple",
	}
}

func protectedHandler(t *testing.T, manager *auth.Manager) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return AdminAuth(manager)(next)
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	handler := protectedHandler(t, testManager())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsNonAdminRole(t *testing.T) {
	manager := testManager()
	token, err := manager.NewAccessToken("viewer", "viewer")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedHandler(t, manager).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin role, got %d", rec.Code)
	}
}

func TestAdminAuthAcceptsAdminToken(t *testing.T) {
	manager := testManager()
	token, err := manager.NewAccessToken("admin", "admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedHandler(t, manager).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsForeignSecret(t *testing.T) {
	other := &auth.Manager{Secret: []byte("other-secret"), AccessTTL: time.Hour}
	token, err := other.NewAccessToken("admin", "admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedHandler(t, testManager()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a token under another secret, got %d", rec.Code)
	}
}
