package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSignedIn(t *testing.T) {
	h := RequireSignedIn(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected 401, got %d", w.Code)
	}

	r := WithTestUser(httptest.NewRequest(http.MethodGet, "/", nil),
		&SessionUser{ID: "1", UserName: "alice"})
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("signed in: expected 200, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	h := RequireRole("admin", "editor")(okHandler())

	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{"no roles", []string{}, http.StatusForbidden},
		{"wrong role", []string{"viewer"}, http.StatusForbidden},
		{"exact match", []string{"admin"}, http.StatusOK},
		{"case-insensitive match", []string{"ADMIN"}, http.StatusOK},
		{"one of several", []string{"viewer", "editor"}, http.StatusOK},
	}
	for _, tt := range tests {
		r := WithTestUser(httptest.NewRequest(http.MethodGet, "/", nil),
			&SessionUser{ID: "1", UserName: "u", Roles: tt.roles})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		if w.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, w.Code)
		}
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected 401, got %d", w.Code)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	if err := InitSessionStore("0123456789abcdef0123456789abcdef",
		"roundtrip-session", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}

	// Sign in and capture the cookie.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	err := SignIn(w, r, &SessionUser{
		ID: "abc", UserName: "alice", Email: "a@example.com",
		Roles: []string{"admin", "editor"},
	})
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("SignIn should set a cookie")
	}

	// Replay the cookie through the middleware.
	var got *SessionUser
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	})
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r2.AddCookie(c)
	}
	LoadSessionUser(inner).ServeHTTP(httptest.NewRecorder(), r2)

	if got == nil {
		t.Fatal("expected the session user to be loaded")
	}
	if got.UserName != "alice" || got.ID != "abc" {
		t.Errorf("unexpected user: %+v", got)
	}
	if len(got.Roles) != 2 || got.Roles[0] != "admin" {
		t.Errorf("roles did not survive the round trip: %v", got.Roles)
	}
}

func TestInitSessionStore_EmptyKey(t *testing.T) {
	if err := InitSessionStore("", "s", "", false, zap.NewNop()); err == nil {
		t.Error("expected an error for an empty session key")
	}
}
