package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type stubAuth struct {
	ports.AuthService
	sessions map[string]*domain.Session
	tokens   []string
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*domain.Session, error) {
	s.tokens = append(s.tokens, token)
	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, domain.ErrNotFound
}

func newStubAuth() *stubAuth {
	return &stubAuth{sessions: map[string]*domain.Session{
		"user-token":  {ID: "s1", User: domain.Identity{ID: "1", Role: domain.RoleUser}},
		"admin-token": {ID: "s2", User: domain.Identity{ID: "2", Role: domain.RoleAdmin}},
	}}
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "cookie", cookie: "xyz", want: "xyz"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "xyz", want: "abc"},
		{name: "non-bearer header", header: "Basic abc", want: ""},
		{name: "non-bearer header falls back to cookie", header: "Basic abc", cookie: "xyz", want: "xyz"},
		{name: "empty bearer falls back to cookie", header: "Bearer  ", cookie: "xyz", want: "xyz"},
		{name: "nothing", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			if got := TokenFromRequest(req); got != tt.want {
				t.Errorf("TokenFromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadAttachesSession(t *testing.T) {
	auth := newStubAuth()
	m := NewSessionMiddleware(auth, logging.Discard())

	var got *domain.Session
	h := m.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got == nil || got.ID != "s1" {
		t.Fatalf("expected session s1, got %+v", got)
	}

	got = nil
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer forged")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != nil {
		t.Errorf("expected no session for unknown token, got %+v", got)
	}
}

func TestLoadSkipsLookupWithoutToken(t *testing.T) {
	auth := newStubAuth()
	m := NewSessionMiddleware(auth, logging.Discard())
	h := m.Load(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/blog", nil))
	if len(auth.tokens) != 0 {
		t.Errorf("expected no Authenticate calls, got %d", len(auth.tokens))
	}
}

func TestGuardRedirects(t *testing.T) {
	m := NewSessionMiddleware(newStubAuth(), logging.Discard())
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		admin        bool
		token        string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{name: "anonymous on protected", token: "", path: "/mental-tracker", wantStatus: http.StatusSeeOther, wantLocation: "/login?from=%2Fmental-tracker"},
		{name: "anonymous keeps query", token: "", path: "/appointments?x=1", wantStatus: http.StatusSeeOther, wantLocation: "/login?from=%2Fappointments%3Fx%3D1"},
		{name: "user on protected", token: "user-token", path: "/dashboard", wantStatus: http.StatusOK},
		{name: "anonymous on admin", admin: true, token: "", path: "/admin", wantStatus: http.StatusSeeOther, wantLocation: "/login?from=%2Fadmin"},
		{name: "user on admin", admin: true, token: "user-token", path: "/admin", wantStatus: http.StatusSeeOther, wantLocation: "/dashboard"},
		{name: "admin on admin", admin: true, token: "admin-token", path: "/admin", wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h http.Handler
			if tt.admin {
				h = m.Load(m.RequireAdmin(ok))
			} else {
				h = m.Load(m.RequireAuth(ok))
			}
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.token})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if loc := rec.Header().Get("Location"); loc != tt.wantLocation {
				t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
			}
		})
	}
}
