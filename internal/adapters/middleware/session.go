package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/services"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// SessionCookieName carries the session token for browser clients.
const SessionCookieName = "mindease_session"

type contextKey string

const sessionKey contextKey = "session"

// SessionFromContext returns the session attached by SessionMiddleware.Load, or nil.
func SessionFromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionKey).(*domain.Session)
	return s
}

// WithSession attaches a session to ctx.
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

type SessionMiddleware struct {
	auth   ports.AuthService
	logger *logging.Logger
}

func NewSessionMiddleware(auth ports.AuthService, logger *logging.Logger) *SessionMiddleware {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionMiddleware{auth: auth, logger: logger}
}

// Load resolves the request's session token, if any, and stores the session
// in the request context. It never rejects a request.
func (m *SessionMiddleware) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		session, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				m.logger.Error("session lookup failed", "path", r.URL.Path, "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireAuth redirects anonymous requests to the sign-in page.
func (m *SessionMiddleware) RequireAuth(next http.Handler) http.Handler {
	return m.guard(false, next)
}

// RequireAdmin additionally sends non-admin users to the dashboard.
func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.guard(true, next)
}

func (m *SessionMiddleware) guard(requireAdmin bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch services.Guard(SessionFromContext(r.Context()), true, requireAdmin) {
		case services.RedirectSignIn:
			target := services.SignInPath + "?from=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusSeeOther)
		case services.RedirectDefault:
			m.logger.Warn("non-admin blocked from admin route", "path", r.URL.Path)
			http.Redirect(w, r, services.DefaultPath, http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// TokenFromRequest reads a bearer token, falling back to the session cookie
// when the Authorization header is absent or carries another scheme.
func TokenFromRequest(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if token := strings.TrimSpace(parts[1]); token != "" {
			return token
		}
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
