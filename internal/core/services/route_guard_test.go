package services

import (
	"testing"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/test/mocks"
)

func TestGuard(t *testing.T) {
	user := &domain.Session{ID: "s1", User: mocks.UserIdentity()}
	admin := &domain.Session{ID: "s2", User: mocks.AdminIdentity()}

	tests := []struct {
		name         string
		session      *domain.Session
		requireAuth  bool
		requireAdmin bool
		want         Decision
	}{
		{"public page, anonymous", nil, false, false, Render},
		{"protected page, anonymous", nil, true, false, RedirectSignIn},
		{"admin page, anonymous", nil, true, true, RedirectSignIn},
		{"admin-only flag, anonymous", nil, false, true, RedirectSignIn},
		{"protected page, user", user, true, false, Render},
		{"admin page, user", user, true, true, RedirectDefault},
		{"admin page, admin", admin, true, true, Render},
		{"protected page, admin", admin, true, false, Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guard(tt.session, tt.requireAuth, tt.requireAdmin); got != tt.want {
				t.Errorf("Guard() = %s, want %s", got, tt.want)
			}
		})
	}
}
