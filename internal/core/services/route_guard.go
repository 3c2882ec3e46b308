package services

import "github.com/AchilleasB/mindease/wellness-service/internal/core/domain"

type Decision int

const (
	Render Decision = iota
	RedirectSignIn
	RedirectDefault
)

const (
	SignInPath  = "/login"
	DefaultPath = "/dashboard"
)

func (d Decision) String() string {
	switch d {
	case RedirectSignIn:
		return "redirect_sign_in"
	case RedirectDefault:
		return "redirect_default"
	default:
		return "render"
	}
}

// Guard decides whether a protected page may render for session.
// requireAdmin implies requireAuth.
func Guard(session *domain.Session, requireAuth, requireAdmin bool) Decision {
	if !requireAuth && !requireAdmin {
		return Render
	}
	if session == nil {
		return RedirectSignIn
	}
	if requireAdmin && !session.User.IsAdmin() {
		return RedirectDefault
	}
	return Render
}
