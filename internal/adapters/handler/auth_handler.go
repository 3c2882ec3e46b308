package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/middleware"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/services"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type AuthHandler struct {
	authService  ports.AuthService
	ttl          time.Duration
	secureCookie bool
	logger       *logging.Logger
}

func NewAuthHandler(auth ports.AuthService, ttl time.Duration, secureCookie bool, logger *logging.Logger) *AuthHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthHandler{authService: auth, ttl: ttl, secureCookie: secureCookie, logger: logger}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	From     string `json:"from"`
}

type AuthResponse struct {
	Message  string          `json:"message"`
	Token    string          `json:"token"`
	User     domain.Identity `json:"user"`
	Redirect string          `json:"redirect"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type authPageView struct {
	Title        string        `json:"title"`
	From         string        `json:"from,omitempty"`
	DemoAccounts []demoAccount `json:"demoAccounts,omitempty"`
}

type demoAccount struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

var demoAccounts = []demoAccount{
	{Email: "user@example.com", Password: "password", Role: string(domain.RoleUser)},
	{Email: "admin@example.com", Password: "password", Role: string(domain.RoleAdmin)},
}

// LoginPage renders the sign-in view. Signed-in users go straight to the dashboard.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, services.DefaultPath, http.StatusSeeOther)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, authPageView{
		Title:        "Sign in to MindEase",
		From:         safeRedirect(r.URL.Query().Get("from")),
		DemoAccounts: demoAccounts,
	})
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, services.DefaultPath, http.StatusSeeOther)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, authPageView{Title: "Create your MindEase account"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, h.logger, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeJSON(w, h.logger, http.StatusOK, AuthResponse{
		Message:  "Login successful",
		Token:    result.Token,
		User:     result.Session.User,
		Redirect: safeRedirect(req.From),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req ports.RegisterRequest
	if !decode(w, r, h.logger, &req) {
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeJSON(w, h.logger, http.StatusCreated, AuthResponse{
		Message:  "Registration successful",
		Token:    result.Token,
		User:     result.Session.User,
		Redirect: services.DefaultPath,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := middleware.SessionFromContext(r.Context()); session != nil {
		if err := h.authService.Logout(r.Context(), session.ID); err != nil {
			writeError(w, r, h.logger, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !decode(w, r, h.logger, &req) {
		return
	}
	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, messageResponse{
		Message: "Password reset instructions have been sent to your email",
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirect keeps only same-site paths; anything else lands on the dashboard.
func safeRedirect(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, services.SignInPath) {
		return services.DefaultPath
	}
	return from
}
