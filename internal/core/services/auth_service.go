package services

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/observability/metrics"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	minPasswordLength = 6
	seedPassword      = "password"
)

type sessionClaims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// SeedAccounts returns the two built-in accounts, hashed with the given bcrypt cost.
func SeedAccounts(cost int) ([]domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), cost)
	if err != nil {
		return nil, err
	}
	return []domain.Account{
		{
			Identity: domain.Identity{
				ID: "1", Name: "John Doe", Email: "user@example.com",
				Role: domain.RoleUser, Avatar: domain.AvatarURL("John"),
			},
			PasswordHash: string(hash),
		},
		{
			Identity: domain.Identity{
				ID: "2", Name: "Admin User", Email: "admin@example.com",
				Role: domain.RoleAdmin, Avatar: domain.AvatarURL("Admin"),
			},
			PasswordHash: string(hash),
		},
	}, nil
}

type AuthService struct {
	accounts   ports.AccountRepository
	sessions   ports.SessionRepository
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	hashCost   int
	metrics    *metrics.Metrics
	logger     *logging.Logger
	now        func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	accounts ports.AccountRepository,
	sessions ports.SessionRepository,
	privateKey *rsa.PrivateKey,
	publicKey *rsa.PublicKey,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *logging.Logger,
) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		privateKey: privateKey,
		publicKey:  publicKey,
		ttl:        ttl,
		hashCost:   bcrypt.DefaultCost,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// WithHashCost sets the bcrypt cost used for new accounts.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.hashCost = cost
	return s
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	account, err := s.accounts.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.ObserveLogin(false)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.metrics.ObserveLogin(false)
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.startSession(ctx, account.Identity)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveLogin(true)
	s.logger.Info("user signed in", "user_id", account.ID, "role", account.Role)
	return result, nil
}

func (s *AuthService) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := validateRegistration(req); err != nil {
		s.metrics.ObserveRegistration(false)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	account := domain.Account{
		Identity: domain.Identity{
			ID:     uuid.NewString(),
			Name:   req.Name,
			Email:  strings.ToLower(req.Email),
			Role:   domain.RoleUser,
			Avatar: domain.AvatarURL(req.Name),
		},
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		s.metrics.ObserveRegistration(false)
		return nil, err
	}

	result, err := s.startSession(ctx, account.Identity)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveRegistration(true)
	s.logger.Info("user registered", "user_id", account.ID)
	return result, nil
}

func validateRegistration(req ports.RegisterRequest) error {
	if err := required(
		[2]string{"name", req.Name},
		[2]string{"email", req.Email},
		[2]string{"password", req.Password},
	); err != nil {
		return err
	}
	if !validEmail(req.Email) {
		return domain.NewValidationError("email", "Please enter a valid email address")
	}
	if req.Password != req.ConfirmPassword {
		return domain.NewValidationError("confirm_password", "Passwords do not match")
	}
	if len(req.Password) < minPasswordLength {
		return domain.NewValidationError("password", "Password must be at least 6 characters long")
	}
	return nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.NewValidationError("email", "Please enter your email address")
	}
	account, err := s.accounts.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrEmailNotFound
	}
	if err != nil {
		return err
	}
	s.logger.Info("password reset requested", "user_id", account.ID)
	return nil
}

// Authenticate verifies a session token and loads the stored session it names.
// It returns domain.ErrNotFound when the token is invalid or the session is gone.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domain.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, domain.ErrNotFound
	}

	session, err := s.CurrentSession(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.User.ID != claims.Subject {
		s.logger.Warn("session subject mismatch", "session_id", claims.SessionID)
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// CurrentSession loads a stored session. A missing or malformed record yields domain.ErrNotFound.
func (s *AuthService) CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrNotFound
	}
	return s.sessions.FindByID(ctx, sessionID)
}

func (s *AuthService) startSession(ctx context.Context, user domain.Identity) (*ports.AuthResult, error) {
	now := s.now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		User:      user,
		CreatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	claims := sessionClaims{
		SessionID: session.ID,
		Role:      string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return &ports.AuthResult{Token: token, Session: session}, nil
}
