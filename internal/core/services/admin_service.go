package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const managedUserLimit = 30

// AdminService backs the admin dashboard. User management only changes the
// in-memory directory; nothing is written back to the remote service.
type AdminService struct {
	remote ports.PlaceholderClient
	logger *logging.Logger
	rng    func() float64
	intn   func(n int) int
	now    func() time.Time

	mu     sync.Mutex
	loaded bool
	users  []domain.ManagedUser
}

var _ ports.AdminService = (*AdminService)(nil)

func NewAdminService(remote ports.PlaceholderClient, logger *logging.Logger) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminService{
		remote: remote,
		logger: logger,
		rng:    rand.Float64,
		intn:   rand.IntN,
		now:    time.Now,
	}
}

func (s *AdminService) Analytics(ctx context.Context) (*domain.SystemAnalytics, error) {
	a := &domain.SystemAnalytics{
		UserCount:      523,
		ActiveUsers:    278,
		BlogPosts:      42,
		CommunityPosts: 187,
		UserGrowth: []domain.MonthlyUsers{
			{Month: "Jan", Users: 320},
			{Month: "Feb", Users: 352},
			{Month: "Mar", Users: 390},
			{Month: "Apr", Users: 420},
			{Month: "May", Users: 523},
		},
		MoodDistribution: []domain.DailyMood{
			{Name: "Mon", Excellent: 12, Good: 23, Neutral: 8, Poor: 5, Bad: 2},
			{Name: "Tue", Excellent: 14, Good: 21, Neutral: 10, Poor: 4, Bad: 3},
			{Name: "Wed", Excellent: 16, Good: 19, Neutral: 12, Poor: 3, Bad: 2},
			{Name: "Thu", Excellent: 13, Good: 24, Neutral: 9, Poor: 6, Bad: 2},
			{Name: "Fri", Excellent: 18, Good: 26, Neutral: 6, Poor: 4, Bad: 1},
			{Name: "Sat", Excellent: 20, Good: 28, Neutral: 5, Poor: 3, Bad: 1},
			{Name: "Sun", Excellent: 15, Good: 25, Neutral: 9, Poor: 4, Bad: 2},
		},
	}
	a.Appointment.Total = 1245
	a.Appointment.Completed = 876
	a.Appointment.Upcoming = 289
	a.Appointment.Cancelled = 80
	a.Mood.Excellent = 30
	a.Mood.Good = 40
	a.Mood.Neutral = 15
	a.Mood.Poor = 10
	a.Mood.Bad = 5
	return a, nil
}

// Users lists the directory, filtered by a case-insensitive name or email substring.
func (s *AdminService) Users(ctx context.Context, query string) ([]domain.ManagedUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.ManagedUser, 0, len(s.users))
	for _, u := range s.users {
		if query == "" ||
			strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(u.Email), query) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *AdminService) SetUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.ManagedUser, error) {
	if status != domain.UserActive && status != domain.UserInactive {
		return nil, domain.NewValidationError("status", "Unknown user status")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
			u := s.users[i]
			s.logger.Info("user status changed", "user_id", id, "status", status)
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.logger.Info("user removed", "user_id", id)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// ensureLoaded fills the directory from the remote users on first use,
// decorating each with a sampled role, status and activity dates.
func (s *AdminService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	remote, err := s.remote.ListUsers(ctx, managedUserLimit)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	now := s.now().UTC()
	users := make([]domain.ManagedUser, 0, len(remote))
	for _, r := range remote {
		role := domain.RoleUser
		if s.rng() > 0.8 {
			role = domain.RoleAdmin
		}
		status := domain.UserActive
		if s.rng() <= 0.2 {
			status = domain.UserInactive
		}
		users = append(users, domain.ManagedUser{
			ID:             strconv.Itoa(r.ID),
			Name:           r.Name,
			Email:          r.Email,
			Avatar:         domain.AvatarURL(r.Name),
			Role:           role,
			Status:         status,
			LastActive:     now.Add(-time.Duration(s.intn(30*24)) * time.Hour),
			RegisteredDate: now.Add(-time.Duration(s.intn(365*24)) * time.Hour),
		})
	}
	s.users = users
	s.loaded = true
	return nil
}
