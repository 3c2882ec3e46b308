package ports

import (
	"context"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
)

type AuthResult struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, email string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

type BookingConfirmation struct {
	Step         domain.BookingStep   `json:"step"`
	Appointment  domain.Appointment   `json:"appointment"`
	Appointments []domain.Appointment `json:"appointments"`
	Draft        domain.BookingDraft  `json:"draft"`
}

type BookingService interface {
	Therapists(ctx context.Context) ([]domain.Therapist, error)
	Therapist(ctx context.Context, id int) (*domain.Therapist, error)
	AvailableSlots(ctx context.Context, therapistID int, date string) ([]string, error)
	Draft(ctx context.Context, userID string) (*domain.BookingDraft, error)
	SelectTherapist(ctx context.Context, userID string, therapistID int) (*domain.BookingDraft, error)
	SelectDate(ctx context.Context, userID, date string) (*domain.BookingDraft, error)
	SelectSlot(ctx context.Context, userID, slot string) (*domain.BookingDraft, error)
	SetNotes(ctx context.Context, userID, notes string) (*domain.BookingDraft, error)
	Confirm(ctx context.Context, user domain.Identity) (*BookingConfirmation, error)
	Appointments(ctx context.Context, userID string) ([]domain.Appointment, error)
	Upcoming(ctx context.Context, userID string) ([]domain.Appointment, error)
	AllAppointments(ctx context.Context) ([]domain.Appointment, error)
}

type MoodInsights struct {
	Entries []domain.MoodEntry `json:"entries"`
	Trend   []domain.MoodEntry `json:"trend"`
	History []domain.MoodEntry `json:"history"`
	Summary domain.MoodSummary `json:"summary"`
}

type MoodService interface {
	Record(ctx context.Context, userID string, input domain.MoodInput) ([]domain.MoodEntry, error)
	Entries(ctx context.Context, userID string) ([]domain.MoodEntry, error)
	Insights(ctx context.Context, userID string, window int) (*MoodInsights, error)
}

type BlogService interface {
	Posts(ctx context.Context, limit int, query, category string) ([]domain.BlogPost, error)
	Post(ctx context.Context, id int) (*domain.BlogPost, error)
	Comments(ctx context.Context, postID int) ([]domain.Comment, error)
	AddComment(ctx context.Context, postID int, name, email, body string) (*domain.Comment, error)
}

type CommunityService interface {
	Feed(ctx context.Context, limit int) ([]domain.CommunityPost, error)
	CreatePost(ctx context.Context, author domain.Identity, content string) (*domain.CommunityPost, error)
	Like(ctx context.Context, postID string) (*domain.CommunityPost, error)
	AddComment(ctx context.Context, postID string, author domain.Identity, content string) (*domain.Comment, error)
	Report(ctx context.Context, postID string) error
}

type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

type AdminService interface {
	Analytics(ctx context.Context) (*domain.SystemAnalytics, error)
	Users(ctx context.Context, query string) ([]domain.ManagedUser, error)
	SetUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.ManagedUser, error)
	DeleteUser(ctx context.Context, id string) error
}

type Dashboard struct {
	User                 domain.Identity      `json:"user"`
	MoodTrend            []domain.MoodEntry   `json:"moodTrend"`
	UpcomingAppointments []domain.Appointment `json:"upcomingAppointments"`
	BlogPosts            []domain.BlogPost    `json:"blogPosts"`
	BlogError            string               `json:"blogError,omitempty"`
}

type DashboardService interface {
	Overview(ctx context.Context, user domain.Identity) (*Dashboard, error)
}
