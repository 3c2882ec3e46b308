package ports

import (
	"context"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
)

// KeyValueStore is the persisted storage every per-user record lives in.
// Get returns domain.ErrNotFound when the key is absent or expired.
// SetWithTTL with a non-positive ttl behaves like Set.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
}

type SessionRepository interface {
	Save(ctx context.Context, session domain.Session) error
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account domain.Account) error
}

type AppointmentRepository interface {
	Append(ctx context.Context, userID string, appointment domain.Appointment) error
	ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
}

type MoodRepository interface {
	Append(ctx context.Context, userID string, entry domain.MoodEntry) error
	ListByUser(ctx context.Context, userID string) ([]domain.MoodEntry, error)
}

type BookingDraftRepository interface {
	Load(ctx context.Context, userID string) (*domain.BookingDraft, error)
	Save(ctx context.Context, userID string, draft domain.BookingDraft) error
	Clear(ctx context.Context, userID string) error
}

type TherapistDirectory interface {
	List(ctx context.Context) ([]domain.Therapist, error)
	FindByID(ctx context.Context, id int) (*domain.Therapist, error)
}
