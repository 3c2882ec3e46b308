package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const DefaultSessionTTL = 24 * time.Hour

// SessionRepository stores session records that expire after ttl.
type SessionRepository struct {
	store  ports.KeyValueStore
	ttl    time.Duration
	logger *logging.Logger
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(store ports.KeyValueStore, logger *logging.Logger) *SessionRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionRepository{store: store, ttl: DefaultSessionTTL, logger: logger}
}

// WithTTL sets how long saved sessions live. Non-positive values are ignored.
func (r *SessionRepository) WithTTL(ttl time.Duration) *SessionRepository {
	if ttl > 0 {
		r.ttl = ttl
	}
	return r
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := r.store.SetWithTTL(ctx, SessionKey(session.ID), raw, r.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// FindByID returns domain.ErrNotFound for absent or unreadable sessions.
// An unreadable record is removed.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	key := SessionKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil || session.User.ID == "" {
		r.logger.Warn("clearing malformed session", "session_id", id)
		if delErr := r.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("clear session: %w", delErr)
		}
		return nil, domain.ErrNotFound
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, SessionKey(id))
}
