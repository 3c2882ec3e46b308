package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type BookingDraftRepository struct {
	store  ports.KeyValueStore
	logger *logging.Logger
}

var _ ports.BookingDraftRepository = (*BookingDraftRepository)(nil)

func NewBookingDraftRepository(store ports.KeyValueStore, logger *logging.Logger) *BookingDraftRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingDraftRepository{store: store, logger: logger}
}

// Load returns the user's draft, or a fresh one when none is stored.
func (r *BookingDraftRepository) Load(ctx context.Context, userID string) (*domain.BookingDraft, error) {
	key := BookingKey(userID)
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewBookingDraft(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load booking draft: %w", err)
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(raw, &draft); err != nil || draft.Step == "" {
		r.logger.Warn("clearing malformed booking draft", "user_id", userID)
		if delErr := r.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("clear booking draft: %w", delErr)
		}
		return domain.NewBookingDraft(), nil
	}
	return &draft, nil
}

func (r *BookingDraftRepository) Save(ctx context.Context, userID string, draft domain.BookingDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, BookingKey(userID), raw); err != nil {
		return fmt.Errorf("save booking draft: %w", err)
	}
	return nil
}

func (r *BookingDraftRepository) Clear(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, BookingKey(userID))
}
