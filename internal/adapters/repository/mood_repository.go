package repository

import (
	"context"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// MoodRepository keeps each user's journal. Entries are never rewritten.
type MoodRepository struct {
	list *jsonList[domain.MoodEntry]
}

var _ ports.MoodRepository = (*MoodRepository)(nil)

func NewMoodRepository(store ports.KeyValueStore, logger *logging.Logger) *MoodRepository {
	return &MoodRepository{list: newJSONList[domain.MoodEntry](store, logger)}
}

func (r *MoodRepository) Append(ctx context.Context, userID string, entry domain.MoodEntry) error {
	return r.list.append(ctx, MoodKey(userID), entry)
}

func (r *MoodRepository) ListByUser(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	return r.list.read(ctx, MoodKey(userID))
}
