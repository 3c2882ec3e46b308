package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/observability/metrics"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const (
	TrackerTrendWindow   = 14
	DashboardTrendWindow = 7
)

type MoodService struct {
	repo    ports.MoodRepository
	metrics *metrics.Metrics
	logger  *logging.Logger
	now     func() time.Time
}

var _ ports.MoodService = (*MoodService)(nil)

func NewMoodService(repo ports.MoodRepository, m *metrics.Metrics, logger *logging.Logger) *MoodService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MoodService{repo: repo, metrics: m, logger: logger, now: time.Now}
}

func (s *MoodService) WithClock(now func() time.Time) *MoodService {
	s.now = now
	return s
}

// Record appends a journal entry and returns the user's full, re-read journal.
func (s *MoodService) Record(ctx context.Context, userID string, input domain.MoodInput) ([]domain.MoodEntry, error) {
	now := s.now()
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = now.Format(domain.DateLayout)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, domain.NewValidationError("date", "Please select a valid date")
	}
	for _, r := range []struct {
		field string
		value int
	}{
		{"mood", input.Mood},
		{"anxiety", input.Anxiety},
		{"sleep", input.Sleep},
	} {
		if r.value < domain.MinRating || r.value > domain.MaxRating {
			return nil, domain.NewValidationError(r.field,
				fmt.Sprintf("%s must be between %d and %d", r.field, domain.MinRating, domain.MaxRating))
		}
	}

	entry := domain.MoodEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Mood:      input.Mood,
		Anxiety:   input.Anxiety,
		Sleep:     input.Sleep,
		Notes:     input.Notes,
		Timestamp: now.UTC(),
	}
	if err := s.repo.Append(ctx, userID, entry); err != nil {
		return nil, fmt.Errorf("record mood: %w", err)
	}
	s.metrics.ObserveMoodEntry()
	return s.repo.ListByUser(ctx, userID)
}

func (s *MoodService) Entries(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *MoodService) Insights(ctx context.Context, userID string, window int) (*ports.MoodInsights, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.MoodInsights{
		Entries: entries,
		Trend:   Trend(entries, window),
		History: History(entries),
		Summary: Summary(entries),
	}, nil
}

// Trend returns the last n entries in ascending date order.
func Trend(entries []domain.MoodEntry, n int) []domain.MoodEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.MoodEntry) int {
		return strings.Compare(a.Date, b.Date)
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	if sorted == nil {
		sorted = []domain.MoodEntry{}
	}
	return sorted
}

// History returns every entry, newest date first.
func History(entries []domain.MoodEntry) []domain.MoodEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.MoodEntry) int {
		return strings.Compare(b.Date, a.Date)
	})
	if sorted == nil {
		sorted = []domain.MoodEntry{}
	}
	return sorted
}

func Summary(entries []domain.MoodEntry) domain.MoodSummary {
	summary := domain.MoodSummary{Entries: len(entries)}
	if len(entries) == 0 {
		return summary
	}
	var mood, anxiety, sleep int
	for _, e := range entries {
		mood += e.Mood
		anxiety += e.Anxiety
		sleep += e.Sleep
	}
	n := float64(len(entries))
	summary.AverageMood = round2(float64(mood) / n)
	summary.AverageAnxiety = round2(float64(anxiety) / n)
	summary.AverageSleep = round2(float64(sleep) / n)
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
