package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/repository"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
	"github.com/AchilleasB/mindease/wellness-service/test/mocks"
)

func newMoodService(store *mocks.MockKeyValueStore) *MoodService {
	return NewMoodService(repository.NewMoodRepository(store, logging.Discard()), nil, logging.Discard()).WithClock(clock)
}

func TestMoodService_Record(t *testing.T) {
	ctx := context.Background()
	svc := newMoodService(mocks.NewMockKeyValueStore())

	entries, err := svc.Record(ctx, "1", domain.MoodInput{Mood: 4, Anxiety: 2, Sleep: 3, Notes: "calm day"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Date != "2026-10-17" || e.Mood != 4 || e.Notes != "calm day" || e.ID == "" || !e.Timestamp.Equal(fixedNow) {
		t.Errorf("unexpected entry %+v", e)
	}

	before, _ := svc.Entries(ctx, "1")
	after, err := svc.Record(ctx, "1", domain.MoodInput{Date: "2026-10-10", Mood: 1, Anxiety: 5, Sleep: 1})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !reflect.DeepEqual(after[:len(before)], before) {
		t.Error("existing entries must not change")
	}
	if len(after) != len(before)+1 || after[len(after)-1].Date != "2026-10-10" {
		t.Errorf("unexpected journal %+v", after)
	}
}

func TestMoodService_RecordValidation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.MoodInput
		field string
	}{
		{"mood too low", domain.MoodInput{Mood: 0, Anxiety: 3, Sleep: 3}, "mood"},
		{"anxiety too high", domain.MoodInput{Mood: 3, Anxiety: 6, Sleep: 3}, "anxiety"},
		{"sleep missing", domain.MoodInput{Mood: 3, Anxiety: 3}, "sleep"},
		{"bad date", domain.MoodInput{Date: "yesterday", Mood: 3, Anxiety: 3, Sleep: 3}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockKeyValueStore()
			svc := newMoodService(store)

			_, err := svc.Record(context.Background(), "1", tt.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
			if len(store.SetCalls) != 0 {
				t.Error("invalid input must not be stored")
			}
		})
	}
}

func TestMoodService_StorageFailure(t *testing.T) {
	store := mocks.NewMockKeyValueStore()
	store.SetError = errors.New("disk full")
	svc := newMoodService(store)

	if _, err := svc.Record(context.Background(), "1", domain.MoodInput{Mood: 3, Anxiety: 3, Sleep: 3}); err == nil {
		t.Error("expected error when storage fails")
	}
}

func TestTrendHistorySummary(t *testing.T) {
	entries := []domain.MoodEntry{
		{ID: "c", Date: "2026-10-03", Mood: 3, Anxiety: 3, Sleep: 3},
		{ID: "a", Date: "2026-10-01", Mood: 1, Anxiety: 5, Sleep: 2},
		{ID: "d", Date: "2026-10-04", Mood: 5, Anxiety: 1, Sleep: 5},
		{ID: "b", Date: "2026-10-02", Mood: 2, Anxiety: 4, Sleep: 4},
	}

	trend := Trend(entries, 3)
	if ids(trend) != "bcd" {
		t.Errorf("expected trend bcd, got %s", ids(trend))
	}
	if ids(Trend(entries, 14)) != "abcd" {
		t.Errorf("expected full ascending trend, got %s", ids(Trend(entries, 14)))
	}
	if ids(History(entries)) != "dcba" {
		t.Errorf("expected history dcba, got %s", ids(History(entries)))
	}
	if entries[0].ID != "c" {
		t.Error("Trend and History must not reorder the input")
	}

	s := Summary(entries)
	if s.Entries != 4 || s.AverageMood != 2.75 || s.AverageAnxiety != 3.25 || s.AverageSleep != 3.5 {
		t.Errorf("unexpected summary %+v", s)
	}
	if got := Summary(nil); got.Entries != 0 || got.AverageMood != 0 {
		t.Errorf("unexpected empty summary %+v", got)
	}
	if Trend(nil, 7) == nil {
		t.Error("empty trend should be an empty slice")
	}
}

func TestMoodService_Insights(t *testing.T) {
	ctx := context.Background()
	svc := newMoodService(mocks.NewMockKeyValueStore())
	for _, d := range []string{"2026-10-05", "2026-10-01", "2026-10-03"} {
		if _, err := svc.Record(ctx, "1", domain.MoodInput{Date: d, Mood: 3, Anxiety: 3, Sleep: 3}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	in, err := svc.Insights(ctx, "1", 2)
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if len(in.Entries) != 3 || len(in.Trend) != 2 || in.Trend[1].Date != "2026-10-05" || in.History[0].Date != "2026-10-05" {
		t.Errorf("unexpected insights %+v", in)
	}
}

func ids(entries []domain.MoodEntry) string {
	s := ""
	for _, e := range entries {
		s += e.ID
	}
	return s
}
