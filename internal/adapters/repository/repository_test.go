package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/storage"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

func TestAppointmentRepository_AppendThenRead(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewAppointmentRepository(store, logging.Discard())

	before, err := repo.ListByUser(ctx, "1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("expected empty list for absent key, got %d", len(before))
	}

	appt := domain.Appointment{
		ID: "a1", TherapistID: 1, TherapistName: "Dr. Sarah Johnson",
		UserID: "1", Date: "2026-10-20", Time: "10:00", Status: domain.AppointmentConfirmed,
	}
	if err := repo.Append(ctx, "1", appt); err != nil {
		t.Fatalf("Append: %v", err)
	}

	after, _ := repo.ListByUser(ctx, "1")
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d appointments, got %d", len(before)+1, len(after))
	}
	if !reflect.DeepEqual(after[len(after)-1], appt) {
		t.Errorf("last appointment mismatch: %+v", after[len(after)-1])
	}
}

func TestAppointmentRepository_MalformedValueIsCleared(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	_ = store.Set(ctx, AppointmentsKey("1"), []byte("{not json"))
	repo := NewAppointmentRepository(store, logging.Discard())

	got, err := repo.ListByUser(ctx, "1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
	if _, err := store.Get(ctx, AppointmentsKey("1")); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("malformed key should be removed, got %v", err)
	}
}

func TestAppointmentRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(storage.NewMemoryStore(), logging.Discard())
	_ = repo.Append(ctx, "1", domain.Appointment{ID: "a"})
	_ = repo.Append(ctx, "2", domain.Appointment{ID: "b"})
	_ = repo.Append(ctx, "2", domain.Appointment{ID: "c"})

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 appointments, got %d", len(all))
	}
}

func TestAppointmentRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(storage.NewMemoryStore(), logging.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Append(ctx, "1", domain.Appointment{ID: fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()

	got, _ := repo.ListByUser(ctx, "1")
	if len(got) != 20 {
		t.Errorf("expected 20 appointments, got %d", len(got))
	}
}

func TestMoodRepository_EntriesNeverMutated(t *testing.T) {
	ctx := context.Background()
	repo := NewMoodRepository(storage.NewMemoryStore(), logging.Discard())
	first := domain.MoodEntry{ID: "m1", Date: "2026-10-01", Mood: 3, Anxiety: 2, Sleep: 4}
	_ = repo.Append(ctx, "1", first)

	before, _ := repo.ListByUser(ctx, "1")
	second := domain.MoodEntry{ID: "m2", Date: "2026-10-02", Mood: 5, Anxiety: 1, Sleep: 5}
	if err := repo.Append(ctx, "1", second); err != nil {
		t.Fatalf("Append: %v", err)
	}
	after, _ := repo.ListByUser(ctx, "1")

	if !reflect.DeepEqual(after[:len(before)], before) {
		t.Errorf("existing entries changed: before %+v after %+v", before, after)
	}
	if !reflect.DeepEqual(after[len(after)-1], second) {
		t.Errorf("appended entry mismatch: %+v", after[len(after)-1])
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewSessionRepository(store, logging.Discard())

	session := domain.Session{
		ID:        "sid",
		User:      domain.Identity{ID: "1", Name: "John Doe", Email: "user@example.com", Role: domain.RoleUser},
		CreatedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.FindByID(ctx, "sid")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !reflect.DeepEqual(*got, session) {
		t.Errorf("session mismatch: %+v", got)
	}

	if err := repo.Delete(ctx, "sid"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, "sid"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSessionRepository_SavedSessionsExpire(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		wantTTL time.Duration
	}{
		{"default", 0, DefaultSessionTTL},
		{"configured", 2 * time.Hour, 2 * time.Hour},
		{"negative ignored", -time.Hour, DefaultSessionTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
			store := storage.NewMemoryStore().WithClock(func() time.Time { return now })
			repo := NewSessionRepository(store, logging.Discard()).WithTTL(tt.ttl)

			session := domain.Session{ID: "sid", User: domain.Identity{ID: "1", Role: domain.RoleUser}}
			if err := repo.Save(ctx, session); err != nil {
				t.Fatalf("Save: %v", err)
			}

			now = now.Add(tt.wantTTL - time.Second)
			if _, err := repo.FindByID(ctx, "sid"); err != nil {
				t.Fatalf("expected session before expiry, got %v", err)
			}
			now = now.Add(time.Second)
			if _, err := repo.FindByID(ctx, "sid"); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("expected ErrNotFound after %v, got %v", tt.wantTTL, err)
			}
		})
	}
}

func TestSessionRepository_MalformedRecordIsCleared(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", "not-json"},
		{"missing user", `{"id":"sid"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStore()
			_ = store.Set(ctx, SessionKey("sid"), []byte(tt.raw))
			repo := NewSessionRepository(store, logging.Discard())

			if _, err := repo.FindByID(ctx, "sid"); !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if _, err := store.Get(ctx, SessionKey("sid")); !errors.Is(err, domain.ErrNotFound) {
				t.Error("malformed session should be deleted")
			}
		})
	}
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	seed := domain.Account{Identity: domain.Identity{ID: "1", Email: "user@example.com", Role: domain.RoleUser}}
	repo := NewAccountRepository(storage.NewMemoryStore(), logging.Discard(), seed)

	got, err := repo.FindByEmail(ctx, "USER@example.com ")
	if err != nil || got.ID != "1" {
		t.Fatalf("expected seeded account, got %+v, %v", got, err)
	}

	if err := repo.Create(ctx, domain.Account{Identity: domain.Identity{Email: "user@example.com"}}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken for seeded email, got %v", err)
	}

	fresh := domain.Account{Identity: domain.Identity{ID: "n1", Name: "Jane", Email: "Jane@Example.com", Role: domain.RoleUser}}
	if err := repo.Create(ctx, fresh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	found, err := repo.FindByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != "n1" || found.Email != "jane@example.com" {
		t.Errorf("unexpected account %+v", found)
	}
	if err := repo.Create(ctx, fresh); !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken on duplicate, got %v", err)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBookingDraftRepository(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewBookingDraftRepository(store, logging.Discard())

	draft, err := repo.Load(ctx, "1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if draft.Step != domain.StepSelectingTherapist {
		t.Errorf("expected fresh draft, got step %s", draft.Step)
	}

	draft.Step = domain.StepSelectingDateAndSlot
	draft.TherapistID = 2
	if err := repo.Save(ctx, "1", *draft); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, _ := repo.Load(ctx, "1")
	if loaded.TherapistID != 2 || loaded.Step != domain.StepSelectingDateAndSlot {
		t.Errorf("unexpected draft %+v", loaded)
	}

	_ = store.Set(ctx, BookingKey("1"), []byte("[]"))
	reset, err := repo.Load(ctx, "1")
	if err != nil {
		t.Fatalf("Load malformed: %v", err)
	}
	if reset.Step != domain.StepSelectingTherapist || reset.TherapistID != 0 {
		t.Errorf("malformed draft should reset, got %+v", reset)
	}
}

func TestTherapistDirectory(t *testing.T) {
	ctx := context.Background()
	dir := NewTherapistDirectory()

	list, _ := dir.List(ctx)
	if len(list) != 6 {
		t.Fatalf("expected 6 therapists, got %d", len(list))
	}
	th, err := dir.FindByID(ctx, 1)
	if err != nil || th.Name != "Dr. Sarah Johnson" {
		t.Errorf("unexpected therapist %+v, %v", th, err)
	}
	if _, err := dir.FindByID(ctx, 99); !errors.Is(err, domain.ErrTherapistNotFound) {
		t.Errorf("expected ErrTherapistNotFound, got %v", err)
	}
}
