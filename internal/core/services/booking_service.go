package services

import (
	"context"
	"errors"
	"fmt"
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
	bookingWindowDays    = 30
	unknownTherapistName = "Unknown Therapist"
)

// BookingService drives the therapist -> date/slot -> confirm workflow.
// The in-progress selection is kept per user in the draft repository.
type BookingService struct {
	therapists   ports.TherapistDirectory
	appointments ports.AppointmentRepository
	drafts       ports.BookingDraftRepository
	publisher    ports.AppointmentEventPublisher
	metrics      *metrics.Metrics
	logger       *logging.Logger
	now          func() time.Time
}

var _ ports.BookingService = (*BookingService)(nil)

func NewBookingService(
	therapists ports.TherapistDirectory,
	appointments ports.AppointmentRepository,
	drafts ports.BookingDraftRepository,
	publisher ports.AppointmentEventPublisher,
	m *metrics.Metrics,
	logger *logging.Logger,
) *BookingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingService{
		therapists:   therapists,
		appointments: appointments,
		drafts:       drafts,
		publisher:    publisher,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the clock used for the booking window.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

func (s *BookingService) Therapists(ctx context.Context) ([]domain.Therapist, error) {
	return s.therapists.List(ctx)
}

func (s *BookingService) Therapist(ctx context.Context, id int) (*domain.Therapist, error) {
	return s.therapists.FindByID(ctx, id)
}

func (s *BookingService) AvailableSlots(ctx context.Context, therapistID int, date string) ([]string, error) {
	if _, err := s.therapists.FindByID(ctx, therapistID); err != nil {
		return nil, err
	}
	if date != "" {
		if err := s.checkDate(date); err != nil {
			return nil, err
		}
	}
	return AvailableSlots(therapistID), nil
}

func (s *BookingService) Draft(ctx context.Context, userID string) (*domain.BookingDraft, error) {
	return s.drafts.Load(ctx, userID)
}

func (s *BookingService) SelectTherapist(ctx context.Context, userID string, therapistID int) (*domain.BookingDraft, error) {
	therapist, err := s.therapists.FindByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	draft, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft.Step = domain.StepSelectingDateAndSlot
	draft.TherapistID = therapist.ID
	draft.Therapist = therapist
	draft.Date = ""
	draft.Slots = nil
	draft.Time = ""
	return s.save(ctx, userID, draft)
}

func (s *BookingService) SelectDate(ctx context.Context, userID, date string) (*domain.BookingDraft, error) {
	draft, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.TherapistID == 0 {
		return nil, domain.NewValidationError("therapistId", "Please select a therapist first")
	}
	date = strings.TrimSpace(date)
	if err := s.checkDate(date); err != nil {
		return nil, err
	}

	draft.Date = date
	draft.Slots = AvailableSlots(draft.TherapistID)
	draft.Time = ""
	return s.save(ctx, userID, draft)
}

func (s *BookingService) SelectSlot(ctx context.Context, userID, slot string) (*domain.BookingDraft, error) {
	draft, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.Date == "" {
		return nil, domain.NewValidationError("date", "Please select a date first")
	}
	slot = strings.TrimSpace(slot)
	if !slices.Contains(draft.Slots, slot) {
		return nil, domain.ErrSlotUnavailable
	}

	draft.Time = slot
	return s.save(ctx, userID, draft)
}

func (s *BookingService) SetNotes(ctx context.Context, userID, notes string) (*domain.BookingDraft, error) {
	draft, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	draft.Notes = notes
	return s.save(ctx, userID, draft)
}

// Confirm books the drafted appointment. An incomplete draft, or one whose
// date has left the booking window since it was chosen, is left as is.
func (s *BookingService) Confirm(ctx context.Context, user domain.Identity) (*ports.BookingConfirmation, error) {
	draft, err := s.drafts.Load(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if user.ID == "" || !draft.Complete() {
		return nil, domain.ErrIncompleteBooking
	}
	if err := s.checkDate(draft.Date); err != nil {
		return nil, err
	}

	therapistName := unknownTherapistName
	if draft.Therapist != nil && draft.Therapist.Name != "" {
		therapistName = draft.Therapist.Name
	}
	appointment := domain.Appointment{
		ID:            uuid.NewString(),
		TherapistID:   draft.TherapistID,
		TherapistName: therapistName,
		UserID:        user.ID,
		UserName:      user.Name,
		Date:          draft.Date,
		Time:          draft.Time,
		Notes:         draft.Notes,
		Status:        domain.AppointmentConfirmed,
	}

	if err := s.appointments.Append(ctx, user.ID, appointment); err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	list, err := s.appointments.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Clear(ctx, user.ID); err != nil {
		s.logger.Warn("failed to reset booking draft", "user_id", user.ID, "error", err)
	}

	s.metrics.ObserveAppointmentBooked(appointment.TherapistID)
	s.notify(ctx, appointment)
	s.logger.Info("appointment booked",
		"appointment_id", appointment.ID,
		"user_id", user.ID,
		"therapist_id", appointment.TherapistID,
	)

	return &ports.BookingConfirmation{
		Step:         domain.StepConfirmed,
		Appointment:  appointment,
		Appointments: list,
		Draft:        *domain.NewBookingDraft(),
	}, nil
}

func (s *BookingService) Appointments(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return s.appointments.ListByUser(ctx, userID)
}

func (s *BookingService) Upcoming(ctx context.Context, userID string) ([]domain.Appointment, error) {
	all, err := s.appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	upcoming := make([]domain.Appointment, 0, len(all))
	for _, a := range all {
		if a.Status != domain.AppointmentCancelled {
			upcoming = append(upcoming, a)
		}
	}
	return upcoming, nil
}

// AllAppointments lists every stored booking. Until anything is booked the
// admin view shows a fixed sample.
func (s *BookingService) AllAppointments(ctx context.Context) ([]domain.Appointment, error) {
	all, err := s.appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return slices.Clone(sampleAppointments), nil
	}
	return all, nil
}

var sampleAppointments = []domain.Appointment{
	{ID: "1001", TherapistID: 1, TherapistName: "Dr. Sarah Johnson", UserID: "user123", UserName: "John Smith",
		Date: "2025-05-15", Time: "10:00", Notes: "Initial consultation", Status: domain.AppointmentConfirmed},
	{ID: "1002", TherapistID: 2, TherapistName: "Dr. Michael Chen", UserID: "user456", UserName: "Emily Davis",
		Date: "2025-05-16", Time: "14:30", Notes: "Follow-up session", Status: domain.AppointmentConfirmed},
	{ID: "1003", TherapistID: 3, TherapistName: "Dr. Aisha Patel", UserID: "user789", UserName: "David Wilson",
		Date: "2025-05-17", Time: "11:00", Notes: "Family therapy session", Status: domain.AppointmentCancelled},
}

func (s *BookingService) save(ctx context.Context, userID string, draft *domain.BookingDraft) (*domain.BookingDraft, error) {
	draft.UpdatedAt = s.now().UTC()
	if err := s.drafts.Save(ctx, userID, *draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// checkDate accepts calendar dates from today through today+30 days.
func (s *BookingService) checkDate(date string) error {
	now := s.now()
	d, err := time.ParseInLocation(domain.DateLayout, date, now.Location())
	if err != nil {
		return domain.NewValidationError("date", "Please select a valid date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) || d.After(today.AddDate(0, 0, bookingWindowDays)) {
		return domain.ErrDateOutOfRange
	}
	return nil
}

// notify is best-effort; a failed publish never fails the booking.
func (s *BookingService) notify(ctx context.Context, a domain.Appointment) {
	if s.publisher == nil {
		return
	}
	evt := domain.AppointmentBookedEvent{
		AppointmentID: a.ID,
		UserID:        a.UserID,
		TherapistID:   a.TherapistID,
		Date:          a.Date,
		Time:          a.Time,
		BookedAt:      s.now().UTC(),
	}
	if err := s.publisher.PublishAppointmentBooked(ctx, evt); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("failed to publish appointment notification", "appointment_id", a.ID, "error", err)
	}
}
