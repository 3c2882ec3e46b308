package domain

import "time"

type Therapist struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Avatar    string `json:"avatar"`
}

type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// DateLayout is the calendar-date format used for appointments and mood entries.
const DateLayout = "2006-01-02"

type Appointment struct {
	ID            string            `json:"id"`
	TherapistID   int               `json:"therapistId"`
	TherapistName string            `json:"therapistName"`
	UserID        string            `json:"userId"`
	UserName      string            `json:"userName,omitempty"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Notes         string            `json:"notes"`
	Status        AppointmentStatus `json:"status"`
}

type BookingStep string

const (
	StepSelectingTherapist   BookingStep = "selecting_therapist"
	StepSelectingDateAndSlot BookingStep = "selecting_date_and_slot"
	StepConfirmed            BookingStep = "confirmed"
)

// BookingDraft is the transient selection state of the booking workflow.
type BookingDraft struct {
	Step        BookingStep `json:"step"`
	TherapistID int         `json:"therapistId,omitempty"`
	Therapist   *Therapist  `json:"therapist,omitempty"`
	Date        string      `json:"date,omitempty"`
	Slots       []string    `json:"slots,omitempty"`
	Time        string      `json:"time,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func NewBookingDraft() *BookingDraft {
	return &BookingDraft{Step: StepSelectingTherapist}
}

// Complete reports whether every field required for confirmation is set.
func (d *BookingDraft) Complete() bool {
	return d.TherapistID != 0 && d.Date != "" && d.Time != ""
}

type AppointmentBookedEvent struct {
	AppointmentID string    `json:"appointment_id"`
	UserID        string    `json:"user_id"`
	TherapistID   int       `json:"therapist_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	BookedAt      time.Time `json:"booked_at"`
}
