package repository

import (
	"context"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
)

var therapists = []domain.Therapist{
	{ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Anxiety & Depression", Avatar: domain.AvatarURL("Sarah")},
	{ID: 2, Name: "Dr. Michael Chen", Specialty: "Trauma & PTSD", Avatar: domain.AvatarURL("Michael")},
	{ID: 3, Name: "Dr. Aisha Patel", Specialty: "Family Therapy", Avatar: domain.AvatarURL("Aisha")},
	{ID: 4, Name: "Dr. James Wilson", Specialty: "Substance Abuse", Avatar: domain.AvatarURL("James")},
	{ID: 5, Name: "Dr. Sofia Rodriguez", Specialty: "Child Psychology", Avatar: domain.AvatarURL("Sofia")},
	{ID: 6, Name: "Dr. Robert Kim", Specialty: "Couple's Therapy", Avatar: domain.AvatarURL("Robert")},
}

// TherapistDirectory serves the fixed therapist roster.
type TherapistDirectory struct{}

var _ ports.TherapistDirectory = (*TherapistDirectory)(nil)

func NewTherapistDirectory() *TherapistDirectory {
	return &TherapistDirectory{}
}

func (d *TherapistDirectory) List(ctx context.Context) ([]domain.Therapist, error) {
	out := make([]domain.Therapist, len(therapists))
	copy(out, therapists)
	return out, nil
}

func (d *TherapistDirectory) FindByID(ctx context.Context, id int) (*domain.Therapist, error) {
	for _, t := range therapists {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, domain.ErrTherapistNotFound
}
