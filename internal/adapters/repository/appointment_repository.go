package repository

import (
	"context"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type AppointmentRepository struct {
	list *jsonList[domain.Appointment]
}

var _ ports.AppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository(store ports.KeyValueStore, logger *logging.Logger) *AppointmentRepository {
	return &AppointmentRepository{list: newJSONList[domain.Appointment](store, logger)}
}

func (r *AppointmentRepository) Append(ctx context.Context, userID string, appointment domain.Appointment) error {
	return r.list.append(ctx, AppointmentsKey(userID), appointment)
}

func (r *AppointmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return r.list.read(ctx, AppointmentsKey(userID))
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	return r.list.readAll(ctx, appointmentKeyPrefix)
}
