package ports

import (
	"context"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
)

type AppointmentEventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, evt domain.AppointmentBookedEvent) error
}
