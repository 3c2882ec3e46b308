package messaging

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const AppointmentBookedType = "appointment.booked"

var _ ports.AppointmentEventPublisher = (*RabbitMQBroker)(nil)

func (rmq *RabbitMQBroker) PublishAppointmentBooked(ctx context.Context, evt domain.AppointmentBookedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= 0 {
		return ctx.Err()
	}

	_, err = rmq.cb.Execute(func() (interface{}, error) {
		return nil, rmq.ch.PublishWithContext(
			ctx,
			"",            // default exchange
			rmq.queueName, // routing key == queue name
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Type:         AppointmentBookedType,
				MessageId:    evt.AppointmentID,
				Timestamp:    evt.BookedAt,
				Body:         body,
			},
		)
	})
	return err
}

// LogPublisher records booking notifications in the log when no broker is configured.
type LogPublisher struct {
	logger *logging.Logger
}

var _ ports.AppointmentEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *logging.Logger) *LogPublisher {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishAppointmentBooked(ctx context.Context, evt domain.AppointmentBookedEvent) error {
	p.logger.Info(AppointmentBookedType,
		"appointment_id", evt.AppointmentID,
		"user_id", evt.UserID,
		"therapist_id", evt.TherapistID,
		"date", evt.Date,
		"time", evt.Time,
	)
	return nil
}
