package messaging

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"

	"github.com/AchilleasB/mindease/wellness-service/internal/config"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// amqpChannel is the subset of *amqp.Channel the broker uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQBroker implements ports.AppointmentEventPublisher using RabbitMQ.
type RabbitMQBroker struct {
	conn      *amqp.Connection
	ch        amqpChannel
	queueName string
	cb        *gobreaker.CircuitBreaker
	logger    *logging.Logger
}

func NewRabbitMQBroker(amqpURL, queueName string, logger *logging.Logger) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	// durable, not auto-deleted, not exclusive
	_, err = ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	b := newBroker(ch, queueName, logger)
	b.conn = conn
	return b, nil
}

func newBroker(ch amqpChannel, queueName string, logger *logging.Logger) *RabbitMQBroker {
	if logger == nil {
		logger = logging.Default()
	}
	return &RabbitMQBroker{
		ch:        ch,
		queueName: queueName,
		cb:        config.NewCircuitBreaker(config.BreakerRabbitMQ, logger),
		logger:    logger,
	}
}

// Ping reports whether the broker connection is still open.
func (rmq *RabbitMQBroker) Ping(ctx context.Context) error {
	if rmq.conn != nil && rmq.conn.IsClosed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}

func (rmq *RabbitMQBroker) Close() error {
	if rmq.ch != nil {
		if err := rmq.ch.Close(); err != nil {
			return err
		}
	}
	if rmq.conn != nil {
		return rmq.conn.Close()
	}
	return nil
}
