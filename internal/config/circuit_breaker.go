package config

import (
	"time"

	"github.com/sony/gobreaker"

	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const (
	BreakerRedis       = "Redis-Storage"
	BreakerPostgres    = "PostgreSQL-Storage"
	BreakerPlaceholder = "Placeholder-API"
	BreakerRabbitMQ    = "RabbitMQ-Publisher"
)

// NewCircuitBreaker creates a circuit breaker with standard settings.
// The name parameter uniquely identifies the circuit breaker instance.
func NewCircuitBreaker(name string, logger *logging.Logger) *gobreaker.CircuitBreaker {
	if logger == nil {
		logger = logging.Default()
	}

	var timeout time.Duration

	// Open-state duration per dependency; storage recovers fastest.
	switch name {
	case BreakerRedis:
		timeout = time.Second * 5
	case BreakerPostgres:
		timeout = time.Second * 10
	default:
		timeout = time.Second * 30
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Second * 10,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Open circuit after 3 consecutive failures
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Error("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}
