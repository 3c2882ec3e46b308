package mocks

import (
	"context"
	"sync"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
)

// MockAppointmentEventPublisher implements ports.AppointmentEventPublisher for testing.
type MockAppointmentEventPublisher struct {
	mu sync.RWMutex

	PublishedEvents  []domain.AppointmentBookedEvent
	PublishError     error
	PublishCallCount int
}

var _ ports.AppointmentEventPublisher = (*MockAppointmentEventPublisher)(nil)

func NewMockAppointmentEventPublisher() *MockAppointmentEventPublisher {
	return &MockAppointmentEventPublisher{
		PublishedEvents: make([]domain.AppointmentBookedEvent, 0),
	}
}

func (m *MockAppointmentEventPublisher) PublishAppointmentBooked(ctx context.Context, evt domain.AppointmentBookedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishCallCount++
	if m.PublishError != nil {
		return m.PublishError
	}
	m.PublishedEvents = append(m.PublishedEvents, evt)
	return nil
}

// GetPublishedEvents returns a copy of the captured events.
func (m *MockAppointmentEventPublisher) GetPublishedEvents() []domain.AppointmentBookedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]domain.AppointmentBookedEvent, len(m.PublishedEvents))
	copy(events, m.PublishedEvents)
	return events
}

func (m *MockAppointmentEventPublisher) GetPublishCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.PublishCallCount
}
