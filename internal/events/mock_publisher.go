package events

import (
	"context"
	"log/slog"
	"sync"
)

// MockEventPublisher records events in memory for tests.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []ProfileEvent
	logger *slog.Logger
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) PublishProfileEvent(_ context.Context, event ProfileEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	if m.logger != nil {
		m.logger.Debug("Mock publish", "event_type", event.EventType, "user_id", event.UserID)
	}
	return nil
}

func (m *MockEventPublisher) Close() error {
	return nil
}

// Events returns a copy of everything published so far.
func (m *MockEventPublisher) Events() []ProfileEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ProfileEvent, len(m.events))
	copy(out, m.events)
	return out
}
