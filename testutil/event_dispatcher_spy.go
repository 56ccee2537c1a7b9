package testutil

import (
	"context"
	"sync"

	"github.com/NovatecConsulting/library-service-go/core"
)

// EventDispatcherSpy records all dispatched events for later assertions.
type EventDispatcherSpy struct {
	mu     sync.Mutex
	events core.BookEvents
}

// NewEventDispatcherSpy creates an empty EventDispatcherSpy.
func NewEventDispatcherSpy() *EventDispatcherSpy {
	return &EventDispatcherSpy{}
}

// Dispatch records the event.
func (s *EventDispatcherSpy) Dispatch(_ context.Context, event core.BookEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
}

// Events returns a copy of all recorded events in dispatch order.
func (s *EventDispatcherSpy) Events() core.BookEvents {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make(core.BookEvents, len(s.events))
	copy(events, s.events)

	return events
}

// Reset forgets all recorded events.
func (s *EventDispatcherSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
}
