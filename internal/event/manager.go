package event

import (
	"sync"

	"github.com/rackops/fwctl/internal/logger"
)

// represents a registered event listener
type listener struct {
	id   int
	send chan Event
}

// EventManager is our Manager implementation. Listeners are registered
// channels; Send never blocks the producer on a slow listener.
type EventManager struct {
	log       logger.Logger
	listeners []*listener
	nextID    int
	mux       sync.Mutex
}

// NewEventManager returns a new instance of EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		log:       logger.New(),
		listeners: []*listener{},
		nextID:    1,
		mux:       sync.Mutex{},
	}
}

// RegisterListener registers a channel to receive all events
func (m *EventManager) RegisterListener(send chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &listener{
		id:   m.nextID,
		send: send,
	}

	m.listeners = append(m.listeners, l)
	m.nextID++

	return l.id
}

// RemoveListener removes a previously registered listener
func (m *EventManager) RemoveListener(id int) {
	m.mux.Lock()
	defer m.mux.Unlock()

	remaining := []*listener{}

	for _, l := range m.listeners {
		if l.id != id {
			remaining = append(remaining, l)
		}
	}

	m.listeners = remaining
}

// Send fans the event out to all registered listeners
func (m *EventManager) Send(evt Event) {
	m.mux.Lock()
	defer m.mux.Unlock()

	for _, l := range m.listeners {
		select {
		case l.send <- evt:
		default:
			m.log.Warn().
				Int("listener", l.id).
				Str("type", string(evt.Type)).
				Msg("dropping event for slow listener")
		}
	}
}

// ReportFatalError sends a fatal error event
func (m *EventManager) ReportFatalError(err error) {
	m.Send(Event{Type: FatalErrorType, Payload: err})
}
