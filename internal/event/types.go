package event

type EventType string

const (
	CapabilityDetected EventType = "CAPABILITY_DETECTED"
	HealthChecked      EventType = "HEALTH_CHECKED"
	ProtocolFallback   EventType = "PROTOCOL_FALLBACK"
	UpdateAttempt      EventType = "UPDATE_ATTEMPT"
	UpdateResult       EventType = "UPDATE_RESULT"
	PhaseChange        EventType = "PHASE_CHANGE"
	FatalErrorType     EventType = "FATAL_ERROR"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Host    string
	Payload any
}

// Sink receives events. The protocol manager and state machine are handed
// sinks at construction so the core stays free of ambient emitters.
type Sink func(evt Event)
