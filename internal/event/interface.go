package event

//go:generate mockgen -destination=../mock/event/mock_event.go -package=mock_event . Manager

// Manager interface for fanning events out to registered listeners
type Manager interface {
	RegisterListener(listener chan Event) int
	RemoveListener(id int)
	Send(evt Event)
	ReportFatalError(err error)
}
