package dispatcher

const (
	AppAdded   EventType = "added"
	AppChanged EventType = "changed"
	AppRemoved EventType = "removed"
)

type EventType string

// Event announces an application. Consumers must key on AppID: Path is
// the file that triggered the event and is only informational.
type Event struct {
	Type  EventType
	AppID string
	Path  string
}

type Handler interface {
	HandleEvent(event Event)
}

type HandlerFunc func(event Event)

func (f HandlerFunc) HandleEvent(event Event) {
	f(event)
}
