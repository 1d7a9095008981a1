package drop

type EventType int

const (
	EventSplash   EventType = iota // drop landed in the water
	EventCatch                     // drop caught mid-air, score incremented
	EventGameOver                  // water line passed the threshold
)

func (t EventType) String() string {
	switch t {
	case EventSplash:
		return "splash"
	case EventCatch:
		return "catch"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

type Event struct {
	Type  EventType
	Time  float64
	Y     float64 // water line for splash and game over, drop height for catch
	Score int
}

type EventHandler func(Event)

// EventBus delivers events synchronously in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
