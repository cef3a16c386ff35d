package game

type EventType int

const (
	EventWallBounce EventType = iota
	EventCollision
	EventSave
	EventMiss
	EventLevelUp
	EventRestart
	EventQuit
)

type Event struct {
	Type EventType
	X, Y float64 // local position of the body involved
	Pan  float64
	// BallPair marks a collision between two balls.
	BallPair bool
	Data     int // score for save/quit, level for level-up
}

type EventHandler func(Event)

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
