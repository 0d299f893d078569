package utils

import "sync/atomic"

const (
	EventBoardCreated = "board_created"
	EventPostCreated  = "post_created"
)

type Event struct {
	Event string      `json:"event"`
	Board string      `json:"board,omitempty"`
	Data  interface{} `json:"data"`
}

// Publisher is anything that can announce a domain event. Publishing is best
// effort and never reports failure to the caller.
type Publisher interface {
	Publish(event Event)
}

// EventBus is the in-process event queue consumed by the websocket hub.
type EventBus struct {
	events  chan Event
	dropped atomic.Int64
}

func NewEventBus(buffer int) *EventBus {
	if buffer <= 0 {
		buffer = 100
	}
	return &EventBus{events: make(chan Event, buffer)}
}

// Publish enqueues the event, dropping it when the queue is full.
func (eb *EventBus) Publish(event Event) {
	select {
	case eb.events <- event:
	default:
		eb.dropped.Add(1)
	}
}

func (eb *EventBus) SubscribeCh() <-chan Event {
	return eb.events
}

func (eb *EventBus) Dropped() int64 {
	return eb.dropped.Load()
}
