package game

import (
	"time"

	"github.com/feltworks/holdem/internal/deck"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypePlayerAction EventType = "player_action"
	EventTypeStreetChange EventType = "street_change"
	EventTypeHandSettled  EventType = "hand_settled"
)

func (et EventType) String() string {
	return string(et)
}

// Event is anything published on the table's event bus
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartEvent is published when a new hand begins
type HandStartEvent struct {
	HandNumber int
	Players    []string
	Dealer     string
	SmallBlind int
	BigBlind   int
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after a player acts
type PlayerActionEvent struct {
	Player    string
	Action    Action
	Amount    int
	Street    Street
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent is published when community cards are dealt
type StreetChangeEvent struct {
	Street    Street
	Board     []deck.Card
	Pot       int
	timestamp time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// HandSettledEvent is published once the pot has been distributed. It is
// the one notification every observer gets, regardless of whether the
// hand reached showdown; agents that track results subscribe to this
// rather than being called back directly by the engine.
type HandSettledEvent struct {
	HandNumber int
	Payouts    []Payout
	Board      []deck.Card
	Pot        int
	timestamp  time.Time
}

func (e HandSettledEvent) EventType() EventType { return EventTypeHandSettled }
func (e HandSettledEvent) Timestamp() time.Time { return e.timestamp }

// Subscriber receives published events
type Subscriber interface {
	OnEvent(event Event)
}

// EventBus fans events out to subscribers
type EventBus interface {
	Subscribe(sub Subscriber)
	Unsubscribe(sub Subscriber)
	Publish(event Event)
}

// SimpleEventBus is a synchronous in-memory bus. Delivery happens on the
// publisher's goroutine in subscription order.
type SimpleEventBus struct {
	subscribers []Subscriber
}

// NewEventBus creates an empty bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

func (bus *SimpleEventBus) Subscribe(sub Subscriber) {
	bus.subscribers = append(bus.subscribers, sub)
}

func (bus *SimpleEventBus) Unsubscribe(sub Subscriber) {
	for i, s := range bus.subscribers {
		if s == sub {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

func (bus *SimpleEventBus) Publish(event Event) {
	for _, sub := range bus.subscribers {
		sub.OnEvent(event)
	}
}
