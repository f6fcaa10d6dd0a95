package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()
	first := &eventRecorder{}
	second := &eventRecorder{}
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(HandStartEvent{HandNumber: 1, timestamp: time.Now()})

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.Equal(t, EventTypeHandStart, first.events[0].EventType())
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	recorder := &eventRecorder{}
	bus.Subscribe(recorder)
	bus.Unsubscribe(recorder)

	bus.Publish(HandSettledEvent{HandNumber: 1, timestamp: time.Now()})

	assert.Empty(t, recorder.events)
}
