package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_PublishAndDrop(t *testing.T) {
	bus := NewEventBus(1)

	bus.Publish(Event{Event: EventBoardCreated, Board: "test"})
	bus.Publish(Event{Event: EventBoardCreated, Board: "overflow"})

	got := <-bus.SubscribeCh()
	assert.Equal(t, "test", got.Board)
	assert.Equal(t, int64(1), bus.Dropped())
}
