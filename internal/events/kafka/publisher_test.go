package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadsal1998/omari-studio/internal/events"
	"github.com/ahmadsal1998/omari-studio/internal/events/kafka"
)

func TestPublisherSatisfiesPort(t *testing.T) {
	var _ events.Publisher = kafka.NewPublisher([]string{"localhost:9092"})
}

func TestCloseIdleWriter(t *testing.T) {
	// An idle writer has nothing buffered; Close must still release it
	// cleanly so shutdown paths can always defer it.
	p := kafka.NewPublisher([]string{"localhost:9092"})
	require.NoError(t, p.Close())
}

func TestNoopPublisherClose(t *testing.T) {
	var p events.NoopPublisher
	assert.NoError(t, p.Close())
}
