package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/GitLingo/internal/models"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(SubmitQueryEvent{Query: "undo last commit"}))
	got := <-eb.UIToCore()
	assert.Equal(t, SubmitQueryEvent{Query: "undo last commit"}, got)

	result := &models.TranslationResult{Command: "git stash"}
	require.NoError(t, eb.SendToUI(StateUpdateEvent{Result: result}))
	update := (<-eb.CoreToUI()).(StateUpdateEvent)
	assert.Equal(t, "git stash", update.Result.Command)
}

func TestEventBus_FullChannelOpensBreaker(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(err EventBusError) {
		reported = append(reported, err)
	})

	for i := 0; i < cap(eb.coreToUI); i++ {
		require.NoError(t, eb.SendToUI(NoticeEvent{Message: "fill"}))
	}

	for i := 0; i < 5; i++ {
		assert.Error(t, eb.SendToUI(NoticeEvent{Message: "overflow"}))
	}

	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.Len(t, reported, 5)
	assert.Equal(t, "SendToUI", reported[0].Operation)

	err := eb.SendToCore(CopyCommandEvent{})
	assert.EqualError(t, err, "circuit breaker is open")
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(1, 10*time.Millisecond)

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	time.Sleep(20 * time.Millisecond)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestEventBus_SendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToUI(NoticeEvent{}), ErrClosed)
	assert.ErrorIs(t, eb.SendToCore(CopyCommandEvent{}), ErrClosed)
}
