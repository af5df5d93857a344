package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/GitLingo/internal/eventbus"
	"github.com/Rorical/GitLingo/internal/update"
)

func TestListenForUIEvents_WrapsCoreEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	require.NoError(t, eb.SendToUI(eventbus.NoticeEvent{Message: "hi"}))

	msg := ed.ListenForUIEvents()()
	coreMsg, ok := msg.(update.CoreEventMsg)
	require.True(t, ok)
	assert.Equal(t, eventbus.NoticeEvent{Message: "hi"}, coreMsg.Event)
}

func TestListenForUIEvents_StopsWhenClosed(t *testing.T) {
	eb := eventbus.NewEventBus()
	ed := NewEventDispatcher(eb)

	eb.Close()
	assert.Nil(t, ed.ListenForUIEvents()())

	ed.Stop()
	assert.Equal(t, eb, ed.GetEventBus())
}
