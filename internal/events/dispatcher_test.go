package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversToAllSubscribersDespiteHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var delivered []string
	dispatcher.Subscribe(EventAdminAction, func(_ context.Context, _ Event) error {
		delivered = append(delivered, "first")
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(EventAdminAction, func(_ context.Context, event Event) error {
		delivered = append(delivered, event.Action)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		Type:   EventAdminAction,
		Action: ActionSettingsChange,
	})
	require.NoError(t, err, "handler errors never surface to publishers")
	assert.Equal(t, []string{"first", ActionSettingsChange}, delivered)
}

func TestDispatcher_IgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: "unknown"}))
}
