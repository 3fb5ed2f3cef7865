package notifications

import (
	"context"
	"testing"
	"time"

	kickchatwrapper "github.com/johanvandegriff/kick-chat-wrapper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"boobaBot/internal/app/events"
)

func TestEventLogger_Run(t *testing.T) {
	req := require.New(t)
	core, logs := observer.New(zap.DebugLevel)
	l := NewEventLogger(zap.New(core).Sugar())
	bus := events.NewBus(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, bus)
		close(done)
	}()

	// Given the logger is subscribed
	req.Eventually(func() bool {
		bus.Publish(events.TopicCounterChanged, events.CounterChangedDTO{Command: "!booba", Value: 3})
		return logs.FilterMessage("contador actualizado").Len() > 0
	}, time.Second, 10*time.Millisecond)

	entry := logs.FilterMessage("contador actualizado").All()[0]
	req.Equal(uint64(3), entry.ContextMap()["value"])

	// When the context is cancelled, Then Run returns
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Run did not return")
	}
}

func TestEventLogger_HandleKickMessage(t *testing.T) {
	req := require.New(t)
	core, logs := observer.New(zap.InfoLevel)
	l := NewEventLogger(zap.New(core).Sugar())

	l.HandleKickMessage(kickchatwrapper.ChatMessage{Type: "message"})
	l.HandleKickMessage(kickchatwrapper.ChatMessage{Type: " Chat "})
	req.Zero(logs.Len())

	l.HandleKickMessage(kickchatwrapper.ChatMessage{Type: "subscription", ChatroomID: 9})
	req.Equal(1, logs.Len())
}
