package notifications

import (
	"context"
	"strings"
	"sync"

	kickchatwrapper "github.com/johanvandegriff/kick-chat-wrapper"
	"go.uber.org/zap"

	"boobaBot/internal/app/events"
)

// Subscriber lo implementa events.Bus.
type Subscriber interface {
	Subscribe(topic string) (<-chan any, func())
}

// EventLogger centraliza en un solo sitio el log de los eventos del bus
// (conexiones, cambios del contador) y de los eventos crudos de Kick.
type EventLogger struct {
	log *zap.SugaredLogger
}

func NewEventLogger(log *zap.SugaredLogger) *EventLogger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EventLogger{log: log}
}

// Run se suscribe a los topics del bot y registra cada evento hasta que se
// cancele ctx o el bus se cierre.
func (l *EventLogger) Run(ctx context.Context, bus Subscriber) {
	topics := []string{events.TopicBotReady, events.TopicCounterChanged, events.TopicChatMessage}

	var wg sync.WaitGroup
	for _, topic := range topics {
		ch, unsubscribe := bus.Subscribe(topic)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer unsubscribe()
			for {
				select {
				case payload, ok := <-ch:
					if !ok {
						return
					}
					l.handle(payload)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	wg.Wait()
}

func (l *EventLogger) handle(payload any) {
	switch p := payload.(type) {
	case events.ReadyDTO:
		l.log.Infow("bot listo", "platform", p.Platform, "username", p.Username, "user_id", p.UserID)
	case events.CounterChangedDTO:
		l.log.Infow("contador actualizado",
			"command", p.Command,
			"value", p.Value,
			"platform", p.Platform,
			"channel_id", p.ChannelID,
		)
	case events.ChatMessageDTO:
		l.log.Debugw("mensaje", "platform", p.Platform, "channel_id", p.ChannelID, "username", p.Username)
	default:
		l.log.Debugw("evento desconocido", "payload", payload)
	}
}

// HandleKickMessage registra los mensajes del websocket de Kick que no son chat normal.
func (l *EventLogger) HandleKickMessage(msg kickchatwrapper.ChatMessage) {
	kind := strings.TrimSpace(msg.Type)
	if strings.EqualFold(kind, "chat") || strings.EqualFold(kind, "message") {
		return
	}

	l.log.Infow("kick: evento", "event_type", msg.Type, "chatroom_id", msg.ChatroomID)
}
