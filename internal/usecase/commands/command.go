package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"boobaBot/internal/app/events"
	"boobaBot/internal/domain"
)

type Command interface {
	Name() string
	Handle(ctx context.Context, c *Context) error
}

type Context struct {
	Message domain.Message
	Out     domain.OutgoingMessagePort
	Log     *zap.SugaredLogger

	Raw  string
	Args []string
}

// Arg devuelve el argumento i, o "" y false si no existe.
func (c *Context) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	return c.Args[i], true
}

// Reply envía text al canal de origen. Un fallo de envío solo se registra:
// no se reintenta ni se propaga al dispatcher.
func (c *Context) Reply(ctx context.Context, text string) {
	if c.Out == nil {
		return
	}
	if err := c.Out.SendMessage(ctx, c.Message.Platform, c.Message.ChannelID, text); err != nil {
		c.Log.Errorw("commands: error enviando respuesta",
			"platform", c.Message.Platform,
			"channel_id", c.Message.ChannelID,
			"error", err,
		)
	}
}

// counterDeps agrupa lo que necesitan los comandos que tocan el contador.
type counterDeps struct {
	counter *domain.Counter
	events  domain.EventPublisher
}

func (d counterDeps) publishChange(name string, msg domain.Message, value uint64) {
	if d.events == nil {
		return
	}
	d.events.Publish(events.TopicCounterChanged, events.CounterChangedDTO{
		Command:   name,
		Platform:  string(msg.Platform),
		ChannelID: msg.ChannelID,
		Value:     value,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
