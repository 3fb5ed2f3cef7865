package commands

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"boobaBot/internal/domain"
)

// Router resuelve la primera palabra del mensaje contra los comandos
// registrados. La comparación es exacta y distingue mayúsculas.
type Router struct {
	log      *zap.SugaredLogger
	cmdIndex map[string]Command
}

func NewRouter(log *zap.SugaredLogger) *Router {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Router{
		log:      log,
		cmdIndex: make(map[string]Command),
	}
}

func (r *Router) Register(cmd Command) {
	r.cmdIndex[cmd.Name()] = cmd
}

func (r *Router) Handle(ctx context.Context, msg domain.Message, out domain.OutgoingMessagePort) error {
	parts := strings.Fields(msg.Text)
	if len(parts) == 0 {
		return nil
	}

	cmdName := parts[0]
	cmd, ok := r.cmdIndex[cmdName]
	if !ok {
		return nil
	}

	r.log.Debugw("commands: ejecutando",
		"command", cmdName,
		"platform", msg.Platform,
		"channel_id", msg.ChannelID,
		"user_id", msg.UserID,
	)

	ctxCmd := &Context{
		Message: msg,
		Out:     out,
		Log:     r.log.With("command", cmdName),
		Raw:     strings.TrimSpace(msg.Text),
		Args:    parts[1:],
	}

	return cmd.Handle(ctx, ctxCmd)
}
