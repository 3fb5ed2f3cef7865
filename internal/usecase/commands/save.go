package commands

import (
	"context"
	"fmt"
	"strconv"

	"boobaBot/internal/domain"
)

const (
	NameSave = "!boobasave"

	replyMissingCount = "Need a count to set to."
	replyNotANumber   = "The count needs to be a number."
)

type SaveCommand struct {
	counterDeps
}

func NewSaveCommand(counter *domain.Counter, events domain.EventPublisher) *SaveCommand {
	return &SaveCommand{counterDeps{counter: counter, events: events}}
}

func (c *SaveCommand) Name() string {
	return NameSave
}

func (c *SaveCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	arg, ok := cmdCtx.Arg(0)
	if !ok {
		cmdCtx.Reply(ctx, replyMissingCount)
		return nil
	}

	n, err := parseCount(arg)
	if err != nil {
		cmdCtx.Log.Debugw("commands: conteo inválido", "arg", arg, "error", err)
		cmdCtx.Reply(ctx, replyNotANumber)
		return nil
	}

	c.counter.Store(n)
	c.publishChange(NameSave, cmdCtx.Message, n)

	cmdCtx.Reply(ctx, fmt.Sprintf("Count has been set to %d.", n))
	return nil
}

// parseCount acepta solo dígitos decimales dentro del rango de uint nativo.
// ParseUint ya rechaza signos, decimales y desbordamientos.
func parseCount(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, strconv.IntSize)
}
