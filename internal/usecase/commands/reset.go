package commands

import (
	"context"

	"boobaBot/internal/domain"
)

const (
	NameReset = "!boobareset"

	replyReset = "Count reset."
)

type ResetCommand struct {
	counterDeps
}

func NewResetCommand(counter *domain.Counter, events domain.EventPublisher) *ResetCommand {
	return &ResetCommand{counterDeps{counter: counter, events: events}}
}

func (c *ResetCommand) Name() string {
	return NameReset
}

func (c *ResetCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	c.counter.Store(0)
	c.publishChange(NameReset, cmdCtx.Message, 0)

	cmdCtx.Reply(ctx, replyReset)
	return nil
}
