package commands

import (
	"context"

	"boobaBot/internal/domain"
)

const (
	NameBooba = "!booba"

	replyCounted = "Booba Counted."
)

type BoobaCommand struct {
	counterDeps
}

func NewBoobaCommand(counter *domain.Counter, events domain.EventPublisher) *BoobaCommand {
	return &BoobaCommand{counterDeps{counter: counter, events: events}}
}

func (c *BoobaCommand) Name() string {
	return NameBooba
}

func (c *BoobaCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	v := c.counter.Increment()
	c.publishChange(NameBooba, cmdCtx.Message, v)

	cmdCtx.Reply(ctx, replyCounted)
	return nil
}
