package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"boobaBot/internal/domain"
)

const (
	NameCount = "!boobacount"

	funnySuffix = " Haha funny number."
)

type CountCommand struct {
	counter *domain.Counter
	funny   bool
}

// NewCountCommand con funny=true añade el chiste cuando el número contiene
// "420" o "69".
func NewCountCommand(counter *domain.Counter, funny bool) *CountCommand {
	return &CountCommand{counter: counter, funny: funny}
}

func (c *CountCommand) Name() string {
	return NameCount
}

func (c *CountCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	v := c.counter.Load()

	response := fmt.Sprintf("There have been %d Booba.", v)
	if c.funny && isFunnyNumber(v) {
		response += funnySuffix
	}

	cmdCtx.Reply(ctx, response)
	return nil
}

func isFunnyNumber(v uint64) bool {
	s := strconv.FormatUint(v, 10)
	return strings.Contains(s, "420") || strings.Contains(s, "69")
}
