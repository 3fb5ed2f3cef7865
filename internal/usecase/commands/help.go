package commands

import (
	"context"
	"strings"

	"github.com/samber/lo"
)

const NameHelp = "!help"

type HelpCommand struct {
	text string
}

// NewHelpCommand arma el texto una sola vez a partir del catálogo, así cada
// invocación responde exactamente lo mismo.
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{text: HelpText(BuiltinCommandCatalog())}
}

func (c *HelpCommand) Name() string {
	return NameHelp
}

func (c *HelpCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	cmdCtx.Reply(ctx, c.text)
	return nil
}

func HelpText(catalog []CommandDescriptor) string {
	lines := lo.Map(catalog, func(d CommandDescriptor, _ int) string {
		return d.Usage + " - " + d.Description
	})
	return "Help:\n" + strings.Join(lines, "\n")
}
