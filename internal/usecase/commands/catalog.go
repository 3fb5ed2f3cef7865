package commands

import "boobaBot/internal/domain"

// CommandDescriptor describe un comando incluido en el bot.
type CommandDescriptor struct {
	Name        string
	Description string
	Usage       string
}

// BuiltinCommandCatalog está en el orden en que aparece en !help.
func BuiltinCommandCatalog() []CommandDescriptor {
	return []CommandDescriptor{
		{
			Name:        NameBooba,
			Description: "Add 1 to the booba count",
			Usage:       "!booba",
		},
		{
			Name:        NameCount,
			Description: "Show the current count",
			Usage:       "!boobacount",
		},
		{
			Name:        NameReset,
			Description: "Reset the counter",
			Usage:       "!boobareset",
		},
		{
			Name:        NameSave,
			Description: "Set the counter to a specific value",
			Usage:       "!boobasave [count]",
		},
		{
			Name:        NameHelp,
			Description: "This msg",
			Usage:       "!help",
		},
	}
}

// RegisterBuiltins registra los cinco comandos sobre el mismo contador.
func RegisterBuiltins(r *Router, counter *domain.Counter, events domain.EventPublisher, funnyNumbers bool) {
	r.Register(NewBoobaCommand(counter, events))
	r.Register(NewCountCommand(counter, funnyNumbers))
	r.Register(NewResetCommand(counter, events))
	r.Register(NewSaveCommand(counter, events))
	r.Register(NewHelpCommand())
}
