// Package handle_message implementa los dos callbacks que reciben los
// adapters: OnReady y Handle.
package handle_message

import (
	"context"

	"go.uber.org/zap"

	"boobaBot/internal/app/events"
	"boobaBot/internal/domain"
	"boobaBot/internal/usecase/commands"
)

type Interactor struct {
	router *commands.Router
	out    domain.OutgoingMessagePort
	events domain.EventPublisher
	log    *zap.SugaredLogger
}

func NewInteractor(out domain.OutgoingMessagePort, router *commands.Router, pub domain.EventPublisher, log *zap.SugaredLogger) *Interactor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Interactor{
		router: router,
		out:    out,
		events: pub,
		log:    log,
	}
}

func (uc *Interactor) Handle(ctx context.Context, msg domain.Message) error {
	if uc.events != nil {
		uc.events.Publish(events.TopicChatMessage, events.NewChatMessageDTO(msg))
	}
	return uc.router.Handle(ctx, msg, uc.out)
}

// OnReady solo registra la identidad; no toca el contador.
func (uc *Interactor) OnReady(_ context.Context, id domain.Identity) {
	uc.log.Infow("conectado", "platform", id.Platform, "username", id.Username, "user_id", id.UserID)
	if uc.events != nil {
		uc.events.Publish(events.TopicBotReady, events.NewReadyDTO(id))
	}
}
