package kickadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	kicksdk "github.com/glichtv/kick-sdk"
	kickchatwrapper "github.com/johanvandegriff/kick-chat-wrapper"
	"go.uber.org/zap"

	"boobaBot/internal/domain"
)

var ErrNotConnected = errors.New("kick: cliente SDK no inicializado (Start no llamado o falló)")

type Config struct {
	// Token del bot (flujo OAuth de Kick)
	AccessToken string

	BroadcasterUserID int

	// ID del chatroom, distinto del userID.
	// Se obtiene de https://kick.com/api/v2/channels/{slug}, campo "chatroom":{"id":...}
	ChatroomID int

	// EventHandler recibe los mensajes crudos del chatroom que no son chat (subs, tips...)
	EventHandler EventHandler
}

type MessageHandler func(ctx context.Context, msg domain.Message) error
type ReadyHandler func(ctx context.Context, id domain.Identity)
type EventHandler func(msg kickchatwrapper.ChatMessage)

type Adapter struct {
	cfg     Config
	log     *zap.SugaredLogger
	handler MessageHandler
	ready   ReadyHandler

	mu  sync.RWMutex
	sdk *kicksdk.Client
	ws  *kickchatwrapper.Client
}

func NewAdapter(cfg Config, log *zap.SugaredLogger) *Adapter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Adapter{cfg: cfg, log: log}
}

func (a *Adapter) SetHandler(h MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) SetReadyHandler(h ReadyHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ready = h
}

func (a *Adapter) validate() error {
	if a.cfg.AccessToken == "" {
		return errors.New("kick: AccessToken vacío")
	}
	if a.cfg.ChatroomID == 0 {
		return errors.New("kick: ChatroomID no configurado")
	}
	if a.cfg.BroadcasterUserID == 0 {
		return errors.New("kick: BroadcasterUserID no configurado")
	}
	return nil
}

func (a *Adapter) Start(ctx context.Context) error {
	if err := a.validate(); err != nil {
		return err
	}

	// REST (SDK oficial) para enviar
	sdkClient := kicksdk.NewClient(
		kicksdk.WithAccessTokens(kicksdk.AccessTokens{
			UserAccessToken: a.cfg.AccessToken,
		}),
	)

	// WebSocket para escuchar el chat
	wsClient, err := kickchatwrapper.NewClient()
	if err != nil {
		return fmt.Errorf("kick: error creando ws client: %w", err)
	}

	if err := wsClient.JoinChannelByID(a.cfg.ChatroomID); err != nil {
		return fmt.Errorf("kick: JoinChannelByID: %w", err)
	}

	msgChan := wsClient.ListenForMessages()

	a.mu.Lock()
	a.sdk = sdkClient
	a.ws = wsClient
	ready := a.ready
	a.mu.Unlock()

	a.log.Infow("kick: conectado", "chatroom_id", a.cfg.ChatroomID, "broadcaster_user_id", a.cfg.BroadcasterUserID)
	if ready != nil {
		ready(ctx, domain.Identity{Platform: domain.PlatformKick, UserID: strconv.Itoa(a.cfg.BroadcasterUserID)})
	}

	go a.listen(ctx, msgChan)

	<-ctx.Done()

	a.mu.Lock()
	if a.ws != nil {
		a.ws.Close()
		a.ws = nil
	}
	a.sdk = nil
	a.mu.Unlock()

	return ctx.Err()
}

func (a *Adapter) listen(ctx context.Context, msgChan <-chan kickchatwrapper.ChatMessage) {
	for {
		select {
		case m, ok := <-msgChan:
			if !ok {
				a.log.Warn("kick: canal de mensajes cerrado")
				return
			}
			a.dispatch(ctx, m)
		case <-ctx.Done():
			return
		}
	}
}

func (a *Adapter) dispatch(ctx context.Context, m kickchatwrapper.ChatMessage) {
	if h := a.cfg.EventHandler; h != nil {
		go h(m)
	}

	a.mu.RLock()
	handler := a.handler
	a.mu.RUnlock()
	if handler == nil {
		return
	}

	go func() {
		if err := handler(ctx, mapChatMessageToDomain(m)); err != nil {
			a.log.Errorw("kick: error en handler", "chatroom_id", m.ChatroomID, "error", err)
		}
	}()
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformKick {
		return fmt.Errorf("kick adapter no soporta plataforma %s", platform)
	}

	a.mu.RLock()
	client := a.sdk
	a.mu.RUnlock()

	if client == nil {
		return ErrNotConnected
	}
	if text == "" {
		return nil
	}

	resp, err := client.Chat().PostMessage(ctx, kicksdk.PostChatMessageInput{
		BroadcasterUserID: a.cfg.BroadcasterUserID,
		Content:           text,
		PosterType:        kicksdk.MessagePosterUser,
	})
	if err != nil {
		return fmt.Errorf("kick: error enviando mensaje de chat: %w", err)
	}

	if !resp.Payload.IsSent {
		meta := resp.ResponseMetadata
		a.log.Warnw("kick: PostMessage rechazado",
			"status", meta.StatusCode,
			"message_id", resp.Payload.MessageID,
			"kick_message", meta.KickMessage,
			"kick_error", meta.KickError,
			"description", meta.KickErrorDescription,
		)
		return fmt.Errorf("kick: mensaje no fue aceptado por la API (status %d)", meta.StatusCode)
	}

	a.log.Debugw("kick: mensaje entregado", "message_id", resp.Payload.MessageID, "channel_id", channelID)
	return nil
}

func mapChatMessageToDomain(m kickchatwrapper.ChatMessage) domain.Message {
	return domain.Message{
		Platform:  domain.PlatformKick,
		ChannelID: strconv.Itoa(m.ChatroomID),
		UserID:    strconv.Itoa(m.Sender.ID),
		Username:  m.Sender.Username,
		Text:      m.Content,
	}
}
