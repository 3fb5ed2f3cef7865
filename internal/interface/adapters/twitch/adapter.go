// Package twitchadapter adapter for twitch
package twitchadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/adeithe/go-twitch/irc"
	"go.uber.org/zap"

	"boobaBot/internal/domain"
)

var ErrNotConnected = errors.New("twitch: conexión no inicializada o cerrada")

type Config struct {
	Username   string
	OAuthToken string
	Channels   []string
}

type MessageHandler func(ctx context.Context, msg domain.Message) error
type ReadyHandler func(ctx context.Context, id domain.Identity)

type Adapter struct {
	cfg     Config
	log     *zap.SugaredLogger
	handler MessageHandler
	ready   ReadyHandler

	mu   sync.RWMutex
	conn *irc.Conn
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

func (a *Adapter) Start(ctx context.Context) error {
	if len(a.cfg.Channels) == 0 {
		return errors.New("twitch: no hay canales configurados")
	}
	if a.cfg.Username == "" || a.cfg.OAuthToken == "" {
		return errors.New("twitch: username u oauth token vacíos")
	}

	conn := &irc.Conn{}

	if err := conn.SetLogin(a.cfg.Username, formatOAuthToken(a.cfg.OAuthToken)); err != nil {
		return fmt.Errorf("twitch: SetLogin: %w", err)
	}

	conn.OnMessage(func(cm irc.ChatMessage) {
		a.mu.RLock()
		handler := a.handler
		a.mu.RUnlock()
		if handler == nil {
			return
		}

		// go-twitch entrega los mensajes en serie; cada uno va en su goroutine
		// igual que en Discord.
		go func() {
			if err := handler(ctx, mapChatMessageToDomain(cm)); err != nil {
				a.log.Errorw("twitch: error en handler", "channel_id", cm.Channel, "error", err)
			}
		}()
	})

	if err := conn.Connect(); err != nil {
		return fmt.Errorf("twitch: Connect: %w", err)
	}

	if err := conn.Join(a.cfg.Channels...); err != nil {
		conn.Close()
		return fmt.Errorf("twitch: Join: %w", err)
	}

	a.mu.Lock()
	a.conn = conn
	ready := a.ready
	a.mu.Unlock()

	a.log.Infow("twitch: conectado", "username", a.cfg.Username, "channels", a.cfg.Channels)
	if ready != nil {
		ready(ctx, domain.Identity{Platform: domain.PlatformTwitch, Username: a.cfg.Username})
	}

	<-ctx.Done()

	a.mu.Lock()
	if a.conn != nil {
		a.conn.Close()
		a.conn = nil
	}
	a.mu.Unlock()

	return ctx.Err()
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformTwitch {
		return fmt.Errorf("twitch adapter no soporta plataforma %s", platform)
	}

	a.mu.RLock()
	conn := a.conn
	a.mu.RUnlock()

	if conn == nil || !conn.IsConnected() {
		return ErrNotConnected
	}

	// Twitch no acepta saltos de línea en PRIVMSG; !help se manda en una línea.
	text = strings.Join(strings.Fields(strings.ReplaceAll(text, "\n", " | ")), " ")

	a.log.Debugw("twitch: Say", "channel_id", channelID, "text", text)
	return conn.Say(channelID, text)
}

func formatOAuthToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" || strings.HasPrefix(token, "oauth:") {
		return token
	}
	return "oauth:" + token
}

func mapChatMessageToDomain(cm irc.ChatMessage) domain.Message {
	return domain.Message{
		Platform:  domain.PlatformTwitch,
		ChannelID: cm.Channel,
		UserID:    strconv.FormatInt(cm.Sender.ID, 10),
		Username:  cm.Sender.DisplayName,
		Text:      cm.Text,
	}
}
