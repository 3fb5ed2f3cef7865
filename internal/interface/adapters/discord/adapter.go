// Package discordadapter conecta el bot al gateway de Discord vía discordgo.
package discordadapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"boobaBot/internal/domain"
)

const defaultSendTimeout = 10 * time.Second

var ErrNotConnected = errors.New("discord: sesión no abierta")

type Config struct {
	Token       string
	SendTimeout time.Duration
}

type MessageHandler func(ctx context.Context, msg domain.Message) error
type ReadyHandler func(ctx context.Context, id domain.Identity)

type Adapter struct {
	cfg     Config
	log     *zap.SugaredLogger
	session *discordgo.Session

	mu      sync.RWMutex
	ctx     context.Context
	handler MessageHandler
	ready   ReadyHandler
	open    bool
}

// NewAdapter crea la sesión sin conectarla. Falla solo si discordgo rechaza el token.
func NewAdapter(cfg Config, log *zap.SugaredLogger) (*Adapter, error) {
	if cfg.Token == "" {
		return nil, errors.New("discord: token vacío")
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord: creando sesión: %w", err)
	}
	session.ShouldRetryOnRateLimit = true
	session.MaxRestRetries = 3
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return &Adapter{
		cfg:     cfg,
		log:     log,
		session: session,
		ctx:     context.Background(),
	}, nil
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

// Start abre el websocket y bloquea hasta que se cancele ctx. La reconexión
// la gestiona discordgo.
func (a *Adapter) Start(ctx context.Context) error {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	a.session.AddHandler(a.onReady)
	a.session.AddHandler(a.onMessageCreate)

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("discord: Open: %w", err)
	}

	a.mu.Lock()
	a.open = true
	a.mu.Unlock()

	a.log.Info("discord: sesión abierta")

	<-ctx.Done()

	a.mu.Lock()
	a.open = false
	a.mu.Unlock()

	if err := a.session.Close(); err != nil {
		a.log.Warnw("discord: error cerrando sesión", "error", err)
	}

	return ctx.Err()
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformDiscord {
		return fmt.Errorf("discord adapter no soporta plataforma %s", platform)
	}
	if channelID == "" {
		return errors.New("discord: channel ID vacío")
	}
	if text == "" {
		return nil
	}

	a.mu.RLock()
	open := a.open
	a.mu.RUnlock()
	if !open {
		return ErrNotConnected
	}

	sendCtx, cancel := context.WithTimeout(ctx, a.cfg.SendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := a.session.ChannelMessageSend(channelID, text)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("discord: ChannelMessageSend: %w", err)
		}
		return nil
	case <-sendCtx.Done():
		return fmt.Errorf("discord: timeout enviando mensaje: %w", sendCtx.Err())
	}
}

func (a *Adapter) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	if r == nil || r.User == nil {
		return
	}

	a.mu.RLock()
	ready := a.ready
	ctx := a.ctx
	a.mu.RUnlock()
	if ready == nil {
		return
	}

	ready(ctx, domain.Identity{
		Platform: domain.PlatformDiscord,
		UserID:   r.User.ID,
		Username: r.User.Username,
	})
}

// onMessageCreate corre en su propia goroutine por evento (discordgo).
func (a *Adapter) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil {
		return
	}
	if m.Author.Bot || isSelf(s, m.Author.ID) {
		return
	}

	a.mu.RLock()
	handler := a.handler
	ctx := a.ctx
	a.mu.RUnlock()
	if handler == nil {
		return
	}

	if err := handler(ctx, mapMessageToDomain(m)); err != nil {
		a.log.Errorw("discord: error en handler", "channel_id", m.ChannelID, "error", err)
	}
}

func isSelf(s *discordgo.Session, authorID string) bool {
	if s == nil || s.State == nil || s.State.User == nil {
		return false
	}
	return s.State.User.ID == authorID
}

func mapMessageToDomain(m *discordgo.MessageCreate) domain.Message {
	return domain.Message{
		Platform:  domain.PlatformDiscord,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
		Text:      m.Content,
		IsPrivate: m.GuildID == "",
		IsBot:     m.Author.Bot,
	}
}
