package outs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"boobaBot/internal/domain"
)

var ErrNoSender = errors.New("outs: no hay sender registrado")

// Sender es la interfaz que implementan los adapters de salida (Discord, Twitch, Kick).
type Sender interface {
	SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error
}

// MultiSender enruta cada respuesta al adapter de la plataforma de origen.
type MultiSender struct {
	mu      sync.RWMutex
	senders map[domain.Platform]Sender
}

func NewMultiSender() *MultiSender {
	return &MultiSender{
		senders: make(map[domain.Platform]Sender),
	}
}

func (m *MultiSender) Register(platform domain.Platform, sender Sender) {
	if m == nil || sender == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.senders[platform] = sender
}

func (m *MultiSender) Unregister(platform domain.Platform) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.senders, platform)
}

func (m *MultiSender) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if m == nil {
		return ErrNoSender
	}
	m.mu.RLock()
	sender, ok := m.senders[platform]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w para la plataforma %s", ErrNoSender, platform)
	}

	return sender.SendMessage(ctx, platform, channelID, text)
}
