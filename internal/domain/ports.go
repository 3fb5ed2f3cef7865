//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks
package domain

import "context"

// OutgoingMessagePort envía texto al canal indicado de una plataforma.
type OutgoingMessagePort interface {
	SendMessage(ctx context.Context, platform Platform, channelID, text string) error
}

// EventPublisher lo implementa el bus de eventos de la app.
type EventPublisher interface {
	Publish(topic string, payload any)
}
