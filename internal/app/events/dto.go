package events

import (
	"time"

	"boobaBot/internal/domain"
)

// ChatMessageDTO es el payload de TopicChatMessage.
type ChatMessageDTO struct {
	Platform  string `json:"platform"`
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	IsPrivate bool   `json:"is_private"`
	Timestamp string `json:"timestamp"`
}

func NewChatMessageDTO(msg domain.Message) ChatMessageDTO {
	return ChatMessageDTO{
		Platform:  string(msg.Platform),
		ChannelID: msg.ChannelID,
		UserID:    msg.UserID,
		Username:  msg.Username,
		Text:      msg.Text,
		IsPrivate: msg.IsPrivate,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// ReadyDTO es el payload de TopicBotReady.
type ReadyDTO struct {
	Platform string `json:"platform"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func NewReadyDTO(id domain.Identity) ReadyDTO {
	return ReadyDTO{
		Platform: string(id.Platform),
		UserID:   id.UserID,
		Username: id.Username,
	}
}

// CounterChangedDTO es el payload de TopicCounterChanged.
type CounterChangedDTO struct {
	Command   string `json:"command"`
	Platform  string `json:"platform"`
	ChannelID string `json:"channel_id"`
	Value     uint64 `json:"value"`
	Timestamp string `json:"timestamp"`
}
