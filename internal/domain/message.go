package domain

type Platform string

const (
	PlatformDiscord Platform = "discord"
	PlatformTwitch  Platform = "twitch"
	PlatformKick    Platform = "kick"
)

// Message es el mensaje entrante ya normalizado por el adapter de cada plataforma.
// ChannelID es el canal de origen: la respuesta siempre vuelve ahí.
type Message struct {
	Platform  Platform
	ChannelID string
	UserID    string
	Username  string
	Text      string
	IsPrivate bool

	// IsBot lo rellena el adapter cuando la plataforma lo informa (Discord)
	IsBot bool
}
