package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrEmptyToken = errors.New("config: el archivo de token está vacío")

type Config struct {
	TokenFile    string        `env:"BOOBABOT_TOKEN_FILE" envDefault:"secret.txt"`
	Debug        bool          `env:"BOOBABOT_DEBUG" envDefault:"false"`
	FunnyNumbers bool          `env:"BOOBABOT_FUNNY_NUMBERS" envDefault:"false"`
	SendTimeout  time.Duration `env:"BOOBABOT_SEND_TIMEOUT" envDefault:"10s"`

	// Twitch y Kick son opcionales: si faltan credenciales no se levantan.
	TwitchUsername string   `env:"TWITCH_BOT_USERNAME"`
	TwitchToken    string   `env:"TWITCH_BOT_ACCESS_TOKEN"`
	TwitchChannels []string `env:"TWITCH_BOT_CHANNELS" envSeparator:","`

	KickToken             string `env:"KICK_BOT_TOKEN"`
	KickBroadcasterUserID int    `env:"KICK_BROADCASTER_USER_ID"`
	KickChatroomID        int    `env:"KICK_CHATROOM_ID"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) TwitchEnabled() bool {
	return c.TwitchUsername != "" && c.TwitchToken != "" && len(c.TwitchChannels) > 0
}

func (c *Config) KickEnabled() bool {
	return c.KickToken != "" && c.KickBroadcasterUserID != 0 && c.KickChatroomID != 0
}

// ReadToken lee el token del bot de Discord. Se recortan espacios y saltos de
// línea porque el archivo suele editarse a mano.
func ReadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config: leyendo token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyToken, path)
	}
	return token, nil
}
