package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults when nothing is set", func(t *testing.T) {
		req := require.New(t)
		t.Chdir(t.TempDir())
		t.Setenv("BOOBABOT_TOKEN_FILE", "")
		os.Unsetenv("BOOBABOT_TOKEN_FILE")

		cfg, err := Load()

		req.NoError(err)
		req.Equal("secret.txt", cfg.TokenFile)
		req.False(cfg.FunnyNumbers)
		req.Equal(10*time.Second, cfg.SendTimeout)
		req.False(cfg.TwitchEnabled())
		req.False(cfg.KickEnabled())
	})

	t.Run("should read optional platforms from the environment", func(t *testing.T) {
		req := require.New(t)
		t.Chdir(t.TempDir())
		t.Setenv("BOOBABOT_FUNNY_NUMBERS", "true")
		t.Setenv("BOOBABOT_SEND_TIMEOUT", "3s")
		t.Setenv("TWITCH_BOT_USERNAME", "boobabot")
		t.Setenv("TWITCH_BOT_ACCESS_TOKEN", "oauth:abc")
		t.Setenv("TWITCH_BOT_CHANNELS", "one,two")
		t.Setenv("KICK_BOT_TOKEN", "kick")
		t.Setenv("KICK_BROADCASTER_USER_ID", "12")
		t.Setenv("KICK_CHATROOM_ID", "34")

		cfg, err := Load()

		req.NoError(err)
		req.True(cfg.FunnyNumbers)
		req.Equal(3*time.Second, cfg.SendTimeout)
		req.Equal([]string{"one", "two"}, cfg.TwitchChannels)
		req.True(cfg.TwitchEnabled())
		req.True(cfg.KickEnabled())
	})

	t.Run("should fail on malformed values", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("KICK_CHATROOM_ID", "not-a-number")

		_, err := Load()

		require.Error(t, err)
	})
}

func TestReadToken(t *testing.T) {
	dir := t.TempDir()

	t.Run("should trim the token", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(dir, "secret.txt")
		req.NoError(os.WriteFile(path, []byte("  abc.def\n"), 0o600))

		token, err := ReadToken(path)

		req.NoError(err)
		req.Equal("abc.def", token)
	})

	t.Run("should fail when the file is missing", func(t *testing.T) {
		_, err := ReadToken(filepath.Join(dir, "missing.txt"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("should fail when the file is blank", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(dir, "blank.txt")
		req.NoError(os.WriteFile(path, []byte(" \n\t"), 0o600))

		_, err := ReadToken(path)

		req.ErrorIs(err, ErrEmptyToken)
	})
}
