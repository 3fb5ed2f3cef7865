package discordadapter

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"boobaBot/internal/domain"
)

func newTestAdapter(t *testing.T) (*Adapter, *[]domain.Message) {
	t.Helper()
	a, err := NewAdapter(Config{Token: "test-token"}, nil)
	require.NoError(t, err)

	a.session.State.User = &discordgo.User{ID: "bot-id", Username: "boobabot"}

	var got []domain.Message
	a.SetHandler(func(_ context.Context, msg domain.Message) error {
		got = append(got, msg)
		return nil
	})
	return a, &got
}

func messageCreate(authorID, guildID, content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "chan-1",
		GuildID:   guildID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID, Username: "user", Bot: bot},
	}}
}

func TestNewAdapter(t *testing.T) {
	req := require.New(t)

	_, err := NewAdapter(Config{}, nil)
	req.Error(err)

	a, err := NewAdapter(Config{Token: "abc"}, nil)
	req.NoError(err)
	req.Equal("Bot abc", a.session.Token)
	req.Equal(defaultSendTimeout, a.cfg.SendTimeout)
	req.NotZero(a.session.Identify.Intents & discordgo.IntentsMessageContent)
	req.NotZero(a.session.Identify.Intents & discordgo.IntentsGuildMessages)
	req.NotZero(a.session.Identify.Intents & discordgo.IntentsDirectMessages)
}

func TestAdapter_OnMessageCreate(t *testing.T) {
	req := require.New(t)
	a, got := newTestAdapter(t)

	a.onMessageCreate(a.session, messageCreate("user-1", "guild-1", "!booba", false))
	a.onMessageCreate(a.session, messageCreate("user-2", "", "!boobacount", false))

	// Own messages, other bots and empty events are ignored
	a.onMessageCreate(a.session, messageCreate("bot-id", "guild-1", "!booba", false))
	a.onMessageCreate(a.session, messageCreate("other-bot", "guild-1", "!booba", true))
	a.onMessageCreate(a.session, nil)
	a.onMessageCreate(a.session, &discordgo.MessageCreate{Message: &discordgo.Message{}})

	req.Len(*got, 2)
	req.Equal(domain.Message{
		Platform:  domain.PlatformDiscord,
		ChannelID: "chan-1",
		UserID:    "user-1",
		Username:  "user",
		Text:      "!booba",
	}, (*got)[0])
	req.True((*got)[1].IsPrivate)
}

func TestAdapter_OnReady(t *testing.T) {
	req := require.New(t)
	a, _ := newTestAdapter(t)

	var ids []domain.Identity
	a.SetReadyHandler(func(_ context.Context, id domain.Identity) {
		ids = append(ids, id)
	})

	a.onReady(a.session, &discordgo.Ready{User: &discordgo.User{ID: "bot-id", Username: "boobabot"}})
	a.onReady(a.session, &discordgo.Ready{})

	req.Equal([]domain.Identity{{Platform: domain.PlatformDiscord, UserID: "bot-id", Username: "boobabot"}}, ids)
}

func TestAdapter_SendMessage(t *testing.T) {
	req := require.New(t)
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	req.Error(a.SendMessage(ctx, domain.PlatformTwitch, "chan-1", "hi"))
	req.Error(a.SendMessage(ctx, domain.PlatformDiscord, "", "hi"))
	req.NoError(a.SendMessage(ctx, domain.PlatformDiscord, "chan-1", ""))
	req.ErrorIs(a.SendMessage(ctx, domain.PlatformDiscord, "chan-1", "hi"), ErrNotConnected)
}
