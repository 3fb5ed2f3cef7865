package outs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"boobaBot/internal/domain"
	"boobaBot/internal/mocks"
)

func TestMultiSender_RoutesByPlatform(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	discord := mocks.NewMockOutgoingMessagePort(ctrl)
	twitch := mocks.NewMockOutgoingMessagePort(ctrl)

	m := NewMultiSender()
	m.Register(domain.PlatformDiscord, discord)
	m.Register(domain.PlatformTwitch, twitch)

	discord.EXPECT().SendMessage(gomock.Any(), domain.PlatformDiscord, "1", "hi").Return(nil)
	twitch.EXPECT().SendMessage(gomock.Any(), domain.PlatformTwitch, "#chan", "hey").Return(nil)

	req.NoError(m.SendMessage(context.Background(), domain.PlatformDiscord, "1", "hi"))
	req.NoError(m.SendMessage(context.Background(), domain.PlatformTwitch, "#chan", "hey"))
}

func TestMultiSender_MissingSender(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	kick := mocks.NewMockOutgoingMessagePort(ctrl)

	m := NewMultiSender()
	m.Register(domain.PlatformKick, kick)
	m.Unregister(domain.PlatformKick)

	err := m.SendMessage(context.Background(), domain.PlatformKick, "1", "hi")
	req.ErrorIs(err, ErrNoSender)

	var nilSender *MultiSender
	req.ErrorIs(nilSender.SendMessage(context.Background(), domain.PlatformKick, "1", "hi"), ErrNoSender)
}
