package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"boobaBot/internal/app/events"
	"boobaBot/internal/domain"
	"boobaBot/internal/infrastructure/config"
	"boobaBot/internal/infrastructure/logging"
	discordadapter "boobaBot/internal/interface/adapters/discord"
	kickadapter "boobaBot/internal/interface/adapters/kick"
	twitchadapter "boobaBot/internal/interface/adapters/twitch"
	"boobaBot/internal/interface/outs"
	"boobaBot/internal/usecase/commands"
	"boobaBot/internal/usecase/handle_message"
	"boobaBot/internal/usecase/notifications"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	token, err := config.ReadToken(cfg.TokenFile)
	if err != nil {
		log.Fatalw("no se pudo leer el token", "path", cfg.TokenFile, "error", err)
	}

	// ---------- 1) Estado compartido y bus ----------

	counter := domain.NewCounter()
	bus := events.NewBus(log.Named("events"))
	defer bus.Close()

	eventLogger := notifications.NewEventLogger(log.Named("events"))

	// ---------- 2) Router de comandos ----------

	router := commands.NewRouter(log.Named("commands"))
	commands.RegisterBuiltins(router, counter, bus, cfg.FunnyNumbers)

	// ---------- 3) Adapters ----------

	discordAd, err := discordadapter.NewAdapter(discordadapter.Config{
		Token:       token,
		SendTimeout: cfg.SendTimeout,
	}, log.Named("discord"))
	if err != nil {
		log.Fatalw("error creando cliente de discord", "error", err)
	}

	multiOut := outs.NewMultiSender()
	multiOut.Register(domain.PlatformDiscord, discordAd)

	uc := handle_message.NewInteractor(multiOut, router, bus, log.Named("bot"))

	discordAd.SetHandler(uc.Handle)
	discordAd.SetReadyHandler(uc.OnReady)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		eventLogger.Run(ctx, bus)
	}()

	if cfg.TwitchEnabled() {
		twitchAd := twitchadapter.NewAdapter(twitchadapter.Config{
			Username:   cfg.TwitchUsername,
			OAuthToken: cfg.TwitchToken,
			Channels:   cfg.TwitchChannels,
		}, log.Named("twitch"))
		twitchAd.SetHandler(uc.Handle)
		twitchAd.SetReadyHandler(uc.OnReady)
		multiOut.Register(domain.PlatformTwitch, twitchAd)

		wg.Add(1)
		go func() {
			defer wg.Done()
			runOptional(ctx, log, domain.PlatformTwitch, twitchAd.Start)
		}()
	}

	if cfg.KickEnabled() {
		kickAd := kickadapter.NewAdapter(kickadapter.Config{
			AccessToken:       cfg.KickToken,
			BroadcasterUserID: cfg.KickBroadcasterUserID,
			ChatroomID:        cfg.KickChatroomID,
			EventHandler:      eventLogger.HandleKickMessage,
		}, log.Named("kick"))
		kickAd.SetHandler(uc.Handle)
		kickAd.SetReadyHandler(uc.OnReady)
		multiOut.Register(domain.PlatformKick, kickAd)

		wg.Add(1)
		go func() {
			defer wg.Done()
			runOptional(ctx, log, domain.PlatformKick, kickAd.Start)
		}()
	}

	log.Info("Iniciando bot...")

	// Discord es obligatorio: si no abre, el proceso termina.
	if err := discordAd.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalw("discord terminó con error", "error", err)
	}

	wg.Wait()
	log.Info("Bot apagado.")
}

// runOptional arranca una plataforma secundaria; sus errores no tumban el bot.
func runOptional(ctx context.Context, log *zap.SugaredLogger, platform domain.Platform, start func(context.Context) error) {
	if err := start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("adapter terminó con error", "platform", platform, "error", err)
		return
	}
}
