package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/alayeseke/vybebot/internal/auth"
	"github.com/alayeseke/vybebot/internal/config"
	"github.com/alayeseke/vybebot/internal/logging"
	"github.com/alayeseke/vybebot/internal/reference"
	"github.com/alayeseke/vybebot/internal/report"
	"github.com/alayeseke/vybebot/internal/telegram"
	"github.com/alayeseke/vybebot/internal/tokens"
	"github.com/alayeseke/vybebot/internal/vybe"
)

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// A missing .env file is fine in production; env vars take over.
	_ = godotenv.Load()

	cfg := config.Load()
	if *debug {
		cfg.LogLevel = "debug"
	}

	log, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	log.Info("starting vybe analytics bot",
		zap.String("base_url", cfg.VybeBaseURL),
		zap.String("log_level", cfg.LogLevel))

	ref := reference.Load(cfg.ProgramTablePath, cfg.KnownAccountsPath, log)
	programs, accounts := ref.Counts()
	log.Info("reference tables ready",
		zap.Int("programs", programs),
		zap.Int("known_accounts", accounts))

	client := vybe.NewClient(cfg.VybeBaseURL, cfg.VybeAPIKey, log)
	registry := tokens.NewRegistry()
	resolver := tokens.NewResolver(registry, client, log)
	reports := report.NewAggregator(client, log)
	policy := auth.NewPolicyService(cfg.AdminUserIDs, cfg.AllowedUserIDs)

	bot, err := telegram.NewBot(cfg.TelegramToken, telegram.Deps{
		Vybe:      client,
		Registry:  registry,
		Resolver:  resolver,
		Reference: ref,
		Reports:   reports,
		Policy:    policy,
		Log:       log,
	})
	if err != nil {
		log.Error("failed to initialize telegram bot", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go bot.Start(ctx)
	log.Info("bot is running, press ctrl-c to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
}
