package main

import (
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"telegram-report-bot/internal/config"
	"telegram-report-bot/internal/handlers"
	"telegram-report-bot/internal/scheduler"
	"telegram-report-bot/internal/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram auth")
	}
	log.Info().Str("account", bot.Self.UserName).Msg("authorized")

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer db.Close()

	loc := cfg.Location()
	h := handlers.New(bot, db, cfg.OwnerID, loc)

	sched, err := scheduler.Start(h, loc)
	if err != nil {
		log.Fatal().Err(err).Msg("start scheduler")
	}
	defer sched.Shutdown()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	log.Info().Msg("bot is running")
	for upd := range bot.GetUpdatesChan(updateConfig) {
		h.HandleUpdate(upd)
	}
}
