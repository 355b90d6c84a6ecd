package main

import (
	"fmt"
	"os"

	"diabetes-predictor/internal/config"
	"diabetes-predictor/internal/database"
	"diabetes-predictor/internal/predictor"
	"diabetes-predictor/internal/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.SessionSecret == "" {
		log.Warn().Msg("SESSION_SECRET is not set, sessions will not survive a restart")
	}

	// артефакты грузятся до старта сервера и дальше не меняются
	p, err := predictor.Load(cfg.ModelPath, cfg.EncoderPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load model artifacts")
	}
	log.Info().Str("model", cfg.ModelPath).Str("encoder", cfg.EncoderPath).
		Strs("family_history", p.Encoder().Classes).Msg("model loaded")

	if err := database.Init(cfg.DBDriver, cfg.DBDSN); err != nil {
		log.Fatal().Err(err).Msg("failed to init database")
	}

	r, err := server.NewRouter(cfg, p)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
