// main.go - Entry point for the Mini CRM backend

package main

import (
	"os"

	"github.com/rs/zerolog"

	"mini-crm/config"
	"mini-crm/database"
	"mini-crm/handlers"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection error")
	}

	r := handlers.NewRouter(db, cfg, log)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
