package main

import (
	"hoteladmin/config"
	"hoteladmin/di"
	"hoteladmin/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel Admin Console API
// @version 1.0
// @description Session-scoped CRUD panels for hotels, rooms, guests, bookings and payments.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize console")
	}

	http.Serve()
}
