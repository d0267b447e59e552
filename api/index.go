package handler

import (
	"hoteladmin/config"
	"hoteladmin/di"
	"hoteladmin/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	console     http.Handler
	consoleOnce sync.Once
	consoleErr  error
)

// Handler is the serverless entrypoint. The console is built once per
// instance so panel state survives between invocations on a warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	consoleOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		console, consoleErr = di.InitializeService()
	})

	if consoleErr != nil {
		log.Error().Err(consoleErr).Msg("Failed to initialize console")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	console.ServeHTTP(w, r)
}
