// Solver web service: accepts puzzles over HTTP, solves them by
// constraint propagation, and remembers solutions in storage when
// the backends are reachable.
package main

import (
	"fmt"
	"os"

	"github.com/Groberts93/sudoku-solver/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil &&
		os.Getenv("LOG_LEVEL") != "" {
		logger = logger.Level(level)
	}

	// storage is optional: without it the service still solves,
	// it just re-solves repeat puzzles
	persist := true
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		logger.Warn().Err(err).Msg("running without persistence")
		persist = false
	} else {
		defer storage.Close()
		logger.Info().Str("cache", cacheId).Str("database", databaseId).
			Msg("storage connected")
	}

	e := gin.Default()
	registerRoutes(e, logger, persist)

	// sense the runtime environment: hosted platforms set PORT
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("serving")
	if err := e.Run(fmt.Sprintf(":%s", port)); err != nil {
		logger.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
