package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	relay "github.com/chatrelay/relay/pkg"
	"github.com/chatrelay/relay/pkg/cmd"
)

func main() {
	// Variables already set in the environment take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Unable to load .env file: %s", err)
	}

	newLogger := zap.NewDevelopment
	if relay.Production() {
		newLogger = zap.NewProduction
	}

	l, err := newLogger()
	if err != nil {
		log.Fatalf("Unable to initialize Zap logger: %s", err)
	}
	defer func() { _ = l.Sync() }()

	logger := l.Sugar()
	if err := cmd.Run(logger); err != nil {
		logger.Fatalf("Unable to start relay: %s", err)
	}
}
