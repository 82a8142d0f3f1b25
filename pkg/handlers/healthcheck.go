package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etherlabsio/healthcheck/v2"

	relay "github.com/chatrelay/relay/pkg"
)

func Healthcheck(cfg *relay.Config) http.Handler {
	return healthcheck.Handler(
		healthcheck.WithTimeout(5*time.Second),
		healthcheck.WithChecker(
			"provider", healthcheck.CheckerFunc(
				func(ctx context.Context) error {
					if cfg.Provider == nil || modelName(cfg) == "" {
						cfg.Logger.Errorf("Provider is not configured")
						return errors.New("provider is not configured")
					}
					return nil
				},
			),
		),
	)
}
