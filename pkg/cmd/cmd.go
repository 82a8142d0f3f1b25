package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	relay "github.com/chatrelay/relay/pkg"
	"github.com/chatrelay/relay/pkg/audit"
	"github.com/chatrelay/relay/pkg/env/model"
	"github.com/chatrelay/relay/pkg/env/server"
	"github.com/chatrelay/relay/pkg/handlers"
	"github.com/chatrelay/relay/pkg/middleware"
	"github.com/chatrelay/relay/pkg/provider"
	"github.com/chatrelay/relay/pkg/version"
)

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute
	shutdownTimeout   = 5 * time.Second

	// Lets the provider's own deadline fire before the request is cut off.
	requestTimeoutGrace = 5 * time.Second
	writeTimeoutGrace   = 10 * time.Second
)

func Run(logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("Starting relay version: %s", version.Version())

	me := model.NewModelEnv()
	err := me.Populate()
	if err != nil {
		return fmt.Errorf("unable to configure model: %w", err)
	}
	logger.Infof("Using %s", me)

	se := server.NewServerEnv()
	err = se.Populate()
	if err != nil {
		return fmt.Errorf("unable to configure server: %w", err)
	}

	gemini, err := provider.NewGemini(ctx, me)
	if err != nil {
		return fmt.Errorf("unable to configure provider: %w", err)
	}
	defer func() { _ = gemini.Close() }()

	cfg := &relay.Config{
		Provider:  gemini,
		ModelEnv:  me,
		ServerEnv: se,
		Audit:     audit.NewConsoleAudit(logger),
		Logger:    logger,
	}

	return serve(ctx, cfg, newHTTPServer(cfg))
}

func newHTTPServer(cfg *relay.Config) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerEnv.Address(),
		Handler:           NewRouter(cfg),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      serverWriteTimeout(cfg),
	}
}

func NewRouter(cfg *relay.Config) http.Handler {
	production := relay.Production()

	// LoggingHandler writes access logs to the standard logger, which the
	// caller may have redirected into Zap.
	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !production {
		healthLogOutput = defaultLogOutput
	}
	logHandler := gorillaHandlers.LoggingHandler

	chatChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Timeout(requestTimeout(cfg))),
	).Then(handlers.Chat(cfg))

	r := mux.NewRouter()
	r.Handle("/healthcheck", logHandler(healthLogOutput, handlers.Healthcheck(cfg))).Methods("GET")
	r.Handle("/chat", logHandler(defaultLogOutput, chatChain)).Methods("POST")

	return middleware.CORS()(r)
}

func requestTimeout(cfg *relay.Config) time.Duration {
	timeout := model.DefaultTimeout
	if cfg.ModelEnv != nil && cfg.ModelEnv.Timeout > 0 {
		timeout = cfg.ModelEnv.Timeout
	}
	return timeout + requestTimeoutGrace
}

// serverWriteTimeout keeps the connection open long enough for the
// response to a request that hit its own timeout.
func serverWriteTimeout(cfg *relay.Config) time.Duration {
	timeout := requestTimeout(cfg) + writeTimeoutGrace
	if timeout < writeTimeout {
		return writeTimeout
	}
	return timeout
}

func serve(ctx context.Context, cfg *relay.Config, s *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		cfg.Logger.Infof("HTTP server starting on: %s", s.Addr)
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to start HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	cfg.Logger.Infof("Shutting down HTTP server on: %s", s.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("unable to shut down HTTP server: %w", err)
	}
	cfg.Logger.Infof("HTTP server stopped")

	return nil
}
