package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/tanisperez/halfstuck/internal/api"
	"github.com/tanisperez/halfstuck/internal/config"
	"github.com/tanisperez/halfstuck/internal/properties"
	"github.com/tanisperez/halfstuck/internal/settings"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	holder  settings.Holder
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// NewHolder returns the settings holder described by cfg. Without a custom
// resource the process-wide holder bound to the bundled resource is used.
func NewHolder(cfg config.Config, logger *zap.Logger) (settings.Holder, error) {
	if cfg.Resource == "" {
		holder, err := settings.Shared(cfg.Strategy)
		if err != nil {
			return nil, fmt.Errorf("select shared settings: %w", err)
		}
		return holder, nil
	}

	holder, err := settings.New(cfg.Strategy, properties.NewFileLoader(), cfg.Resource, settings.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("initialize settings: %w", err)
	}
	return holder, nil
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	holder, err := NewHolder(cfg, logger)
	if err != nil {
		return nil, err
	}

	// The unguarded holder is only safe once loaded, so load it before any
	// request goroutine can reach it.
	if cfg.Strategy == settings.StrategyUnguarded {
		if _, err := holder.Instance(); err != nil {
			return nil, fmt.Errorf("preload settings: %w", err)
		}
	}

	handler := api.NewHandler(holder, api.WithHandlerLogger(logger))
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		holder:  holder,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  NewServer(cfg, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Holder returns the settings holder served by the application.
func (a *App) Holder() settings.Holder {
	return a.holder
}
