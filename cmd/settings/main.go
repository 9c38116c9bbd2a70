package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/tanisperez/halfstuck/internal/application"
	"github.com/tanisperez/halfstuck/internal/config"
	"github.com/tanisperez/halfstuck/internal/logging"
	"github.com/tanisperez/halfstuck/internal/settings"
)

const absentValue = "<absent>"

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("settings", "Shared settings - prints or serves values from a properties resource")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	resource := kingpinApp.Flag("resource", "Properties file to load instead of the bundled resource").String()
	strategy := kingpinApp.Flag("strategy", "Initialization strategy: eager, lazy or unguarded").String()
	keys := kingpinApp.Flag("keys", "Comma-separated keys to print").String()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn or error").String()

	showCmd := kingpinApp.Command("show", "Print the configured keys").Default()

	serveCmd := kingpinApp.Command("serve", "Serve settings over a read-only HTTP API")
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		Resource:   resource,
		Strategy:   strategy,
		KeysStr:    keys,
		LogLevel:   logLevel,
		Port:       port,
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	switch command {
	case showCmd.FullCommand():
		holder, err := application.NewHolder(cfg, logger)
		if err != nil {
			logger.Fatal("failed to initialize settings", zap.Error(err))
		}
		if err := show(os.Stdout, cfg.Strategy, holder, cfg.Keys); err != nil {
			logger.Fatal("failed to load settings", zap.Error(err))
		}

	case serveCmd.FullCommand():
		app, err := application.New(cfg, logger)
		if err != nil {
			logger.Fatal("failed to initialize application", zap.Error(err))
		}

		if err := app.Start(); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}

		shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
	}
}

// show prints keys from the holder's store. Absent keys are printed as
// <absent> rather than an empty string.
func show(w io.Writer, strategy settings.Strategy, holder settings.Holder, keys []string) error {
	store, err := holder.Instance()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "::Settings %s::\n", strategy); err != nil {
		return err
	}
	for _, key := range keys {
		value, ok := store.Get(key)
		if !ok {
			value = absentValue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
