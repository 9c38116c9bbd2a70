package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/tanisperez/halfstuck/internal/settings"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SETTINGS_RESOURCE", "SETTINGS_STRATEGY", "SETTINGS_KEYS", "LOG_LEVEL",
		"PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Strategy != settings.StrategyLazy {
		t.Fatalf("expected lazy strategy by default, got %s", cfg.Strategy)
	}
	if cfg.Resource != "" {
		t.Fatalf("expected bundled resource by default, got %q", cfg.Resource)
	}
	if !slices.Equal(cfg.Keys, DefaultKeys()) {
		t.Fatalf("unexpected default keys: %v", cfg.Keys)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)

	path := writeYAML(t, `
resource: /etc/app/settings.properties
strategy: eager
keys: [app.name, " app.url "]
log_level: debug
port: "9000"
read_header_timeout: 2s
enable_request_logging: false
rate_limit:
  rps: 0
  burst: 0
`)

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Resource != "/etc/app/settings.properties" {
		t.Fatalf("unexpected resource %q", cfg.Resource)
	}
	if cfg.Strategy != settings.StrategyEager {
		t.Fatalf("expected eager strategy, got %s", cfg.Strategy)
	}
	if want := []string{"app.name", "app.url"}; !slices.Equal(cfg.Keys, want) {
		t.Fatalf("expected keys %v, got %v", want, cfg.Keys)
	}
	if cfg.LogLevel != "debug" || cfg.Port != "9000" {
		t.Fatalf("unexpected log level/port: %s/%s", cfg.LogLevel, cfg.Port)
	}
	if cfg.ReadHeaderTimeout != 2*time.Second {
		t.Fatalf("unexpected read header timeout %s", cfg.ReadHeaderTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging to be disabled")
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 0 {
		t.Fatalf("expected rate limit to be disabled, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("expected unset durations to keep defaults, got %s", cfg.WriteTimeout)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
	if _, err := Load(&CLIOverrides{ConfigFile: writeYAML(t, "strategy: [")}); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
	if _, err := Load(&CLIOverrides{ConfigFile: writeYAML(t, "strategy: sometimes")}); !errors.Is(err, settings.ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := Load(&CLIOverrides{ConfigFile: writeYAML(t, "idle_timeout: soon")}); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("SETTINGS_STRATEGY", "unguarded")
	t.Setenv("SETTINGS_KEYS", "app.version")
	t.Setenv("PORT", "7000")

	path := writeYAML(t, "strategy: eager\nport: \"9000\"\nkeys: [app.name]\n")
	strategy := "eager"
	keys := "app.url, app.name"

	cfg, err := Load(&CLIOverrides{ConfigFile: path, Strategy: &strategy, KeysStr: &keys})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Strategy != settings.StrategyEager {
		t.Fatalf("expected CLI strategy to win, got %s", cfg.Strategy)
	}
	if want := []string{"app.url", "app.name"}; !slices.Equal(cfg.Keys, want) {
		t.Fatalf("expected CLI keys %v, got %v", want, cfg.Keys)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected environment port to override YAML, got %s", cfg.Port)
	}
}

func TestLoadRejectsInvalidEnvStrategy(t *testing.T) {
	clearEnv(t)
	t.Setenv("SETTINGS_STRATEGY", "sometimes")

	if _, err := Load(nil); !errors.Is(err, settings.ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestLoadRejectsBlankCLIKeys(t *testing.T) {
	clearEnv(t)
	keys := " , "

	if _, err := Load(&CLIOverrides{KeysStr: &keys}); err == nil {
		t.Fatalf("expected error for blank key list")
	}
}

func TestParseKeys(t *testing.T) {
	got := parseKeys(" app.name ,, app.url ")
	if want := []string{"app.name", "app.url"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := parseKeys(" , "); len(got) != 0 {
		t.Fatalf("expected no keys, got %v", got)
	}
}
