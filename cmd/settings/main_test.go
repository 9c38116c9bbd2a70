package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tanisperez/halfstuck/internal/properties"
	"github.com/tanisperez/halfstuck/internal/settings"
)

func TestShowPrintsBundledSettings(t *testing.T) {
	for _, strategy := range []settings.Strategy{settings.StrategyEager, settings.StrategyLazy} {
		holder, err := settings.Shared(strategy)
		if err != nil {
			t.Fatalf("Shared(%q) returned error: %v", strategy, err)
		}

		var out bytes.Buffer
		if err := show(&out, strategy, holder, []string{"app.name", "app.version", "app.url", "missing.key"}); err != nil {
			t.Fatalf("show returned error: %v", err)
		}

		want := "::Settings " + string(strategy) + "::\n" +
			"app.name: Demo\n" +
			"app.version: 1.0\n" +
			"app.url: http://example.com\n" +
			"missing.key: <absent>\n"
		if out.String() != want {
			t.Fatalf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
		}
	}
}

func TestShowFailsWithoutPrinting(t *testing.T) {
	holder := settings.NewLazy(properties.NewFileLoader(), filepath.Join(t.TempDir(), "missing.properties"))

	var out bytes.Buffer
	err := show(&out, settings.StrategyLazy, holder, []string{"app.name"})
	if !errors.Is(err, properties.ErrResourceLoad) {
		t.Fatalf("expected ErrResourceLoad, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}
