package settings

import (
	"fmt"

	"github.com/tanisperez/halfstuck/internal/properties"
	"github.com/tanisperez/halfstuck/internal/resources"
)

// Process-wide holders bound to the bundled resource. The eager one is built
// during package initialization.
var (
	sharedEager     = mustLoadEager()
	sharedLazy      = NewLazy(bundledLoader(), resources.SettingsPath)
	sharedUnguarded = NewUnguarded(bundledLoader(), resources.SettingsPath)
)

func bundledLoader() properties.Loader {
	return properties.NewFSLoader(resources.FS)
}

func mustLoadEager() *Eager {
	eager, err := NewEager(bundledLoader(), resources.SettingsPath)
	if err != nil {
		panic(fmt.Sprintf("load bundled settings: %v", err))
	}
	return eager
}

// Shared returns the process-wide Holder for strategy.
func Shared(strategy Strategy) (Holder, error) {
	switch strategy {
	case StrategyEager:
		return sharedEager, nil
	case StrategyLazy:
		return sharedLazy, nil
	case StrategyUnguarded:
		return sharedUnguarded, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}
}

// Default returns the process-wide Store, loading the bundled resource on
// first use.
func Default() (*Store, error) {
	return sharedLazy.Instance()
}

// Get looks key up in the process-wide Store.
func Get(key string) (string, bool, error) {
	store, err := Default()
	if err != nil {
		return "", false, err
	}
	value, ok := store.Get(key)
	return value, ok, nil
}
