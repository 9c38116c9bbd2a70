package settings

import (
	"fmt"
	"strings"

	"github.com/tanisperez/halfstuck/internal/properties"
)

// Strategy selects how a Holder initializes its Store.
type Strategy string

const (
	StrategyEager     Strategy = "eager"
	StrategyLazy      Strategy = "lazy"
	StrategyUnguarded Strategy = "unguarded"
)

// DefaultStrategy is the strategy used when none is configured.
const DefaultStrategy = StrategyLazy

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyEager, StrategyLazy, StrategyUnguarded}
}

// ParseStrategy converts a case-insensitive name into a Strategy.
func ParseStrategy(raw string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(raw))); s {
	case StrategyEager, StrategyLazy, StrategyUnguarded:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, raw)
	}
}

// Holder hands out the Store, initializing it if needed.
type Holder interface {
	Instance() (*Store, error)
}

// New builds a Holder for strategy reading path through loader. Only the
// eager strategy touches the resource here.
func New(strategy Strategy, loader properties.Loader, path string, opts ...Option) (Holder, error) {
	switch strategy {
	case StrategyEager:
		return NewEager(loader, path, opts...)
	case StrategyLazy:
		return NewLazy(loader, path, opts...), nil
	case StrategyUnguarded:
		return NewUnguarded(loader, path, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}
}
