package settings

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/tanisperez/halfstuck/internal/properties"
)

// Lazy defers loading to the first Instance call using double-checked
// locking. The resource is read at most once; a failed load is remembered
// and returned to every later caller without touching the resource again.
type Lazy struct {
	loader properties.Loader
	path   string
	logger *zap.Logger

	mu   sync.Mutex
	done atomic.Bool

	// store and err are written once under mu, before done is set.
	store *Store
	err   error
}

// NewLazy returns a Lazy holder for path. Nothing is read until Instance.
func NewLazy(loader properties.Loader, path string, opts ...Option) *Lazy {
	o := newOptions(opts)
	return &Lazy{
		loader: loader,
		path:   path,
		logger: o.logger,
	}
}

// Instance returns the Store, loading it on first use.
func (l *Lazy) Instance() (*Store, error) {
	if l.done.Load() {
		return l.store, l.err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.done.Load() {
		l.store, l.err = load(l.loader, l.path, StrategyLazy, l.logger)
		l.done.Store(true)
	}
	return l.store, l.err
}

// Initialized reports whether a load attempt has completed, successfully or not.
func (l *Lazy) Initialized() bool {
	return l.done.Load()
}
