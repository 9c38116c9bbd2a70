package settings

import (
	"go.uber.org/zap"

	"github.com/tanisperez/halfstuck/internal/properties"
)

// Unguarded defers loading to the first Instance call with a plain nil check.
//
// It is not safe for concurrent use until the first Instance call has
// returned: two goroutines can both see a nil store, both read the resource
// and race on the assignment. Use Lazy instead.
type Unguarded struct {
	loader properties.Loader
	path   string
	logger *zap.Logger

	store *Store
}

// NewUnguarded returns an Unguarded holder for path.
func NewUnguarded(loader properties.Loader, path string, opts ...Option) *Unguarded {
	o := newOptions(opts)
	return &Unguarded{
		loader: loader,
		path:   path,
		logger: o.logger,
	}
}

// Instance returns the Store, loading it if no load has succeeded yet.
// Failures are not remembered, so the next call tries again.
func (u *Unguarded) Instance() (*Store, error) {
	if u.store == nil {
		store, err := load(u.loader, u.path, StrategyUnguarded, u.logger)
		if err != nil {
			return nil, err
		}
		u.store = store
	}
	return u.store, nil
}
