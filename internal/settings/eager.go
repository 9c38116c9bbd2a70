package settings

import "github.com/tanisperez/halfstuck/internal/properties"

// Eager loads its Store up front. Every later Instance call is a plain read.
type Eager struct {
	store *Store
}

// NewEager loads path through loader immediately.
func NewEager(loader properties.Loader, path string, opts ...Option) (*Eager, error) {
	o := newOptions(opts)
	store, err := load(loader, path, StrategyEager, o.logger)
	if err != nil {
		return nil, err
	}
	return &Eager{store: store}, nil
}

// Instance returns the loaded Store. It never fails.
func (e *Eager) Instance() (*Store, error) {
	return e.store, nil
}
