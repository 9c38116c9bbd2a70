package settings

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tanisperez/halfstuck/internal/properties"
)

// Option configures a Holder.
type Option func(*options)

// WithLogger sets the logger used to report load attempts.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type options struct {
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// load reads path through loader and freezes the result. It never returns a
// partially populated Store.
func load(loader properties.Loader, path string, strategy Strategy, logger *zap.Logger) (*Store, error) {
	if loader == nil {
		return nil, fmt.Errorf("load settings from %s: %w: no loader configured", path, properties.ErrResourceLoad)
	}

	values, err := loader.Load(path)
	if err != nil {
		logger.Error("settings load failed",
			zap.String("path", path),
			zap.String("strategy", string(strategy)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("load settings from %s: %w", path, err)
	}

	store := NewStore(values)
	logger.Info("settings loaded",
		zap.String("path", path),
		zap.String("strategy", string(strategy)),
		zap.Int("keys", store.Len()),
	)
	return store, nil
}
