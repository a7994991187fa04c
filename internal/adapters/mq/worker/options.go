package worker

import (
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
)

// Option applies a configuration option to the RatingWorker.
type Option func(*RatingWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *RatingWorker) {
		if name != "" {
			w.name = name
			w.logger = logger.Get().Named(name)
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *RatingWorker) {
		if l != nil {
			w.logger = l
		}
	}
}
