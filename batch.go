package fittracker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrNonFinite is returned when a workout produces an infinite or NaN value,
// which happens for a zero duration.
var ErrNonFinite = errors.New("non-finite workout value")

type runConfig struct {
	logger *slog.Logger
}

// Option configures Run.
type Option func(*runConfig)

// WithLogger sets the logger used by Run.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Run dispatches every package in order and returns its InfoMessage.
// The first failure stops the batch; messages computed before it are
// returned together with the error.
func Run(packages []Package, opts ...Option) ([]InfoMessage, error) {
	cfg := runConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]InfoMessage, 0, len(packages))
	for i, p := range packages {
		t, err := ReadPackage(p.Code, p.Data)
		if err != nil {
			cfg.logger.Error("read package failed", "index", i, "code", p.Code, "error", err)
			return out, fmt.Errorf("package %d: %w", i, err)
		}

		info := t.ShowTrainingInfo()
		if !info.finite() {
			cfg.logger.Error("non-finite workout values", "index", i, "code", p.Code, "duration_h", info.Duration)
			return out, fmt.Errorf("package %d (%s): %w", i, p.Code, ErrNonFinite)
		}

		cfg.logger.Debug("training processed",
			"index", i,
			"type", info.TrainingType,
			"distance_km", info.Distance,
			"calories", info.Calories,
		)
		out = append(out, info)
	}
	cfg.logger.Debug("batch complete", "packages", len(out))
	return out, nil
}

// Print writes one rendered message per line.
func Print(w io.Writer, messages []InfoMessage, labels Labels) error {
	for _, m := range messages {
		if _, err := fmt.Fprintln(w, m.Format(labels)); err != nil {
			return err
		}
	}
	return nil
}
