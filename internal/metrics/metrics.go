package metrics

import (
	"context"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
)

const (
	minTemperature = -1
	maxTemperature = 100
)

// NewCollector returns a sqlite-backed Collector, or a no-op one when
// cfg.Enabled is false.
func NewCollector(cfg Config, log logger.Logger) (Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New().Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("Metrics disabled")
		return discard{}, nil
	}

	repo, err := NewRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &recorder{repo: repo}, nil
}

type recorder struct {
	repo Repository
}

func (r *recorder) Record(ctx context.Context, snapshot *Snapshot) error {
	errFactory := errors.New()

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrOperationTimeout, err)
	}
	if err := validate(snapshot); err != nil {
		return err
	}
	if err := r.repo.Record(snapshot); err != nil {
		return errFactory.Wrap(ErrMetricsCollection, err)
	}

	return nil
}

func (r *recorder) Close() error {
	if err := r.repo.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}
	return nil
}

// validate rejects samples the table constraints would refuse, so one bad
// sample cannot fail a whole batch.
func validate(snapshot *Snapshot) error {
	errFactory := errors.New()

	switch {
	case snapshot == nil:
		return errFactory.New(ErrInvalidMetrics)
	case snapshot.Temperature < minTemperature || snapshot.Temperature > maxTemperature:
		return errFactory.WithData(ErrInvalidMetrics, snapshot.Temperature)
	case snapshot.PresentCores < 1:
		return errFactory.WithData(ErrInvalidMetrics, snapshot.PresentCores)
	}

	return nil
}

type discard struct{}

func (discard) Record(context.Context, *Snapshot) error { return nil }

func (discard) Close() error { return nil }
