package metrics

import (
	"context"
	"time"
)

// Collector records monitor samples.
type Collector interface {
	Record(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// Repository stores samples.
type Repository interface {
	Record(snapshot *Snapshot) error
	Close() error
}

// Snapshot is one monitor sample. Frequencies are raw kHz strings as read
// from sysfs; empty means offline or unreadable.
type Snapshot struct {
	Timestamp    time.Time
	Temperature  int
	PresentCores int
	MaxFrequency string
	MinFrequency string
	Cores        []CoreSample
}

type CoreSample struct {
	Core      int
	Frequency string
}
