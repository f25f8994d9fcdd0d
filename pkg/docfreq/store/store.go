// Package store persists analysis run history.
package store

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Run is one completed analysis run.
type Run struct {
	ID              string
	InputPath       string
	StartedAt       time.Time
	Duration        time.Duration
	FileCount       int
	TotalValidWords int
	DistinctWords   int
}

// Store records and queries past runs.
type Store interface {
	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns the most recent runs first. limit <= 0 means no limit.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

// NewRunID returns a fresh sortable run identifier.
func NewRunID() string {
	return ulid.Make().String()
}
