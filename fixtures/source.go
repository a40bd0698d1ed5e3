// Package fixtures loads JSON seed data and populates a fresh store with it.
package fixtures

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kendall-kelly/task-exchange-api/config"
)

// Source opens named fixture files
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirSource reads fixtures from a local directory
type DirSource struct {
	Dir string
}

// Open opens Dir/name
func (s DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	return f, nil
}

// NewSource picks the S3 bucket when one is configured, the local fixtures directory otherwise
func NewSource(ctx context.Context, cfg *config.Config) (Source, error) {
	if cfg.FixturesS3Bucket != "" {
		return NewS3Source(ctx, cfg)
	}
	return DirSource{Dir: cfg.FixturesDir}, nil
}
