package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
)

// Load decodes the JSON array stored under name and calls each once per element, in file order.
// It stops at the first callback error.
func Load[T any](ctx context.Context, src Source, name string, each func(T) error) error {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			log.Printf("warning: failed to close fixture %s: %v", name, closeErr)
		}
	}()

	var rows []T
	if err := json.NewDecoder(rc).Decode(&rows); err != nil {
		return fmt.Errorf("failed to decode fixture %s: %w", name, err)
	}

	for i, row := range rows {
		if err := each(row); err != nil {
			return fmt.Errorf("fixture %s row %d: %w", name, i, err)
		}
	}
	return nil
}

// ReadFile is Load for a plain file path
func ReadFile[T any](path string, each func(T) error) error {
	return Load(context.Background(), DirSource{Dir: filepath.Dir(path)}, filepath.Base(path), each)
}
