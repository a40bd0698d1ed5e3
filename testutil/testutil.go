// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"os"
	"testing"

	"github.com/kendall-kelly/task-exchange-api/config"
	"github.com/kendall-kelly/task-exchange-api/store"
)

// RequireTestEnvironmentOrSkip skips the test unless GO_ENV is "test".
// Use it for tests that talk to a database outside the process.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Skipf("Skipping test: GO_ENV must be 'test' (current: %q)", env)
	}
}

// NewTestStore opens a migrated in-memory SQLite store that is closed when the test ends
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, _, err := config.ConnectDatabase(&config.Config{
		DatabasePath: ":memory:",
		LogLevel:     "error",
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return st
}

// ID returns a pointer to a foreign key value
func ID(id uint) *uint {
	return &id
}
