// Package store is the persistence layer for users, orders and offers.
package store

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/task-exchange-api/models"
	"gorm.io/gorm"
)

// Store bundles the entity tables behind one database handle
type Store struct {
	db *gorm.DB

	Users  *Table[models.User, *models.User]
	Orders *Table[models.Order, *models.Order]
	Offers *Table[models.Offer, *models.Offer]
}

// New wraps an open gorm connection
func New(db *gorm.DB) *Store {
	return &Store{
		db:     db,
		Users:  newTable[models.User](db),
		Orders: newTable[models.Order](db),
		Offers: newTable[models.Offer](db),
	}
}

// DB returns the underlying gorm handle
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates any missing tables, columns and foreign keys
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.User{}, &models.Order{}, &models.Offer{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Transaction runs fn against a store bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// ResetSequences moves PostgreSQL id sequences past the highest stored id.
// Rows inserted with explicit ids do not advance the sequence on their own.
func (s *Store) ResetSequences(ctx context.Context) error {
	if s.db.Dialector.Name() != "postgres" {
		return nil
	}

	for _, table := range []string{
		models.User{}.TableName(),
		models.Order{}.TableName(),
		models.Offer{}.TableName(),
	} {
		if err := resetSequence(s.db.WithContext(ctx), table); err != nil {
			return err
		}
	}
	return nil
}

// resetSequence points the id sequence of table at MAX(id)+1
func resetSequence(db *gorm.DB, table string) error {
	query := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s",
		table, table)
	if err := db.Exec(query).Error; err != nil {
		return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
	}
	return nil
}

// Ping verifies the database connection
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Tables lists the tables present in the database
func (s *Store) Tables() ([]string, error) {
	return s.db.Migrator().GetTables()
}

// Close releases the connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
