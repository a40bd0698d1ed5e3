package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const memoryDatabase = ":memory:"

// ConnectDatabase opens the database described by cfg: PostgreSQL when DATABASE_URL is a
// postgres URL, otherwise the SQLite file at DATABASE_PATH.
// fresh reports whether the database did not exist before this call.
func ConnectDatabase(cfg *Config) (db *gorm.DB, fresh bool, err error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	if cfg.UsesPostgres() {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
		if err != nil {
			return nil, false, fmt.Errorf("failed to connect to database: %w", err)
		}

		fresh = !db.Migrator().HasTable("users")
		log.Println("Database connection established successfully (postgres)")
		return db, fresh, nil
	}

	fresh, err = sqliteIsFresh(cfg.DatabasePath)
	if err != nil {
		return nil, false, err
	}

	db, err = gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return nil, false, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DatabasePath == memoryDatabase {
		// every connection to :memory: is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, false, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Printf("Database connection established successfully (sqlite: %s)", cfg.DatabasePath)
	return db, fresh, nil
}

func sqliteIsFresh(path string) (bool, error) {
	if path == memoryDatabase {
		return true, nil
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, fmt.Errorf("failed to check database file: %w", err)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
