package database

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	poolOnce sync.Once
	pool     *gorm.DB
	poolErr  error
)

// Acquire returns the process-wide connection pool, opening it on first
// call. Concurrent first calls share a single open attempt; a failed
// open is remembered and returned to subsequent callers without retry.
func Acquire(databaseURL string) (*gorm.DB, error) {
	poolOnce.Do(func() {
		pool, poolErr = Open(databaseURL)
		if poolErr != nil {
			log.Printf("database connection failed: %v", poolErr)
		} else {
			log.Println("database connection pool established")
		}
	})
	return pool, poolErr
}

// Open creates a new gorm connection without memoization. Tests use it
// directly; Acquire uses it for the singleton pool.
func Open(databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		// Duplicate-key violations surface as gorm.ErrDuplicatedKey so
		// handlers never branch on vendor error codes.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	return db, nil
}
