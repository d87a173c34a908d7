// Package database provides connection management and persistence for the
// stock sentiment dashboard.
//
// This package includes:
//   - Connection management using a lib/pq pool with GORM on top
//   - Persistence for dashboard-pinned posts and the stocks they mention
//
// Computed sentiment aggregates are deliberately not persisted; they are
// recomputed per request from a fresh post fetch. The only other persistent
// state in the system, the per-ticker quote record, lives in Redis.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the GORM database connection and provides access to the
// underlying DB instance.
type Database struct {
	db *gorm.DB
}

// DB returns the underlying GORM database instance for direct access when needed
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Connect establishes the database connection: a tuned lib/pq pool wrapped
// by GORM.
func Connect(cfg Config) (*Database, error) {
	pool, err := openPool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent logging for production
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	log.Println("✅ Database connection established")
	return &Database{db: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	log.Println("📡 Closing database connection...")
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
