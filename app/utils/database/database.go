package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Config holds database connection configuration for the migrator.
// The gateway itself uses pgx; migrations run over database/sql.
type Config struct {
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
	ConnTimeout time.Duration
}

// Connection wraps a database/sql connection
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewConnection opens a database/sql connection to the tenant store
func NewConnection(cfg *Config, logger *slog.Logger) (*Connection, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	timeout := cfg.ConnTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("migration database connection established",
		"host", cfg.Host,
		"database", cfg.Database)

	return &Connection{db: db, logger: logger}, nil
}

// DB returns the underlying sql.DB
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the connection
func (c *Connection) Close() error {
	c.logger.Info("migration database connection closed")
	return c.db.Close()
}
