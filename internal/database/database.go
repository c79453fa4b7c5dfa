// Package database opens the Postgres pool the stores share, using the pgx
// driver through database/sql.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PoolLimits bounds the shared connection pool. Award transactions hold a
// per-child advisory lock for their whole lifetime, so the pool must stay
// bounded or a burst of awards could pin every connection.
type PoolLimits struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func New(connStr string, limits PoolLimits) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(limits.MaxOpenConns)
	db.SetMaxIdleConns(limits.MaxIdleConns)
	db.SetConnMaxLifetime(limits.ConnMaxLifetime)

	return db, nil
}
