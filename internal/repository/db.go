package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates the MySQL connection pool. Connections are bounded, idle
// connections are reclaimed, and a dropped connection is recreated lazily on
// the next acquire rather than by a background retry loop. The DSN carries
// the connect and I/O timeouts, so a dead database surfaces as an error, not
// a hang.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		// Not fatal: the pool reconnects on the next acquire once the
		// database comes back.
		slog.Warn("database ping failed, pool will reconnect lazily", "error", err)
	}

	return db, nil
}
