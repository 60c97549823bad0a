package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	// PostgreSQL driver for postgres:// DSNs.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db      *sql.DB
	drv     *entsql.Driver
	dialect string

	now   func() time.Time
	newID func() string
}

// Open creates a new Store connected to dsn. A postgres:// or postgresql://
// DSN selects PostgreSQL; anything else is treated as a SQLite file path.
// It applies recommended pragmas for SQLite and runs auto-migration.
func Open(dsn string) (*Store, error) {
	driverName, dialectName := resolveDriver(dsn)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dialectName == dialect.SQLite {
		// Pragmas are per connection, so keep exactly one.
		db.SetMaxOpenConns(1)
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	drv := entsql.OpenDB(dialectName, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{
		db:      db,
		drv:     drv,
		dialect: dialectName,
		now:     time.Now,
		newID:   newEntryID,
	}, nil
}

// newEntryID returns a version 7 UUID. Its text form sorts by creation
// time, which List uses to break created_at ties.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// EntryRepo returns an EntryRepo backed by this store.
func (s *Store) EntryRepo() EntryRepo {
	return &entryRepo{
		db:      s.db,
		dialect: s.dialect,
		now:     s.now,
		newID:   s.newID,
	}
}

// resolveDriver maps a DSN to a database/sql driver name and ent dialect.
func resolveDriver(dsn string) (driverName, dialectName string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", dialect.Postgres
	}
	return "sqlite", dialect.SQLite
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. $XDG_DATA_HOME/biascheck/biascheck.db
// 2. ~/.local/share/biascheck/biascheck.db
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "biascheck", "biascheck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
// DSNs that are not file paths are left alone.
func EnsureDir(path string) error {
	if d, _ := resolveDriver(path); d != "sqlite" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
