package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/hetulpatel/userdb/internal/config"
	"github.com/hetulpatel/userdb/internal/logging"
)

const defaultPath = "users.db"

// User is a row in the users table.
type User struct {
	ID         int
	Name       string
	Email      string
	Age        int
	Department string
	Salary     float64
}

// sampleUsers is the fixed seed set. Re-running Initialize converges the
// table back to exactly these rows for ids 1..5.
var sampleUsers = []User{
	{1, "John Doe", "john@example.com", 30, "IT", 75000.0},
	{2, "Jane Smith", "jane@example.com", 28, "HR", 65000.0},
	{3, "Bob Johnson", "bob@example.com", 35, "Finance", 80000.0},
	{4, "Alice Brown", "alice@example.com", 32, "IT", 78000.0},
	{5, "Charlie Davis", "charlie@example.com", 29, "Marketing", 70000.0},
}

// Store wraps a SQLite DB connection.
type Store struct {
	path string
	db   *sql.DB
}

// Open creates (if needed) and opens the SQLite database described by cfg.
// Connection errors are logged here and returned to the caller; the caller
// owns the store and must Close it.
func Open(cfg config.Config) (*Store, error) {
	path := cfg.DatabasePath
	if path == "" {
		path = defaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Errorf("ensure data dir for %s: %v", path, err)
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logging.Errorf("open sqlite %s: %v", path, err)
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sql.Open is lazy; ping so a bad path fails here, not mid-statement.
	if err := db.Ping(); err != nil {
		db.Close()
		logging.Errorf("open sqlite %s: %v", path, err)
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Single connection: SQLite allows one writer anyway, and it keeps the
	// busy_timeout pragma below in force for every statement instead of
	// only the pooled connection that happened to run it.
	db.SetMaxOpenConns(1)
	if cfg.BusyTimeout > 0 {
		stmt := fmt.Sprintf("PRAGMA busy_timeout = %d;", cfg.BusyTimeout.Milliseconds())
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			logging.Errorf("set busy timeout on %s: %v", path, err)
			return nil, fmt.Errorf("set busy timeout: %w", err)
		}
	}
	return &Store{path: path, db: db}, nil
}

// Path returns the path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Initialize opens a store scoped to this call, ensures the users table
// exists, and upserts the sample rows inside one transaction. Unlike Open
// it never returns an error: every failure is logged and reported as false.
func Initialize(ctx context.Context, cfg config.Config) bool {
	store, err := Open(cfg)
	if err != nil {
		logging.Errorf("database initialization failed: %v", err)
		return false
	}
	defer store.Close()

	if err := store.ensureSchema(ctx); err != nil {
		logging.Errorf("database initialization failed: %v", err)
		return false
	}
	if err := store.seedSampleUsers(ctx); err != nil {
		logging.Errorf("database initialization failed: %v", err)
		return false
	}
	logging.Infof("database initialized at %s", store.Path())
	return true
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	age INTEGER CHECK(age >= 0 AND age <= 150),
	department TEXT NOT NULL,
	salary REAL CHECK(salary >= 0),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

const upsertSQL = `
INSERT INTO users (id, name, email, age, department, salary)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name=excluded.name,
	email=excluded.email,
	age=excluded.age,
	department=excluded.department,
	salary=excluded.salary;
`

func (s *Store) seedSampleUsers(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, u := range sampleUsers {
		if _, err := stmt.ExecContext(ctx, u.ID, u.Name, u.Email, u.Age, u.Department, u.Salary); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
