package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/nmalhotra/drill/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Learners returns the learner repository.
func (s *Store) Learners() LearnerRepo { return &learnerRepo{client: s.client} }

// Concepts returns the curriculum repository.
func (s *Store) Concepts() ConceptRepo { return &conceptRepo{client: s.client} }

// Skills returns the skill-state repository.
func (s *Store) Skills() SkillRepo { return &skillRepo{client: s.client} }

// Attempts returns the attempt history repository.
func (s *Store) Attempts() AttemptRepo { return &attemptRepo{client: s.client} }

// Recorder returns the transactional attempt recorder.
func (s *Store) Recorder() AttemptRecorder { return &attemptRecorder{client: s.client} }

// Items returns the item repository.
func (s *Store) Items() ItemRepo { return &itemRepo{client: s.client} }

// Sessions returns the session repository.
func (s *Store) Sessions() SessionRepo { return &sessionRepo{client: s.client} }

// Reports returns the item-report repository.
func (s *Store) Reports() ReportRepo { return &reportRepo{client: s.client} }

// Events returns the operational event repository.
func (s *Store) Events() EventRepo { return &eventRepo{client: s.client} }

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
// 1. DRILL_DB environment variable
// 2. $XDG_DATA_HOME/drill/drill.db
// 3. ~/.local/share/drill/drill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("DRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "drill", "drill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
