package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"nira/internal/domain"
	"nira/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// DefaultKeep is the number of revisions kept per blueprint path
const DefaultKeep = 200

// Journal implements ports.Journal using SQLite
type Journal struct {
	db     *sql.DB
	dbPath string
	keep   int
}

// Ensure Journal implements ports.Journal
var _ ports.Journal = (*Journal)(nil)

// Open creates or opens the journal database inside dataDir. An empty
// dataDir falls back to the XDG data directory. keep bounds the revisions
// stored per blueprint; zero or less means DefaultKeep.
func Open(dataDir string, keep int) (*Journal, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	// Expand ~ in path
	if len(dataDir) > 0 && dataDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[1:])
	}
	if keep <= 0 {
		keep = DefaultKeep
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "journal.db")

	// WAL lets the live server and the CLI write the same journal
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS revisions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			op TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_revisions_path ON revisions(path, id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Journal{db: db, dbPath: dbPath, keep: keep}, nil
}

// DefaultDataDir returns $XDG_DATA_HOME/nira, or ~/.local/share/nira
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "nira")
}

// DBPath returns the location of the database file
func (j *Journal) DBPath() string {
	return j.dbPath
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores a revision and prunes the oldest ones for the same path
// beyond the keep limit. Both happen in one transaction.
func (j *Journal) Record(ctx context.Context, rev domain.Revision) (int64, error) {
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO revisions (path, op, summary, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rev.Path, rev.Op, rev.Summary, rev.Content, rev.CreatedAt.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to insert revision: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM revisions
		WHERE path = ? AND id NOT IN (
			SELECT id FROM revisions WHERE path = ? ORDER BY id DESC LIMIT ?
		)
	`, rev.Path, rev.Path, j.keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune revisions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit revision: %w", err)
	}
	return id, nil
}

// List returns up to limit revisions for path, newest first. Content is
// left empty; use Get to load a revision's text.
func (j *Journal) List(ctx context.Context, path string, limit int) ([]domain.Revision, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, path, op, summary, created_at
		FROM revisions
		WHERE path = ?
		ORDER BY id DESC
		LIMIT ?
	`, path, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query revisions: %w", err)
	}
	defer rows.Close()

	var revs []domain.Revision
	for rows.Next() {
		var rev domain.Revision
		var created int64
		if err := rows.Scan(&rev.ID, &rev.Path, &rev.Op, &rev.Summary, &created); err != nil {
			return nil, err
		}
		rev.CreatedAt = time.Unix(0, created).UTC()
		revs = append(revs, rev)
	}
	return revs, rows.Err()
}

// Get returns a revision with its content
func (j *Journal) Get(ctx context.Context, id int64) (*domain.Revision, error) {
	var rev domain.Revision
	var created int64

	err := j.db.QueryRowContext(ctx, `
		SELECT id, path, op, summary, content, created_at
		FROM revisions WHERE id = ?
	`, id).Scan(&rev.ID, &rev.Path, &rev.Op, &rev.Summary, &rev.Content, &created)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Kind: "revision", Name: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, err
	}

	rev.CreatedAt = time.Unix(0, created).UTC()
	return &rev, nil
}
