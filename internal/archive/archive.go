// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive records completed pipeline runs in a SQLite database
// so past summaries and thinking reports can be listed later.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/summary-engine/pkg/types"
)

const dbFile = "runs.db"

// Store manages the run archive SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the archive database at dir/runs.db,
// creating the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			workflow TEXT NOT NULL,
			sources TEXT NOT NULL,
			model TEXT,
			output_path TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_workflow ON runs(workflow)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// sourceSeparator joins source locations into one column. ASCII unit
// separator, which cannot appear in file paths or URLs we accept.
const sourceSeparator = "\x1f"

// Record stores one completed run and returns it with the generated ID
// and timestamp filled in.
func (s *Store) Record(ctx context.Context, workflow types.Workflow, sources []string, model, outputPath string) (types.RunRecord, error) {
	rec := types.RunRecord{
		ID:         uuid.NewString(),
		Workflow:   workflow,
		Sources:    sources,
		Model:      model,
		OutputPath: outputPath,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, workflow, sources, model, output_path, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Workflow), strings.Join(rec.Sources, sourceSeparator),
		rec.Model, rec.OutputPath, rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return types.RunRecord{}, fmt.Errorf("inserting run: %w", err)
	}
	return rec, nil
}

// History returns the most recent runs, newest first, optionally
// filtered by workflow. A limit of zero or less uses the store's
// configured maximum.
func (s *Store) History(ctx context.Context, workflow types.Workflow, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, workflow, sources, model, output_path, created_at FROM runs`
	args := []any{}
	if workflow != "" {
		query += ` WHERE workflow = ?`
		args = append(args, string(workflow))
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var workflow, sources, createdAt string
		if err := rows.Scan(&rec.ID, &workflow, &sources, &rec.Model, &rec.OutputPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Workflow = types.Workflow(workflow)
		if sources != "" {
			rec.Sources = strings.Split(sources, sourceSeparator)
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		rec.CreatedAt = t
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return records, nil
}
