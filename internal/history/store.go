// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of document conversions: which
// source was converted when, where its Markdown went, and how it went.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/word2md/pkg/types"
)

const (
	dbFile = "history.db"
	// defaultLimit caps List results when neither the query nor the
	// configuration sets a limit.
	defaultLimit = 20
	// timeLayout is fixed width so converted_at sorts as text in time order.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store manages the history SQLite database.
type Store struct {
	db    *sql.DB
	dir   string
	limit int
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the directory and schema if needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("history directory not set")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	s := &Store{db: db, dir: cfg.Dir, limit: limit}
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

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string { return s.dir }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			doc_id TEXT NOT NULL,
			source_path TEXT NOT NULL,
			output_dir TEXT,
			markdown_path TEXT,
			title TEXT,
			headings INTEGER,
			images INTEGER,
			images_extracted INTEGER,
			status TEXT NOT NULL,
			error TEXT,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_doc_id ON conversions(doc_id)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_converted_at ON conversions(converted_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one conversion outcome to the ledger.
func (s *Store) Record(ctx context.Context, c types.Conversion) error {
	at := c.ConvertedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (doc_id, source_path, output_dir, markdown_path, title,
			headings, images, images_extracted, status, error, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.SourcePath, c.OutputDir, c.MarkdownPath, c.Title,
		c.Headings, c.Images, c.ImagesExtracted, string(c.Status), c.Error,
		at.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion %s: %w", c.ID, err)
	}
	return nil
}

// QueryOptions filters List results.
type QueryOptions struct {
	// DocumentID restricts results to one document ID.
	DocumentID string

	// Status restricts results to one outcome.
	Status types.ConversionStatus

	// Limit caps the result count. Zero uses the store default; a negative
	// value means no limit.
	Limit int
}

// List returns recorded conversions, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.Conversion, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT doc_id, source_path, output_dir, markdown_path, title,
			headings, images, images_extracted, status, error, converted_at
		FROM conversions WHERE 1=1`)

	if opts.DocumentID != "" {
		qb.WriteString(` AND doc_id = ?`)
		args = append(args, opts.DocumentID)
	}
	if opts.Status != "" {
		qb.WriteString(` AND status = ?`)
		args = append(args, string(opts.Status))
	}
	qb.WriteString(` ORDER BY converted_at DESC, rowid DESC`)

	limit := opts.Limit
	if limit == 0 {
		limit = s.limit
	}
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var results []types.Conversion
	for rows.Next() {
		var (
			c                                    types.Conversion
			outputDir, mdPath, title, errMsg, at sql.NullString
			status                               string
		)
		if err := rows.Scan(&c.ID, &c.SourcePath, &outputDir, &mdPath, &title,
			&c.Headings, &c.Images, &c.ImagesExtracted, &status, &errMsg, &at); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		c.OutputDir = outputDir.String
		c.MarkdownPath = mdPath.String
		c.Title = title.String
		c.Error = errMsg.String
		c.Status = types.ConversionStatus(status)
		if t, err := time.Parse(timeLayout, at.String); err == nil {
			c.ConvertedAt = t
		}
		results = append(results, c)
	}
	return results, rows.Err()
}
