package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kmrl-docs/dochub/internal/model"
)

// Verify at compile time that Store implements all interfaces.
var (
	_ DocumentReader = (*Store)(nil)
	_ DocumentWriter = (*Store)(nil)
)

// Store provides data access to the SQLite document registry.
type Store struct {
	db *sql.DB
}

// New creates a new Store and initialises the schema.
func New(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	// Ensure the schema_version table exists.
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		// Fresh database: initialize to version 0.
		if _, err := s.db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("init schema version: %w", err)
		}
		version = 0
	} else if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	// migrations is an ordered list of migration functions.
	// Index 0 = migration from v0 to v1, etc.
	migrations := []func() error{
		s.migrateV1, // v0 → v1: initial schema
	}

	for i := version; i < len(migrations); i++ {
		if err := migrations[i](); err != nil {
			return fmt.Errorf("migration v%d→v%d: %w", i, i+1, err)
		}
		if _, err := s.db.Exec(`UPDATE schema_version SET version = ?`, i+1); err != nil {
			return fmt.Errorf("update schema version to %d: %w", i+1, err)
		}
	}

	return nil
}

// migrateV1 creates the initial schema (v0 → v1).
func (s *Store) migrateV1() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id              TEXT PRIMARY KEY,
		filename        TEXT NOT NULL,
		kind            TEXT NOT NULL,
		source          TEXT NOT NULL,
		script          TEXT NOT NULL DEFAULT '',
		used_ocr        INTEGER NOT NULL DEFAULT 0,
		page_count      INTEGER NOT NULL DEFAULT 0,
		original_file   TEXT NOT NULL DEFAULT '',
		translated_file TEXT,
		error_kind      TEXT,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_documents_source ON documents(source, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_documents_kind ON documents(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateDocument inserts a new registry record.
func (s *Store) CreateDocument(ctx context.Context, doc model.Document) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, filename, kind, source, script, used_ocr, page_count, original_file, translated_file, error_kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Filename, doc.Kind, doc.Source, doc.Script, doc.UsedOCR,
		doc.PageCount, doc.OriginalFile, doc.TranslatedFile, doc.ErrorKind, doc.CreatedAt,
	)
	return err
}

// GetDocument returns a single registry record.
func (s *Store) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, filename, kind, source, script, used_ocr, page_count, original_file, translated_file, error_kind, created_at
		 FROM documents WHERE id = ?`, id)
	return scanDocument(row)
}

// ListDocuments returns records matching the filter, newest first.
func (s *Store) ListDocuments(ctx context.Context, f model.DocumentFilter) ([]model.Document, error) {
	query := `SELECT id, filename, kind, source, script, used_ocr, page_count, original_file, translated_file, error_kind, created_at FROM documents`
	var conditions []string
	var args []interface{}

	if len(f.Source) > 0 {
		placeholders := make([]string, len(f.Source))
		for i, src := range f.Source {
			placeholders[i] = "?"
			args = append(args, src)
		}
		conditions = append(conditions, "source IN ("+strings.Join(placeholders, ",")+")")
	}
	if len(f.Kind) > 0 {
		placeholders := make([]string, len(f.Kind))
		for i, k := range f.Kind {
			placeholders[i] = "?"
			args = append(args, k)
		}
		conditions = append(conditions, "kind IN ("+strings.Join(placeholders, ",")+")")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row scanner) (*model.Document, error) {
	var doc model.Document
	err := row.Scan(&doc.ID, &doc.Filename, &doc.Kind, &doc.Source, &doc.Script,
		&doc.UsedOCR, &doc.PageCount, &doc.OriginalFile, &doc.TranslatedFile,
		&doc.ErrorKind, &doc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
