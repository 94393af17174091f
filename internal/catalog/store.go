// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog writes scanned slide documents and their image
// references to a SQLite file that can be queried with the sqlite3 shell.
// The catalog is rebuilt on every run; it holds no incremental state.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/slidekit/pkg/types"
)

// Store wraps the catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS documents (
			name TEXT PRIMARY KEY,
			stem TEXT NOT NULL,
			title TEXT,
			subtitle TEXT,
			lecture_number TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS image_refs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document TEXT NOT NULL REFERENCES documents(name) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			command TEXT NOT NULL,
			image TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_image_refs_image ON image_refs(image)`,
		`CREATE INDEX IF NOT EXISTS idx_image_refs_document ON image_refs(document)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Replace discards the current contents and stores docs in a single
// transaction.
func (s *Store) Replace(ctx context.Context, docs []types.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM image_refs`, `DELETE FROM documents`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing catalog: %w", err)
		}
	}

	docStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (name, stem, title, subtitle, lecture_number) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing document insert: %w", err)
	}
	defer docStmt.Close()

	refStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO image_refs (document, position, command, image) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing image insert: %w", err)
	}
	defer refStmt.Close()

	for _, doc := range docs {
		if _, err := docStmt.ExecContext(ctx, doc.Name, doc.Stem, doc.Title, doc.Subtitle, doc.LectureNumber); err != nil {
			return fmt.Errorf("inserting document %s: %w", doc.Name, err)
		}
		for i, ref := range doc.Images {
			if _, err := refStmt.ExecContext(ctx, doc.Name, i, ref.Command, ref.Image); err != nil {
				return fmt.Errorf("inserting image %s of %s: %w", ref.Image, doc.Name, err)
			}
		}
	}

	return tx.Commit()
}

// ImageCounts returns the number of references to each image.
func (s *Store) ImageCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT image, count(*) FROM image_refs GROUP BY image`)
	if err != nil {
		return nil, fmt.Errorf("querying image counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var image string
		var n int
		if err := rows.Scan(&image, &n); err != nil {
			return nil, fmt.Errorf("scanning image count: %w", err)
		}
		counts[image] = n
	}
	return counts, rows.Err()
}

// Documents returns the stored documents sorted by name, each with its
// image references in file order. Path is not stored and is left empty.
func (s *Store) Documents(ctx context.Context) ([]types.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, stem, title, subtitle, lecture_number FROM documents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}

	var docs []types.Document
	index := make(map[string]int)
	for rows.Next() {
		var d types.Document
		if err := rows.Scan(&d.Name, &d.Stem, &d.Title, &d.Subtitle, &d.LectureNumber); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		index[d.Name] = len(docs)
		docs = append(docs, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs, err := s.db.QueryContext(ctx,
		`SELECT document, command, image FROM image_refs ORDER BY document, position`)
	if err != nil {
		return nil, fmt.Errorf("querying image refs: %w", err)
	}
	defer refs.Close()

	for refs.Next() {
		var doc string
		var ref types.ImageRef
		if err := refs.Scan(&doc, &ref.Command, &ref.Image); err != nil {
			return nil, fmt.Errorf("scanning image ref: %w", err)
		}
		if i, ok := index[doc]; ok {
			docs[i].Images = append(docs[i].Images, ref)
		}
	}
	return docs, refs.Err()
}
