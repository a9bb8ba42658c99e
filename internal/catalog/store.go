// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog indexes generated card decks in a local SQLite database
// so they can be searched, counted and exported.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cardgen/internal/convert"
	"github.com/pdiddy/cardgen/pkg/types"
)

const (
	// DefaultDBPath is used when the configuration leaves the path empty.
	DefaultDBPath     = "cards.db"
	defaultMaxResults = 20
)

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the catalog database at cfg.DBPath and creates the
// schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
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
		`CREATE TABLE IF NOT EXISTS black_cards (
			id INTEGER PRIMARY KEY,
			text TEXT NOT NULL,
			pick INTEGER NOT NULL CHECK (pick IN (1, 2))
		)`,
		`CREATE TABLE IF NOT EXISTS white_cards (
			id INTEGER PRIMARY KEY,
			text TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_black_cards_pick ON black_cards(pick)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			kind TEXT PRIMARY KEY,
			source TEXT,
			card_count INTEGER,
			ingested_at TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from an ingest run.
type IngestSummary struct {
	Black int
	White int
}

// Total returns the number of cards indexed.
func (s IngestSummary) Total() int {
	return s.Black + s.White
}

// Ingest replaces the catalog contents with the given decks in a single
// transaction. Black cards are keyed by their position in the deck, white
// cards by their ID.
func (s *Store) Ingest(ctx context.Context, black []types.BlackCard, white []types.WhiteCard) (IngestSummary, error) {
	return s.ingest(ctx, black, white, "", "")
}

// IngestFiles loads generated deck files and ingests them, reporting
// progress to w.
func (s *Store) IngestFiles(ctx context.Context, blackPath, whitePath string, w io.Writer) (IngestSummary, error) {
	black, err := convert.ReadBlackCards(blackPath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("loading black cards: %w", err)
	}
	white, err := convert.ReadWhiteCards(whitePath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("loading white cards: %w", err)
	}

	summary, err := s.ingest(ctx, black, white, blackPath, whitePath)
	if err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "indexed black: %d cards from %s\n", summary.Black, blackPath)
	fmt.Fprintf(w, "indexed white: %d cards from %s\n", summary.White, whitePath)
	return summary, nil
}

func (s *Store) ingest(ctx context.Context, black []types.BlackCard, white []types.WhiteCard, blackSrc, whiteSrc string) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM black_cards`, `DELETE FROM white_cards`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return IngestSummary{}, fmt.Errorf("clearing catalog: %w", err)
		}
	}

	blackStmt, err := tx.PrepareContext(ctx, `INSERT INTO black_cards (id, text, pick) VALUES (?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer blackStmt.Close()
	for i, c := range black {
		if _, err := blackStmt.ExecContext(ctx, i, c.Text, c.Pick); err != nil {
			return IngestSummary{}, fmt.Errorf("inserting black card %d: %w", i, err)
		}
	}

	whiteStmt, err := tx.PrepareContext(ctx, `INSERT INTO white_cards (id, text) VALUES (?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer whiteStmt.Close()
	for _, c := range white {
		if _, err := whiteStmt.ExecContext(ctx, c.ID, c.Text); err != nil {
			return IngestSummary{}, fmt.Errorf("inserting white card %d: %w", c.ID, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, st := range []struct {
		kind   types.CardKind
		source string
		count  int
	}{
		{types.KindBlack, blackSrc, len(black)},
		{types.KindWhite, whiteSrc, len(white)},
	} {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO ingest_status (kind, source, card_count, ingested_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT(kind) DO UPDATE SET
				source=excluded.source, card_count=excluded.card_count, ingested_at=excluded.ingested_at`,
			string(st.kind), st.source, st.count, now,
		)
		if err != nil {
			return IngestSummary{}, fmt.Errorf("updating ingest status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing ingest: %w", err)
	}
	return IngestSummary{Black: len(black), White: len(white)}, nil
}
