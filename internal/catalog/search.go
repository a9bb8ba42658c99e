// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/cardgen/pkg/types"
)

// QueryOptions holds parameters for catalog searches.
type QueryOptions struct {
	// Query is a case-insensitive substring matched against card text.
	Query string

	// Kind restricts results to black or white cards.
	Kind types.CardKind

	// Pick restricts results to black cards with this pick count.
	Pick int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Entry is a card as stored in the catalog.
type Entry struct {
	Kind types.CardKind `json:"kind" yaml:"kind"`
	ID   int            `json:"id" yaml:"id"`
	Text string         `json:"text" yaml:"text"`
	Pick int            `json:"pick,omitempty" yaml:"pick,omitempty"`
}

// Search returns cards matching opts, black cards first, each kind in ID
// order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT kind, id, text, pick FROM (
			SELECT 'black' AS kind, id, text, pick FROM black_cards
			UNION ALL
			SELECT 'white' AS kind, id, text, 0 AS pick FROM white_cards
		) WHERE 1=1`)

	if opts.Kind != "" {
		qb.WriteString(` AND kind = ?`)
		args = append(args, string(opts.Kind))
	}
	if opts.Pick > 0 {
		qb.WriteString(` AND pick = ?`)
		args = append(args, opts.Pick)
	}
	if opts.Query != "" {
		qb.WriteString(` AND text LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(opts.Query)+"%")
	}

	qb.WriteString(` ORDER BY kind, id LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		var (
			e    Entry
			kind string
		)
		if err := rows.Scan(&kind, &e.ID, &e.Text, &e.Pick); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.Kind = types.CardKind(kind)
		results = append(results, e)
	}
	return results, rows.Err()
}

// escapeLike escapes LIKE wildcards. Card text is full of underscores.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Stats holds card counts per deck.
type Stats struct {
	Black   int `json:"black" yaml:"black"`
	PickOne int `json:"pick_one" yaml:"pick_one"`
	PickTwo int `json:"pick_two" yaml:"pick_two"`
	White   int `json:"white" yaml:"white"`
}

// Stats counts the cards in the catalog.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT
			(SELECT count(*) FROM black_cards),
			(SELECT count(*) FROM black_cards WHERE pick = 1),
			(SELECT count(*) FROM black_cards WHERE pick = 2),
			(SELECT count(*) FROM white_cards)`,
	).Scan(&st.Black, &st.PickOne, &st.PickTwo, &st.White)
	if err != nil {
		return Stats{}, fmt.Errorf("counting cards: %w", err)
	}
	return st, nil
}
