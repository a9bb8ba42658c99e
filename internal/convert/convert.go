// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns card CSV exports into the JSON decks the game loads.
// Each converter is a single synchronous pass: read rows, map them to cards,
// write a JSON array. A failure at any stage aborts the run.
package convert

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/cardgen/pkg/types"
)

// Fixed paths used when no override is configured, relative to the working
// directory.
const (
	DefaultBlackInput  = "black-cards-2.1.csv"
	DefaultBlackOutput = "black-cards-2.1.json"
	DefaultWhiteInput  = "white-cards-2.1.csv"
	DefaultWhiteOutput = "white-cards-2.1.json"
)

// DefaultBlackConfig returns the black card converter's fixed paths.
func DefaultBlackConfig() types.ConverterConfig {
	return types.ConverterConfig{Input: DefaultBlackInput, Output: DefaultBlackOutput, ASCIIOnly: true}
}

// DefaultWhiteConfig returns the white card converter's fixed paths.
func DefaultWhiteConfig() types.ConverterConfig {
	return types.ConverterConfig{Input: DefaultWhiteInput, Output: DefaultWhiteOutput, ASCIIOnly: true}
}

// DefaultGenerateConfig returns both converters with their fixed paths.
func DefaultGenerateConfig() types.GenerateConfig {
	return types.GenerateConfig{Black: DefaultBlackConfig(), White: DefaultWhiteConfig()}
}

// Result holds the outcome of one converter run.
type Result struct {
	Input   string
	Output  string
	Rows    int
	Written int
	Dropped int
}

func (r Result) String() string {
	return fmt.Sprintf("%s -> %s (%d cards, %d dropped)", r.Input, r.Output, r.Written, r.Dropped)
}

// ConvertBlack reads black card rows from cfg.Input, keeps the rows that
// describe a card and writes them to cfg.Output.
func ConvertBlack(ctx context.Context, cfg types.ConverterConfig, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res := Result{Input: cfg.Input, Output: cfg.Output}

	rows, err := ReadRows(cfg.Input)
	if err != nil {
		return res, err
	}
	res.Rows = len(rows)
	if err := ctx.Err(); err != nil {
		return res, err
	}

	cards, dropped := MapBlackRows(rows, log)
	res.Dropped = dropped

	if err := WriteJSON(cfg.Output, cards, WriteOptions{ASCIIOnly: cfg.ASCIIOnly}); err != nil {
		return res, err
	}
	res.Written = len(cards)

	log.Info("black cards written",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.Int("rows", res.Rows),
		zap.Int("cards", res.Written),
		zap.Int("dropped", res.Dropped),
	)
	return res, nil
}

// ConvertWhite reads white card rows from cfg.Input and writes one card per
// row to cfg.Output.
func ConvertWhite(ctx context.Context, cfg types.ConverterConfig, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res := Result{Input: cfg.Input, Output: cfg.Output}

	rows, err := ReadRows(cfg.Input)
	if err != nil {
		return res, err
	}
	res.Rows = len(rows)
	if err := ctx.Err(); err != nil {
		return res, err
	}

	cards, err := MapWhiteRows(rows)
	if err != nil {
		return res, fmt.Errorf("mapping %s: %w", cfg.Input, err)
	}

	if err := WriteJSON(cfg.Output, cards, WriteOptions{ASCIIOnly: cfg.ASCIIOnly}); err != nil {
		return res, err
	}
	res.Written = len(cards)

	log.Info("white cards written",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.Int("cards", res.Written),
	)
	return res, nil
}

// Summary holds the outcome of a Generate run.
type Summary struct {
	Black Result
	White Result
}

// Total returns the number of cards written across both decks.
func (s Summary) Total() int {
	return s.Black.Written + s.White.Written
}

// Generate runs the black then the white converter, printing a status line
// per converter to w. It stops at the first failure.
func Generate(ctx context.Context, cfg types.GenerateConfig, w io.Writer, log *zap.Logger) (Summary, error) {
	var summary Summary

	black, err := ConvertBlack(ctx, cfg.Black, log)
	if err != nil {
		fmt.Fprintf(w, "failed:    black (%v)\n", err)
		return summary, fmt.Errorf("black cards: %w", err)
	}
	summary.Black = black
	fmt.Fprintf(w, "converted: %s\n", black)

	white, err := ConvertWhite(ctx, cfg.White, log)
	if err != nil {
		fmt.Fprintf(w, "failed:    white (%v)\n", err)
		return summary, fmt.Errorf("white cards: %w", err)
	}
	summary.White = white
	fmt.Fprintf(w, "converted: %s\n", white)

	fmt.Fprintf(w, "\nGenerate summary: %d black, %d white (total: %d)\n",
		summary.Black.Written, summary.White.Written, summary.Total())
	return summary, nil
}
