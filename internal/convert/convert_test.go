// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/cardgen/pkg/types"
)

const blackCSV = "Why can't I sleep at night?,\n" +
	"What's that smell?,PICK 2\n" +
	"Bad,row,extra\n" +
	"\"And the Academy Award for ______ goes to ______.\",PICK 2\n" +
	"Unknown marker,DRAW 2\n"

const whiteCSV = "Glitter\n" +
	"A sandwich\n" +
	"\"Quoted, with a comma\"\n"

// setupConverter writes the CSV fixture and returns a config pointing at it.
func setupConverter(t *testing.T, csv string) types.ConverterConfig {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "cards.csv")
	require.NoError(t, os.WriteFile(in, []byte(csv), 0o644))
	return types.ConverterConfig{Input: in, Output: filepath.Join(dir, "cards.json"), ASCIIOnly: true}
}

func TestConvertBlack(t *testing.T) {
	cfg := setupConverter(t, blackCSV)

	res, err := ConvertBlack(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rows)
	assert.Equal(t, 3, res.Written)
	assert.Equal(t, 2, res.Dropped)

	cards, err := ReadBlackCards(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, []types.BlackCard{
		{Text: "Why can't I sleep at night?", Pick: 1},
		{Text: "What's that smell?", Pick: 2},
		{Text: "And the Academy Award for ______ goes to ______.", Pick: 2},
	}, cards)
}

func TestConvertWhite(t *testing.T) {
	cfg := setupConverter(t, whiteCSV)

	res, err := ConvertWhite(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, res.Rows, res.Written)

	cards, err := ReadWhiteCards(cfg.Output)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	for i, c := range cards {
		assert.Equal(t, i, c.ID)
	}
	assert.Equal(t, "Quoted, with a comma", cards[2].Text)
}

func TestConvertWhiteSkipsBlankLines(t *testing.T) {
	cfg := setupConverter(t, "Glitter\n\nA sandwich\n\n\"x\r\ny\"\n")

	res, err := ConvertWhite(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Written)

	cards, err := ReadWhiteCards(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, []types.WhiteCard{
		{ID: 0, Text: "Glitter"},
		{ID: 1, Text: "A sandwich"},
		{ID: 2, Text: "x\ny"},
	}, cards)
}

func TestConvertIsDeterministic(t *testing.T) {
	cfg := setupConverter(t, blackCSV+"\"★✰ Do NOT go here!\",\n")

	_, err := ConvertBlack(context.Background(), cfg, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	_, err = ConvertBlack(context.Background(), cfg, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), `\u2605\u2730 Do NOT go here!`)
}

func TestConvertFailures(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		convert func(context.Context, types.ConverterConfig) (Result, error)
		mutate  func(cfg *types.ConverterConfig)
		wantErr error
	}{
		{
			name:    "missing black input",
			convert: blackFn,
			mutate:  func(cfg *types.ConverterConfig) { cfg.Input += ".missing" },
			wantErr: ErrFileNotFound,
		},
		{
			name:    "malformed white input",
			csv:     "\"unbalanced\n",
			convert: whiteFn,
			wantErr: ErrMalformedInput,
		},
		{
			name:    "unwritable white output",
			csv:     whiteCSV,
			convert: whiteFn,
			mutate:  func(cfg *types.ConverterConfig) { cfg.Output = filepath.Dir(cfg.Output) },
			wantErr: ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setupConverter(t, tt.csv)
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			_, err := tt.convert(context.Background(), cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConvertFailureLeavesNoOutput(t *testing.T) {
	cfg := setupConverter(t, "\"unbalanced\n")
	_, err := ConvertBlack(context.Background(), cfg, nil)
	require.Error(t, err)

	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "output should not be created when reading fails")
}

func TestConvertCanceled(t *testing.T) {
	cfg := setupConverter(t, whiteCSV)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertWhite(ctx, cfg, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate(t *testing.T) {
	black := setupConverter(t, blackCSV)
	white := setupConverter(t, whiteCSV)

	var out bytes.Buffer
	summary, err := Generate(context.Background(), types.GenerateConfig{Black: black, White: white}, &out, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Black.Written)
	assert.Equal(t, 3, summary.White.Written)
	assert.Equal(t, 6, summary.Total())
	assert.Contains(t, out.String(), "converted: "+black.Input)
	assert.Contains(t, out.String(), "Generate summary: 3 black, 3 white (total: 6)")
}

func TestGenerateStopsAtFirstFailure(t *testing.T) {
	black := setupConverter(t, blackCSV)
	black.Input += ".missing"
	white := setupConverter(t, whiteCSV)

	var out bytes.Buffer
	_, err := Generate(context.Background(), types.GenerateConfig{Black: black, White: white}, &out, nil)
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, out.String(), "failed:")

	_, statErr := os.Stat(white.Output)
	assert.True(t, os.IsNotExist(statErr), "white converter should not run after a black failure")
}

func TestDefaultConfigs(t *testing.T) {
	cfg := DefaultGenerateConfig()
	assert.Equal(t, "black-cards-2.1.csv", cfg.Black.Input)
	assert.Equal(t, "black-cards-2.1.json", cfg.Black.Output)
	assert.Equal(t, "white-cards-2.1.csv", cfg.White.Input)
	assert.Equal(t, "white-cards-2.1.json", cfg.White.Output)
	assert.True(t, cfg.Black.ASCIIOnly)
}

func TestReadCardsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))

	_, err := ReadWhiteCards(path)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func blackFn(ctx context.Context, cfg types.ConverterConfig) (Result, error) {
	return ConvertBlack(ctx, cfg, nil)
}

func whiteFn(ctx context.Context, cfg types.ConverterConfig) (Result, error) {
	return ConvertWhite(ctx, cfg, nil)
}
