// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cardgen/pkg/types"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		v    any
		opts WriteOptions
		want string
	}{
		{
			name: "black cards keep text then pick",
			v: []types.BlackCard{
				{Text: "Why can't I sleep at night?", Pick: 1},
				{Text: "What's that smell?", Pick: 2},
			},
			want: "[\n" +
				"  {\n" +
				"    \"text\": \"Why can't I sleep at night?\",\n" +
				"    \"pick\": 1\n" +
				"  },\n" +
				"  {\n" +
				"    \"text\": \"What's that smell?\",\n" +
				"    \"pick\": 2\n" +
				"  }\n" +
				"]",
		},
		{
			name: "white cards keep id then text",
			v:    []types.WhiteCard{{ID: 0, Text: "Glitter"}, {ID: 1, Text: "A sandwich"}},
			want: "[\n" +
				"  {\n" +
				"    \"id\": 0,\n" +
				"    \"text\": \"Glitter\"\n" +
				"  },\n" +
				"  {\n" +
				"    \"id\": 1,\n" +
				"    \"text\": \"A sandwich\"\n" +
				"  }\n" +
				"]",
		},
		{
			name: "empty deck",
			v:    []types.WhiteCard{},
			want: "[]",
		},
		{
			name: "html characters are not escaped",
			v:    []types.WhiteCard{{ID: 0, Text: "<b>Tom & Jerry</b>"}},
			want: "[\n  {\n    \"id\": 0,\n    \"text\": \"<b>Tom & Jerry</b>\"\n  }\n]",
		},
		{
			name: "ascii only escapes non-ascii runes",
			v:    []types.WhiteCard{{ID: 0, Text: "★ café 😀\x7f"}},
			opts: WriteOptions{ASCIIOnly: true},
			want: "[\n  {\n    \"id\": 0,\n    \"text\": \"\\u2605 caf\\u00e9 \\ud83d\\ude00\\u007f\"\n  }\n]",
		},
		{
			name: "utf-8 passes through without ascii only",
			v:    []types.WhiteCard{{ID: 0, Text: "café"}},
			want: "[\n  {\n    \"id\": 0,\n    \"text\": \"café\"\n  }\n]",
		},
		{
			name: "control characters use short escapes",
			v:    []types.WhiteCard{{ID: 0, Text: "a\nb\t\"c\"\\"}},
			opts: WriteOptions{ASCIIOnly: true},
			want: "[\n  {\n    \"id\": 0,\n    \"text\": \"a\\nb\\t\\\"c\\\"\\\\\"\n  }\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.v, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestWriteJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("previous contents that are much longer than the new ones"), 0o644))

	require.NoError(t, WriteJSON(path, []types.WhiteCard{}, WriteOptions{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteJSONMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")
	err := WriteJSON(path, []types.WhiteCard{}, WriteOptions{})
	require.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestWriteJSONPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err := WriteJSON(filepath.Join(dir, "out.json"), []types.WhiteCard{}, WriteOptions{})
	require.ErrorIs(t, err, ErrPermissionDenied)
}
