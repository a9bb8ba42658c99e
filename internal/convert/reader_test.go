// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRows(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [][]string
		wantErr error
	}{
		{
			name:  "plain rows keep their order",
			input: "Glitter\nA sandwich\n",
			want:  [][]string{{"Glitter"}, {"A sandwich"}},
		},
		{
			name:  "rows may differ in field count",
			input: "one,\ntwo,PICK 2\nthree,x,y\n",
			want:  [][]string{{"one", ""}, {"two", "PICK 2"}, {"three", "x", "y"}},
		},
		{
			name:  "quoted fields embed commas and newlines",
			input: "\"Line one\nline two, still\",PICK 2\n",
			want:  [][]string{{"Line one\nline two, still", "PICK 2"}},
		},
		{
			name:  "escaped quotes",
			input: "\"She said \"\"hi\"\"\",\n",
			want:  [][]string{{`She said "hi"`, ""}},
		},
		{
			name:  "crlf line endings",
			input: "a,\r\nb,PICK 2\r\n",
			want:  [][]string{{"a", ""}, {"b", "PICK 2"}},
		},
		{
			name:  "blank lines are skipped",
			input: "Glitter\n\nA sandwich\n",
			want:  [][]string{{"Glitter"}, {"A sandwich"}},
		},
		{
			name:  "crlf inside a quoted field becomes lf",
			input: "\"x\r\ny\"\n",
			want:  [][]string{{"x\ny"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  [][]string{},
		},
		{
			name:    "unterminated quote",
			input:   "\"never closed,\n",
			wantErr: ErrMalformedInput,
		},
		{
			name:    "bare quote in unquoted field",
			input:   "a\"b,c\n",
			wantErr: ErrMalformedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRows(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "white.csv")
	require.NoError(t, os.WriteFile(path, []byte("Glitter\nA sandwich\n"), 0o644))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Glitter"}, {"A sandwich"}}, rows)
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestReadRowsMalformedMentionsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("ok,\n\"broken\n"), 0o644))

	_, err := ReadRows(path)
	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), path)
}
