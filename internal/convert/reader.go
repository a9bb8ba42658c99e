// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadRows opens the CSV file at path and returns its records in input
// order. Quoted fields may contain commas and newlines.
func ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyFSError(err)
	}
	defer f.Close()

	rows, err := DecodeRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// DecodeRows decodes comma-separated records from r. Records may have
// differing field counts. Empty lines are skipped by the decoder, so every
// returned row has at least one field.
func DecodeRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}
