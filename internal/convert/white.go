// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdiddy/cardgen/pkg/types"
)

// MapWhiteRows maps every row to a white card whose ID is the row's
// zero-based position. A row without fields aborts the mapping.
func MapWhiteRows(rows [][]string) ([]types.WhiteCard, error) {
	cards := make([]types.WhiteCard, len(rows))
	for i, row := range rows {
		if len(row) < 1 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrRowTooShort, i)
		}
		cards[i] = types.WhiteCard{ID: i, Text: row[0]}
	}
	return cards, nil
}
