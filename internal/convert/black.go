// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"go.uber.org/zap"

	"github.com/pdiddy/cardgen/pkg/types"
)

// IncludeBlackRow reports whether a raw row describes a black card: exactly
// two fields, the second empty or the pick-two marker.
func IncludeBlackRow(row []string) bool {
	if len(row) != 2 {
		return false
	}
	return row[1] == "" || row[1] == types.PickTwoMarker
}

// MapBlackRow builds a black card from a row accepted by IncludeBlackRow.
func MapBlackRow(row []string) types.BlackCard {
	pick := 1
	if row[1] == types.PickTwoMarker {
		pick = 2
	}
	return types.BlackCard{Text: row[0], Pick: pick}
}

// MapBlackRows filters and maps rows, keeping their relative order. It
// returns the cards and the number of rows dropped. Dropped rows are not an
// error; they are logged at debug level.
func MapBlackRows(rows [][]string, log *zap.Logger) ([]types.BlackCard, int) {
	if log == nil {
		log = zap.NewNop()
	}

	cards := make([]types.BlackCard, 0, len(rows))
	dropped := 0
	for i, row := range rows {
		if !IncludeBlackRow(row) {
			dropped++
			log.Debug("dropping black card row",
				zap.Int("row", i),
				zap.Int("fields", len(row)),
				zap.Strings("values", row),
			)
			continue
		}
		cards = append(cards, MapBlackRow(row))
	}
	return cards, dropped
}
