// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/cardgen/pkg/types"
)

// ReadBlackCards loads a generated black card file.
func ReadBlackCards(path string) ([]types.BlackCard, error) {
	var cards []types.BlackCard
	if err := readJSON(path, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// ReadWhiteCards loads a generated white card file.
func ReadWhiteCards(path string) ([]types.WhiteCard, error) {
	var cards []types.WhiteCard
	if err := readJSON(path, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return classifyFSError(err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w: %w", path, ErrMalformedInput, err)
	}
	return nil
}
