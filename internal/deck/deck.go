// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck shuffles generated decks and deals them to players.
package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/pdiddy/cardgen/pkg/types"
)

// ErrEmptyDeck is returned when cards are requested from a deck with no
// cards to reshuffle.
var ErrEmptyDeck = errors.New("deck is empty")

// NewRand returns a generator seeded with seed, or with a random seed when
// seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Shuffle returns a shuffled copy of cards. The input is not modified.
func Shuffle[T any](cards []T, rng *rand.Rand) []T {
	out := slices.Clone(cards)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Deal moves n card IDs from the top of deck into hand and returns the
// remaining deck and the new hand. When the deck runs short its remaining
// cards are taken, a shuffled copy of full becomes the deck, and dealing
// continues from it. The new hand lists the old hand, then the cards from the
// reshuffled deck, then the leftovers of the exhausted deck. A negative n is
// an error; zero deals nothing.
func Deal(deck, full []types.WhiteCard, hand []int, n int, rng *rand.Rand) ([]types.WhiteCard, []int, error) {
	if n < 0 {
		return deck, hand, fmt.Errorf("cannot deal %d cards", n)
	}
	if n > len(deck) {
		if len(full) == 0 {
			return deck, hand, ErrEmptyDeck
		}
		leftovers := cardIDs(deck)
		newDeck, newHand, err := Deal(Shuffle(full, rng), full, hand, n-len(deck), rng)
		if err != nil {
			return deck, hand, err
		}
		return newDeck, append(newHand, leftovers...), nil
	}

	newHand := append(slices.Clone(hand), cardIDs(deck[:n])...)
	return slices.Clone(deck[n:]), newHand, nil
}

func cardIDs(cards []types.WhiteCard) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
