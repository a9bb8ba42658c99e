// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/pdiddy/cardgen/pkg/types"
)

// Player is a seat at the table holding white card IDs.
type Player struct {
	Name string
	Hand []int
}

// Table holds the shuffled decks and the players' hands.
type Table struct {
	Players []Player

	rng       *rand.Rand
	blackFull []types.BlackCard
	blackDeck []types.BlackCard
	whiteFull []types.WhiteCard
	whiteDeck []types.WhiteCard
	whiteByID map[int]types.WhiteCard
}

// NewTable shuffles both decks and seats the given number of players with
// empty hands.
func NewTable(black []types.BlackCard, white []types.WhiteCard, players int, rng *rand.Rand) (*Table, error) {
	if len(black) == 0 || len(white) == 0 {
		return nil, ErrEmptyDeck
	}
	if players < 1 {
		return nil, fmt.Errorf("need at least one player, got %d", players)
	}

	t := &Table{
		rng:       rng,
		blackFull: black,
		blackDeck: Shuffle(black, rng),
		whiteFull: white,
		whiteDeck: Shuffle(white, rng),
		whiteByID: make(map[int]types.WhiteCard, len(white)),
	}
	for _, c := range white {
		t.whiteByID[c.ID] = c
	}
	for i := range players {
		t.Players = append(t.Players, Player{Name: fmt.Sprintf("player %d", i+1)})
	}
	return t, nil
}

// DealHands tops every hand up to size cards.
func (t *Table) DealHands(size int) error {
	for i := range t.Players {
		p := &t.Players[i]
		need := size - len(p.Hand)
		if need <= 0 {
			continue
		}
		deck, hand, err := Deal(t.whiteDeck, t.whiteFull, p.Hand, need, t.rng)
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", p.Name, err)
		}
		t.whiteDeck, p.Hand = deck, hand
	}
	return nil
}

// DrawBlack takes the top black card, reshuffling the full black deck when
// it is exhausted.
func (t *Table) DrawBlack() types.BlackCard {
	if len(t.blackDeck) == 0 {
		t.blackDeck = Shuffle(t.blackFull, t.rng)
	}
	card := t.blackDeck[0]
	t.blackDeck = t.blackDeck[1:]
	return card
}

// WhiteCard looks up a white card by ID.
func (t *Table) WhiteCard(id int) (types.WhiteCard, bool) {
	c, ok := t.whiteByID[id]
	return c, ok
}

// Remaining returns the number of cards left in the black and white decks.
func (t *Table) Remaining() (black, white int) {
	return len(t.blackDeck), len(t.whiteDeck)
}
