// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PickTwoMarker is the literal value in the second CSV column of a black
// card that requires two white cards.
const PickTwoMarker = "PICK 2"

// CardKind distinguishes prompt cards from response cards.
type CardKind string

const (
	KindBlack CardKind = "black"
	KindWhite CardKind = "white"
)

// BlackCard is a prompt card. Field order matters: it is the key order of
// the generated JSON.
type BlackCard struct {
	// Text is the prompt, taken verbatim from the first CSV column.
	Text string `json:"text" yaml:"text"`

	// Pick is the number of white cards a player submits (1 or 2).
	Pick int `json:"pick" yaml:"pick"`
}

// WhiteCard is a response card.
type WhiteCard struct {
	// ID is the zero-based position of the card in the source CSV.
	ID int `json:"id" yaml:"id"`

	// Text is the response, taken verbatim from the first CSV column.
	Text string `json:"text" yaml:"text"`
}
