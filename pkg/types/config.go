// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConverterConfig holds the input and output paths of a single converter.
type ConverterConfig struct {
	// Input is the CSV file to read.
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the JSON file to write. An existing file is overwritten.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// ASCIIOnly escapes every non-ASCII character in the output as \uXXXX.
	ASCIIOnly bool `json:"ascii_only" yaml:"ascii_only" mapstructure:"ascii_only"`
}

// GenerateConfig groups both converters for a full generation run.
type GenerateConfig struct {
	Black ConverterConfig `json:"black" yaml:"black" mapstructure:"black"`
	White ConverterConfig `json:"white" yaml:"white" mapstructure:"white"`
}

// CatalogConfig holds settings for the card catalog database.
type CatalogConfig struct {
	// DBPath is the SQLite database file (default "cards.db").
	DBPath string `json:"db" yaml:"db" mapstructure:"db"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// DealConfig holds settings for dealing a table.
type DealConfig struct {
	// Players is the number of hands to deal.
	Players int `json:"players" yaml:"players" mapstructure:"players"`

	// HandSize is the number of white cards per hand (default 10).
	HandSize int `json:"hand_size" yaml:"hand_size" mapstructure:"hand_size"`

	// Seed seeds the shuffle. Zero picks a random seed.
	Seed uint64 `json:"seed" yaml:"seed" mapstructure:"seed"`
}
