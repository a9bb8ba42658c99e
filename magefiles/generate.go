package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Generate converts both card CSVs in the working directory into JSON decks.
func Generate() error {
	mg.Deps(Build)
	return sh.RunV("bin/cardgen", "generate")
}

// Catalog generates the decks and indexes them in cards.db.
func Catalog() error {
	mg.Deps(Generate)
	return sh.RunV("bin/cardgen", "catalog", "ingest")
}
