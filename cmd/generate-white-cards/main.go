// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command generate-white-cards converts ./white-cards-2.1.csv into
// ./white-cards-2.1.json. It takes no arguments.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/cardgen/internal/convert"
	"github.com/pdiddy/cardgen/internal/logging"
)

func main() {
	logger, err := logging.New(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if _, err := convert.ConvertWhite(context.Background(), convert.DefaultWhiteConfig(), logger); err != nil {
		fmt.Fprintln(os.Stderr, "generate-white-cards:", err)
		logger.Sync()
		os.Exit(1)
	}
}
