// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cardgen/internal/convert"
	"github.com/pdiddy/cardgen/pkg/types"
)

var blackCmd = &cobra.Command{
	Use:   "black",
	Short: "Convert the black card CSV into a JSON deck",
	Long: `Black reads the black card CSV and writes a JSON array of
{"text", "pick"} records. Only rows with exactly two fields whose second
field is empty or "PICK 2" become cards; other rows are dropped (use
--verbose to see them).`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{"input": "black.input", "output": "black.output"})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := convert.ConvertBlack(context.Background(), converterConfig(types.KindBlack), logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "converted: %s\n", res)
		return nil
	},
}

var whiteCmd = &cobra.Command{
	Use:   "white",
	Short: "Convert the white card CSV into a JSON deck",
	Long: `White reads the white card CSV and writes a JSON array of {"id", "text"}
records, one per row. The id is the row's zero-based position in the CSV.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{"input": "white.input", "output": "white.output"})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := convert.ConvertWhite(context.Background(), converterConfig(types.KindWhite), logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "converted: %s\n", res)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Convert both card CSVs into JSON decks",
	Long: `Generate runs the black card converter and then the white card converter.
It stops at the first failure. Paths come from the config file or
CARDGEN_BLACK_INPUT, CARDGEN_BLACK_OUTPUT, CARDGEN_WHITE_INPUT and
CARDGEN_WHITE_OUTPUT.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, err := convert.Generate(context.Background(), generateConfig(), os.Stdout, logger)
	return err
}

func init() {
	blackCmd.Flags().String("input", convert.DefaultBlackInput, "black card CSV to read")
	blackCmd.Flags().String("output", convert.DefaultBlackOutput, "JSON deck to write (overwritten)")
	whiteCmd.Flags().String("input", convert.DefaultWhiteInput, "white card CSV to read")
	whiteCmd.Flags().String("output", convert.DefaultWhiteOutput, "JSON deck to write (overwritten)")

	rootCmd.AddCommand(blackCmd)
	rootCmd.AddCommand(whiteCmd)
	rootCmd.AddCommand(generateCmd)
}
