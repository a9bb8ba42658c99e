// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cardgen/internal/catalog"
	"github.com/pdiddy/cardgen/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Index, search and export generated decks",
	Long: `Catalog manages a local SQLite database built from the generated JSON
decks. Use subcommands to ingest the decks, search them, count them, or
export them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return bindFlags(cmd, map[string]string{"db": "catalog.db", "max-results": "catalog.max_results"})
	},
}

// --- ingest subcommand ---

var catalogIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the generated decks into the catalog",
	Long: `Ingest reads the generated black and white JSON decks and replaces the
catalog contents with them. Run generate first.`,
	Args: cobra.NoArgs,
	RunE: runCatalogIngest,
}

func runCatalogIngest(cmd *cobra.Command, args []string) error {
	blackPath, whitePath := deckPaths(cmd)

	store, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.IngestFiles(context.Background(), blackPath, whitePath, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d cards indexed\n", summary.Total())
	return nil
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search the catalog by text, kind and pick",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	store, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(os.Stdout, results, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []catalog.Entry, jsonOutput bool) error {
	if jsonOutput {
		if results == nil {
			results = []catalog.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No cards found.")
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-5s  %-4s  %s\n", "Kind", "ID", "Pick", "Text")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range results {
		pick := "-"
		if r.Pick > 0 {
			pick = fmt.Sprint(r.Pick)
		}
		text := truncate(strings.ReplaceAll(r.Text, "\n", " "), 60)
		fmt.Fprintf(w, "%-5s  %-5d  %-4s  %s\n", r.Kind, r.ID, pick, text)
	}
	fmt.Fprintf(w, "\n%d cards\n", len(results))
	return nil
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// --- stats subcommand ---

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count the cards in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Open(catalogConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.Stats(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("black: %d (pick 1: %d, pick 2: %d)\n", st.Black, st.PickOne, st.PickTwo)
		fmt.Printf("white: %d\n", st.White)
		return nil
	},
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or a filtered subset) to a YAML or JSON file.
Supports the same filter flags as search.`,
	Args: cobra.NoArgs,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	store, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if out == "" {
			out = "cards-export.yaml"
		}
		if err := store.ExportYAML(context.Background(), out, opts); err != nil {
			return err
		}
	case "json":
		if out == "" {
			out = "cards-export.json"
		}
		if err := store.ExportJSON(context.Background(), out, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Println("Exported to", out)
	return nil
}

// --- shared helpers ---

// deckPaths returns the generated deck files, defaulting to the converters'
// configured outputs.
func deckPaths(cmd *cobra.Command) (string, string) {
	blackPath, _ := cmd.Flags().GetString("black")
	if blackPath == "" {
		blackPath = viper.GetString("black.output")
	}
	whitePath, _ := cmd.Flags().GetString("white")
	if whitePath == "" {
		whitePath = viper.GetString("white.output")
	}
	return blackPath, whitePath
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) (catalog.QueryOptions, error) {
	kind, _ := cmd.Flags().GetString("kind")
	pick, _ := cmd.Flags().GetInt("pick")
	limit, _ := cmd.Flags().GetInt("limit")

	switch types.CardKind(kind) {
	case "", types.KindBlack, types.KindWhite:
	default:
		return catalog.QueryOptions{}, fmt.Errorf("unsupported kind %q: use black or white", kind)
	}
	if pick < 0 || pick > 2 {
		return catalog.QueryOptions{}, fmt.Errorf("pick must be 1 or 2, got %d", pick)
	}

	return catalog.QueryOptions{
		Query:      strings.Join(args, " "),
		Kind:       types.CardKind(kind),
		Pick:       pick,
		MaxResults: limit,
	}, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("kind", "", "filter by kind: black or white")
	cmd.Flags().Int("pick", 0, "filter black cards by pick count (1 or 2)")
	cmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("db", "cards.db", "catalog database file")
	catalogCmd.PersistentFlags().Int("max-results", 20, "default maximum number of search results")

	catalogIngestCmd.Flags().String("black", "", "black card JSON deck (default: configured black output)")
	catalogIngestCmd.Flags().String("white", "", "white card JSON deck (default: configured white output)")

	addFilterFlags(catalogSearchCmd)
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	addFilterFlags(catalogExportCmd)
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("out", "", "export file (default: cards-export.yaml or cards-export.json)")

	catalogCmd.AddCommand(catalogIngestCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
