// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/cardgen/internal/convert"
	"github.com/pdiddy/cardgen/internal/deck"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle the generated decks and deal a round",
	Long: `Deal loads the generated decks, shuffles them, draws one black card and
deals a hand of white cards to each player. The white deck is reshuffled
when it runs out. Use --seed to reproduce a deal.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			"players":   "deal.players",
			"hand-size": "deal.hand_size",
			"seed":      "deal.seed",
		})
	},
	RunE: runDeal,
}

func runDeal(cmd *cobra.Command, args []string) error {
	cfg := dealConfig()
	blackPath, whitePath := deckPaths(cmd)

	black, err := convert.ReadBlackCards(blackPath)
	if err != nil {
		return fmt.Errorf("loading black cards: %w", err)
	}
	white, err := convert.ReadWhiteCards(whitePath)
	if err != nil {
		return fmt.Errorf("loading white cards: %w", err)
	}

	table, err := deck.NewTable(black, white, cfg.Players, deck.NewRand(cfg.Seed))
	if err != nil {
		return err
	}
	if err := table.DealHands(cfg.HandSize); err != nil {
		return err
	}

	logger.Debug("dealt round",
		zap.Int("players", cfg.Players),
		zap.Int("hand_size", cfg.HandSize),
		zap.Uint64("seed", cfg.Seed),
	)
	printTable(os.Stdout, table)
	return nil
}

func printTable(w io.Writer, table *deck.Table) {
	prompt := table.DrawBlack()
	fmt.Fprintf(w, "Black card (pick %d): %s\n", prompt.Pick, prompt.Text)

	for _, p := range table.Players {
		fmt.Fprintf(w, "\n%s:\n", p.Name)
		for _, id := range p.Hand {
			card, _ := table.WhiteCard(id)
			fmt.Fprintf(w, "  [%d] %s\n", id, card.Text)
		}
	}

	black, white := table.Remaining()
	fmt.Fprintf(w, "\n%d black and %d white cards left in the decks\n", black, white)
}

func init() {
	dealCmd.Flags().Int("players", 4, "number of players")
	dealCmd.Flags().Int("hand-size", 10, "white cards per hand")
	dealCmd.Flags().Uint64("seed", 0, "shuffle seed (0 = random)")
	dealCmd.Flags().String("black", "", "black card JSON deck (default: configured black output)")
	dealCmd.Flags().String("white", "", "white card JSON deck (default: configured white output)")

	rootCmd.AddCommand(dealCmd)
}
