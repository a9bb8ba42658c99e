// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cardgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/cardgen/internal/catalog"
	"github.com/pdiddy/cardgen/internal/convert"
	"github.com/pdiddy/cardgen/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the cardgen CLI.
var rootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "Generate card game decks from CSV exports",
	Long: `cardgen converts the black (prompt) and white (response) card CSV exports
into the JSON decks the game loads.

Run without a subcommand to generate both decks from the default paths
(black-cards-2.1.csv and white-cards-2.1.csv in the working directory).
The catalog and deal subcommands work on the generated decks.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cardgen.yaml or ~/.config/cardgen/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging (reports dropped rows)")
	rootCmd.PersistentFlags().Bool("ascii-only", true, "escape non-ASCII characters in generated JSON")

	_ = viper.BindPFlag("json.ascii_only", rootCmd.PersistentFlags().Lookup("ascii-only"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cardgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cardgen"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("CARDGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("black.input", convert.DefaultBlackInput)
	viper.SetDefault("black.output", convert.DefaultBlackOutput)
	viper.SetDefault("white.input", convert.DefaultWhiteInput)
	viper.SetDefault("white.output", convert.DefaultWhiteOutput)
	viper.SetDefault("json.ascii_only", true)
	viper.SetDefault("catalog.db", catalog.DefaultDBPath)
	viper.SetDefault("catalog.max_results", 20)
	viper.SetDefault("deal.players", 4)
	viper.SetDefault("deal.hand_size", 10)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
