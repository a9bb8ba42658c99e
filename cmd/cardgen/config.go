// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cardgen/pkg/types"
)

// bindFlags binds the named flags of cmd to viper keys. Binding happens when
// the command runs, so that commands sharing a key do not steal each
// other's flags.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

// converterConfig reads the paths of one converter ("black" or "white").
func converterConfig(kind types.CardKind) types.ConverterConfig {
	prefix := string(kind)
	return types.ConverterConfig{
		Input:     viper.GetString(prefix + ".input"),
		Output:    viper.GetString(prefix + ".output"),
		ASCIIOnly: viper.GetBool("json.ascii_only"),
	}
}

func generateConfig() types.GenerateConfig {
	return types.GenerateConfig{
		Black: converterConfig(types.KindBlack),
		White: converterConfig(types.KindWhite),
	}
}

func catalogConfig() types.CatalogConfig {
	return types.CatalogConfig{
		DBPath:     viper.GetString("catalog.db"),
		MaxResults: viper.GetInt("catalog.max_results"),
	}
}

func dealConfig() types.DealConfig {
	return types.DealConfig{
		Players:  viper.GetInt("deal.players"),
		HandSize: viper.GetInt("deal.hand_size"),
		Seed:     viper.GetUint64("deal.seed"),
	}
}
