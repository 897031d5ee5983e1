package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoctl/cryptoctl/internal/userconfig"
	"github.com/cryptoctl/cryptoctl/internal/validate"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set the default coin and currency",
	Long: `With no flags, print the stored defaults. With --coin-default or
--currency-default, validate the value against the cached reference lists
and persist it. Coin values are normalized to the canonical coin id.

Stored defaults take precedence over the built-in bitcoin/usd fallbacks;
explicit --coin/--currency flags take precedence over both.`,
	RunE: runConfig,
}

var (
	configCoinDefault     string
	configCurrencyDefault string
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configCoinDefault, "coin-default", "", "default cryptocurrency coin to use")
	configCmd.Flags().StringVar(&configCurrencyDefault, "currency-default", "", "default currency to denominate prices (ISO 4217 code)")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	inv := fromCommand(cmd)
	ctx := cmd.Context()

	if configCoinDefault == "" && configCurrencyDefault == "" {
		fmt.Println("No new configurations set - existing config is:")
		printDefaults(inv.Defaults)
		return nil
	}

	updated := inv.Defaults
	if configCoinDefault != "" {
		id, err := validate.Coin(ctx, inv.Resources, configCoinDefault)
		if err != nil {
			return err
		}
		updated.Coin = id
		fmt.Printf("Setting coin to %s\n", id)
	}
	if configCurrencyDefault != "" {
		currency, err := validate.Currency(ctx, inv.Resources, configCurrencyDefault)
		if err != nil {
			return err
		}
		updated.Currency = currency
		fmt.Printf("Setting currency to %s\n", currency)
	}

	return userconfig.Save(inv.Dir, updated)
}

func printDefaults(d userconfig.Defaults) {
	if d.Coin == "" && d.Currency == "" {
		fmt.Println("(empty)")
		return
	}
	if d.Coin != "" {
		fmt.Printf("coin: %s\n", d.Coin)
	}
	if d.Currency != "" {
		fmt.Printf("currency: %s\n", d.Currency)
	}
}
