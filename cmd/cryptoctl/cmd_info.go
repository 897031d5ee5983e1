package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show descriptive details for the selected coin",
	Long: `Fetch and display metadata for the selected coin: identity, hashing
algorithm, genesis date, current price, supply figures, market cap, and
description.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, _ []string) error {
	inv := fromCommand(cmd)

	info, err := inv.API.CoinByID(cmd.Context(), inv.Coin)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Id\t%s\n", info.ID)
	fmt.Fprintf(w, "Name\t%s\n", info.Name)
	fmt.Fprintf(w, "Symbol\t%s\n", info.Symbol)
	fmt.Fprintf(w, "Hashing algorithm\t%s\n", orNA(info.HashingAlgorithm))
	fmt.Fprintf(w, "Genesis date\t%s\n", orNA(info.GenesisDate))
	fmt.Fprintf(w, "Current price\t%s\n", currencyFigure(info.MarketData.CurrentPrice, inv.Currency, formatPrice))
	fmt.Fprintf(w, "Circulating supply\t%s\n", supplyFigure(info.MarketData.CirculatingSupply))
	fmt.Fprintf(w, "Total supply\t%s\n", supplyFigure(info.MarketData.TotalSupply))
	fmt.Fprintf(w, "Max supply\t%s\n", supplyFigure(info.MarketData.MaxSupply))
	fmt.Fprintf(w, "Market cap\t%s\n", currencyFigure(info.MarketData.MarketCap, inv.Currency, humanize.Commaf))
	w.Flush()

	if desc := info.Description["en"]; desc != "" {
		fmt.Printf("\n%s\n", desc)
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

// currencyFigure renders a per-currency figure, or n/a when the API has no
// entry for that currency.
func currencyFigure(figures map[string]float64, currency string, format func(float64) string) string {
	v, ok := figures[currency]
	if !ok {
		return "n/a"
	}
	return format(v) + " " + currency
}

// supplyFigure renders a supply count, or n/a when the API reports none
// (null supplies unmarshal to zero).
func supplyFigure(v float64) string {
	if v <= 0 {
		return "n/a"
	}
	return humanize.Commaf(v)
}
