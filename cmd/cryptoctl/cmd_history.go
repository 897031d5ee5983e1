package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cryptoctl/cryptoctl/internal/usererr"
)

// apiDateLayout is the dd-mm-yyyy form the CoinGecko history endpoint uses.
const apiDateLayout = "02-01-2006"

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show historical prices for the selected coin",
	Long: `Show historical prices for the selected coin. With --date, print the
price on that specific day. With --days, print the trailing price series
for the given number of days.

Examples:
  cryptoctl history --date 01-01-2024
  cryptoctl --coin ethereum history --days 7`,
	RunE: runHistory,
}

var (
	historyDate string
	historyDays int
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDate, "date", "", "date of price to look up, format dd-mm-yyyy")
	historyCmd.Flags().IntVar(&historyDays, "days", 0, "number of days of history to look up")
	historyCmd.MarkFlagsOneRequired("date", "days")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	inv := fromCommand(cmd)
	ctx := cmd.Context()

	if historyDate != "" {
		if _, err := time.Parse(apiDateLayout, historyDate); err != nil {
			return usererr.Invalidf("%s is not a valid dd-mm-yyyy date", historyDate)
		}
		data, err := inv.API.History(ctx, inv.Coin, historyDate)
		if err != nil {
			return err
		}
		price, ok := data.MarketData.CurrentPrice[inv.Currency]
		if !ok {
			return fmt.Errorf("no %s price recorded for %s on %s", inv.Currency, inv.Coin, historyDate)
		}
		fmt.Printf("%s (%s) on %s: %s\n", inv.Coin, inv.Currency, historyDate, formatPrice(price))
	}

	if historyDays > 0 {
		chart, err := inv.API.MarketChart(ctx, inv.Coin, inv.Currency, historyDays)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Time\tPrice")
		for _, point := range chart.Prices {
			ts := time.UnixMilli(point.UnixMillis()).UTC()
			fmt.Fprintf(w, "%s\t%s\n", ts.Format("2006-01-02 15:04"), formatPrice(point.Value()))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
