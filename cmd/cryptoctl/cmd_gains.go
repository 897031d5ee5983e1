package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cryptoctl/cryptoctl/internal/usererr"
)

var gainsCmd = &cobra.Command{
	Use:   "gains <start-date> [end-date]",
	Short: "Show the percentage price change between two dates",
	Long: `Compute the percentage change in the selected coin's price between two
dates (dd-mm-yyyy). The end date defaults to today. Both dates must be in
the past and the end date must not precede the start date.

Example:
  cryptoctl gains 01-01-2024 01-06-2024`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGains,
}

func init() {
	rootCmd.AddCommand(gainsCmd)
}

func runGains(cmd *cobra.Command, args []string) error {
	inv := fromCommand(cmd)

	endArg := ""
	if len(args) == 2 {
		endArg = args[1]
	}
	startDate, endDate, err := parseGainsRange(args[0], endArg, time.Now())
	if err != nil {
		return err
	}

	startPrice, err := priceOn(cmd, startDate)
	if err != nil {
		return err
	}
	endPrice, err := priceOn(cmd, endDate)
	if err != nil {
		return err
	}

	change := percentChange(startPrice, endPrice)
	fmt.Println(describeChange(inv.Coin, change))
	return nil
}

// parseGainsRange validates the date pair: both must parse as dd-mm-yyyy,
// neither may be in the future, and end must not precede start. An empty
// end defaults to today.
func parseGainsRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	startDate, err := time.Parse(apiDateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, usererr.Invalidf("%s is not a valid dd-mm-yyyy date", start)
	}

	today := now.UTC().Truncate(24 * time.Hour)
	endDate := today
	if end != "" {
		endDate, err = time.Parse(apiDateLayout, end)
		if err != nil {
			return time.Time{}, time.Time{}, usererr.Invalidf("%s is not a valid dd-mm-yyyy date", end)
		}
	}

	if startDate.After(today) || endDate.After(today) {
		return time.Time{}, time.Time{}, usererr.Invalidf("dates must not be in the future")
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, usererr.Invalidf("end date %s precedes start date %s", endDate.Format(apiDateLayout), start)
	}
	return startDate, endDate, nil
}

// priceOn fetches the historical price of the invocation coin on the given
// day, in the invocation currency.
func priceOn(cmd *cobra.Command, day time.Time) (float64, error) {
	inv := fromCommand(cmd)
	date := day.Format(apiDateLayout)

	data, err := inv.API.History(cmd.Context(), inv.Coin, date)
	if err != nil {
		return 0, err
	}
	price, ok := data.MarketData.CurrentPrice[inv.Currency]
	if !ok {
		return 0, fmt.Errorf("no %s price recorded for %s on %s", inv.Currency, inv.Coin, date)
	}
	return price, nil
}

// percentChange computes (end-start)/start*100.
func percentChange(start, end float64) float64 {
	return (end - start) / start * 100
}

// describeChange renders the change direction and magnitude. An exact zero
// change reports "unchanged".
func describeChange(coin string, change float64) string {
	switch {
	case change > 0:
		return fmt.Sprintf("%s increased by %.2f%%", coin, change)
	case change < 0:
		return fmt.Sprintf("%s decreased by %.2f%%", coin, change)
	default:
		return fmt.Sprintf("%s unchanged (0.00%%)", coin)
	}
}
