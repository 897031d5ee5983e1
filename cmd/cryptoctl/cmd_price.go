package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cryptoctl/cryptoctl/internal/usererr"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Show the current price of the selected coin",
	Long: `Fetch the current price of the selected coin in the selected currency.

With --watch the price is polled on a fixed interval, one line per poll,
until --stop minutes have elapsed or the process is interrupted.

Examples:
  cryptoctl price
  cryptoctl --coin ethereum price
  cryptoctl price --watch --interval 30 --stop 10`,
	RunE: runPrice,
}

var (
	priceWatch    bool
	priceInterval int
	priceStop     int
)

func init() {
	rootCmd.AddCommand(priceCmd)

	priceCmd.Flags().BoolVar(&priceWatch, "watch", false, "poll the price on an interval")
	priceCmd.Flags().IntVar(&priceInterval, "interval", 15, "watch interval in seconds")
	priceCmd.Flags().IntVar(&priceStop, "stop", 0, "stop watching after the given number of minutes (0 = run until interrupted)")
}

func runPrice(cmd *cobra.Command, _ []string) error {
	inv := fromCommand(cmd)
	ctx := cmd.Context()

	if !priceWatch {
		return printPrice(ctx, inv)
	}

	if priceInterval <= 0 {
		return usererr.Invalidf("watch interval must be a positive number of seconds, got %d", priceInterval)
	}
	if priceStop < 0 {
		return usererr.Invalidf("stop must not be negative, got %d", priceStop)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("Watching %s (%s) every %ds, interrupt to stop\n", inv.Coin, inv.Currency, priceInterval)
	}

	ticker := time.NewTicker(time.Duration(priceInterval) * time.Second)
	defer ticker.Stop()

	iterations := 0
	for {
		if err := printPrice(ctx, inv); err != nil {
			return err
		}
		iterations++
		if watchElapsed(priceInterval, iterations, priceStop) {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// watchElapsed reports whether the watch loop has covered the requested
// stop window: interval seconds per iteration against stop minutes. A stop
// of zero never elapses.
func watchElapsed(interval, iterations, stop int) bool {
	return stop > 0 && interval*iterations >= stop*60
}

// printPrice fetches and prints one price line for the invocation pair.
func printPrice(ctx context.Context, inv *invocation) error {
	prices, err := inv.API.SimplePrice(ctx, []string{inv.Coin}, []string{inv.Currency})
	if err != nil {
		return err
	}
	value, ok := prices[inv.Coin][inv.Currency]
	if !ok {
		return fmt.Errorf("no price returned for %s in %s", inv.Coin, inv.Currency)
	}
	fmt.Printf("%s (%s): %s\n", inv.Coin, inv.Currency, formatPrice(value))
	return nil
}

// formatPrice renders a price without trailing zeros, so whole-number
// prices print as integers.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
