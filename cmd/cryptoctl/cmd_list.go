package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cryptoctl/cryptoctl/internal/resources"
)

var listCmd = &cobra.Command{
	Use:   "list <coins|currencies>",
	Short: "Dump a cached reference list",
	Long: `Dump the full cached collection of the given kind. The cache is
populated from the API on first use and served from disk afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	inv := fromCommand(cmd)
	ctx := cmd.Context()

	kind, err := resources.ParseKind(args[0])
	if err != nil {
		return err
	}

	switch kind {
	case resources.KindCoins:
		coins, err := inv.Resources.Coins(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, coin := range coins {
			fmt.Fprintf(w, "%s\t%s\t%s\n", coin.ID, coin.Symbol, coin.Name)
		}
		return w.Flush()
	case resources.KindCurrencies:
		currencies, err := inv.Resources.Currencies(ctx)
		if err != nil {
			return err
		}
		for _, currency := range currencies {
			fmt.Println(currency)
		}
	}
	return nil
}
