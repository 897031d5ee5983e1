package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search cached coins by id, symbol, or name",
	Long: `Search the cached coin list for entries whose id, symbol, or name
contains the given term. Matching is case-sensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	inv := fromCommand(cmd)

	found, err := inv.Resources.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	// No match is informational, not a failure.
	if len(found) == 0 {
		fmt.Println("Sorry, no cryptocurrencies or tokens found matching that string :(")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Id\tSymbol\tName")
	for _, coin := range found {
		fmt.Fprintf(w, "%s\t%s\t%s\n", coin.ID, coin.Symbol, coin.Name)
	}
	return w.Flush()
}
