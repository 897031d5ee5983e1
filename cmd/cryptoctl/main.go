package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cryptoctl/cryptoctl/internal/coingecko"
	"github.com/cryptoctl/cryptoctl/internal/resources"
	"github.com/cryptoctl/cryptoctl/internal/userconfig"
	"github.com/cryptoctl/cryptoctl/internal/validate"
)

const (
	appName = "cryptoctl"
	version = "v1.0.0"
)

var (
	flagCoin      string
	flagCurrency  string
	flagConfigDir string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "Query cryptocurrency prices from the command line",
	Version: version,
	Long: `cryptoctl queries cryptocurrency price data from the CoinGecko API.

Supported coins and currencies are cached under ~/.crypto on first use,
and default coin/currency choices persist across invocations via the
'config' subcommand.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupInvocation,
}

// invocation carries the state shared by every subcommand: the resolved
// coin/currency pair, the API client, and the file stores.
type invocation struct {
	Coin      string
	Currency  string
	Dir       string
	API       *coingecko.Client
	Resources *resources.Store
	Defaults  userconfig.Defaults
}

type invocationKey struct{}

// fromCommand retrieves the invocation built by setupInvocation.
func fromCommand(cmd *cobra.Command) *invocation {
	return cmd.Context().Value(invocationKey{}).(*invocation)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCoin, "coin", "", "coin id, name, or symbol (default from config, else bitcoin)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "currency code to denominate prices (default from config, else usd)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "directory for cache and config files (default ~/.crypto)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// configDir resolves the crypto directory: --config-dir, then CRYPTO_DIR,
// then ~/.crypto.
func configDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	if dir := os.Getenv("CRYPTO_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".crypto"), nil
}

// setupInvocation resolves the coin/currency pair once per run and hangs
// the shared invocation state off the command context. Precedence for the
// pair: explicit flag, then stored config, then hardcoded fallback.
func setupInvocation(cmd *cobra.Command, _ []string) error {
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	dir, err := configDir()
	if err != nil {
		return err
	}

	settings, err := userconfig.LoadSettings(dir)
	if err != nil {
		return err
	}

	api := coingecko.NewClient(coingecko.Config{
		BaseURL:       settings.API.BaseURL,
		Timeout:       settings.Timeout(),
		RatePerMinute: settings.API.RatePerMinute,
	})
	store := resources.NewStore(dir, api, settings.CacheTTL())

	defaults, err := userconfig.Load(dir)
	if err != nil {
		return err
	}

	rawCoin := flagCoin
	if rawCoin == "" {
		rawCoin = defaults.ResolveCoin()
	}
	rawCurrency := flagCurrency
	if rawCurrency == "" {
		rawCurrency = defaults.ResolveCurrency()
	}

	ctx := cmd.Context()
	coin, err := validate.Coin(ctx, store, rawCoin)
	if err != nil {
		return err
	}
	currency, err := validate.Currency(ctx, store, rawCurrency)
	if err != nil {
		return err
	}

	log.Debug().Str("coin", coin).Str("currency", currency).Str("dir", dir).Msg("invocation resolved")

	inv := &invocation{
		Coin:      coin,
		Currency:  currency,
		Dir:       dir,
		API:       api,
		Resources: store,
		Defaults:  defaults,
	}
	cmd.SetContext(context.WithValue(ctx, invocationKey{}, inv))
	return nil
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
