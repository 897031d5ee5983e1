// Package validate checks user-supplied coin and currency values against
// the locally cached reference lists.
package validate

import (
	"context"

	"github.com/cryptoctl/cryptoctl/internal/resources"
	"github.com/cryptoctl/cryptoctl/internal/usererr"
)

// Coin resolves a raw value that may be a coin id, name, or symbol to the
// canonical coin id. Matching is exact and case-sensitive on all three
// fields; the first match wins (ids are unique, name/symbol collisions
// across coins resolve to whichever sorts first in the cache).
func Coin(ctx context.Context, store *resources.Store, value string) (string, error) {
	coins, err := store.Coins(ctx)
	if err != nil {
		return "", err
	}
	for _, coin := range coins {
		if value == coin.ID || value == coin.Name || value == coin.Symbol {
			return coin.ID, nil
		}
	}
	return "", usererr.Invalidf("%s is not a valid cryptocurrency", value)
}

// Currency checks that value is one of the supported vs-currency codes and
// returns it unchanged.
func Currency(ctx context.Context, store *resources.Store, value string) (string, error) {
	currencies, err := store.Currencies(ctx)
	if err != nil {
		return "", err
	}
	for _, currency := range currencies {
		if value == currency {
			return value, nil
		}
	}
	return "", usererr.Invalidf("%s is not a valid currency denomination", value)
}
