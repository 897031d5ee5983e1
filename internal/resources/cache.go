// Package resources maintains the local cache of CoinGecko reference data:
// the full coin catalog and the supported vs-currency codes, each persisted
// as a sorted JSON array under the crypto config directory.
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cryptoctl/cryptoctl/internal/coingecko"
	"github.com/cryptoctl/cryptoctl/internal/usererr"
)

// Kind names one of the two cached collections.
type Kind string

const (
	KindCoins      Kind = "coins"
	KindCurrencies Kind = "currencies"
)

// ParseKind validates a raw kind string against the recognized collections.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindCoins, KindCurrencies:
		return Kind(raw), nil
	default:
		return "", usererr.Invalidf("resource must be either %q or %q", KindCoins, KindCurrencies)
	}
}

// Lister is the slice of the CoinGecko API the cache needs to populate
// itself on a miss.
type Lister interface {
	ListCoins(ctx context.Context) ([]coingecko.Coin, error)
	SupportedCurrencies(ctx context.Context) ([]string, error)
}

// Store reads and writes the two cache files, fetching from the API the
// first time each is accessed. Cached files are returned as-is with no
// merge; when TTL is zero they are never refreshed.
type Store struct {
	dir string
	api Lister
	ttl time.Duration
}

// NewStore creates a store rooted at dir. A zero ttl disables refresh:
// once a cache file exists it is served forever.
func NewStore(dir string, api Lister, ttl time.Duration) *Store {
	return &Store{dir: dir, api: api, ttl: ttl}
}

// Path returns the cache file path for kind.
func (s *Store) Path(kind Kind) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

// Coins returns the full cached coin catalog, populating the cache file
// from the API if it is absent or expired.
func (s *Store) Coins(ctx context.Context) ([]coingecko.Coin, error) {
	var coins []coingecko.Coin
	fresh, err := s.read(KindCoins, &coins)
	if err != nil {
		return nil, err
	}
	if fresh {
		return coins, nil
	}

	coins, err = s.api.ListCoins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coin list: %w", err)
	}
	sort.Slice(coins, func(i, j int) bool { return coins[i].ID < coins[j].ID })

	if err := s.write(KindCoins, coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// Currencies returns the cached vs-currency codes, populating the cache
// file from the API if it is absent or expired.
func (s *Store) Currencies(ctx context.Context) ([]string, error) {
	var currencies []string
	fresh, err := s.read(KindCurrencies, &currencies)
	if err != nil {
		return nil, err
	}
	if fresh {
		return currencies, nil
	}

	currencies, err = s.api.SupportedCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch currency list: %w", err)
	}
	sort.Strings(currencies)

	if err := s.write(KindCurrencies, currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// Search returns every cached coin whose id, symbol, or name contains term
// as a case-sensitive substring, in cache order.
func (s *Store) Search(ctx context.Context, term string) ([]coingecko.Coin, error) {
	coins, err := s.Coins(ctx)
	if err != nil {
		return nil, err
	}
	var found []coingecko.Coin
	for _, coin := range coins {
		if strings.Contains(coin.ID, term) || strings.Contains(coin.Symbol, term) || strings.Contains(coin.Name, term) {
			found = append(found, coin)
		}
	}
	return found, nil
}

// read loads the cache file for kind into out. It returns false when the
// file is absent or older than the configured TTL, signalling the caller
// to repopulate.
func (s *Store) read(kind Kind, out interface{}) (bool, error) {
	path := s.Path(kind)

	if s.ttl > 0 {
		if info, err := os.Stat(path); err == nil && time.Since(info.ModTime()) > s.ttl {
			log.Debug().Str("path", path).Dur("ttl", s.ttl).Msg("cache file expired")
			return false, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msgf("%s cache file does not exist, creating one", kind)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s cache: %w", kind, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse %s cache: %w", kind, err)
	}
	return true, nil
}

// write persists the collection for kind, replacing any previous file.
func (s *Store) write(kind Kind, in interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s cache: %w", kind, err)
	}

	if err := os.WriteFile(s.Path(kind), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s cache: %w", kind, err)
	}
	return nil
}
