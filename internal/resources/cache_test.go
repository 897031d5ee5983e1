package resources

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoctl/cryptoctl/internal/coingecko"
	"github.com/cryptoctl/cryptoctl/internal/usererr"
)

// fakeLister counts fetches so tests can assert the cache short-circuits
// the network.
type fakeLister struct {
	coins         []coingecko.Coin
	currencies    []string
	coinCalls     int
	currencyCalls int
}

func (f *fakeLister) ListCoins(_ context.Context) ([]coingecko.Coin, error) {
	f.coinCalls++
	return f.coins, nil
}

func (f *fakeLister) SupportedCurrencies(_ context.Context) ([]string, error) {
	f.currencyCalls++
	return f.currencies, nil
}

func testLister() *fakeLister {
	return &fakeLister{
		coins: []coingecko.Coin{
			{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
			{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		},
		currencies: []string{"usd", "eur", "gbp"},
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    Kind
		wantErr bool
	}{
		{raw: "coins", want: KindCoins},
		{raw: "currencies", want: KindCurrencies},
		{raw: "tokens", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("kind_"+tt.raw, func(t *testing.T) {
			kind, err := ParseKind(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, usererr.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestCoinsPopulatesCacheOnce(t *testing.T) {
	lister := testLister()
	store := NewStore(t.TempDir(), lister, 0)
	ctx := context.Background()

	first, err := store.Coins(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, lister.coinCalls)

	// Fetched list is persisted sorted by id.
	assert.Equal(t, "bitcoin", first[0].ID)
	assert.Equal(t, "ethereum", first[1].ID)
	assert.FileExists(t, store.Path(KindCoins))

	second, err := store.Coins(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, lister.coinCalls, "second read must not hit the API")
}

func TestCurrenciesPopulatesCacheOnce(t *testing.T) {
	lister := testLister()
	store := NewStore(t.TempDir(), lister, 0)
	ctx := context.Background()

	first, err := store.Currencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"eur", "gbp", "usd"}, first)
	require.Equal(t, 1, lister.currencyCalls)

	second, err := store.Currencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, lister.currencyCalls, "second read must not hit the API")
}

func TestExistingCacheReturnedAsIs(t *testing.T) {
	dir := t.TempDir()
	// Deliberately unsorted and disjoint from the fake API: the cached
	// file wins with no merge and no freshness check.
	cached := []coingecko.Coin{{ID: "dogecoin", Symbol: "doge", Name: "Dogecoin"}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coins.json"), data, 0o644))

	lister := testLister()
	store := NewStore(dir, lister, 0)

	coins, err := store.Coins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, coins)
	assert.Equal(t, 0, lister.coinCalls)
}

func TestTTLExpiryRefetches(t *testing.T) {
	dir := t.TempDir()
	lister := testLister()
	store := NewStore(dir, lister, time.Hour)
	ctx := context.Background()

	_, err := store.Coins(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, lister.coinCalls)

	// Age the cache file past the TTL.
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(store.Path(KindCoins), stale, stale))

	_, err = store.Coins(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, lister.coinCalls, "expired cache must be repopulated")
}

func TestSearch(t *testing.T) {
	lister := testLister()
	store := NewStore(t.TempDir(), lister, 0)
	ctx := context.Background()

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{name: "substring_of_id", term: "coin", wantIDs: []string{"bitcoin"}},
		{name: "substring_of_symbol", term: "eth", wantIDs: []string{"ethereum"}},
		{name: "substring_of_name", term: "Bit", wantIDs: []string{"bitcoin"}},
		{name: "case_sensitive", term: "BITCOIN", wantIDs: nil},
		{name: "no_match", term: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := store.Search(ctx, tt.term)
			require.NoError(t, err)

			var ids []string
			for _, coin := range found {
				ids = append(ids, coin.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCorruptCacheFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "currencies.json"), []byte("{not json"), 0o644))

	store := NewStore(dir, testLister(), 0)
	_, err := store.Currencies(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
