package coingecko

// Coin is one entry of the /coins/list catalog, cached locally verbatim.
type Coin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// MarketData carries the pricing and supply figures embedded in coin
// metadata responses. Price maps are keyed by vs-currency code.
type MarketData struct {
	CurrentPrice      map[string]float64 `json:"current_price"`
	MarketCap         map[string]float64 `json:"market_cap"`
	CirculatingSupply float64            `json:"circulating_supply"`
	TotalSupply       float64            `json:"total_supply"`
	MaxSupply         float64            `json:"max_supply"`
}

// CoinInfo is the descriptive metadata returned by /coins/{id}.
type CoinInfo struct {
	ID               string            `json:"id"`
	Symbol           string            `json:"symbol"`
	Name             string            `json:"name"`
	HashingAlgorithm string            `json:"hashing_algorithm"`
	GenesisDate      string            `json:"genesis_date"`
	Description      map[string]string `json:"description"`
	MarketData       MarketData        `json:"market_data"`
}

// HistoricalData is the snapshot returned by /coins/{id}/history for a
// single day. Only the price map is populated for free-tier responses.
type HistoricalData struct {
	ID         string `json:"id"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	MarketData struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}

// ChartPoint is a single [timestamp_ms, value] pair from a market chart.
type ChartPoint [2]float64

// UnixMillis returns the point's timestamp in milliseconds since epoch.
func (p ChartPoint) UnixMillis() int64 { return int64(p[0]) }

// Value returns the point's price value.
func (p ChartPoint) Value() float64 { return p[1] }

// MarketChart is the trailing price series returned by
// /coins/{id}/market_chart.
type MarketChart struct {
	Prices []ChartPoint `json:"prices"`
}

// SimplePrices maps coin id -> vs-currency -> spot price, mirroring the
// /simple/price response shape.
type SimplePrices map[string]map[string]float64
