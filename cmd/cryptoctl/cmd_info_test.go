package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyFigure(t *testing.T) {
	figures := map[string]float64{"usd": 50000}

	assert.Equal(t, "50000 usd", currencyFigure(figures, "usd", formatPrice))
	assert.Equal(t, "n/a", currencyFigure(figures, "chf", formatPrice))
	assert.Equal(t, "n/a", currencyFigure(nil, "usd", formatPrice))
}

func TestSupplyFigure(t *testing.T) {
	assert.Equal(t, "21,000,000", supplyFigure(21000000))
	assert.Equal(t, "n/a", supplyFigure(0), "null supplies unmarshal to zero")
	assert.Equal(t, "n/a", supplyFigure(-1))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "SHA-256", orNA("SHA-256"))
	assert.Equal(t, "n/a", orNA(""))
}
