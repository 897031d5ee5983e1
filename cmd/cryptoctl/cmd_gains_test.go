package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoctl/cryptoctl/internal/usererr"
)

func TestParseGainsRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid_range", start: "01-01-2024", end: "01-06-2024"},
		{name: "start_equals_end", start: "01-06-2024", end: "01-06-2024"},
		{name: "end_defaults_to_today", start: "01-01-2024", end: ""},
		{name: "end_precedes_start", start: "01-06-2024", end: "01-01-2024", wantErr: true},
		{name: "start_in_future", start: "01-01-2025", end: "", wantErr: true},
		{name: "end_in_future", start: "01-01-2024", end: "31-12-2024", wantErr: true},
		{name: "bad_start_format", start: "2024-01-01", end: "", wantErr: true},
		{name: "bad_end_format", start: "01-01-2024", end: "June 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseGainsRange(tt.start, tt.end, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, usererr.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.False(t, end.Before(start))
			if tt.end == "" {
				assert.Equal(t, now.UTC().Truncate(24*time.Hour), end)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		end   float64
		want  float64
	}{
		{name: "increase", start: 100, end: 150, want: 50},
		{name: "decrease", start: 200, end: 100, want: -50},
		{name: "no_change", start: 123.45, end: 123.45, want: 0},
		{name: "fractional", start: 40000, end: 41000, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentChange(tt.start, tt.end), 1e-9)
		})
	}
}

func TestDescribeChange(t *testing.T) {
	assert.Equal(t, "bitcoin increased by 5.25%", describeChange("bitcoin", 5.25))
	assert.Equal(t, "bitcoin decreased by -3.50%", describeChange("bitcoin", -3.5))
	assert.Equal(t, "bitcoin unchanged (0.00%)", describeChange("bitcoin", 0))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "50000", formatPrice(50000))
	assert.Equal(t, "0.5", formatPrice(0.5))
	assert.Equal(t, "42000.5", formatPrice(42000.5))
}
