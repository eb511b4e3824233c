package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"small value keeps cents", 999, "$999.00"},
		{"thousands abbreviate", 1500, "$1.50K"},
		{"millions abbreviate", 2500000, "$2.50M"},
		{"billions abbreviate", 1200000000, "$1.20B"},
		{"zero", 0, "$0.00"},
		{"negative keeps sign through abbreviation", -1500, "-$1.50K"},
		{"negative small", -42.5, "-$42.50"},
		{"nan coerces to zero", math.NaN(), "$0.00"},
		{"infinity coerces to zero", math.Inf(1), "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.value))
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"sub-millicent gets six decimals", 0.0000235, "$0.000024"},
		{"sub-cent gets five decimals", 0.00523, "$0.00523"},
		{"sub-dime gets four decimals", 0.0523, "$0.0523"},
		{"sub-dollar gets three decimals", 0.523, "$0.523"},
		{"dollar and up gets two decimals", 142.37, "$142.37"},
		{"nan coerces to zero", math.NaN(), "$0.000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.value))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "42.50%", Percent(42.5))
	assert.Equal(t, "-3.20%", Percent(-3.2))
	assert.Equal(t, "0.00%", Percent(math.NaN()))
}

func TestFractionAsPercent(t *testing.T) {
	assert.Equal(t, "65.00%", FractionAsPercent(0.65))
	assert.Equal(t, "0.00%", FractionAsPercent(0))
	assert.Equal(t, "0.00%", FractionAsPercent(math.Inf(-1)))
}

func TestWalletAddress(t *testing.T) {
	full := "So11111111111111111111111111111111111111112"
	assert.Equal(t, "So1111...1112", WalletAddress(full))
	assert.Equal(t, "short", WalletAddress("short"))
}

func TestMintAddress(t *testing.T) {
	full := "So11111111111111111111111111111111111111112"
	assert.Equal(t, "So11...1112", MintAddress(full))
	assert.Equal(t, "tiny", MintAddress("tiny"))
}

func TestRankList(t *testing.T) {
	type holding struct {
		symbol string
		value  float64
	}
	items := []holding{
		{"A", 10},
		{"B", 30},
		{"C", 20},
		{"D", 30},
		{"E", math.NaN()},
	}

	top := RankList(items, func(h holding) float64 { return h.value }, 3)

	assert.Len(t, top, 3)
	// Stable sort: B arrives before D, so B ranks first on the tie.
	assert.Equal(t, "B", top[0].symbol)
	assert.Equal(t, "D", top[1].symbol)
	assert.Equal(t, "C", top[2].symbol)

	// Input is left untouched.
	assert.Equal(t, "A", items[0].symbol)
}

func TestRankListBounds(t *testing.T) {
	items := []int{1, 2}
	key := func(v int) float64 { return float64(v) }

	assert.Len(t, RankList(items, key, 10), 2)
	assert.Empty(t, RankList(items, key, 0))
	assert.Empty(t, RankList(items, key, -1))
	assert.Empty(t, RankList(nil, key, 5))
}

func TestPeriodChange(t *testing.T) {
	change, ok := PeriodChange(100, 150)
	assert.True(t, ok)
	assert.InDelta(t, 50.0, change, 1e-9)

	change, ok = PeriodChange(200, 100)
	assert.True(t, ok)
	assert.InDelta(t, -50.0, change, 1e-9)

	_, ok = PeriodChange(0, 100)
	assert.False(t, ok, "zero baseline is undefined")
}
