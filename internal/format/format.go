// Package format renders analytics data as chat-ready text. Everything
// here is a pure function over its inputs; no I/O, no state.
package format

import (
	"fmt"
	"math"
	"sort"
)

// sanitize clamps non-finite values to 0 so no NaN ever reaches a reply.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Currency abbreviates a USD value: $1.50K, $2.50M, $1.20B. Values under
// a thousand keep two decimals. The sign survives abbreviation.
func Currency(v float64) string {
	v = sanitize(v)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%s$%.2fB", sign, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s$%.2fM", sign, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s$%.2fK", sign, v/1e3)
	default:
		return fmt.Sprintf("%s$%.2f", sign, v)
	}
}

// Price formats a token price with precision scaled to magnitude, so a
// sub-cent token never displays as $0.00.
func Price(p float64) string {
	p = sanitize(p)
	abs := math.Abs(p)
	switch {
	case abs < 0.001:
		return fmt.Sprintf("$%.6f", p)
	case abs < 0.01:
		return fmt.Sprintf("$%.5f", p)
	case abs < 0.1:
		return fmt.Sprintf("$%.4f", p)
	case abs < 1:
		return fmt.Sprintf("$%.3f", p)
	default:
		return fmt.Sprintf("$%.2f", p)
	}
}

// Percent renders a percentage value (already on the 0-100 scale).
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", sanitize(v))
}

// FractionAsPercent renders a 0-1 fraction as a percentage. The PnL
// endpoint's winRate and the token report's 24h change are fractions;
// this is the single place they get scaled.
func FractionAsPercent(v float64) string {
	return Percent(sanitize(v) * 100)
}

// WalletAddress truncates for wallet contexts: first6...last4.
func WalletAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// MintAddress truncates for mint, program and signature contexts:
// first4...last4.
func MintAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:4] + "..." + addr[len(addr)-4:]
}

// RankList returns the top n items sorted descending by key. The sort is
// stable: equal keys keep their input order, which decides what shows as
// "top" on ties.
func RankList[T any](items []T, key func(T) float64, n int) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return sanitize(key(ranked[i])) > sanitize(key(ranked[j]))
	})
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// PeriodChange computes the percentage change from the oldest to the
// newest value. Returns false when it cannot be computed (fewer than two
// points or a zero baseline).
func PeriodChange(oldest, newest float64) (float64, bool) {
	oldest, newest = sanitize(oldest), sanitize(newest)
	if oldest == 0 {
		return 0, false
	}
	return (newest - oldest) / oldest * 100, true
}
