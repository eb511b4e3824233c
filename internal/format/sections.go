package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/alayeseke/vybebot/internal/vybe"
)

func day(ts int64) string {
	if ts <= 0 {
		return "unknown date"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

func timestamp(ts int64) string {
	if ts <= 0 {
		return "unknown time"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04 UTC")
}

// PnLSummary renders the wallet performance section. Win rate arrives as
// a 0-1 fraction and is scaled here and nowhere else. The total PnL line
// is derived: realized + unrealized.
func PnLSummary(owner string, pnl *vybe.PnLResponse) string {
	s := pnl.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Wallet Performance for %s*\n\n", WalletAddress(owner))
	total := s.RealizedPnlUsd.Float() + s.UnrealizedPnlUsd.Float()
	fmt.Fprintf(&b, "📈 Total PnL: %s\n", Currency(total))
	fmt.Fprintf(&b, "  - Realized: %s\n", Currency(s.RealizedPnlUsd.Float()))
	fmt.Fprintf(&b, "  - Unrealized: %s\n", Currency(s.UnrealizedPnlUsd.Float()))
	fmt.Fprintf(&b, "🎯 Win Rate: %s\n", FractionAsPercent(s.WinRate.Float()))
	fmt.Fprintf(&b, "🔢 Trades: %.0f (%.0f wins / %.0f losses)\n",
		s.TradesCount.Float(), s.WinningTradesCount.Float(), s.LosingTradesCount.Float())
	fmt.Fprintf(&b, "💵 Trade Volume: %s\n", Currency(s.TradesVolumeUsd.Float()))
	if s.BestPerformingToken != nil && s.BestPerformingToken.TokenSymbol != "" {
		fmt.Fprintf(&b, "🏆 Best Token: %s (%s)\n",
			s.BestPerformingToken.TokenSymbol, Currency(s.BestPerformingToken.PnlUsd.Float()))
	}
	if s.WorstPerformingToken != nil && s.WorstPerformingToken.TokenSymbol != "" {
		fmt.Fprintf(&b, "💀 Worst Token: %s (%s)\n",
			s.WorstPerformingToken.TokenSymbol, Currency(s.WorstPerformingToken.PnlUsd.Float()))
	}
	return strings.TrimRight(b.String(), "\n")
}

// TokenBalances renders a wallet's token holdings.
func TokenBalances(owner string, resp *vybe.WalletTokensResponse, topN int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🪙 *Token Report for %s*\n\n", WalletAddress(owner))
	fmt.Fprintf(&b, "💰 Total Value: %s\n", Currency(resp.TotalTokenValueUsd.Float()))
	fmt.Fprintf(&b, "📈 24h Change: %s\n", FractionAsPercent(resp.TotalTokenValueUsd1dChange.Float()))
	fmt.Fprintf(&b, "🔢 Token Count: %.0f\n", resp.TotalTokenCount.Float())
	if resp.SolBalance.Float() > 0 || resp.SolValueUsd.Float() > 0 {
		fmt.Fprintf(&b, "◎ SOL: %.4f (%s)\n", resp.SolBalance.Float(), Currency(resp.SolValueUsd.Float()))
	}

	top := RankList(resp.Data, func(t vybe.WalletToken) float64 { return t.ValueUsd.Float() }, topN)
	if len(top) > 0 {
		b.WriteString("\nTop tokens:\n")
		for _, t := range top {
			symbol := t.Symbol
			if symbol == "" {
				symbol = MintAddress(t.MintAddress)
			}
			fmt.Fprintf(&b, "  - %s: %s @ %s\n", symbol, Currency(t.ValueUsd.Float()), Price(t.PriceUsd.Float()))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// NFTPortfolio renders a wallet's NFT holdings.
func NFTPortfolio(owner string, resp *vybe.NFTBalanceResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🖼️ *NFT Portfolio for %s*\n\n", WalletAddress(owner))
	if len(resp.Data) == 0 {
		b.WriteString("No NFTs found in this wallet.")
		return b.String()
	}
	fmt.Fprintf(&b, "Found %d NFTs:\n\n", len(resp.Data))
	for i, nft := range resp.Data {
		name := nft.Name
		if name == "" {
			name = "Unnamed NFT"
		}
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, name)
		if nft.CollectionName != "" {
			fmt.Fprintf(&b, "   Collection: %s\n", nft.CollectionName)
		}
		if nft.FloorPriceUsd.Float() > 0 {
			fmt.Fprintf(&b, "   Floor Price: %s\n", Currency(nft.FloorPriceUsd.Float()))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// TopHolders renders a holder ranking. Callers filter known accounts
// out before calling; excluded says how many were dropped.
func TopHolders(label string, holders []vybe.TopHolder, excluded int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🐋 *Top Holders of %s*\n\n", label)
	if len(holders) == 0 {
		b.WriteString("No holders found for this token.")
		return b.String()
	}
	for _, h := range holders {
		owner := h.OwnerName
		if owner == "" {
			owner = WalletAddress(h.OwnerAddress)
		}
		fmt.Fprintf(&b, "%d. %s\n", h.Rank, owner)
		fmt.Fprintf(&b, "   Balance: %.2f (%s)\n", h.Balance.Float(), Currency(h.ValueUsd.Float()))
		fmt.Fprintf(&b, "   Supply Held: %s\n", Percent(h.PercentageOfSupplyHeld.Float()))
	}
	if excluded > 0 {
		fmt.Fprintf(&b, "\n(%d exchange/protocol accounts excluded)", excluded)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Candles renders an OHLCV series with a period price change footer.
// priceFn lets pair candles use raw quote-denominated precision while
// USD candles use Price.
func Candles(title string, candles []vybe.Candle, priceFn func(float64) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	if len(candles) == 0 {
		b.WriteString("No price data found for this period.")
		return b.String()
	}
	fmt.Fprintf(&b, "Last %d candles:\n\n", len(candles))
	for _, c := range candles {
		fmt.Fprintf(&b, "*%s*\n", day(c.Time))
		fmt.Fprintf(&b, "O: %s  H: %s  L: %s  C: %s\n",
			priceFn(c.Open.Float()), priceFn(c.High.Float()),
			priceFn(c.Low.Float()), priceFn(c.Close.Float()))
		fmt.Fprintf(&b, "Volume: %s\n\n", Currency(c.Volume.Float()))
	}
	// API serves newest first.
	if change, ok := PeriodChange(candles[len(candles)-1].Close.Float(), candles[0].Close.Float()); ok {
		fmt.Fprintf(&b, "Price change over period: %s", Percent(change))
	}
	return strings.TrimRight(b.String(), "\n")
}

// QuotePrice formats a pair price in quote-token units (no dollar sign).
func QuotePrice(p float64) string {
	return strings.TrimPrefix(Price(p), "$")
}

// Transfers renders recent token transfers.
func Transfers(subject string, transfers []vybe.Transfer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔄 *Token Transfers for %s*\n\n", subject)
	if len(transfers) == 0 {
		b.WriteString("No transfers found for this address.")
		return b.String()
	}
	fmt.Fprintf(&b, "Showing last %d transfers:\n\n", len(transfers))
	for i, t := range transfers {
		token := t.TokenSymbol
		if token == "" {
			token = MintAddress(t.MintAddress)
		}
		fmt.Fprintf(&b, "*Transfer %d* - %s\n", i+1, token)
		fmt.Fprintf(&b, "From: %s → To: %s\n", WalletAddress(t.SenderAddress), WalletAddress(t.ReceiverAddress))
		if t.Amount.Float() > 0 {
			fmt.Fprintf(&b, "Amount: %.4f", t.Amount.Float())
			if t.UsdAmount.Float() > 0 {
				fmt.Fprintf(&b, " (%s)", Currency(t.UsdAmount.Float()))
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Time: %s\n", timestamp(t.Time))
		if t.Signature != "" {
			fmt.Fprintf(&b, "Signature: %s\n", MintAddress(t.Signature))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Trades renders recent DEX trades.
func Trades(subject string, trades []vybe.Trade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Token Trades for %s*\n\n", subject)
	if len(trades) == 0 {
		b.WriteString("No trades found for this address.")
		return b.String()
	}
	fmt.Fprintf(&b, "Showing last %d trades:\n\n", len(trades))
	for i, t := range trades {
		base := t.BaseSymbol
		if base == "" {
			base = MintAddress(t.BaseMintAddress)
		}
		quote := t.QuoteSymbol
		if quote == "" {
			quote = MintAddress(t.QuoteMintAddress)
		}
		side := "Sell 🔴"
		if strings.EqualFold(t.Side, "buy") {
			side = "Buy 🟢"
		}
		fmt.Fprintf(&b, "*Trade %d* - %s/%s %s\n", i+1, base, quote, side)
		if t.BaseAmount.Float() > 0 {
			fmt.Fprintf(&b, "Amount: %.4f %s\n", t.BaseAmount.Float(), base)
		}
		if t.Price.Float() > 0 {
			fmt.Fprintf(&b, "Price: %s %s\n", QuotePrice(t.Price.Float()), quote)
		}
		fmt.Fprintf(&b, "Time: %s\n", timestamp(t.Time))
		if t.Signature != "" {
			fmt.Fprintf(&b, "Signature: %s\n", MintAddress(t.Signature))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ProgramDetails renders program metadata. name is the display name the
// caller resolved (API name, reference table, or shortened ID).
func ProgramDetails(programID, name string, p vybe.Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧩 *Program Details for %s*\n\n", MintAddress(programID))
	fmt.Fprintf(&b, "Name: %s\n", name)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	if p.Website != "" {
		fmt.Fprintf(&b, "Website: %s\n", p.Website)
	}
	if p.Stats != nil {
		b.WriteString("\n*Statistics:*\n")
		if p.Stats.TransactionCount.Float() > 0 {
			fmt.Fprintf(&b, "Transactions: %.0f\n", p.Stats.TransactionCount.Float())
		}
		if p.Stats.InstructionCount.Float() > 0 {
			fmt.Fprintf(&b, "Instructions: %.0f\n", p.Stats.InstructionCount.Float())
		}
		if p.Stats.ActiveUsers.Float() > 0 {
			fmt.Fprintf(&b, "Active Users: %.0f\n", p.Stats.ActiveUsers.Float())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ProgramActivity renders an active-user series with a trend footer.
func ProgramActivity(name string, points []vybe.ActivityPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Program Activity for %s*\n\n", name)
	if len(points) == 0 {
		b.WriteString("No activity data found for this program.")
		return b.String()
	}
	for _, p := range points {
		fmt.Fprintf(&b, "*%s*: %.0f active users\n", day(p.Timestamp), p.ActiveUsers.Float())
	}
	if change, ok := PeriodChange(points[len(points)-1].ActiveUsers.Float(), points[0].ActiveUsers.Float()); ok {
		fmt.Fprintf(&b, "\nActivity change over period: %s", Percent(change))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ProgramTVL renders a TVL series.
func ProgramTVL(name string, points []vybe.TVLPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏦 *TVL for %s*\n\n", name)
	if len(points) == 0 {
		b.WriteString("No TVL data found for this program.")
		return b.String()
	}
	for _, p := range points {
		fmt.Fprintf(&b, "*%s*: %s\n", day(p.Timestamp), Currency(p.TVL.Float()))
	}
	if change, ok := PeriodChange(points[len(points)-1].TVL.Float(), points[0].TVL.Float()); ok {
		fmt.Fprintf(&b, "\nTVL change over period: %s", Percent(change))
	}
	return strings.TrimRight(b.String(), "\n")
}

// BalanceHistory renders a wallet's daily balance snapshots.
func BalanceHistory(owner string, days int, snapshots []vybe.BalanceSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📈 *Token Balance History for %s*\n\n", WalletAddress(owner))
	if len(snapshots) == 0 {
		b.WriteString("No token history found for this wallet.")
		return b.String()
	}
	fmt.Fprintf(&b, "Showing data for the last %d days:\n\n", days)
	for _, snap := range snapshots {
		fmt.Fprintf(&b, "*%s*\n", day(snap.Timestamp))
		fmt.Fprintf(&b, "Total Value: %s\n", Currency(snap.TotalValueUsd.Float()))
		top := RankList(snap.Tokens, func(t vybe.SnapshotToken) float64 { return t.ValueUsd.Float() }, 3)
		for _, t := range top {
			fmt.Fprintf(&b, "  - %s: %s\n", t.Symbol, Currency(t.ValueUsd.Float()))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// HolderPortfolio renders a wallet portfolio with an optional PnL inset.
// pnl may be nil: the inset is best-effort and simply omitted.
func HolderPortfolio(owner string, resp *vybe.WalletTokensResponse, pnl *vybe.PnLResponse) string {
	solValue := resp.SolValueUsd.Float()
	totalValue := resp.TotalTokenValueUsd.Float() + solValue

	var b strings.Builder
	fmt.Fprintf(&b, "💰 *Portfolio Report for %s*\n\n", WalletAddress(owner))
	fmt.Fprintf(&b, "💎 Total Value: *%s*\n", Currency(totalValue))
	fmt.Fprintf(&b, "  - Token Value: %s\n", Currency(resp.TotalTokenValueUsd.Float()))
	fmt.Fprintf(&b, "  - SOL Value: %s (%.2f SOL)\n", Currency(solValue), resp.SolBalance.Float())
	fmt.Fprintf(&b, "📈 24h Change: %s\n", FractionAsPercent(resp.TotalTokenValueUsd1dChange.Float()))
	fmt.Fprintf(&b, "🔢 Token Count: %.0f\n", resp.TotalTokenCount.Float())

	if pnl != nil {
		s := pnl.Summary
		b.WriteString("\n📊 PnL Summary:\n")
		fmt.Fprintf(&b, "  - Win Rate: %s\n", FractionAsPercent(s.WinRate.Float()))
		fmt.Fprintf(&b, "  - Realized PnL: %s\n", Currency(s.RealizedPnlUsd.Float()))
		fmt.Fprintf(&b, "  - Unrealized PnL: %s\n", Currency(s.UnrealizedPnlUsd.Float()))
	}

	top := RankList(resp.Data, func(t vybe.WalletToken) float64 { return t.ValueUsd.Float() }, 5)
	if len(top) > 0 {
		b.WriteString("\n🪙 *Top Tokens:*\n")
		for _, t := range top {
			symbol := t.Symbol
			if symbol == "" {
				symbol = "UNKNOWN"
			}
			line := fmt.Sprintf("  - %s: %s", symbol, Currency(t.ValueUsd.Float()))
			if totalValue > 0 {
				line += fmt.Sprintf(" (%s)", Percent(t.ValueUsd.Float()/totalValue*100))
			}
			b.WriteString(line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
