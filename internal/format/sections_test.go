package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alayeseke/vybebot/internal/vybe"
)

const testWallet = "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"

func TestPnLSummaryScalesWinRateOnce(t *testing.T) {
	pnl := &vybe.PnLResponse{
		Summary: vybe.PnLSummary{
			WinRate:          0.65,
			RealizedPnlUsd:   1000,
			UnrealizedPnlUsd: 500,
			TradesCount:      20,
		},
	}

	out := PnLSummary(testWallet, pnl)

	assert.Contains(t, out, "Win Rate: 65.00%")
	assert.NotContains(t, out, "6500", "win rate must not be scaled twice")
	// Total is derived from realized + unrealized.
	assert.Contains(t, out, "Total PnL: $1.50K")
}

func TestPnLSummaryOmitsMissingTokens(t *testing.T) {
	out := PnLSummary(testWallet, &vybe.PnLResponse{})
	assert.NotContains(t, out, "Best Token")
	assert.NotContains(t, out, "Worst Token")
}

func TestTopHoldersExcludedFooter(t *testing.T) {
	holders := []vybe.TopHolder{
		{Rank: 1, OwnerAddress: testWallet, Balance: 100, ValueUsd: 5000, PercentageOfSupplyHeld: 1.5},
	}

	out := TopHolders("BONK", holders, 3)
	assert.Contains(t, out, "Top Holders of BONK")
	assert.Contains(t, out, "(3 exchange/protocol accounts excluded)")

	out = TopHolders("BONK", holders, 0)
	assert.NotContains(t, out, "excluded")
}

func TestTopHoldersEmpty(t *testing.T) {
	out := TopHolders("BONK", nil, 0)
	assert.Contains(t, out, "No holders found")
}

func TestCandlesPeriodChangeUsesNewestFirstOrder(t *testing.T) {
	// API serves newest first: 150 is the latest close, 100 the oldest.
	candles := []vybe.Candle{
		{Time: 1700265600, Open: 140, High: 155, Low: 138, Close: 150, Volume: 1000},
		{Time: 1700179200, Open: 100, High: 145, Low: 99, Close: 100, Volume: 900},
	}

	out := Candles("*Price*", candles, Price)
	assert.Contains(t, out, "Price change over period: 50.00%")
}

func TestCandlesEmpty(t *testing.T) {
	out := Candles("*Price*", nil, Price)
	assert.Contains(t, out, "No price data found")
}

func TestHolderPortfolioWithoutPnL(t *testing.T) {
	resp := &vybe.WalletTokensResponse{
		TotalTokenValueUsd: 1000,
		SolValueUsd:        500,
		SolBalance:         3.5,
		TotalTokenCount:    4,
	}

	out := HolderPortfolio(testWallet, resp, nil)

	require.NotContains(t, out, "PnL Summary", "inset is omitted when pnl is nil")
	assert.Contains(t, out, "Total Value: *$1.50K*")
}

func TestTradesSideLabels(t *testing.T) {
	trades := []vybe.Trade{
		{BaseSymbol: "SOL", QuoteSymbol: "USDC", Side: "buy", BaseAmount: 1, Price: 150, Time: 1700179200},
		{BaseSymbol: "SOL", QuoteSymbol: "USDC", Side: "sell", BaseAmount: 2, Price: 149, Time: 1700179260},
	}

	out := Trades("SOL", trades)
	assert.Contains(t, out, "Buy 🟢")
	assert.Contains(t, out, "Sell 🔴")
}

func TestTransfersFallsBackToMintWhenSymbolMissing(t *testing.T) {
	transfers := []vybe.Transfer{
		{
			MintAddress:     "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
			SenderAddress:   testWallet,
			ReceiverAddress: testWallet,
			Amount:          10,
			Time:            1700179200,
		},
	}

	out := Transfers("test", transfers)
	assert.Contains(t, out, "DezX...B263")
}

func TestBalanceHistoryTopThreePerDay(t *testing.T) {
	snapshots := []vybe.BalanceSnapshot{
		{
			Timestamp:     1700179200,
			TotalValueUsd: 400,
			Tokens: []vybe.SnapshotToken{
				{Symbol: "A", ValueUsd: 100},
				{Symbol: "B", ValueUsd: 50},
				{Symbol: "C", ValueUsd: 200},
				{Symbol: "D", ValueUsd: 25},
			},
		},
	}

	out := BalanceHistory(testWallet, 7, snapshots)
	assert.Contains(t, out, "last 7 days")
	assert.Contains(t, out, "C: $200.00")
	assert.NotContains(t, out, "D:", "only the top three tokens per day")

	// Ranking, not input order.
	cIdx := strings.Index(out, "C: ")
	aIdx := strings.Index(out, "A: ")
	assert.Less(t, cIdx, aIdx)
}
