package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alayeseke/vybebot/internal/format"
	"github.com/alayeseke/vybebot/internal/retry"
	"github.com/alayeseke/vybebot/internal/tokens"
	"github.com/alayeseke/vybebot/internal/vybe"
)

const welcomeMessage = `👋 *Welcome to the Vybe Analytics Bot!*

I turn Solana on-chain analytics into readable reports, right here in the chat.

Try /report <wallet_address> for a full wallet breakdown, or /help to see everything I can do.`

const helpMessage = `*Available commands:*

*Wallet analytics*
/pnl <wallet> - trading performance summary
/report <wallet> - combined PnL, NFT and token report
/nfts <wallet> - NFT portfolio
/token_history <wallet> [days] - daily balance history
/holder_portfolio <wallet> - portfolio with PnL inset

*Token analytics*
/top_holders <token> - largest holders (symbol or mint address)
/price <token> [resolution] - USD OHLCV candles
/market <market_id> [resolution] - market OHLCV candles
/pair <BASE/QUOTE> [resolution] - pair OHLCV candles
/transfers <wallet|token> - recent transfers
/trades <wallet|token> - recent DEX trades

*Program analytics*
/program <program_id> - program details
/program_activity <program_id> - active-user trend
/program_tvl <program_id> - TVL trend

Tokens accept well-known symbols (SOL, USDC, BONK, ...) or raw mint addresses.`

const (
	candleLimit       = 7
	transferLimit     = 10
	tradeLimit        = 10
	holdersShown      = 10
	holdersFetchLimit = 25

	defaultHistoryDays = 14
	maxHistoryDays     = 30
)

// parseWallet validates a single wallet-address argument. The second
// return is the usage reply when validation fails.
func (b *Bot) parseWallet(args []string, usage string) (string, string) {
	if len(args) < 1 {
		return "", usage
	}
	c := b.registry.Classify(args[0])
	if c.Kind != tokens.KindAddress {
		return "", "That doesn't look like a valid Solana address. " + usage
	}
	return c.Address.String(), ""
}

func (b *Bot) handlePnL(ctx context.Context, args []string) string {
	wallet, usage := b.parseWallet(args, "Usage: /pnl <wallet_address>")
	if usage != "" {
		return usage
	}
	pnl, err := retry.Do(ctx, b.log, "get-wallet-pnl", func() (*vybe.PnLResponse, error) {
		return b.vybe.GetWalletPnL(ctx, wallet, "")
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.PnLSummary(wallet, pnl)
}

func (b *Bot) handleReport(ctx context.Context, args []string) string {
	wallet, usage := b.parseWallet(args, "Usage: /report <wallet_address>")
	if usage != "" {
		return usage
	}
	return b.reports.BuildWalletReport(ctx, wallet).Render()
}

func (b *Bot) handleNFTs(ctx context.Context, args []string) string {
	wallet, usage := b.parseWallet(args, "Usage: /nfts <wallet_address>")
	if usage != "" {
		return usage
	}
	nfts, err := retry.Do(ctx, b.log, "get-wallet-nfts", func() (*vybe.NFTBalanceResponse, error) {
		return b.vybe.GetWalletNFTs(ctx, wallet, 10)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.NFTPortfolio(wallet, nfts)
}

func (b *Bot) handleTokenHistory(ctx context.Context, args []string) string {
	wallet, usage := b.parseWallet(args, "Usage: /token_history <wallet_address> [days]")
	if usage != "" {
		return usage
	}
	days := defaultHistoryDays
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed < 1 {
			return "Days must be a positive number. Usage: /token_history <wallet_address> [days]"
		}
		days = parsed
		if days > maxHistoryDays {
			days = maxHistoryDays
		}
	}
	history, err := retry.Do(ctx, b.log, "get-token-history", func() (*vybe.BalanceHistoryResponse, error) {
		return b.vybe.GetTokenBalanceHistory(ctx, wallet, days)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.BalanceHistory(wallet, days, history.Data)
}

func (b *Bot) handleTopHolders(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Usage: /top_holders <token_symbol_or_mint>"
	}
	c := b.registry.Classify(args[0])
	if c.Kind == tokens.KindUnknown {
		return "I don't recognize that token. Use a mint address or a well-known symbol like SOL or USDC."
	}
	mint := c.Address.String()

	resp, err := retry.Do(ctx, b.log, "get-top-holders", func() (*vybe.TopHoldersResponse, error) {
		return b.vybe.GetTopHolders(ctx, mint, holdersFetchLimit)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}

	// Drop exchange and protocol wallets so the ranking reflects actual
	// holders; keep the count for the footer.
	var holders []vybe.TopHolder
	excluded := 0
	for _, h := range resp.Data {
		if b.reference.IsKnownAccount(h.OwnerAddress) {
			excluded++
			continue
		}
		holders = append(holders, h)
		if len(holders) == holdersShown {
			break
		}
	}

	label := c.Symbol
	if label == "" {
		label = b.resolver.DisplaySymbol(ctx, mint)
	}
	return format.TopHolders(label, holders, excluded)
}

func (b *Bot) handleHolderPortfolio(ctx context.Context, args []string) string {
	wallet, usage := b.parseWallet(args, "Usage: /holder_portfolio <wallet_address>")
	if usage != "" {
		return usage
	}
	balances, err := retry.Do(ctx, b.log, "get-wallet-tokens", func() (*vybe.WalletTokensResponse, error) {
		return b.vybe.GetWalletTokens(ctx, wallet, vybe.DefaultTokenBalanceQuery())
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	// The PnL inset is best-effort; the portfolio renders without it.
	pnl, err := retry.Do(ctx, b.log, "get-wallet-pnl", func() (*vybe.PnLResponse, error) {
		return b.vybe.GetWalletPnL(ctx, wallet, "")
	})
	if err != nil {
		b.log.Debug("portfolio pnl inset unavailable", zap.String("wallet", wallet), zap.Error(err))
		pnl = nil
	}
	return format.HolderPortfolio(wallet, balances, pnl)
}

func (b *Bot) handlePrice(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Usage: /price <token_symbol_or_mint> [resolution]"
	}
	c := b.registry.Classify(args[0])
	if c.Kind == tokens.KindUnknown {
		return "I don't recognize that token. Use a mint address or a well-known symbol like SOL or USDC."
	}
	resolution := "1d"
	if len(args) > 1 {
		resolution = args[1]
	}
	mint := c.Address.String()

	candles, err := retry.Do(ctx, b.log, "get-token-ohlcv", func() (*vybe.OHLCVResponse, error) {
		return b.vybe.GetTokenOHLCV(ctx, mint, resolution, candleLimit)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}

	label := c.Symbol
	if label == "" {
		label = b.resolver.DisplaySymbol(ctx, mint)
	}
	return format.Candles("💹 *Price for "+label+" (USD)*", candles.Data, format.Price)
}

func (b *Bot) handleMarket(ctx context.Context, args []string) string {
	marketID, usage := b.parseWallet(args, "Usage: /market <market_id> [resolution]")
	if usage != "" {
		return usage
	}
	resolution := "1d"
	if len(args) > 1 {
		resolution = args[1]
	}
	candles, err := retry.Do(ctx, b.log, "get-market-ohlcv", func() (*vybe.OHLCVResponse, error) {
		return b.vybe.GetMarketOHLCV(ctx, marketID, resolution, candleLimit)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.Candles("📉 *Market OHLCV for "+format.MintAddress(marketID)+"*", candles.Data, format.Price)
}

func (b *Bot) handlePair(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Usage: /pair <BASE/QUOTE> [resolution], e.g. /pair SOL/USDC"
	}
	// Accept "/pair SOL USDC" as well as "/pair SOL/USDC".
	pairArg := args[0]
	rest := args[1:]
	if !strings.Contains(pairArg, "/") && len(rest) > 0 {
		pairArg = pairArg + "/" + rest[0]
		rest = rest[1:]
	}
	pair, err := b.registry.ParsePair(pairArg)
	if err != nil {
		return "Couldn't parse that pair. Use BASE/QUOTE with symbols or mint addresses, e.g. /pair SOL/USDC"
	}
	resolution := "1d"
	if len(rest) > 0 {
		resolution = rest[0]
	}

	candles, err := retry.Do(ctx, b.log, "get-pair-ohlcv", func() (*vybe.OHLCVResponse, error) {
		return b.vybe.GetPairOHLCV(ctx, pair.BaseMint.String(), pair.QuoteMint.String(), resolution, candleLimit)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}

	// ParsePair labels an unrecognized leg with its raw mint; resolve a
	// display symbol for it (truncated address when the lookup fails).
	baseLabel, quoteLabel := pair.BaseLabel, pair.QuoteLabel
	if baseLabel == pair.BaseMint.String() {
		baseLabel = b.resolver.DisplaySymbol(ctx, baseLabel)
	}
	if quoteLabel == pair.QuoteMint.String() {
		quoteLabel = b.resolver.DisplaySymbol(ctx, quoteLabel)
	}

	title := "💱 *Pair OHLCV for " + baseLabel + "/" + quoteLabel + "*"
	// Pair candles are denominated in the quote token, not USD.
	return format.Candles(title, candles.Data, format.QuotePrice)
}

func (b *Bot) handleProgram(ctx context.Context, args []string) string {
	programID, usage := b.parseWallet(args, "Usage: /program <program_id>")
	if usage != "" {
		return usage
	}
	resp, err := retry.Do(ctx, b.log, "get-program", func() (*vybe.ProgramResponse, error) {
		return b.vybe.GetProgram(ctx, programID)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	// The curated table name wins over whatever the API reports; the
	// table exists to keep display names consistent.
	name := resp.Data.Name
	if name == "" || b.reference.HasProgram(programID) {
		name = b.reference.ProgramName(programID)
	}
	return format.ProgramDetails(programID, name, resp.Data)
}

func (b *Bot) handleProgramActivity(ctx context.Context, args []string) string {
	programID, usage := b.parseWallet(args, "Usage: /program_activity <program_id>")
	if usage != "" {
		return usage
	}
	resp, err := retry.Do(ctx, b.log, "get-program-activity", func() (*vybe.ActiveUsersResponse, error) {
		return b.vybe.GetProgramActiveUsers(ctx, programID, "7d")
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.ProgramActivity(b.reference.ProgramName(programID), resp.Data)
}

func (b *Bot) handleProgramTVL(ctx context.Context, args []string) string {
	programID, usage := b.parseWallet(args, "Usage: /program_tvl <program_id>")
	if usage != "" {
		return usage
	}
	resolution := "1d"
	if len(args) > 1 {
		resolution = args[1]
	}
	resp, err := retry.Do(ctx, b.log, "get-program-tvl", func() (*vybe.TVLResponse, error) {
		return b.vybe.GetProgramTVL(ctx, programID, resolution)
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.ProgramTVL(b.reference.ProgramName(programID), resp.Data)
}

// classifySubject decides whether a transfers/trades argument targets a
// mint or a wallet. Known symbols and registry mints are tokens; any
// other valid address is treated as a wallet, since wallet lookups are
// the common case.
func (b *Bot) classifySubject(arg string) (mint, wallet, label string, ok bool) {
	c := b.registry.Classify(arg)
	switch c.Kind {
	case tokens.KindSymbol:
		return c.Address.String(), "", c.Symbol, true
	case tokens.KindAddress:
		if c.Symbol != "" {
			return c.Address.String(), "", c.Symbol, true
		}
		return "", c.Address.String(), format.WalletAddress(c.Address.String()), true
	default:
		return "", "", "", false
	}
}

func (b *Bot) handleTransfers(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Usage: /transfers <wallet_address_or_token>"
	}
	mint, wallet, label, ok := b.classifySubject(args[0])
	if !ok {
		return "I don't recognize that address or token. Usage: /transfers <wallet_address_or_token>"
	}
	resp, err := retry.Do(ctx, b.log, "get-token-transfers", func() (*vybe.TransfersResponse, error) {
		return b.vybe.GetTokenTransfers(ctx, vybe.TransferQuery{
			WalletAddress: wallet,
			MintAddress:   mint,
			Limit:         transferLimit,
		})
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.Transfers(label, resp.Data)
}

// handleStats is an admin-only operational snapshot; it is deliberately
// absent from /help.
func (b *Bot) handleStats(userID int64) string {
	if b.policy == nil || !b.policy.IsAdmin(userID) {
		return "Sorry, this command is for bot admins."
	}
	programs, accounts := b.reference.Counts()
	return fmt.Sprintf("🛠 *Bot Status*\n\nProgram table: %d entries\nKnown accounts: %d entries", programs, accounts)
}

func (b *Bot) handleTrades(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Usage: /trades <wallet_address_or_token>"
	}
	mint, wallet, label, ok := b.classifySubject(args[0])
	if !ok {
		return "I don't recognize that address or token. Usage: /trades <wallet_address_or_token>"
	}
	resp, err := retry.Do(ctx, b.log, "get-token-trades", func() (*vybe.TradesResponse, error) {
		return b.vybe.GetTokenTrades(ctx, vybe.TradeQuery{
			AuthorityAddress: wallet,
			MintAddress:      mint,
			Limit:            tradeLimit,
		})
	})
	if err != nil {
		return vybe.UserFacingMessage(err)
	}
	return format.Trades(label, resp.Data)
}
