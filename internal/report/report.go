// Package report assembles the multi-endpoint wallet report.
package report

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alayeseke/vybebot/internal/format"
	"github.com/alayeseke/vybebot/internal/retry"
	"github.com/alayeseke/vybebot/internal/vybe"
)

const (
	nftLimit      = 10
	topTokenCount = 10

	pnlUnavailable    = "⚠️ PnL data is unavailable right now."
	nftUnavailable    = "⚠️ NFT data is unavailable right now."
	tokensUnavailable = "⚠️ Token balance data is unavailable right now."
)

// AnalyticsClient is the slice of the analytics API the aggregator uses.
type AnalyticsClient interface {
	GetWalletPnL(ctx context.Context, ownerAddress, resolution string) (*vybe.PnLResponse, error)
	GetWalletNFTs(ctx context.Context, ownerAddress string, limit int) (*vybe.NFTBalanceResponse, error)
	GetWalletTokens(ctx context.Context, ownerAddress string, q vybe.TokenBalanceQuery) (*vybe.WalletTokensResponse, error)
}

// Report holds the three sections in their fixed display order. A failed
// section carries its unavailable placeholder instead of content.
type Report struct {
	PnL    string
	NFTs   string
	Tokens string
}

// Render joins the sections: PnL, then NFTs, then tokens, always.
func (r Report) Render() string {
	return r.PnL + "\n\n" + r.NFTs + "\n\n" + r.Tokens
}

// Aggregator fans a wallet report out to three endpoints concurrently
// with per-section failure isolation.
type Aggregator struct {
	client AnalyticsClient
	policy retry.Policy
	log    *zap.Logger
}

// NewAggregator builds an Aggregator using the default retry policy.
func NewAggregator(client AnalyticsClient, log *zap.Logger) *Aggregator {
	return &Aggregator{client: client, policy: retry.DefaultPolicy, log: log.Named("report")}
}

// BuildWalletReport fetches PnL, NFT and token data concurrently and
// renders each section. The policy is settle-all, fail-none: a section
// whose fetch fails (after retries) becomes a placeholder and never
// blocks the others. Even three failures still produce a report.
func (a *Aggregator) BuildWalletReport(ctx context.Context, ownerAddress string) Report {
	rep := Report{
		PnL:    pnlUnavailable,
		NFTs:   nftUnavailable,
		Tokens: tokensUnavailable,
	}

	var g errgroup.Group

	g.Go(func() error {
		pnl, err := retry.DoWithPolicy(ctx, a.log, "get-wallet-pnl", a.policy, func() (*vybe.PnLResponse, error) {
			return a.client.GetWalletPnL(ctx, ownerAddress, "")
		})
		if err != nil {
			a.log.Warn("pnl section failed", zap.String("wallet", ownerAddress), zap.Error(err))
			return nil
		}
		rep.PnL = format.PnLSummary(ownerAddress, pnl)
		return nil
	})

	g.Go(func() error {
		nfts, err := retry.DoWithPolicy(ctx, a.log, "get-wallet-nfts", a.policy, func() (*vybe.NFTBalanceResponse, error) {
			return a.client.GetWalletNFTs(ctx, ownerAddress, nftLimit)
		})
		if err != nil {
			a.log.Warn("nft section failed", zap.String("wallet", ownerAddress), zap.Error(err))
			return nil
		}
		rep.NFTs = format.NFTPortfolio(ownerAddress, nfts)
		return nil
	})

	g.Go(func() error {
		balances, err := retry.DoWithPolicy(ctx, a.log, "get-wallet-tokens", a.policy, func() (*vybe.WalletTokensResponse, error) {
			return a.client.GetWalletTokens(ctx, ownerAddress, vybe.DefaultTokenBalanceQuery())
		})
		if err != nil {
			a.log.Warn("token section failed", zap.String("wallet", ownerAddress), zap.Error(err))
			return nil
		}
		rep.Tokens = format.TokenBalances(ownerAddress, balances, topTokenCount)
		return nil
	})

	// Every goroutine returns nil; Wait only synchronizes.
	_ = g.Wait()
	return rep
}
