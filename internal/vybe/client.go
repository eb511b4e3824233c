// Package vybe is a typed client for the Vybe Network analytics API.
package vybe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	requestTimeout = 30 * time.Second

	// The API meters by key; spacing requests client-side keeps bursty
	// commands like /top_holders from tripping 429s.
	requestsPerSecond = 5
	requestBurst      = 2
)

// Client issues requests against the analytics API. The API key is set
// once at construction and sent with every request; there is no global
// auth state. Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewClient creates a Client for the given base URL and key.
func NewClient(baseURL, apiKey string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		log:     log.Named("vybe"),
	}
}

// get performs one GET request and decodes the body into out. Non-2xx
// statuses become *APIError; the caller decides whether to retry.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	c.log.Debug("requesting analytics endpoint", zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request for %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response for %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("analytics endpoint returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &APIError{StatusCode: resp.StatusCode, Endpoint: path, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response for %s: %w", path, err)
	}
	return nil
}

// GetWalletPnL fetches trading performance for a wallet. An empty
// resolution uses the API default.
func (c *Client) GetWalletPnL(ctx context.Context, ownerAddress, resolution string) (*PnLResponse, error) {
	query := url.Values{}
	if resolution != "" {
		query.Set("resolution", resolution)
	}
	var out PnLResponse
	if err := c.get(ctx, "/account/pnl/"+url.PathEscape(ownerAddress), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenBalanceQuery narrows a get-wallet-tokens request.
type TokenBalanceQuery struct {
	MinAssetValue         string
	MaxAssetValue         string
	IncludeNoPriceBalance bool
	SortByDesc            string
}

// DefaultTokenBalanceQuery matches the ranges the reports use.
func DefaultTokenBalanceQuery() TokenBalanceQuery {
	return TokenBalanceQuery{
		MinAssetValue:         "0",
		MaxAssetValue:         "1000000",
		IncludeNoPriceBalance: true,
		SortByDesc:            "valueUsd",
	}
}

// GetWalletTokens fetches a wallet's fungible token balances.
func (c *Client) GetWalletTokens(ctx context.Context, ownerAddress string, q TokenBalanceQuery) (*WalletTokensResponse, error) {
	query := url.Values{}
	if q.MinAssetValue != "" {
		query.Set("minAssetValue", q.MinAssetValue)
	}
	if q.MaxAssetValue != "" {
		query.Set("maxAssetValue", q.MaxAssetValue)
	}
	if q.IncludeNoPriceBalance {
		query.Set("includeNoPriceBalance", "true")
	}
	if q.SortByDesc != "" {
		query.Set("sortByDesc", q.SortByDesc)
	}
	var out WalletTokensResponse
	if err := c.get(ctx, "/account/token-balance/"+url.PathEscape(ownerAddress), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWalletNFTs fetches a wallet's NFT balances.
func (c *Client) GetWalletNFTs(ctx context.Context, ownerAddress string, limit int) (*NFTBalanceResponse, error) {
	query := url.Values{}
	query.Set("includeNoPriceBalance", "true")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out NFTBalanceResponse
	if err := c.get(ctx, "/account/nft-balance/"+url.PathEscape(ownerAddress), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTokenBalanceHistory fetches the daily balance series for a wallet.
func (c *Client) GetTokenBalanceHistory(ctx context.Context, ownerAddress string, days int) (*BalanceHistoryResponse, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}
	var out BalanceHistoryResponse
	if err := c.get(ctx, "/account/token-balance-ts/"+url.PathEscape(ownerAddress), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTopHolders fetches the largest holders of a mint, ranked.
func (c *Client) GetTopHolders(ctx context.Context, mintAddress string, limit int) (*TopHoldersResponse, error) {
	query := url.Values{}
	query.Set("sortByAsc", "rank")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out TopHoldersResponse
	if err := c.get(ctx, "/token/"+url.PathEscape(mintAddress)+"/top-holders", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetToken fetches metadata for a mint.
func (c *Client) GetToken(ctx context.Context, mintAddress string) (*TokenInfo, error) {
	var out struct {
		Data TokenInfo `json:"data"`
	}
	if err := c.get(ctx, "/token/"+url.PathEscape(mintAddress), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func ohlcvQuery(resolution string, limit int) url.Values {
	query := url.Values{}
	if resolution != "" {
		query.Set("resolution", resolution)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return query
}

// GetTokenOHLCV fetches USD-denominated candles for a mint.
func (c *Client) GetTokenOHLCV(ctx context.Context, mintAddress, resolution string, limit int) (*OHLCVResponse, error) {
	var out OHLCVResponse
	if err := c.get(ctx, "/price/"+url.PathEscape(mintAddress)+"/token-ohlcv", ohlcvQuery(resolution, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMarketOHLCV fetches candles for a specific market.
func (c *Client) GetMarketOHLCV(ctx context.Context, marketID, resolution string, limit int) (*OHLCVResponse, error) {
	var out OHLCVResponse
	if err := c.get(ctx, "/price/"+url.PathEscape(marketID)+"/market-ohlcv", ohlcvQuery(resolution, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPairOHLCV fetches candles for a base/quote pair.
func (c *Client) GetPairOHLCV(ctx context.Context, baseMint, quoteMint, resolution string, limit int) (*OHLCVResponse, error) {
	path := "/price/" + url.PathEscape(baseMint) + "/" + url.PathEscape(quoteMint) + "/pair-ohlcv"
	var out OHLCVResponse
	if err := c.get(ctx, path, ohlcvQuery(resolution, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProgram fetches details for a program ID.
func (c *Client) GetProgram(ctx context.Context, programID string) (*ProgramResponse, error) {
	var out ProgramResponse
	if err := c.get(ctx, "/program/"+url.PathEscape(programID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProgramActiveUsers fetches the active-user series for a program.
func (c *Client) GetProgramActiveUsers(ctx context.Context, programID, timeRange string) (*ActiveUsersResponse, error) {
	query := url.Values{}
	if timeRange != "" {
		query.Set("range", timeRange)
	}
	var out ActiveUsersResponse
	if err := c.get(ctx, "/program/"+url.PathEscape(programID)+"/active-users-ts", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProgramTVL fetches the TVL series for a program.
func (c *Client) GetProgramTVL(ctx context.Context, programID, resolution string) (*TVLResponse, error) {
	query := url.Values{}
	if resolution != "" {
		query.Set("resolution", resolution)
	}
	var out TVLResponse
	if err := c.get(ctx, "/program/"+url.PathEscape(programID)+"/tvl", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransferQuery narrows a get-token-transfers request. Exactly one of
// WalletAddress or MintAddress should be set.
type TransferQuery struct {
	WalletAddress string
	MintAddress   string
	Limit         int
}

// GetTokenTransfers fetches recent transfers for a wallet or a mint.
func (c *Client) GetTokenTransfers(ctx context.Context, q TransferQuery) (*TransfersResponse, error) {
	query := url.Values{}
	query.Set("sortByDesc", "time")
	if q.WalletAddress != "" {
		query.Set("walletAddress", q.WalletAddress)
	}
	if q.MintAddress != "" {
		query.Set("mintAddress", q.MintAddress)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	var out TransfersResponse
	if err := c.get(ctx, "/token/transfers", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradeQuery narrows a get-token-trades request. Exactly one of
// AuthorityAddress or MintAddress should be set.
type TradeQuery struct {
	AuthorityAddress string
	MintAddress      string
	Limit            int
}

// GetTokenTrades fetches recent DEX trades for a wallet or a mint.
func (c *Client) GetTokenTrades(ctx context.Context, q TradeQuery) (*TradesResponse, error) {
	query := url.Values{}
	query.Set("sortByDesc", "time")
	if q.AuthorityAddress != "" {
		query.Set("authorityAddress", q.AuthorityAddress)
	}
	if q.MintAddress != "" {
		query.Set("mintAddress", q.MintAddress)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	var out TradesResponse
	if err := c.get(ctx, "/token/trades", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
