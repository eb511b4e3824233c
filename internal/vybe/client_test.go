package vybe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", zap.NewNop())
}

func TestClientSendsAPIKeyHeader(t *testing.T) {
	var gotKey, gotAccept string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"summary":{}}`))
	})

	_, err := c.GetWalletPnL(context.Background(), "wallet123", "")
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClientErrorStatusBecomesAPIError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"bad request is final", http.StatusBadRequest, false},
		{"unauthorized is final", http.StatusUnauthorized, false},
		{"not found is final", http.StatusNotFound, false},
		{"rate limited is retryable", http.StatusTooManyRequests, true},
		{"server error is retryable", http.StatusInternalServerError, true},
		{"bad gateway is retryable", http.StatusBadGateway, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream failure", tt.status)
			})

			_, err := c.GetWalletPnL(context.Background(), "wallet123", "")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.retryable, apiErr.Retryable())
		})
	}
}

func TestClientCoercesMixedNumerics(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary":{
			"winRate":"0.65",
			"realizedPnlUsd":1234.5,
			"unrealizedPnlUsd":null,
			"tradesCount":"20",
			"tradesVolumeUsd":"not-a-number"
		}}`))
	})

	pnl, err := c.GetWalletPnL(context.Background(), "wallet123", "")
	require.NoError(t, err)

	s := pnl.Summary
	assert.InDelta(t, 0.65, s.WinRate.Float(), 1e-9)
	assert.InDelta(t, 1234.5, s.RealizedPnlUsd.Float(), 1e-9)
	assert.Zero(t, s.UnrealizedPnlUsd.Float())
	assert.InDelta(t, 20.0, s.TradesCount.Float(), 1e-9)
	assert.Zero(t, s.TradesVolumeUsd.Float(), "unparsable strings coerce to zero")
}

func TestGetWalletTokensQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := c.GetWalletTokens(context.Background(), "wallet123", DefaultTokenBalanceQuery())
	require.NoError(t, err)

	assert.Equal(t, "/account/token-balance/wallet123", gotPath)
	assert.Equal(t, []string{"0"}, gotQuery["minAssetValue"])
	assert.Equal(t, []string{"1000000"}, gotQuery["maxAssetValue"])
	assert.Equal(t, []string{"true"}, gotQuery["includeNoPriceBalance"])
	assert.Equal(t, []string{"valueUsd"}, gotQuery["sortByDesc"])
}

func TestGetTokenUnwrapsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token/mint123", r.URL.Path)
		w.Write([]byte(`{"data":{"name":"Bonk","symbol":"BONK","price":"0.000021"}}`))
	})

	info, err := c.GetToken(context.Background(), "mint123")
	require.NoError(t, err)
	assert.Equal(t, "BONK", info.Symbol)
	assert.InDelta(t, 0.000021, info.Price.Float(), 1e-12)
}

func TestGetPairOHLCVPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := c.GetPairOHLCV(context.Background(), "baseMint", "quoteMint", "1d", 7)
	require.NoError(t, err)
	assert.Equal(t, "/price/baseMint/quoteMint/pair-ohlcv", gotPath)
}

func TestGetTokenTransfersQuery(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token/transfers", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := c.GetTokenTransfers(context.Background(), TransferQuery{
		MintAddress: "mint123",
		Limit:       10,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"mint123"}, gotQuery["mintAddress"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Equal(t, []string{"time"}, gotQuery["sortByDesc"])
	assert.NotContains(t, gotQuery, "walletAddress")
}

func TestUserFacingMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"bad request blames the address",
			&APIError{StatusCode: http.StatusBadRequest},
			"That address doesn't look valid. Double-check it and try again.",
		},
		{
			"auth failure points at the operator",
			&APIError{StatusCode: http.StatusUnauthorized},
			"There's an authentication issue with the analytics service. Please contact the bot operator.",
		},
		{
			"server error suggests retrying",
			&APIError{StatusCode: http.StatusServiceUnavailable},
			"The analytics service is having trouble. Please try again later.",
		},
		{
			"plain error gets the generic reply",
			assert.AnError,
			"Couldn't fetch that data right now. Please try again later.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserFacingMessage(tt.err))
		})
	}
}
