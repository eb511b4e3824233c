package tokens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/alayeseke/vybebot/internal/vybe"
)

type fakeFetcher struct {
	calls int
	info  *vybe.TokenInfo
	err   error
}

func (f *fakeFetcher) GetToken(ctx context.Context, mint string) (*vybe.TokenInfo, error) {
	f.calls++
	return f.info, f.err
}

func TestDisplaySymbolRegistryHitSkipsAPI(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewResolver(NewRegistry(), fetcher, zap.NewNop())

	symbol := r.DisplaySymbol(context.Background(), solMint)

	assert.Equal(t, "SOL", symbol)
	assert.Zero(t, fetcher.calls)
}

func TestDisplaySymbolCachesAPIResult(t *testing.T) {
	mint := "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"
	fetcher := &fakeFetcher{info: &vybe.TokenInfo{Symbol: "WIF"}}
	r := NewResolver(NewRegistry(), fetcher, zap.NewNop())

	assert.Equal(t, "WIF", r.DisplaySymbol(context.Background(), mint))
	assert.Equal(t, "WIF", r.DisplaySymbol(context.Background(), mint))
	assert.Equal(t, 1, fetcher.calls, "second lookup comes from the cache")
}

func TestDisplaySymbolFallsBackOnError(t *testing.T) {
	mint := "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"
	fetcher := &fakeFetcher{err: errors.New("api down")}
	r := NewResolver(NewRegistry(), fetcher, zap.NewNop())

	assert.Equal(t, "DYw8...NSKK", r.DisplaySymbol(context.Background(), mint))
}

func TestDisplaySymbolFallsBackOnEmptySymbol(t *testing.T) {
	mint := "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"
	fetcher := &fakeFetcher{info: &vybe.TokenInfo{Symbol: ""}}
	r := NewResolver(NewRegistry(), fetcher, zap.NewNop())

	assert.Equal(t, "DYw8...NSKK", r.DisplaySymbol(context.Background(), mint))
	// An empty symbol is not cached; the next call asks again.
	r.DisplaySymbol(context.Background(), mint)
	assert.Equal(t, 2, fetcher.calls)
}
