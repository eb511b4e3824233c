package tokens

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/alayeseke/vybebot/internal/format"
	"github.com/alayeseke/vybebot/internal/vybe"
)

const (
	symbolCacheTTL     = 30 * time.Minute
	symbolCacheCleanup = 10 * time.Minute
)

// TokenInfoFetcher is the slice of the analytics client the resolver
// needs.
type TokenInfoFetcher interface {
	GetToken(ctx context.Context, mintAddress string) (*vybe.TokenInfo, error)
}

// Resolver maps mint addresses to display symbols: static registry
// first, then the analytics API behind a TTL cache. Resolution is
// best-effort and display-only; failures fall back to a truncated
// address, never an error.
type Resolver struct {
	registry *Registry
	client   TokenInfoFetcher
	cache    *cache.Cache
	log      *zap.Logger
}

// NewResolver builds a resolver over the registry and API client.
func NewResolver(registry *Registry, client TokenInfoFetcher, log *zap.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		client:   client,
		cache:    cache.New(symbolCacheTTL, symbolCacheCleanup),
		log:      log.Named("resolver"),
	}
}

// DisplaySymbol returns the best display label for a mint.
func (r *Resolver) DisplaySymbol(ctx context.Context, mintAddress string) string {
	if symbol, ok := r.registry.SymbolFor(mintAddress); ok {
		return symbol
	}
	if cached, ok := r.cache.Get(mintAddress); ok {
		return cached.(string)
	}

	info, err := r.client.GetToken(ctx, mintAddress)
	if err != nil || info.Symbol == "" {
		if err != nil {
			r.log.Debug("symbol lookup failed, using truncated mint",
				zap.String("mint", mintAddress), zap.Error(err))
		}
		return format.MintAddress(mintAddress)
	}

	r.cache.Set(mintAddress, info.Symbol, cache.DefaultExpiration)
	return info.Symbol
}
