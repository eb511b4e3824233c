// Package tokens classifies user-supplied token strings and resolves
// symbols to mint addresses.
package tokens

import (
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Seed symbol table. Wrapped assets use their Portal mints, matching
// what the analytics API indexes.
var seedMints = map[string]solana.PublicKey{
	"SOL":  solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112"),
	"USDC": solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
	"USDT": solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"),
	"BTC":  solana.MustPublicKeyFromBase58("3NZ9JMVBmGAqocybic2c7LQCJScmgsAZ6vQqTDzcqmJh"),
	"ETH":  solana.MustPublicKeyFromBase58("7vfCXTUXx5WJV5JADk17DUJ4ksgau7utNKj4b963voxs"),
	"BONK": solana.MustPublicKeyFromBase58("DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"),
	"SAMO": solana.MustPublicKeyFromBase58("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"),
	"JTO":  solana.MustPublicKeyFromBase58("jtojtomepa8beP8AuQc6eXt5FriJwfFMwQx2v2f9mCL"),
}

// Registry maps well-known symbols to mint addresses and back. Contents
// are fixed after construction, so concurrent reads need no locking.
type Registry struct {
	bySymbol map[string]solana.PublicKey
	byMint   map[string]string
}

// NewRegistry builds a registry with the seed symbol set.
func NewRegistry() *Registry {
	r := &Registry{
		bySymbol: make(map[string]solana.PublicKey, len(seedMints)),
		byMint:   make(map[string]string, len(seedMints)),
	}
	for symbol, mint := range seedMints {
		r.register(symbol, mint)
	}
	return r
}

func (r *Registry) register(symbol string, mint solana.PublicKey) {
	symbol = strings.ToUpper(symbol)
	r.bySymbol[symbol] = mint
	r.byMint[mint.String()] = symbol
}

// Resolve maps a symbol (case-insensitive) to its mint address.
func (r *Registry) Resolve(symbol string) (solana.PublicKey, bool) {
	mint, ok := r.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return mint, ok
}

// SymbolFor returns the known symbol for a mint address, if any.
// Display-only: callers fall back to a truncated address otherwise.
func (r *Registry) SymbolFor(mint string) (string, bool) {
	symbol, ok := r.byMint[mint]
	return symbol, ok
}
