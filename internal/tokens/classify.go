package tokens

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Kind is the classification of a user-supplied token string.
type Kind int

const (
	// KindUnknown is neither address-shaped nor a known symbol.
	KindUnknown Kind = iota
	// KindAddress is a valid base58 Solana public key.
	KindAddress
	// KindSymbol is a known ticker resolved via the registry.
	KindSymbol
)

// Classification is the result of classifying one argument token.
type Classification struct {
	Kind    Kind
	Address solana.PublicKey
	Symbol  string
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// looksLikeAddress applies the shape rule: base58 alphabet only,
// length between 32 and 44.
func looksLikeAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}

// Classify decides whether token is a Solana address, a known symbol,
// or unrecognized. Address shape wins over symbol lookup, so a symbol
// that happens to be address-shaped is treated as an address.
func (r *Registry) Classify(token string) Classification {
	token = strings.TrimSpace(token)
	if looksLikeAddress(token) {
		if key, err := solana.PublicKeyFromBase58(token); err == nil {
			c := Classification{Kind: KindAddress, Address: key}
			if symbol, ok := r.SymbolFor(key.String()); ok {
				c.Symbol = symbol
			}
			return c
		}
	}
	symbol := strings.ToUpper(token)
	if mint, ok := r.Resolve(symbol); ok {
		return Classification{Kind: KindSymbol, Address: mint, Symbol: symbol}
	}
	return Classification{Kind: KindUnknown}
}

// Pair is a resolved BASE/QUOTE trading pair.
type Pair struct {
	BaseMint   solana.PublicKey
	QuoteMint  solana.PublicKey
	BaseLabel  string
	QuoteLabel string
}

// ParsePair resolves "BASE/QUOTE" where each leg is a symbol or a mint
// address. Labels carry the symbol when known and the raw address
// otherwise; display code resolves or truncates raw-address labels.
func (r *Registry) ParsePair(s string) (Pair, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, fmt.Errorf("pair must be in BASE/QUOTE form, got %q", s)
	}

	legs := make([]Classification, 2)
	for i, part := range parts {
		c := r.Classify(part)
		if c.Kind == KindUnknown {
			return Pair{}, fmt.Errorf("unrecognized token %q", strings.TrimSpace(part))
		}
		legs[i] = c
	}

	pair := Pair{
		BaseMint:   legs[0].Address,
		QuoteMint:  legs[1].Address,
		BaseLabel:  legs[0].Symbol,
		QuoteLabel: legs[1].Symbol,
	}
	if pair.BaseLabel == "" {
		pair.BaseLabel = pair.BaseMint.String()
	}
	if pair.QuoteLabel == "" {
		pair.QuoteLabel = pair.QuoteMint.String()
	}
	return pair, nil
}
