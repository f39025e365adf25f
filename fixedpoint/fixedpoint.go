// Package fixedpoint holds the integer money math shared by the ledgers.
// Amounts are wei-scale big integers carried as decimal strings in state.
package fixedpoint

import (
	"fmt"
	"math/big"
)

// Decimals is the asset token's fixed-point scale.
const Decimals = 18

// Unit returns 10^Decimals, one whole token in base units.
func Unit() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)
}

// Parse reads a non-negative decimal string amount.
func Parse(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %q", s)
	}
	return amount, nil
}

// TokensFor converts a payment amount into token base units at the given unit
// price (payment base units per whole token). Division truncates toward zero
// so fractional units the payer did not cover are never allocated.
func TokensFor(amount, unitPrice *big.Int) *big.Int {
	tokens := new(big.Int).Mul(amount, Unit())
	return tokens.Div(tokens, unitPrice)
}

// Percent returns x * pct / 100, truncating.
func Percent(x *big.Int, pct uint64) *big.Int {
	if pct == 0 {
		return big.NewInt(0)
	}
	result := new(big.Int).Mul(x, new(big.Int).SetUint64(pct))
	return result.Div(result, big.NewInt(100))
}
