package fixedpoint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sideshiftai/basepulse-ido/fixedpoint"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    string
		shouldError bool
	}{
		{name: "Success - zero", input: "0", expected: "0"},
		{name: "Success - empty means zero", input: "", expected: "0"},
		{name: "Success - wei scale", input: "1000000000000000000", expected: "1000000000000000000"},
		{name: "Failure - negative", input: "-5", shouldError: true},
		{name: "Failure - not a number", input: "12abc", shouldError: true},
		{name: "Failure - decimal point", input: "1.5", shouldError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := fixedpoint.Parse(tt.input)
			if tt.shouldError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestTokensFor(t *testing.T) {
	t.Parallel()

	// Price of 2 payment units per whole token: 10 units buy 5 tokens.
	amount := big.NewInt(10)
	price := big.NewInt(2)
	tokens := fixedpoint.TokensFor(amount, price)

	expected := new(big.Int).Mul(big.NewInt(5), fixedpoint.Unit())
	require.Equal(t, expected.String(), tokens.String())
}

func TestTokensForTruncates(t *testing.T) {
	t.Parallel()

	// 1 unit at a price of 3 wei per token: 1e18/3 truncates the remainder.
	tokens := fixedpoint.TokensFor(big.NewInt(1), big.NewInt(3))
	expected := new(big.Int).Div(fixedpoint.Unit(), big.NewInt(3))
	require.Equal(t, expected.String(), tokens.String())
}

func TestPercent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0", fixedpoint.Percent(big.NewInt(1000), 0).String())
	require.Equal(t, "100", fixedpoint.Percent(big.NewInt(1000), 10).String())
	require.Equal(t, "1000", fixedpoint.Percent(big.NewInt(1000), 100).String())
	// Truncation on non-divisible amounts.
	require.Equal(t, "1", fixedpoint.Percent(big.NewInt(15), 10).String())
}
