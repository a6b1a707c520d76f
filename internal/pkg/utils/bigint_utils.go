package utils

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"ton_portfolio/internal/domain/entity"
)

// ParseAmount parses a raw integer token amount.
// Returns false for empty, fractional or otherwise malformed input.
func ParseAmount(balance string) (*big.Int, bool) {
	s := strings.TrimSpace(balance)
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// HasPositiveBalance reports whether balance is an integer strictly above zero.
func HasPositiveBalance(balance string) bool {
	amount, ok := ParseAmount(balance)
	return ok && amount.Sign() > 0
}

// FilterNonZero keeps tokens holding a positive balance, preserving order.
func FilterNonZero(tokens []entity.Token) []entity.Token {
	out := make([]entity.Token, 0, len(tokens))
	for _, t := range tokens {
		if HasPositiveBalance(t.Balance) {
			out = append(out, t)
		}
	}
	return out
}

// FormatUnits converts a raw amount into token units with a fixed number of places.
// Example: balance="1234500000", decimals=9, places=6 => "1.234500"
// Malformed balances render as zero.
func FormatUnits(balance string, decimals int, places int) string {
	if places < 0 {
		places = 0
	}
	amount, ok := ParseAmount(balance)
	if !ok {
		return decimal.Zero.StringFixed(int32(places))
	}
	if decimals < 0 {
		decimals = 0
	}
	value := decimal.NewFromBigInt(amount, -int32(decimals))
	return value.StringFixed(int32(places))
}
