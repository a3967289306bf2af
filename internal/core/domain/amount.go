package domain

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amounts are whole units held as decimals so they survive JSON and NUMERIC
// columns without precision loss. They must fit in a signed 128-bit integer.
var (
	maxAmount = decimal.NewFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)), 0)
	minAmount = decimal.NewFromBigInt(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127)), 0)
)

var (
	ErrAmountNotInteger = errors.New("amount must be a whole number")
	ErrAmountOverflow   = errors.New("amount exceeds 128-bit range")
)

// ValidateAmount reports whether d is an integer within the signed 128-bit range.
func ValidateAmount(d decimal.Decimal) error {
	if !d.IsInteger() {
		return ErrAmountNotInteger
	}
	if d.GreaterThan(maxAmount) || d.LessThan(minAmount) {
		return ErrAmountOverflow
	}
	return nil
}

// AddAmounts sums a and b, failing if the result leaves the 128-bit range.
func AddAmounts(a, b decimal.Decimal) (decimal.Decimal, error) {
	sum := a.Add(b)
	if err := ValidateAmount(sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// SumAmounts adds every value with exact integer accumulation.
func SumAmounts(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
