package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places kept on every monetary amount.
// It matches the numeric(12,2) columns of the relational schema.
const moneyScale = 2

// Money is a value object representing an exact monetary amount.
// It wraps shopspring/decimal to avoid the rounding surprises of binary
// floating point: line extensions (unit price × quantity), discounts, and
// order totals must come out to the cent the way the backing store computes
// them.
//
// Money is immutable; arithmetic methods return new values. Amounts are
// normalized to two decimal places on construction and after every
// operation. Negative amounts are rejected at construction since nothing in
// the storefront domain owes money to a customer record.
//
// Example usage:
//
//	price, _ := kernel.MoneyFromString("19.99")
//	total := price.MulQuantity(2) // 39.98
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of 0.00. Unlike the zero value of most kernel
// types, a zero amount is a legitimate monetary value.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero.Round(moneyScale)}
}

// MoneyFromDecimal creates a Money from a decimal amount.
// The amount is rounded to two decimal places.
// Returns an error if the amount is negative.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "19.99". Returns an error when the string is not a valid decimal or
// the amount is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return MoneyFromDecimal(amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the fixed two-decimal string representation, e.g. "39.98".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(moneyScale)}
}

// MulQuantity returns the line extension of this amount taken as a unit
// price: amount × quantity, rounded to the cent.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

// ApplyDiscountPercent returns this amount reduced by the given percentage,
// rounded to the cent. The percent is expected to be in the open interval
// (0, 100); callers validate the discount before applying it.
func (m Money) ApplyDiscountPercent(percent decimal.Decimal) Money {
	factor := decimal.NewFromInt(1).Sub(percent.Div(decimal.NewFromInt(100)))
	return Money{amount: m.amount.Mul(factor).Round(moneyScale)}
}

// IsEqual compares two monetary amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}
