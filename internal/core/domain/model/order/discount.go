package order

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AppliedDiscount captures the discount attached to an order at creation:
// the discount's identity for the reference, and its percentage for the
// total computation. The percentage is snapshotted the same way item prices
// are, so later edits to the discount record do not change historical
// totals.
type AppliedDiscount struct {
	id      kernel.UUID
	percent decimal.Decimal

	isConstructed bool
}

// NewAppliedDiscount creates an applied discount with a percentage strictly
// between 0 and 100.
func NewAppliedDiscount(id kernel.UUID, percent decimal.Decimal) (AppliedDiscount, error) {
	if err := id.Validate(); err != nil {
		return AppliedDiscount{}, err
	}
	if !percent.IsPositive() || percent.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return AppliedDiscount{}, errs.NewValueIsOutOfRangeError("discount percent", percent.String(), 0, 100)
	}

	return AppliedDiscount{
		id:            id,
		percent:       percent,
		isConstructed: true,
	}, nil
}

// ID returns the referenced discount's identifier.
func (d AppliedDiscount) ID() kernel.UUID {
	return d.id
}

// Percent returns the discount percentage.
func (d AppliedDiscount) Percent() decimal.Decimal {
	return d.percent
}
