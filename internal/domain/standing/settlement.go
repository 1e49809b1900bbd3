package standing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Settle applies a repayment and discount to a loan's outstanding amount.
// The balance is clamped at zero. newStatus is passed through untouched: the
// caller decides what the loan becomes.
func Settle(current, repayment, discount decimal.Decimal, newStatus Status) (SettlementResult, error) {
	switch {
	case current.IsNegative():
		return SettlementResult{}, fmt.Errorf("%w: outstanding amount %s is negative", ErrInvalidAmount, current)
	case repayment.IsNegative():
		return SettlementResult{}, fmt.Errorf("%w: repayment amount %s is negative", ErrInvalidAmount, repayment)
	case discount.IsNegative():
		return SettlementResult{}, fmt.Errorf("%w: discount %s is negative", ErrInvalidAmount, discount)
	}

	updated := current.Sub(repayment).Sub(discount)
	if updated.IsNegative() {
		updated = decimal.Zero
	}
	return SettlementResult{UpdatedAmount: updated, NewStatus: newStatus}, nil
}
