package domain_transfer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PayloadLine is one stock position moved by a transfer request. Quantities
// use decimals so weighed units (kg, l) work the same as counted ones.
// Lines are immutable once the request is created.
type PayloadLine struct {
	ProductID string
	Quantity  decimal.Decimal
	Unit      string
}

func validatePayload(kind Kind, lines []PayloadLine) error {
	if len(lines) == 0 {
		return ErrEmptyPayload
	}

	for _, line := range lines {
		if strings.TrimSpace(line.ProductID) == "" {
			return ErrMissingProductID
		}

		if line.Quantity.IsZero() {
			return ErrZeroQuantity
		}

		// Only adjustments carry signed deltas.
		if kind.MovesBetweenLocations() && line.Quantity.IsNegative() {
			return ErrNegativeQuantity
		}
	}

	return nil
}
