package port_persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInsufficientStock rejects an adjustment that would drive a location's
// on-hand quantity negative.
var ErrInsufficientStock = errors.New("persistence: insufficient stock")

// StockMovement is the immutable audit row written once per settled payload
// line. For in-place adjustments ToLocationID is empty and Quantity keeps
// its sign.
type StockMovement struct {
	MovementID     string
	RequestID      uuid.UUID
	Kind           string
	ProductID      string
	Quantity       decimal.Decimal
	Unit           string
	FromLocationID string
	ToLocationID   string
	MovedAt        time.Time
}

// StockLedgerRepository is the only surface through which this protocol may
// touch on-hand quantities, and only from inside the settlement transaction.
type StockLedgerRepository interface {
	GetQuantity(ctx context.Context, locationID, productID string) (decimal.Decimal, error)

	// AdjustQuantity applies a signed delta, re-reading the current balance
	// under the enclosing transaction. ErrInsufficientStock when the result
	// would be negative.
	AdjustQuantity(ctx context.Context, locationID, productID string, delta decimal.Decimal) error

	AppendMovement(ctx context.Context, m StockMovement) error
}
