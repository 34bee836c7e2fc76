package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
)

type stockLedgerRepository struct {
	db *DB
}

func NewStockLedgerRepository(db *DB) port_persistence.StockLedgerRepository {
	return &stockLedgerRepository{db: db}
}

func (r *stockLedgerRepository) GetQuantity(ctx context.Context, locationID, productID string) (decimal.Decimal, error) {
	conn := r.db.conn(ctx)

	var raw string
	err := conn.QueryRowContext(ctx,
		`SELECT quantity FROM stock_levels WHERE location_id = ? AND product_id = ?`,
		locationID, productID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("query stock level: %w", err)
	}

	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse stock level %q: %w", raw, err)
	}

	return quantity, nil
}

// AdjustQuantity re-reads the balance under the enclosing transaction and
// rejects any delta that would drive it negative. Concurrent settlements
// touching the same product therefore never lose updates: each one computes
// against the committed balance, not a cached value.
func (r *stockLedgerRepository) AdjustQuantity(ctx context.Context, locationID, productID string, delta decimal.Decimal) error {
	current, err := r.GetQuantity(ctx, locationID, productID)
	if err != nil {
		return err
	}

	next := current.Add(delta)
	if next.IsNegative() {
		return port_persistence.ErrInsufficientStock
	}

	conn := r.db.conn(ctx)

	const upsert = `
		INSERT INTO stock_levels (location_id, product_id, quantity)
		VALUES (?, ?, ?)
		ON CONFLICT (location_id, product_id) DO UPDATE SET quantity = excluded.quantity
	`

	if _, err := conn.ExecContext(ctx, upsert, locationID, productID, next.String()); err != nil {
		return fmt.Errorf("write stock level: %w", err)
	}

	return nil
}

func (r *stockLedgerRepository) AppendMovement(ctx context.Context, m port_persistence.StockMovement) error {
	conn := r.db.conn(ctx)

	const insert = `
		INSERT INTO stock_movements (
			movement_id, request_id, kind, product_id, quantity, unit,
			from_location_id, to_location_id, moved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := conn.ExecContext(ctx, insert,
		m.MovementID,
		m.RequestID.String(),
		m.Kind,
		m.ProductID,
		m.Quantity.String(),
		m.Unit,
		m.FromLocationID,
		m.ToLocationID,
		m.MovedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}

	return nil
}
