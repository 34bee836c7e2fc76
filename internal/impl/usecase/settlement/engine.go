package impl_settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
)

// Engine is the only component that mutates stock quantities as a side
// effect of the transfer protocol. All writes happen under the caller's
// transaction: either everything lands (stock deltas, movement rows, the
// SETTLED mark) or nothing does.
type Engine struct {
	repo  port_persistence.TransferRequestRepository
	stock port_persistence.StockLedgerRepository
}

func NewEngine(
	repo port_persistence.TransferRequestRepository,
	stock port_persistence.StockLedgerRepository,
) *Engine {
	return &Engine{repo: repo, stock: stock}
}

func (e *Engine) Settle(ctx context.Context, t *domain_transfer.TransferRequest, prev domain_transfer.State, now time.Time) error {
	// Re-validate eligibility before touching stock: the reaper may have
	// fired between the last confirmation and this call, and settling twice
	// is never acceptable.
	if t.State().IsTerminal() {
		return domain_transfer.ErrAlreadyTerminal
	}

	if t.InitiatorConfirmedAt() == nil || t.CounterpartyConfirmedAt() == nil {
		return domain_transfer.ErrNotEligible
	}

	for _, line := range t.Payload() {
		if err := e.applyLine(ctx, t, line, now); err != nil {
			return err
		}
	}

	if err := t.MarkSettled(now); err != nil {
		return err
	}

	if err := e.repo.Update(ctx, t, prev); err != nil {
		return fmt.Errorf("settlement: persist settled state: %w", err)
	}

	return nil
}

func (e *Engine) applyLine(ctx context.Context, t *domain_transfer.TransferRequest, line domain_transfer.PayloadLine, now time.Time) error {
	movement := port_persistence.StockMovement{
		MovementID:     xid.New().String(),
		RequestID:      t.ID(),
		Kind:           string(t.Kind()),
		ProductID:      line.ProductID,
		Quantity:       line.Quantity,
		Unit:           line.Unit,
		FromLocationID: t.SourceLocationID(),
		MovedAt:        now,
	}

	if t.Kind().MovesBetweenLocations() {
		if err := e.stock.AdjustQuantity(ctx, t.SourceLocationID(), line.ProductID, line.Quantity.Neg()); err != nil {
			return fmt.Errorf("settlement: debit %s at %s: %w", line.ProductID, t.SourceLocationID(), err)
		}

		if err := e.stock.AdjustQuantity(ctx, t.DestinationLocationID(), line.ProductID, line.Quantity); err != nil {
			return fmt.Errorf("settlement: credit %s at %s: %w", line.ProductID, t.DestinationLocationID(), err)
		}

		movement.ToLocationID = t.DestinationLocationID()
	} else {
		if err := e.stock.AdjustQuantity(ctx, t.SourceLocationID(), line.ProductID, line.Quantity); err != nil {
			return fmt.Errorf("settlement: adjust %s at %s: %w", line.ProductID, t.SourceLocationID(), err)
		}
	}

	if err := e.stock.AppendMovement(ctx, movement); err != nil {
		return fmt.Errorf("settlement: append movement: %w", err)
	}

	return nil
}
