package port_settlement

import (
	"context"
	"time"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
)

// Engine applies a dual-confirmed request's stock delta exactly once and
// marks it SETTLED. It must be invoked inside the same storage transaction
// as the confirmation that made the request eligible, so a failed settlement
// rolls that confirmation back as well. prev is the state the caller loaded
// before confirming; it guards the final compare-and-set.
type Engine interface {
	Settle(ctx context.Context, t *domain_transfer.TransferRequest, prev domain_transfer.State, now time.Time) error
}
