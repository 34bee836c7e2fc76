package impl_transfer

import (
	"context"
	"fmt"
	"log"

	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
	port_platform "github.com/fieldops/stock-transfers-service/internal/ports/gateway/platform"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

const sweepBatchSize = 256

type SweepExpiredUsecaseImpl struct {
	repo     port_persistence.TransferRequestRepository
	clock    port_platform.Clock
	notifier messaging.Notifier
}

func NewSweepExpiredUsecaseImpl(
	repo port_persistence.TransferRequestRepository,
	clock port_platform.Clock,
	notifier messaging.Notifier,
) *SweepExpiredUsecaseImpl {
	return &SweepExpiredUsecaseImpl{repo: repo, clock: clock, notifier: notifier}
}

// Execute flips awaiting requests whose deadline passed to EXPIRED. Each
// flip is an independent compare-and-set guarded by "still awaiting", so a
// settlement that committed microseconds earlier is never clobbered and
// concurrent sweeps count each request at most once between them.
func (u *SweepExpiredUsecaseImpl) Execute(ctx context.Context) (port_transfer.SweepExpiredOutput, error) {
	now := u.clock.Now()

	ids, err := u.repo.ListExpiredCandidates(ctx, now, sweepBatchSize)
	if err != nil {
		return port_transfer.SweepExpiredOutput{}, fmt.Errorf("list expired candidates: %w", err)
	}

	transitioned := 0
	for _, id := range ids {
		ok, err := u.repo.MarkExpired(ctx, id, now)
		if err != nil {
			return port_transfer.SweepExpiredOutput{Transitioned: transitioned}, fmt.Errorf("expire %s: %w", id, err)
		}
		if !ok {
			continue
		}

		transitioned++

		if err := u.notifier.Notify(ctx, messaging.Notification{
			Event:      "transfer.expired",
			RequestID:  id.String(),
			OccurredAt: now,
		}); err != nil {
			log.Printf("transfer: notify transfer.expired for %s failed: %v", id, err)
		}
	}

	return port_transfer.SweepExpiredOutput{Transitioned: transitioned}, nil
}
