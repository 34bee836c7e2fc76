package impl_transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
	port_platform "github.com/fieldops/stock-transfers-service/internal/ports/gateway/platform"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

type CancelTransferUsecaseImpl struct {
	repo     port_persistence.TransferRequestRepository
	clock    port_platform.Clock
	notifier messaging.Notifier
}

func NewCancelTransferUsecaseImpl(
	repo port_persistence.TransferRequestRepository,
	clock port_platform.Clock,
	notifier messaging.Notifier,
) *CancelTransferUsecaseImpl {
	return &CancelTransferUsecaseImpl{repo: repo, clock: clock, notifier: notifier}
}

// maxCancelAttempts bounds how often a cancellation re-reads the request
// after losing a guarded update to a concurrent confirmation or the reaper.
const maxCancelAttempts = 3

// Execute cancels a non-terminal request. Only the initiator or a manager
// may cancel. Cancelling an already cancelled request is a no-op success;
// settled and expired requests report their terminal state instead. Losing
// an update race to a confirmation leaves the request awaiting, so the
// cancellation is retried against the reloaded state.
func (u *CancelTransferUsecaseImpl) Execute(ctx context.Context, in port_transfer.CancelTransferInput) (port_transfer.CancelTransferOutput, error) {
	id, err := uuid.Parse(in.RequestID)
	if err != nil {
		return port_transfer.CancelTransferOutput{Outcome: port_transfer.OutcomeNotFound}, nil
	}

	for attempt := 0; attempt < maxCancelAttempts; attempt++ {
		request, err := u.repo.GetByID(ctx, id)
		if errors.Is(err, port_persistence.ErrNotFound) {
			return port_transfer.CancelTransferOutput{Outcome: port_transfer.OutcomeNotFound}, nil
		}
		if err != nil {
			return port_transfer.CancelTransferOutput{}, fmt.Errorf("load transfer request: %w", err)
		}

		if !actsForParty(in.RequestedBy, request.InitiatorPartyID()) {
			return port_transfer.CancelTransferOutput{}, ErrUnauthorized
		}

		prev := request.State()

		if err := request.Cancel(u.clock.Now()); err != nil {
			// Settled or expired: report the terminal state as the outcome.
			return port_transfer.CancelTransferOutput{
				Outcome: string(request.State()),
				State:   string(request.State()),
			}, nil
		}

		if prev != domain_transfer.StateCancelled {
			if err := u.repo.Update(ctx, request, prev); err != nil {
				if errors.Is(err, port_persistence.ErrStaleState) {
					continue
				}
				return port_transfer.CancelTransferOutput{}, fmt.Errorf("persist cancellation: %w", err)
			}

			dispatchNotifications(ctx, u.notifier, request.PullEvents())
		}

		return port_transfer.CancelTransferOutput{
			Outcome: string(domain_transfer.StateCancelled),
			State:   string(domain_transfer.StateCancelled),
		}, nil
	}

	// Attempts exhausted; report whatever state the row landed in.
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return port_transfer.CancelTransferOutput{}, fmt.Errorf("reload transfer request: %w", err)
	}
	return port_transfer.CancelTransferOutput{
		Outcome: string(current.State()),
		State:   string(current.State()),
	}, nil
}
