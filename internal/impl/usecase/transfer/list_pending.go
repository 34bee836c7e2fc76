package impl_transfer

import (
	"context"
	"fmt"

	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
	port_platform "github.com/fieldops/stock-transfers-service/internal/ports/gateway/platform"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

type ListPendingUsecaseImpl struct {
	repo  port_persistence.TransferRequestRepository
	clock port_platform.Clock
}

func NewListPendingUsecaseImpl(
	repo port_persistence.TransferRequestRepository,
	clock port_platform.Clock,
) *ListPendingUsecaseImpl {
	return &ListPendingUsecaseImpl{repo: repo, clock: clock}
}

// Execute lists the non-terminal, unexpired requests a party still has to
// act on. Requests past their deadline are filtered out here and left for
// the reaper to flip.
func (u *ListPendingUsecaseImpl) Execute(ctx context.Context, in port_transfer.ListPendingInput) (port_transfer.ListPendingOutput, error) {
	if !actsForParty(in.RequestedBy, in.PartyID) {
		return port_transfer.ListPendingOutput{}, ErrUnauthorized
	}

	requests, err := u.repo.FindPendingForParty(ctx, in.PartyID, u.clock.Now())
	if err != nil {
		return port_transfer.ListPendingOutput{}, fmt.Errorf("list pending transfers: %w", err)
	}

	views := make([]port_transfer.TransferView, 0, len(requests))
	for _, request := range requests {
		views = append(views, buildView(request, in.PartyID))
	}

	return port_transfer.ListPendingOutput{Transfers: views}, nil
}
