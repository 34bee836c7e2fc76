package impl_transfer

import (
	"context"
	"fmt"
	"time"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
	port_platform "github.com/fieldops/stock-transfers-service/internal/ports/gateway/platform"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

type CreateTransferUsecaseImpl struct {
	uow      port_persistence.UnitOfWork
	repo     port_persistence.TransferRequestRepository
	codes    port_platform.CodePairGenerator
	ids      port_platform.IDGenerator
	clock    port_platform.Clock
	notifier messaging.Notifier
	ttl      time.Duration
}

func NewCreateTransferUsecaseImpl(
	uow port_persistence.UnitOfWork,
	repo port_persistence.TransferRequestRepository,
	codes port_platform.CodePairGenerator,
	ids port_platform.IDGenerator,
	clock port_platform.Clock,
	notifier messaging.Notifier,
	ttl time.Duration,
) *CreateTransferUsecaseImpl {
	return &CreateTransferUsecaseImpl{
		uow:      uow,
		repo:     repo,
		codes:    codes,
		ids:      ids,
		clock:    clock,
		notifier: notifier,
		ttl:      ttl,
	}
}

func (u *CreateTransferUsecaseImpl) Execute(ctx context.Context, in port_transfer.CreateTransferInput) (port_transfer.CreateTransferOutput, error) {
	kind := domain_transfer.Kind(in.Kind)
	if !kind.IsValid() {
		return port_transfer.CreateTransferOutput{}, fmt.Errorf("%w: %s", ErrInvalidPayload, domain_transfer.ErrUnknownKind)
	}

	if !canInitiate(in.RequestedBy, kind) {
		return port_transfer.CreateTransferOutput{}, ErrUnauthorized
	}

	// Non-managers may only open requests on their own behalf.
	if !actsForParty(in.RequestedBy, in.InitiatorPartyID) {
		return port_transfer.CreateTransferOutput{}, ErrUnauthorized
	}

	initiatorCode, counterpartyCode, err := u.codes.Pair()
	if err != nil {
		return port_transfer.CreateTransferOutput{}, fmt.Errorf("generate confirmation codes: %w", err)
	}

	payload := make([]domain_transfer.PayloadLine, 0, len(in.Payload))
	for _, line := range in.Payload {
		payload = append(payload, domain_transfer.PayloadLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Unit:      line.Unit,
		})
	}

	request, err := domain_transfer.New(domain_transfer.NewParams{
		RequestID:             u.ids.NewUUID(),
		Kind:                  kind,
		InitiatorPartyID:      in.InitiatorPartyID,
		CounterpartyPartyID:   in.CounterpartyPartyID,
		InitiatorCode:         initiatorCode,
		CounterpartyCode:      counterpartyCode,
		SourceLocationID:      in.SourceLocationID,
		DestinationLocationID: in.DestinationLocationID,
		Payload:               payload,
		TTL:                   u.ttl,
		Now:                   u.clock.Now(),
	})
	if err != nil {
		return port_transfer.CreateTransferOutput{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	// The request row and its payload lines land in one transaction; no
	// reader ever observes a confirmable request with a partial payload.
	err = u.uow.WithinTx(ctx, func(txCtx context.Context) error {
		return u.repo.Create(txCtx, request)
	})
	if err != nil {
		return port_transfer.CreateTransferOutput{}, fmt.Errorf("persist transfer request: %w", err)
	}

	dispatchNotifications(ctx, u.notifier, request.PullEvents())

	return port_transfer.CreateTransferOutput{
		Transfer: buildView(request, in.RequestedBy.PartyID),
	}, nil
}
