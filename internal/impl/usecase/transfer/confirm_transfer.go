package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
	port_platform "github.com/fieldops/stock-transfers-service/internal/ports/gateway/platform"
	port_settlement "github.com/fieldops/stock-transfers-service/internal/ports/usecase/settlement"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

type ConfirmTransferUsecaseImpl struct {
	uow      port_persistence.UnitOfWork
	repo     port_persistence.TransferRequestRepository
	engine   port_settlement.Engine
	clock    port_platform.Clock
	notifier messaging.Notifier
}

func NewConfirmTransferUsecaseImpl(
	uow port_persistence.UnitOfWork,
	repo port_persistence.TransferRequestRepository,
	engine port_settlement.Engine,
	clock port_platform.Clock,
	notifier messaging.Notifier,
) *ConfirmTransferUsecaseImpl {
	return &ConfirmTransferUsecaseImpl{
		uow:      uow,
		repo:     repo,
		engine:   engine,
		clock:    clock,
		notifier: notifier,
	}
}

// Execute registers one party's confirmation and, when it is the second
// one, settles the transfer inside the same transaction. The whole
// check-then-write sequence runs under one storage transaction, so a
// duplicate submission racing this call observes the committed result and
// maps to ALREADY_CONFIRMED or ALREADY_SETTLED rather than settling twice.
func (u *ConfirmTransferUsecaseImpl) Execute(ctx context.Context, in port_transfer.ConfirmTransferInput) (port_transfer.ConfirmTransferOutput, error) {
	id, err := uuid.Parse(in.RequestID)
	if err != nil {
		return port_transfer.ConfirmTransferOutput{Outcome: port_transfer.OutcomeNotFound}, nil
	}

	role := domain_transfer.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	if !role.IsValid() {
		return port_transfer.ConfirmTransferOutput{}, ErrInvalidRole
	}

	var (
		out    port_transfer.ConfirmTransferOutput
		events []domain_transfer.DomainEvent
	)

	txErr := u.uow.WithinTx(ctx, func(txCtx context.Context) error {
		request, err := u.repo.GetByID(txCtx, id)
		if errors.Is(err, port_persistence.ErrNotFound) {
			out = port_transfer.ConfirmTransferOutput{Outcome: port_transfer.OutcomeNotFound}
			return nil
		}
		if err != nil {
			return fmt.Errorf("load transfer request: %w", err)
		}

		// A party may only confirm the side it is bound to.
		if request.PartyForRole(role) != in.SubmittedBy.PartyID {
			out = port_transfer.ConfirmTransferOutput{
				Outcome: port_transfer.OutcomeUnauthorized,
				State:   string(request.State()),
			}
			return nil
		}

		prev := request.State()
		now := u.clock.Now()
		outcome := request.Confirm(role, in.Code, now)

		switch outcome {
		case domain_transfer.OutcomeSettlementEligible:
			if err := u.engine.Settle(txCtx, request, prev, now); err != nil {
				if errors.Is(err, port_persistence.ErrInsufficientStock) {
					// Roll back the second confirmation along with the
					// partial stock writes; the request stays awaiting the
					// last code so the retry can succeed once stock is
					// reconciled by an operator.
					out = port_transfer.ConfirmTransferOutput{
						Outcome: port_transfer.OutcomeSettlementConflict,
						State:   string(prev),
					}
					return errSettlementConflict
				}
				return err
			}

			events = request.PullEvents()
			out = port_transfer.ConfirmTransferOutput{
				Outcome: port_transfer.OutcomeSettled,
				State:   string(request.State()),
			}

		case domain_transfer.OutcomeConfirmed:
			if err := u.repo.Update(txCtx, request, prev); err != nil {
				return fmt.Errorf("persist confirmation: %w", err)
			}

			events = request.PullEvents()
			out = port_transfer.ConfirmTransferOutput{
				Outcome: string(outcome),
				State:   string(request.State()),
			}

		case domain_transfer.OutcomeExpired:
			// Lazy expiry: persist the flip when this access performed it.
			if request.State() == domain_transfer.StateExpired && prev != domain_transfer.StateExpired {
				if err := u.repo.Update(txCtx, request, prev); err != nil {
					return fmt.Errorf("persist expiry: %w", err)
				}
				events = request.PullEvents()
			}

			out = port_transfer.ConfirmTransferOutput{
				Outcome: string(outcome),
				State:   string(request.State()),
			}

		default:
			// AlreadyConfirmed, AlreadySettled, CodeMismatch, Cancelled: no
			// state change to persist.
			out = port_transfer.ConfirmTransferOutput{
				Outcome: string(outcome),
				State:   string(request.State()),
			}
		}

		return nil
	})

	if errors.Is(txErr, errSettlementConflict) {
		log.Printf("ERROR transfer %s: settlement conflict, stock no longer covers the confirmed payload; operator intervention required", in.RequestID)
		return out, nil
	}
	if txErr != nil {
		return port_transfer.ConfirmTransferOutput{}, txErr
	}

	dispatchNotifications(ctx, u.notifier, events)

	return out, nil
}
