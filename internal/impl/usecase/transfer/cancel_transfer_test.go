package impl_transfer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	impl_transfer "github.com/fieldops/stock-transfers-service/internal/impl/usecase/transfer"
	gwmocks "github.com/fieldops/stock-transfers-service/internal/ports/gateway/mocks"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"

	"go.uber.org/mock/gomock"
)

func newCancelService(ctrl *gomock.Controller) (*impl_transfer.CancelTransferUsecaseImpl,
	*gwmocks.MockTransferRequestRepository,
	*gwmocks.MockClock,
	*gwmocks.MockNotifier,
) {
	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	clock := gwmocks.NewMockClock(ctrl)
	notifier := gwmocks.NewMockNotifier(ctrl)

	svc := impl_transfer.NewCancelTransferUsecaseImpl(repo, clock, notifier)
	return svc, repo, clock, notifier
}

func TestCancelTransfer_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, clock, notifier := newCancelService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	request := pendingRequest(t, now)

	repo.EXPECT().GetByID(gomock.Any(), request.ID()).Return(request, nil)
	clock.EXPECT().Now().Return(now.Add(time.Minute))
	repo.EXPECT().Update(gomock.Any(), request, domain_transfer.StateAwaitingBoth).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	out, err := svc.Execute(context.Background(), port_transfer.CancelTransferInput{
		RequestID:   request.ID().String(),
		RequestedBy: port_transfer.Actor{PartyID: testWarehouseParty, Role: port_transfer.SystemRoleWarehouse},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Outcome != string(domain_transfer.StateCancelled) {
		t.Fatalf("expected CANCELLED, got %s", out.Outcome)
	}
}

func TestCancelTransfer_CounterpartyCannotCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newCancelService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	request := pendingRequest(t, now)

	repo.EXPECT().GetByID(gomock.Any(), request.ID()).Return(request, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Execute(context.Background(), port_transfer.CancelTransferInput{
		RequestID:   request.ID().String(),
		RequestedBy: port_transfer.Actor{PartyID: testSalesRepParty, Role: port_transfer.SystemRoleSalesRep},
	})
	if !errors.Is(err, impl_transfer.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCancelTransfer_SettledRequestReportsTerminalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, clock, notifier := newCancelService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	request := pendingRequest(t, now)
	request.Confirm(domain_transfer.RoleInitiator, testCounterCode, now.Add(time.Minute))
	request.Confirm(domain_transfer.RoleCounterparty, testInitiatorCode, now.Add(2*time.Minute))
	if err := request.MarkSettled(now.Add(2 * time.Minute)); err != nil {
		t.Fatalf("expected settle to succeed, got %v", err)
	}
	request.PullEvents()

	repo.EXPECT().GetByID(gomock.Any(), request.ID()).Return(request, nil)
	clock.EXPECT().Now().Return(now.Add(3 * time.Minute))
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	out, err := svc.Execute(context.Background(), port_transfer.CancelTransferInput{
		RequestID:   request.ID().String(),
		RequestedBy: port_transfer.Actor{PartyID: testWarehouseParty, Role: port_transfer.SystemRoleWarehouse},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Outcome != string(domain_transfer.StateSettled) {
		t.Fatalf("expected SETTLED, got %s", out.Outcome)
	}
}

func TestCancelTransfer_LosesRaceAgainstSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, clock, notifier := newCancelService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	request := pendingRequest(t, now)

	winner := pendingRequest(t, now)
	winner.Confirm(domain_transfer.RoleInitiator, testCounterCode, now.Add(time.Minute))
	winner.Confirm(domain_transfer.RoleCounterparty, testInitiatorCode, now.Add(2*time.Minute))
	if err := winner.MarkSettled(now.Add(2 * time.Minute)); err != nil {
		t.Fatalf("expected settle to succeed, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), request.ID()).Return(request, nil)
	clock.EXPECT().Now().Return(now.Add(2 * time.Minute)).Times(2)
	repo.EXPECT().
		Update(gomock.Any(), request, domain_transfer.StateAwaitingBoth).
		Return(port_persistence.ErrStaleState)
	repo.EXPECT().GetByID(gomock.Any(), request.ID()).Return(winner, nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	out, err := svc.Execute(context.Background(), port_transfer.CancelTransferInput{
		RequestID:   request.ID().String(),
		RequestedBy: port_transfer.Actor{PartyID: testWarehouseParty, Role: port_transfer.SystemRoleWarehouse},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Outcome != string(domain_transfer.StateSettled) {
		t.Fatalf("expected SETTLED, got %s", out.Outcome)
	}
}

func TestCancelTransfer_RetriesAfterLosingRaceToConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, clock, notifier := newCancelService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	request := pendingRequest(t, now)

	// A first confirmation wins the guarded update; the request is still
	// awaiting the other code, so the cancellation must go through on retry.
	confirmed := pendingRequest(t, now)
	if got := confirmed.Confirm(domain_transfer.RoleInitiator, testCounterCode, now.Add(time.Minute)); got != domain_transfer.OutcomeConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", got)
	}
	confirmed.PullEvents()

	repo.EXPECT().GetByID(gomock.Any(), request.ID()).Return(request, nil)
	clock.EXPECT().Now().Return(now.Add(2 * time.Minute)).Times(2)
	repo.EXPECT().
		Update(gomock.Any(), request, domain_transfer.StateAwaitingBoth).
		Return(port_persistence.ErrStaleState)
	repo.EXPECT().GetByID(gomock.Any(), request.ID()).Return(confirmed, nil)
	repo.EXPECT().
		Update(gomock.Any(), confirmed, domain_transfer.StateAwaitingInitiator).
		Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	out, err := svc.Execute(context.Background(), port_transfer.CancelTransferInput{
		RequestID:   request.ID().String(),
		RequestedBy: port_transfer.Actor{PartyID: testWarehouseParty, Role: port_transfer.SystemRoleWarehouse},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Outcome != string(domain_transfer.StateCancelled) {
		t.Fatalf("expected CANCELLED, got %s", out.Outcome)
	}
	if confirmed.State() != domain_transfer.StateCancelled {
		t.Fatalf("expected the reloaded request to be cancelled, got %s", confirmed.State())
	}
}

func TestCancelTransfer_UnknownRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newCancelService(ctrl)

	out, err := svc.Execute(context.Background(), port_transfer.CancelTransferInput{
		RequestID:   "not-a-uuid",
		RequestedBy: port_transfer.Actor{PartyID: testWarehouseParty, Role: port_transfer.SystemRoleWarehouse},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Outcome != port_transfer.OutcomeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", out.Outcome)
	}
}
