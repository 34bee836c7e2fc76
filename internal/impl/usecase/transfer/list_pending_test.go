package impl_transfer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	impl_transfer "github.com/fieldops/stock-transfers-service/internal/impl/usecase/transfer"
	gwmocks "github.com/fieldops/stock-transfers-service/internal/ports/gateway/mocks"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"

	"go.uber.org/mock/gomock"
)

func TestListPending_RequiresOwnPartyOrManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	clock := gwmocks.NewMockClock(ctrl)
	svc := impl_transfer.NewListPendingUsecaseImpl(repo, clock)

	repo.EXPECT().FindPendingForParty(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Execute(context.Background(), port_transfer.ListPendingInput{
		PartyID:     testSalesRepParty,
		RequestedBy: port_transfer.Actor{PartyID: testWarehouseParty, Role: port_transfer.SystemRoleWarehouse},
	})
	if !errors.Is(err, impl_transfer.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListPending_MasksCodesPerViewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	clock := gwmocks.NewMockClock(ctrl)
	svc := impl_transfer.NewListPendingUsecaseImpl(repo, clock)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	request := pendingRequest(t, now)

	clock.EXPECT().Now().Return(now.Add(time.Minute))
	repo.EXPECT().
		FindPendingForParty(gomock.Any(), testSalesRepParty, now.Add(time.Minute)).
		Return([]*domain_transfer.TransferRequest{request}, nil)

	out, err := svc.Execute(context.Background(), port_transfer.ListPendingInput{
		PartyID:     testSalesRepParty,
		RequestedBy: port_transfer.Actor{PartyID: testSalesRepParty, Role: port_transfer.SystemRoleSalesRep},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Transfers) != 1 {
		t.Fatalf("expected one transfer, got %d", len(out.Transfers))
	}

	view := out.Transfers[0]
	// The rep sees its own issued code, never the initiator's.
	if view.DisplayCode != testCounterCode {
		t.Fatalf("expected display code %s, got %s", testCounterCode, view.DisplayCode)
	}
}
