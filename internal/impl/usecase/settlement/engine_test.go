package impl_settlement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	impl_settlement "github.com/fieldops/stock-transfers-service/internal/impl/usecase/settlement"
	gwmocks "github.com/fieldops/stock-transfers-service/internal/ports/gateway/mocks"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const (
	sourceLoc = "loc-warehouse-7"
	destLoc   = "loc-van-42"
)

func eligibleRequest(t *testing.T, kind domain_transfer.Kind, quantity decimal.Decimal, now time.Time) *domain_transfer.TransferRequest {
	t.Helper()

	dest := destLoc
	if !kind.MovesBetweenLocations() {
		dest = ""
	}

	request, err := domain_transfer.New(domain_transfer.NewParams{
		RequestID:             uuid.New(),
		Kind:                  kind,
		InitiatorPartyID:      "warehouse-7",
		CounterpartyPartyID:   "rep-42",
		InitiatorCode:         "482910",
		CounterpartyCode:      "117734",
		SourceLocationID:      sourceLoc,
		DestinationLocationID: dest,
		Payload: []domain_transfer.PayloadLine{
			{ProductID: "sku-100", Quantity: quantity, Unit: "case"},
		},
		TTL: 15 * time.Minute,
		Now: now,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	request.Confirm(domain_transfer.RoleInitiator, "117734", now.Add(time.Minute))
	if outcome := request.Confirm(domain_transfer.RoleCounterparty, "482910", now.Add(2*time.Minute)); outcome != domain_transfer.OutcomeSettlementEligible {
		t.Fatalf("expected SETTLEMENT_ELIGIBLE, got %v", outcome)
	}
	request.PullEvents()

	return request
}

func TestSettle_MovementDebitsSourceCreditsDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	stock := gwmocks.NewMockStockLedgerRepository(ctrl)
	engine := impl_settlement.NewEngine(repo, stock)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	quantity := decimal.NewFromInt(5)
	request := eligibleRequest(t, domain_transfer.KindOrderHandover, quantity, now)
	settleAt := now.Add(2 * time.Minute)

	gomock.InOrder(
		stock.EXPECT().AdjustQuantity(gomock.Any(), sourceLoc, "sku-100", quantity.Neg()).Return(nil),
		stock.EXPECT().AdjustQuantity(gomock.Any(), destLoc, "sku-100", quantity).Return(nil),
		stock.EXPECT().
			AppendMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m port_persistence.StockMovement) error {
				if m.RequestID != request.ID() {
					t.Fatalf("expected request id %s, got %s", request.ID(), m.RequestID)
				}
				if m.MovementID == "" {
					t.Fatal("expected a movement id")
				}
				if m.FromLocationID != sourceLoc || m.ToLocationID != destLoc {
					t.Fatalf("expected movement %s -> %s, got %s -> %s", sourceLoc, destLoc, m.FromLocationID, m.ToLocationID)
				}
				if !m.Quantity.Equal(quantity) {
					t.Fatalf("expected quantity %s, got %s", quantity, m.Quantity)
				}
				return nil
			}),
		repo.EXPECT().Update(gomock.Any(), request, domain_transfer.StateAwaitingInitiator).Return(nil),
	)

	if err := engine.Settle(context.Background(), request, domain_transfer.StateAwaitingInitiator, settleAt); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if request.State() != domain_transfer.StateSettled {
		t.Fatalf("expected SETTLED, got %s", request.State())
	}
	if request.SettledAt() == nil || !request.SettledAt().Equal(settleAt) {
		t.Fatalf("expected settled at %v, got %v", settleAt, request.SettledAt())
	}
}

func TestSettle_InsufficientStockAbortsBeforeAnyMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	stock := gwmocks.NewMockStockLedgerRepository(ctrl)
	engine := impl_settlement.NewEngine(repo, stock)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	quantity := decimal.NewFromInt(5)
	request := eligibleRequest(t, domain_transfer.KindOrderHandover, quantity, now)

	stock.EXPECT().
		AdjustQuantity(gomock.Any(), sourceLoc, "sku-100", quantity.Neg()).
		Return(port_persistence.ErrInsufficientStock)

	stock.EXPECT().AppendMovement(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := engine.Settle(context.Background(), request, domain_transfer.StateAwaitingInitiator, now.Add(2*time.Minute))
	if !errors.Is(err, port_persistence.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	if request.State() == domain_transfer.StateSettled {
		t.Fatal("expected request not to be marked settled")
	}
}

func TestSettle_AdjustmentAppliesSignedDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	stock := gwmocks.NewMockStockLedgerRepository(ctrl)
	engine := impl_settlement.NewEngine(repo, stock)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	delta := decimal.NewFromInt(-3)
	request := eligibleRequest(t, domain_transfer.KindStockAdjustment, delta, now)

	gomock.InOrder(
		stock.EXPECT().AdjustQuantity(gomock.Any(), sourceLoc, "sku-100", delta).Return(nil),
		stock.EXPECT().
			AppendMovement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m port_persistence.StockMovement) error {
				if m.ToLocationID != "" {
					t.Fatalf("expected in-place adjustment, got destination %s", m.ToLocationID)
				}
				if !m.Quantity.Equal(delta) {
					t.Fatalf("expected signed quantity %s, got %s", delta, m.Quantity)
				}
				return nil
			}),
		repo.EXPECT().Update(gomock.Any(), request, domain_transfer.StateAwaitingInitiator).Return(nil),
	)

	if err := engine.Settle(context.Background(), request, domain_transfer.StateAwaitingInitiator, now.Add(2*time.Minute)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSettle_RefusesTerminalRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	stock := gwmocks.NewMockStockLedgerRepository(ctrl)
	engine := impl_settlement.NewEngine(repo, stock)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	request := eligibleRequest(t, domain_transfer.KindOrderHandover, decimal.NewFromInt(5), now)
	if err := request.MarkSettled(now.Add(2 * time.Minute)); err != nil {
		t.Fatalf("expected settle to succeed, got %v", err)
	}

	stock.EXPECT().AdjustQuantity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := engine.Settle(context.Background(), request, domain_transfer.StateSettled, now.Add(3*time.Minute))
	if !errors.Is(err, domain_transfer.ErrAlreadyTerminal) {
		t.Fatalf("expected ErrAlreadyTerminal, got %v", err)
	}
}
