package impl_transfer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	impl_transfer "github.com/fieldops/stock-transfers-service/internal/impl/usecase/transfer"
	gwmocks "github.com/fieldops/stock-transfers-service/internal/ports/gateway/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newSweepService(ctrl *gomock.Controller) (*impl_transfer.SweepExpiredUsecaseImpl,
	*gwmocks.MockTransferRequestRepository,
	*gwmocks.MockClock,
	*gwmocks.MockNotifier,
) {
	repo := gwmocks.NewMockTransferRequestRepository(ctrl)
	clock := gwmocks.NewMockClock(ctrl)
	notifier := gwmocks.NewMockNotifier(ctrl)

	svc := impl_transfer.NewSweepExpiredUsecaseImpl(repo, clock, notifier)
	return svc, repo, clock, notifier
}

func TestSweepExpired_FlipsCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, clock, notifier := newSweepService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()

	clock.EXPECT().Now().Return(now)
	repo.EXPECT().ListExpiredCandidates(gomock.Any(), now, gomock.Any()).Return([]uuid.UUID{first, second}, nil)
	repo.EXPECT().MarkExpired(gomock.Any(), first, now).Return(true, nil)
	repo.EXPECT().MarkExpired(gomock.Any(), second, now).Return(true, nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	out, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Transitioned != 2 {
		t.Fatalf("expected 2 transitions, got %d", out.Transitioned)
	}
}

func TestSweepExpired_SkipsLostRaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, clock, notifier := newSweepService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	settledMeanwhile := uuid.New()
	stillAwaiting := uuid.New()

	clock.EXPECT().Now().Return(now)
	repo.EXPECT().
		ListExpiredCandidates(gomock.Any(), now, gomock.Any()).
		Return([]uuid.UUID{settledMeanwhile, stillAwaiting}, nil)

	// The guard did not match: a settlement won between listing and flipping.
	repo.EXPECT().MarkExpired(gomock.Any(), settledMeanwhile, now).Return(false, nil)
	repo.EXPECT().MarkExpired(gomock.Any(), stillAwaiting, now).Return(true, nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	out, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Transitioned != 1 {
		t.Fatalf("expected 1 transition, got %d", out.Transitioned)
	}
}

func TestSweepExpired_NotifyFailureDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, clock, notifier := newSweepService(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	clock.EXPECT().Now().Return(now)
	repo.EXPECT().ListExpiredCandidates(gomock.Any(), now, gomock.Any()).Return([]uuid.UUID{id}, nil)
	repo.EXPECT().MarkExpired(gomock.Any(), id, now).Return(true, nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

	out, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Transitioned != 1 {
		t.Fatalf("expected 1 transition, got %d", out.Transitioned)
	}
}
