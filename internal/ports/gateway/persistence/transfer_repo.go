package port_persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
)

var (
	ErrNotFound = errors.New("persistence: not found")
	// ErrStaleState signals that a guarded update lost a compare-and-set
	// race: the row's state no longer matches what the caller loaded.
	ErrStaleState = errors.New("persistence: stale state")
)

type TransferRequestRepository interface {
	Create(ctx context.Context, t *domain_transfer.TransferRequest) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain_transfer.TransferRequest, error)

	// FindPendingForParty lists non-terminal requests bound to the party
	// whose deadline has not passed at now.
	FindPendingForParty(ctx context.Context, partyID string, now time.Time) ([]*domain_transfer.TransferRequest, error)

	// Update persists the aggregate's mutable columns guarded by the state
	// the caller previously loaded. Zero rows matched means another writer
	// transitioned the row first: ErrStaleState.
	Update(ctx context.Context, t *domain_transfer.TransferRequest, expected domain_transfer.State) error

	// MarkExpired flips a request to EXPIRED iff it is still awaiting and
	// its deadline is at or before now. Returns false when the guard did
	// not match, which is not an error for the reaper.
	MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)

	// ListExpiredCandidates returns ids of awaiting requests whose deadline
	// is at or before now, up to limit.
	ListExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}
