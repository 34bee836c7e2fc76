package port_transfer

import "context"

type SweepExpiredOutput struct {
	Transitioned int
}

// SweepExpiredUseCase is the reaper: it flips awaiting requests whose
// deadline passed to EXPIRED. Idempotent and safe to run concurrently with
// confirmation attempts.
type SweepExpiredUseCase interface {
	Execute(ctx context.Context) (SweepExpiredOutput, error)
}
