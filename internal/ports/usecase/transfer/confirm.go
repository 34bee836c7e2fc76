package port_transfer

import "context"

// Confirmation outcome codes surfaced by the gateway. They extend the
// domain's ConfirmationOutcome with the results only the orchestration can
// decide (settlement, lookup, authorization).
const (
	OutcomeNotFound           = "NOT_FOUND"
	OutcomeUnauthorized       = "UNAUTHORIZED"
	OutcomeSettled            = "SETTLED"
	OutcomeSettlementConflict = "SETTLEMENT_CONFLICT"
)

type ConfirmTransferInput struct {
	RequestID   string
	Role        string
	Code        string
	SubmittedBy Actor
}

type ConfirmTransferOutput struct {
	// Outcome is one of the domain ConfirmationOutcome values or the
	// gateway-level codes above. Stable and serializable, never free text.
	Outcome string
	State   string
}

type ConfirmTransferUseCase interface {
	Execute(ctx context.Context, input ConfirmTransferInput) (ConfirmTransferOutput, error)
}
