package domain_transfer

// ConfirmationOutcome is the precise result of a confirmation attempt. The
// boundary layer may collapse several of these into one generic user-facing
// message; the enum itself stays exact for logging and tests.
type ConfirmationOutcome string

const (
	// OutcomeConfirmed: this side is now registered, the other side is still
	// outstanding.
	OutcomeConfirmed ConfirmationOutcome = "CONFIRMED"
	// OutcomeSettlementEligible: this confirmation was the second one; the
	// caller must now run settlement in the same transaction.
	OutcomeSettlementEligible ConfirmationOutcome = "SETTLEMENT_ELIGIBLE"
	// OutcomeAlreadyConfirmed: this side had already confirmed. Idempotent
	// success from the submitting party's perspective.
	OutcomeAlreadyConfirmed ConfirmationOutcome = "ALREADY_CONFIRMED"
	OutcomeAlreadySettled   ConfirmationOutcome = "ALREADY_SETTLED"
	OutcomeCodeMismatch     ConfirmationOutcome = "CODE_MISMATCH"
	OutcomeExpired          ConfirmationOutcome = "EXPIRED"
	OutcomeCancelled        ConfirmationOutcome = "CANCELLED"
)

// IsIdempotentSuccess reports whether the submitting party's confirmation is
// (or already was) honored, even if this particular call changed nothing.
func (o ConfirmationOutcome) IsIdempotentSuccess() bool {
	switch o {
	case OutcomeConfirmed, OutcomeSettlementEligible, OutcomeAlreadyConfirmed, OutcomeAlreadySettled:
		return true
	}
	return false
}
