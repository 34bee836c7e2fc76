package domain_transfer

// State is the lifecycle state of a transfer request.
//
// The AWAITING_<role> states follow the handover convention: the state is
// named for the party whose issued code is still outstanding. Each party is
// shown its own code and must receive the other party's code out-of-band, so
// AWAITING_INITIATOR means the initiator has already confirmed (by typing the
// counterparty's code) and the request now waits for the counterparty to type
// the initiator's code back.
type State string

const (
	StateAwaitingBoth         State = "AWAITING_BOTH"
	StateAwaitingInitiator    State = "AWAITING_INITIATOR"
	StateAwaitingCounterparty State = "AWAITING_COUNTERPARTY"
	StateSettled              State = "SETTLED"
	StateExpired              State = "EXPIRED"
	StateCancelled            State = "CANCELLED"
)

func (s State) IsTerminal() bool {
	return s == StateSettled || s == StateExpired || s == StateCancelled
}

func (s State) IsAwaiting() bool {
	return s == StateAwaitingBoth || s == StateAwaitingInitiator || s == StateAwaitingCounterparty
}
