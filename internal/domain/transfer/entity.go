package domain_transfer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransferRequest is one proposed, OTP-gated inventory movement between two
// parties. Custody changes only after both parties confirm: each party is
// issued a code, reads it aloud to the other party, and confirms by typing
// the code it received. A request never renegotiates its payload and is
// retained forever once it reaches a terminal state.
type TransferRequest struct {
	id   uuid.UUID
	kind Kind

	initiatorPartyID    string
	counterpartyPartyID string

	// initiatorCode is displayed to the initiator and typed back by the
	// counterparty; counterpartyCode is the mirror image.
	initiatorCode    string
	counterpartyCode string

	sourceLocationID      string
	destinationLocationID string
	payload               []PayloadLine

	initiatorConfirmedAt    *time.Time
	counterpartyConfirmedAt *time.Time

	state     State
	createdAt time.Time
	expiresAt time.Time
	settledAt *time.Time

	pendingEvents []DomainEvent
}

type NewParams struct {
	RequestID             uuid.UUID
	Kind                  Kind
	InitiatorPartyID      string
	CounterpartyPartyID   string
	InitiatorCode         string
	CounterpartyCode      string
	SourceLocationID      string
	DestinationLocationID string
	Payload               []PayloadLine
	TTL                   time.Duration
	Now                   time.Time
}

func New(p NewParams) (*TransferRequest, error) {
	if p.RequestID == uuid.Nil {
		return nil, ErrInvalidRequestID
	}

	if !p.Kind.IsValid() {
		return nil, ErrUnknownKind
	}

	initiator := strings.TrimSpace(p.InitiatorPartyID)
	counterparty := strings.TrimSpace(p.CounterpartyPartyID)

	if initiator == "" || counterparty == "" {
		return nil, ErrMissingParty
	}

	if initiator == counterparty {
		return nil, ErrSameParty
	}

	if !isValidCode(p.InitiatorCode) || !isValidCode(p.CounterpartyCode) {
		return nil, ErrInvalidCode
	}

	source := strings.TrimSpace(p.SourceLocationID)
	destination := strings.TrimSpace(p.DestinationLocationID)

	if source == "" {
		return nil, ErrMissingLocation
	}

	if p.Kind.MovesBetweenLocations() {
		if destination == "" {
			return nil, ErrMissingLocation
		}
		if source == destination {
			return nil, ErrSameLocation
		}
	}

	if err := validatePayload(p.Kind, p.Payload); err != nil {
		return nil, err
	}

	if p.TTL <= 0 {
		return nil, ErrNonPositiveTTL
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	payload := make([]PayloadLine, len(p.Payload))
	copy(payload, p.Payload)

	t := &TransferRequest{
		id:                    p.RequestID,
		kind:                  p.Kind,
		initiatorPartyID:      initiator,
		counterpartyPartyID:   counterparty,
		initiatorCode:         p.InitiatorCode,
		counterpartyCode:      p.CounterpartyCode,
		sourceLocationID:      source,
		destinationLocationID: destination,
		payload:               payload,
		state:                 StateAwaitingBoth,
		createdAt:             p.Now,
		expiresAt:             p.Now.Add(p.TTL),
	}

	t.raise(TransferRequested{
		At:                  p.Now,
		RequestID:           t.id,
		Kind:                t.kind,
		InitiatorPartyID:    t.initiatorPartyID,
		CounterpartyPartyID: t.counterpartyPartyID,
		ExpiresAt:           t.expiresAt,
	})

	return t, nil
}

// Confirm registers one party's confirmation. A party of the given role must
// submit the code issued to the other role; exact string match, leading
// zeros significant. A mismatch never discloses whether the caller's own
// side was already confirmed.
//
// Confirm applies lazy expiry: a request read past its deadline flips to
// EXPIRED before anything else is considered.
func (t *TransferRequest) Confirm(role Role, code string, now time.Time) ConfirmationOutcome {
	if !role.IsValid() {
		return OutcomeCodeMismatch
	}

	switch t.state {
	case StateCancelled:
		return OutcomeCancelled
	case StateExpired:
		return OutcomeExpired
	}

	// Confirmations must land strictly before the deadline.
	if t.state != StateSettled && !now.Before(t.expiresAt) {
		t.expire(now)
		return OutcomeExpired
	}

	// Code check comes before the already-confirmed check: the response to
	// an incorrect code must not reveal whether the caller's own side was
	// previously accepted.
	if code != t.codeTypedBy(role) {
		return OutcomeCodeMismatch
	}

	if t.state == StateSettled {
		return OutcomeAlreadySettled
	}

	if t.confirmedAt(role) != nil {
		// Codes are single-use per side: a correct resubmission after
		// confirming is an idempotent no-op, never a second settlement.
		return OutcomeAlreadyConfirmed
	}

	at := now
	t.setConfirmedAt(role, at)

	t.raise(PartyConfirmed{
		At:        at,
		RequestID: t.id,
		Role:      role,
		PartyID:   t.PartyForRole(role),
	})

	if t.initiatorConfirmedAt != nil && t.counterpartyConfirmedAt != nil {
		return OutcomeSettlementEligible
	}

	// The confirming role's own code is now the outstanding one.
	if role == RoleInitiator {
		t.state = StateAwaitingInitiator
	} else {
		t.state = StateAwaitingCounterparty
	}

	return OutcomeConfirmed
}

// MarkSettled finalizes the request after the settlement transaction applied
// the stock delta. Callers must have observed OutcomeSettlementEligible.
func (t *TransferRequest) MarkSettled(now time.Time) error {
	if t.state.IsTerminal() {
		return ErrAlreadyTerminal
	}

	if t.initiatorConfirmedAt == nil || t.counterpartyConfirmedAt == nil {
		return ErrNotEligible
	}

	if !t.initiatorConfirmedAt.Before(t.expiresAt) || !t.counterpartyConfirmedAt.Before(t.expiresAt) {
		return ErrNotEligible
	}

	t.state = StateSettled
	t.settledAt = &now

	t.raise(TransferSettled{At: now, RequestID: t.id, Kind: t.kind})

	return nil
}

// MarkExpired is the reaper-side transition. It refuses to clobber terminal
// states and refuses to fire before the deadline.
func (t *TransferRequest) MarkExpired(now time.Time) error {
	if t.state == StateExpired {
		return nil
	}

	if t.state.IsTerminal() {
		return ErrAlreadyTerminal
	}

	if now.Before(t.expiresAt) {
		return ErrNotPastDeadline
	}

	t.expire(now)

	return nil
}

// Cancel terminates a non-terminal request. Cancelling an already cancelled
// request is a no-op success; settled and expired requests cannot be
// cancelled.
func (t *TransferRequest) Cancel(now time.Time) error {
	if t.state == StateCancelled {
		return nil
	}

	if t.state.IsTerminal() {
		return ErrAlreadyTerminal
	}

	t.state = StateCancelled

	t.raise(TransferCancelled{At: now, RequestID: t.id})

	return nil
}

// PastDeadline reports whether the request can no longer be confirmed.
func (t *TransferRequest) PastDeadline(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

func (t *TransferRequest) PartyForRole(role Role) string {
	if role == RoleInitiator {
		return t.initiatorPartyID
	}
	return t.counterpartyPartyID
}

// RoleForParty resolves which side a party confirms, or false when the party
// is not bound to this request.
func (t *TransferRequest) RoleForParty(partyID string) (Role, bool) {
	switch partyID {
	case t.initiatorPartyID:
		return RoleInitiator, true
	case t.counterpartyPartyID:
		return RoleCounterparty, true
	}
	return "", false
}

// CodeIssuedTo returns the code displayed to the given role, the one that
// role reads aloud to the other party.
func (t *TransferRequest) CodeIssuedTo(role Role) string {
	if role == RoleInitiator {
		return t.initiatorCode
	}
	return t.counterpartyCode
}

// codeTypedBy is the code the given role must submit: the other role's
// issued code.
func (t *TransferRequest) codeTypedBy(role Role) string {
	return t.CodeIssuedTo(role.Other())
}

func (t *TransferRequest) confirmedAt(role Role) *time.Time {
	if role == RoleInitiator {
		return t.initiatorConfirmedAt
	}
	return t.counterpartyConfirmedAt
}

func (t *TransferRequest) setConfirmedAt(role Role, at time.Time) {
	if role == RoleInitiator {
		t.initiatorConfirmedAt = &at
	} else {
		t.counterpartyConfirmedAt = &at
	}
}

func (t *TransferRequest) expire(now time.Time) {
	t.state = StateExpired
	t.raise(TransferExpired{At: now, RequestID: t.id})
}

func (t *TransferRequest) PullEvents() []DomainEvent {
	if len(t.pendingEvents) == 0 {
		return nil
	}

	ev := make([]DomainEvent, len(t.pendingEvents))
	copy(ev, t.pendingEvents)

	t.pendingEvents = t.pendingEvents[:0]

	return ev
}

func (t *TransferRequest) raise(event DomainEvent) {
	t.pendingEvents = append(t.pendingEvents, event)
}

func isValidCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (t *TransferRequest) ID() uuid.UUID { return t.id }

func (t *TransferRequest) Kind() Kind { return t.kind }

func (t *TransferRequest) InitiatorPartyID() string { return t.initiatorPartyID }

func (t *TransferRequest) CounterpartyPartyID() string { return t.counterpartyPartyID }

func (t *TransferRequest) SourceLocationID() string { return t.sourceLocationID }

func (t *TransferRequest) DestinationLocationID() string { return t.destinationLocationID }

func (t *TransferRequest) Payload() []PayloadLine {
	lines := make([]PayloadLine, len(t.payload))
	copy(lines, t.payload)
	return lines
}

func (t *TransferRequest) InitiatorConfirmedAt() *time.Time { return t.initiatorConfirmedAt }

func (t *TransferRequest) CounterpartyConfirmedAt() *time.Time { return t.counterpartyConfirmedAt }

func (t *TransferRequest) State() State { return t.state }

func (t *TransferRequest) CreatedAt() time.Time { return t.createdAt }

func (t *TransferRequest) ExpiresAt() time.Time { return t.expiresAt }

func (t *TransferRequest) SettledAt() *time.Time { return t.settledAt }
