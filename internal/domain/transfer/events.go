package domain_transfer

import (
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
}

type TransferRequested struct {
	At                  time.Time
	RequestID           uuid.UUID
	Kind                Kind
	InitiatorPartyID    string
	CounterpartyPartyID string
	ExpiresAt           time.Time
}

func (e TransferRequested) EventName() string { return "transfer.requested" }

func (e TransferRequested) OccurredAt() time.Time { return e.At }

func (e TransferRequested) AggregateID() uuid.UUID { return e.RequestID }

type PartyConfirmed struct {
	At        time.Time
	RequestID uuid.UUID
	Role      Role
	PartyID   string
}

func (e PartyConfirmed) EventName() string { return "transfer.party_confirmed" }

func (e PartyConfirmed) OccurredAt() time.Time { return e.At }

func (e PartyConfirmed) AggregateID() uuid.UUID { return e.RequestID }

type TransferSettled struct {
	At        time.Time
	RequestID uuid.UUID
	Kind      Kind
}

func (e TransferSettled) EventName() string { return "transfer.settled" }

func (e TransferSettled) OccurredAt() time.Time { return e.At }

func (e TransferSettled) AggregateID() uuid.UUID { return e.RequestID }

type TransferExpired struct {
	At        time.Time
	RequestID uuid.UUID
}

func (e TransferExpired) EventName() string { return "transfer.expired" }

func (e TransferExpired) OccurredAt() time.Time { return e.At }

func (e TransferExpired) AggregateID() uuid.UUID { return e.RequestID }

type TransferCancelled struct {
	At        time.Time
	RequestID uuid.UUID
}

func (e TransferCancelled) EventName() string { return "transfer.cancelled" }

func (e TransferCancelled) OccurredAt() time.Time { return e.At }

func (e TransferCancelled) AggregateID() uuid.UUID { return e.RequestID }
