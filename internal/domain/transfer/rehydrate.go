package domain_transfer

import (
	"time"

	"github.com/google/uuid"
)

// RehydrateParams carries a persisted snapshot back into an aggregate.
// No validation and no events: the stored record is the source of truth.
type RehydrateParams struct {
	RequestID               uuid.UUID
	Kind                    Kind
	InitiatorPartyID        string
	CounterpartyPartyID     string
	InitiatorCode           string
	CounterpartyCode        string
	SourceLocationID        string
	DestinationLocationID   string
	Payload                 []PayloadLine
	InitiatorConfirmedAt    *time.Time
	CounterpartyConfirmedAt *time.Time
	State                   State
	CreatedAt               time.Time
	ExpiresAt               time.Time
	SettledAt               *time.Time
}

func Rehydrate(p RehydrateParams) *TransferRequest {
	payload := make([]PayloadLine, len(p.Payload))
	copy(payload, p.Payload)

	return &TransferRequest{
		id:                      p.RequestID,
		kind:                    p.Kind,
		initiatorPartyID:        p.InitiatorPartyID,
		counterpartyPartyID:     p.CounterpartyPartyID,
		initiatorCode:           p.InitiatorCode,
		counterpartyCode:        p.CounterpartyCode,
		sourceLocationID:        p.SourceLocationID,
		destinationLocationID:   p.DestinationLocationID,
		payload:                 payload,
		initiatorConfirmedAt:    p.InitiatorConfirmedAt,
		counterpartyConfirmedAt: p.CounterpartyConfirmedAt,
		state:                   p.State,
		createdAt:               p.CreatedAt,
		expiresAt:               p.ExpiresAt,
		settledAt:               p.SettledAt,
	}
}
