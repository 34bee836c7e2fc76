package messaging

import (
	"context"
	"time"
)

// Notification is the fire-and-forget message emitted on request creation
// and on terminal transitions. Delivery is best-effort: a failed notify must
// never block or fail the protocol.
type Notification struct {
	Event               string    `json:"event"`
	RequestID           string    `json:"request_id"`
	Kind                string    `json:"kind,omitempty"`
	InitiatorPartyID    string    `json:"initiator_party_id,omitempty"`
	CounterpartyPartyID string    `json:"counterparty_party_id,omitempty"`
	OccurredAt          time.Time `json:"occurred_at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
