package port_transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actor is the already-authenticated caller identity supplied by the
// surrounding session service: who is acting and their role in the system.
type Actor struct {
	PartyID string
	Role    string
}

// System roles known to the authorization rules.
const (
	SystemRoleWarehouse = "warehouse"
	SystemRoleManager   = "manager"
	SystemRoleSalesRep  = "sales_rep"
)

type TransferLineView struct {
	ProductID string
	Quantity  decimal.Decimal
	Unit      string
}

// TransferView is the read-only projection of a request for one viewer.
// DisplayCode is the code issued to the viewing party, the one it reads
// aloud to the counterparty; the code the viewer must type is never
// included. Viewers that are not bound to the request get no code at all.
type TransferView struct {
	RequestID             string
	Kind                  string
	State                 string
	InitiatorPartyID      string
	CounterpartyPartyID   string
	SourceLocationID      string
	DestinationLocationID string
	Payload               []TransferLineView
	DisplayCode           string
	InitiatorConfirmed    bool
	CounterpartyConfirmed bool
	CreatedAt             time.Time
	ExpiresAt             time.Time
	SettledAt             *time.Time
}
