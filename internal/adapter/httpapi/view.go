package httpapi

import (
	"time"

	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

type transferLineJSON struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
}

type transferViewJSON struct {
	RequestID             string             `json:"request_id"`
	Kind                  string             `json:"kind"`
	State                 string             `json:"state"`
	InitiatorPartyID      string             `json:"initiator_party_id"`
	CounterpartyPartyID   string             `json:"counterparty_party_id"`
	SourceLocationID      string             `json:"source_location_id"`
	DestinationLocationID string             `json:"destination_location_id,omitempty"`
	Payload               []transferLineJSON `json:"payload"`
	DisplayCode           string             `json:"display_code,omitempty"`
	InitiatorConfirmed    bool               `json:"initiator_confirmed"`
	CounterpartyConfirmed bool               `json:"counterparty_confirmed"`
	CreatedAt             time.Time          `json:"created_at"`
	ExpiresAt             time.Time          `json:"expires_at"`
	SettledAt             *time.Time         `json:"settled_at,omitempty"`
}

func viewToJSON(view port_transfer.TransferView) transferViewJSON {
	lines := make([]transferLineJSON, 0, len(view.Payload))
	for _, line := range view.Payload {
		lines = append(lines, transferLineJSON{
			ProductID: line.ProductID,
			Quantity:  line.Quantity.String(),
			Unit:      line.Unit,
		})
	}

	return transferViewJSON{
		RequestID:             view.RequestID,
		Kind:                  view.Kind,
		State:                 view.State,
		InitiatorPartyID:      view.InitiatorPartyID,
		CounterpartyPartyID:   view.CounterpartyPartyID,
		SourceLocationID:      view.SourceLocationID,
		DestinationLocationID: view.DestinationLocationID,
		Payload:               lines,
		DisplayCode:           view.DisplayCode,
		InitiatorConfirmed:    view.InitiatorConfirmed,
		CounterpartyConfirmed: view.CounterpartyConfirmed,
		CreatedAt:             view.CreatedAt,
		ExpiresAt:             view.ExpiresAt,
		SettledAt:             view.SettledAt,
	}
}
