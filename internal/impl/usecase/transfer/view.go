package impl_transfer

import (
	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

// buildView projects a request for one viewer. The viewer only ever sees
// the code issued to itself (the one it reads aloud); the code it must type
// back is withheld so a single screen can never complete both sides.
func buildView(t *domain_transfer.TransferRequest, viewerPartyID string) port_transfer.TransferView {
	lines := make([]port_transfer.TransferLineView, 0, len(t.Payload()))
	for _, line := range t.Payload() {
		lines = append(lines, port_transfer.TransferLineView{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Unit:      line.Unit,
		})
	}

	view := port_transfer.TransferView{
		RequestID:             t.ID().String(),
		Kind:                  string(t.Kind()),
		State:                 string(t.State()),
		InitiatorPartyID:      t.InitiatorPartyID(),
		CounterpartyPartyID:   t.CounterpartyPartyID(),
		SourceLocationID:      t.SourceLocationID(),
		DestinationLocationID: t.DestinationLocationID(),
		Payload:               lines,
		InitiatorConfirmed:    t.InitiatorConfirmedAt() != nil,
		CounterpartyConfirmed: t.CounterpartyConfirmedAt() != nil,
		CreatedAt:             t.CreatedAt(),
		ExpiresAt:             t.ExpiresAt(),
		SettledAt:             t.SettledAt(),
	}

	if role, ok := t.RoleForParty(viewerPartyID); ok {
		view.DisplayCode = t.CodeIssuedTo(role)
	}

	return view
}
