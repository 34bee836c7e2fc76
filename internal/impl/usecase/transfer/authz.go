package impl_transfer

import (
	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

// canInitiate encodes who may start each kind: warehouse staff and managers
// open handovers and van loadings, only managers open stock adjustments.
func canInitiate(actor port_transfer.Actor, kind domain_transfer.Kind) bool {
	switch kind {
	case domain_transfer.KindOrderHandover, domain_transfer.KindVanLoading:
		return actor.Role == port_transfer.SystemRoleWarehouse || actor.Role == port_transfer.SystemRoleManager
	case domain_transfer.KindStockAdjustment:
		return actor.Role == port_transfer.SystemRoleManager
	}
	return false
}

// actsForParty reports whether the actor may act on behalf of the given
// party: the party itself, or a manager.
func actsForParty(actor port_transfer.Actor, partyID string) bool {
	return actor.PartyID == partyID || actor.Role == port_transfer.SystemRoleManager
}
