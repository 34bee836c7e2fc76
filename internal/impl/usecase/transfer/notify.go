package impl_transfer

import (
	"context"
	"log"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
)

// dispatchNotifications forwards lifecycle events to the notifier after the
// owning transaction committed. Best-effort: failures are logged and
// swallowed, never surfaced to the caller.
func dispatchNotifications(ctx context.Context, notifier messaging.Notifier, events []domain_transfer.DomainEvent) {
	for _, ev := range events {
		n, ok := toNotification(ev)
		if !ok {
			continue
		}

		if err := notifier.Notify(ctx, n); err != nil {
			log.Printf("transfer: notify %s for %s failed: %v", ev.EventName(), ev.AggregateID(), err)
		}
	}
}

func toNotification(ev domain_transfer.DomainEvent) (messaging.Notification, bool) {
	switch e := ev.(type) {
	case domain_transfer.TransferRequested:
		return messaging.Notification{
			Event:               e.EventName(),
			RequestID:           e.RequestID.String(),
			Kind:                string(e.Kind),
			InitiatorPartyID:    e.InitiatorPartyID,
			CounterpartyPartyID: e.CounterpartyPartyID,
			OccurredAt:          e.At,
		}, true
	case domain_transfer.TransferSettled:
		return messaging.Notification{
			Event:      e.EventName(),
			RequestID:  e.RequestID.String(),
			Kind:       string(e.Kind),
			OccurredAt: e.At,
		}, true
	case domain_transfer.TransferExpired:
		return messaging.Notification{
			Event:      e.EventName(),
			RequestID:  e.RequestID.String(),
			OccurredAt: e.At,
		}, true
	case domain_transfer.TransferCancelled:
		return messaging.Notification{
			Event:      e.EventName(),
			RequestID:  e.RequestID.String(),
			OccurredAt: e.At,
		}, true
	}
	// Single-party confirmations stay internal.
	return messaging.Notification{}, false
}
