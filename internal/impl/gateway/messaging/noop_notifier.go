package impl_messaging

import (
	"context"

	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
)

// NoopNotifier is used when no dispatcher is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) Notify(context.Context, messaging.Notification) error {
	return nil
}
