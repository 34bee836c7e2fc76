package port_persistence

import "context"

// UnitOfWork runs fn inside one storage transaction. Repository calls made
// with the context passed to fn join that transaction; any error from fn
// rolls the whole transaction back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
