package port_transfer

import "context"

type CancelTransferInput struct {
	RequestID   string
	RequestedBy Actor
}

type CancelTransferOutput struct {
	Outcome string
	State   string
}

type CancelTransferUseCase interface {
	Execute(ctx context.Context, input CancelTransferInput) (CancelTransferOutput, error)
}
