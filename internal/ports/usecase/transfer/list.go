package port_transfer

import "context"

type ListPendingInput struct {
	PartyID     string
	RequestedBy Actor
}

type ListPendingOutput struct {
	Transfers []TransferView
}

type ListPendingUseCase interface {
	Execute(ctx context.Context, input ListPendingInput) (ListPendingOutput, error)
}
