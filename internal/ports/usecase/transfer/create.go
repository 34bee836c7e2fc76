package port_transfer

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransferLineInput struct {
	ProductID string
	Quantity  decimal.Decimal
	Unit      string
}

type CreateTransferInput struct {
	Kind                  string
	InitiatorPartyID      string
	CounterpartyPartyID   string
	SourceLocationID      string
	DestinationLocationID string
	Payload               []TransferLineInput
	RequestedBy           Actor
}

type CreateTransferOutput struct {
	Transfer TransferView
}

type CreateTransferUseCase interface {
	Execute(ctx context.Context, input CreateTransferInput) (CreateTransferOutput, error)
}
