package domain_transfer

import "errors"

var (
	ErrInvalidRequestID  = errors.New("transfer: invalid request_id")
	ErrUnknownKind       = errors.New("transfer: unknown kind")
	ErrMissingParty      = errors.New("transfer: both party ids are required")
	ErrSameParty         = errors.New("transfer: initiator and counterparty must differ")
	ErrInvalidCode       = errors.New("transfer: confirmation code must be exactly 6 digits")
	ErrMissingLocation   = errors.New("transfer: location id is required for this kind")
	ErrSameLocation      = errors.New("transfer: source and destination locations must differ")
	ErrEmptyPayload      = errors.New("transfer: payload must have at least one line")
	ErrMissingProductID  = errors.New("transfer: payload line product_id is required")
	ErrZeroQuantity      = errors.New("transfer: payload line quantity must not be zero")
	ErrNegativeQuantity  = errors.New("transfer: payload line quantity must be positive for this kind")
	ErrNonPositiveTTL    = errors.New("transfer: ttl must be positive")
	ErrAlreadyTerminal   = errors.New("transfer: request already reached a terminal state")
	ErrNotEligible       = errors.New("transfer: both confirmations are required before settlement")
	ErrNotPastDeadline   = errors.New("transfer: request deadline has not passed")
)
