package impl_transfer

import "errors"

var (
	ErrUnauthorized   = errors.New("transfer: caller is not allowed to perform this action")
	ErrInvalidPayload = errors.New("transfer: invalid transfer request")
	ErrInvalidRole    = errors.New("transfer: role must be INITIATOR or COUNTERPARTY")
)

// errSettlementConflict aborts the confirmation transaction so the second
// confirmation rolls back together with the failed stock writes.
var errSettlementConflict = errors.New("transfer: settlement conflict")
