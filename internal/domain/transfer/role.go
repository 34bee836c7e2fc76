package domain_transfer

// Role identifies which side of a transfer request a party confirms.
type Role string

const (
	RoleInitiator    Role = "INITIATOR"
	RoleCounterparty Role = "COUNTERPARTY"
)

func (r Role) IsValid() bool {
	return r == RoleInitiator || r == RoleCounterparty
}

func (r Role) Other() Role {
	if r == RoleInitiator {
		return RoleCounterparty
	}
	return RoleInitiator
}
