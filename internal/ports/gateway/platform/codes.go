package port_platform

// CodePairGenerator issues the two independent confirmation codes for a new
// transfer request. Codes are fixed-width numeric strings drawn from a
// cryptographically sound source; the pair is not required to be distinct.
type CodePairGenerator interface {
	Pair() (initiatorCode, counterpartyCode string, err error)
}
