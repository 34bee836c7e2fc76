package impl_platform

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeSpace = 1000000 // 000000–999999

// OTPPairGenerator draws two independent 6-digit codes from crypto/rand.
// The codes are the only proof of physical presence in the handover
// protocol, so a predictable source is a security defect, not a
// performance trade-off. The pair is not required to be distinct: the two
// codes gate different parties and are compared against different fields.
type OTPPairGenerator struct{}

func NewOTPPairGenerator() *OTPPairGenerator {
	return &OTPPairGenerator{}
}

func (g *OTPPairGenerator) Pair() (string, string, error) {
	initiatorCode, err := g.code()
	if err != nil {
		return "", "", err
	}

	counterpartyCode, err := g.code()
	if err != nil {
		return "", "", err
	}

	return initiatorCode, counterpartyCode, nil
}

func (g *OTPPairGenerator) code() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("draw confirmation code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
