package randomgenerator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
)

type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ (contract.IRandomGenerator) = (*RandomGenerator)(nil)

// GenerateNumericCode returns a uniformly random string of decimal digits,
// leading zeros included.
func (rg *RandomGenerator) GenerateNumericCode(digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("invalid code length %d", digits)
	}
	var sb strings.Builder
	sb.Grow(digits)
	ten := big.NewInt(10)
	for i := 0; i < digits; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}
