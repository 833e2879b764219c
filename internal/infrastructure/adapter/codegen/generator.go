package codegen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// RewardAlphabet omits characters that are easy to misread (0/O, 1/I)
const RewardAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	rewardGroupLength = 5
	rewardGroups      = 2
	maxNumericDigits  = 18
)

// ErrInvalidDigits is returned for a numeric code length outside 1..18
var ErrInvalidDigits = errors.New("numeric code length must be between 1 and 18")

// Generator produces codes from crypto/rand
type Generator struct {
	alphabet string
}

// NewGenerator creates a Generator using RewardAlphabet
func NewGenerator() *Generator {
	return &Generator{alphabet: RewardAlphabet}
}

// RewardCode returns a code shaped like K7QX2-MPA9D
func (g *Generator) RewardCode() (string, error) {
	var b strings.Builder
	b.Grow(rewardGroups*rewardGroupLength + rewardGroups - 1)

	limit := big.NewInt(int64(len(g.alphabet)))
	for group := 0; group < rewardGroups; group++ {
		if group > 0 {
			b.WriteByte('-')
		}
		for i := 0; i < rewardGroupLength; i++ {
			n, err := rand.Int(rand.Reader, limit)
			if err != nil {
				return "", fmt.Errorf("generate reward code: %w", err)
			}
			b.WriteByte(g.alphabet[n.Int64()])
		}
	}
	return b.String(), nil
}

// NumericCode returns a uniformly random zero-padded decimal code
func (g *Generator) NumericCode(digits int) (string, error) {
	if digits <= 0 || digits > maxNumericDigits {
		return "", ErrInvalidDigits
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate numeric code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
