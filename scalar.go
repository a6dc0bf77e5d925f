package s256

import (
	"fmt"
	"math/big"
)

// Scalar is an integer modulo the secp256k1 group order n.
type Scalar = FieldElement[S256Order]

// NewScalar returns k mod n.
func NewScalar(k *big.Int) Scalar {
	return FieldElementFromInt[S256Order](k)
}

// ScalarFromBytes interprets b as a big-endian integer and reduces it mod n.
func ScalarFromBytes(b []byte) Scalar {
	return NewScalar(new(big.Int).SetBytes(b))
}

// HashToScalar converts a 32-byte hash to the message scalar z used by Sign
// and Verify.
func HashToScalar(hash []byte) (*big.Int, error) {
	if len(hash) != 32 {
		str := fmt.Sprintf("malformed hash: invalid length: %d", len(hash))
		return nil, makeError(ErrHashInvalidLen, str)
	}
	return new(big.Int).SetBytes(hash), nil
}

// inScalarRange reports whether 1 <= k <= n-1.
func inScalarRange(k *big.Int) bool {
	return k != nil && k.Sign() > 0 && s256OrderField().Contains(k)
}

// isHighS reports whether s > n/2.
func isHighS(s *big.Int) bool {
	return s.Cmp(s256HalfOrder()) > 0
}
