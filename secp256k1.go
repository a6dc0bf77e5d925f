package s256

import (
	"math/big"
	"sync"
)

// secp256k1 domain parameters, see https://www.secg.org/sec2-v2.pdf.
const (
	// p = 2^256 - 2^32 - 977
	s256PrimeHex = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	s256OrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	s256GxHex    = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	s256GyHex    = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("s256: invalid hex constant " + s)
	}
	return v
}

// The curve constants are computed on first use and never written again.
// Each value has its own once so that building the generator, which needs
// the field, does not re-enter the initializer it is running in.
var (
	s256Field = sync.OnceValue(func() *PrimeField {
		return NewPrimeField(mustHex(s256PrimeHex))
	})

	s256OrderField = sync.OnceValue(func() *PrimeField {
		return NewPrimeField(mustHex(s256OrderHex))
	})

	s256B = sync.OnceValue(func() *big.Int {
		return big.NewInt(7)
	})

	s256HalfOrder = sync.OnceValue(func() *big.Int {
		return new(big.Int).Rsh(s256OrderField().p, 1)
	})

	s256Generator = sync.OnceValue(func() S256Point {
		g, err := NewPointFromInts[S256](mustHex(s256GxHex), mustHex(s256GyHex))
		if err != nil {
			panic("s256: generator is not on the curve: " + err.Error())
		}
		return g
	})
)

// S256 is the secp256k1 curve y^2 = x^3 + 7 over the field of order
// 2^256 - 2^32 - 977.
type S256 struct{}

// Params returns the base field of secp256k1.
func (S256) Params() *PrimeField {
	return s256Field()
}

// Coefficients returns a = 0 and b = 7.
func (S256) Coefficients() (a, b *big.Int) {
	return bigZero, s256B()
}

// S256Order is the field of integers modulo the order n of the secp256k1
// generator.  ECDSA scalars live here.
type S256Order struct{}

// Params returns the scalar field of secp256k1.
func (S256Order) Params() *PrimeField {
	return s256OrderField()
}

// S256Point is a point on secp256k1.
type S256Point = Point[S256]

// S256FieldElement is an element of the secp256k1 base field.
type S256FieldElement = FieldElement[S256]

// Generator returns the secp256k1 base point G.
func Generator() S256Point {
	return s256Generator()
}

// Order returns a copy of n, the order of G.
func Order() *big.Int {
	return s256OrderField().Prime()
}

// Prime returns a copy of p, the secp256k1 field prime.
func Prime() *big.Int {
	return s256Field().Prime()
}

// ScalarBaseMult returns k*G, with k reduced modulo n first.
func ScalarBaseMult(k *big.Int) S256Point {
	return Generator().ScalarMult(s256OrderField().Reduce(k))
}

// ScalarMult returns k*p on secp256k1, with k reduced modulo n first.
func ScalarMult(p S256Point, k *big.Int) S256Point {
	return p.ScalarMult(s256OrderField().Reduce(k))
}

// DecompressPoint returns the point on secp256k1 with the given x coordinate
// whose y coordinate has the requested parity.
//
// Because p = 3 mod 4, a square root of alpha = x^3 + 7 is
// alpha^((p+1)/4); the two roots are beta and p - beta and exactly one of
// them is odd.
func DecompressPoint(x S256FieldElement, odd bool) (S256Point, error) {
	alpha := x.Mul(x).Mul(x).Add(FieldElement[S256]{num: s256B()})
	beta, ok := alpha.Sqrt()
	if !ok {
		str := "invalid public key: x coordinate " + x.value().Text(16) + " is not on the curve"
		return S256Point{}, makeError(ErrPubKeyNotOnCurve, str)
	}
	if beta.IsOdd() != odd {
		beta = beta.Neg()
	}
	// alpha = 0 gives beta = 0 and there is no odd root.
	if beta.IsOdd() != odd {
		str := "invalid public key: no y coordinate with the requested parity"
		return S256Point{}, makeError(ErrPubKeyNotOnCurve, str)
	}
	return S256Point{x: x, y: beta, affine: true}, nil
}
