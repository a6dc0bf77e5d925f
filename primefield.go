package s256

import (
	"fmt"
	"math/big"
)

var (
	bigZero  = big.NewInt(0)
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
)

// PrimeField performs arithmetic modulo a fixed odd prime p.
//
// All results are reduced into [0, p).  Intermediate values are held in
// arbitrary precision integers so that, for example, the product of two
// 256-bit operands is computed in full before it is reduced.  Operands are
// never modified.
type PrimeField struct {
	p        *big.Int
	pMinus1  *big.Int
	pMinus2  *big.Int
	sqrtExp  *big.Int // (p+1)/4, only set when p = 3 mod 4
	byteSize int
}

// NewPrimeField returns the field of integers modulo p.
//
// It panics if p is not an odd prime, since a field with such a modulus can
// only come from a programming error.
func NewPrimeField(p *big.Int) *PrimeField {
	if p == nil || p.Cmp(bigTwo) <= 0 || p.Bit(0) == 0 || !p.ProbablyPrime(20) {
		panic(fmt.Sprintf("s256: modulus %v is not an odd prime", p))
	}
	f := &PrimeField{
		p:        new(big.Int).Set(p),
		pMinus1:  new(big.Int).Sub(p, bigOne),
		pMinus2:  new(big.Int).Sub(p, bigTwo),
		byteSize: (p.BitLen() + 7) / 8,
	}
	if new(big.Int).Mod(p, bigFour).Cmp(bigThree) == 0 {
		f.sqrtExp = new(big.Int).Add(p, bigOne)
		f.sqrtExp.Rsh(f.sqrtExp, 2)
	}
	return f
}

// Prime returns a copy of the field modulus.
func (f *PrimeField) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// ByteSize is the number of bytes needed to hold any element of the field.
func (f *PrimeField) ByteSize() int {
	return f.byteSize
}

// Contains reports whether 0 <= a < p.
func (f *PrimeField) Contains(a *big.Int) bool {
	return a.Sign() >= 0 && a.Cmp(f.p) < 0
}

// Reduce returns a mod p in [0, p), for any a including negative values.
func (f *PrimeField) Reduce(a *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, the result is never negative.
	return new(big.Int).Mod(a, f.p)
}

// Add returns a + b mod p.
func (f *PrimeField) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

// Sub returns a - b mod p.
func (f *PrimeField) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

// Neg returns -a mod p.
func (f *PrimeField) Neg(a *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, f.p)
}

// Mul returns a * b mod p.
func (f *PrimeField) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

// Pow returns a^e mod p.
//
// A negative exponent is replaced by e mod (p-1), which by Fermat's little
// theorem gives the same result for every a that is not a multiple of p.
func (f *PrimeField) Pow(a, e *big.Int) *big.Int {
	exp := e
	if e.Sign() < 0 {
		exp = new(big.Int).Mod(e, f.pMinus1)
	}
	return f.exp(f.Reduce(a), exp)
}

// exp is right-to-left binary exponentiation of a base already in [0, p).
func (f *PrimeField) exp(base, e *big.Int) *big.Int {
	result := big.NewInt(1)
	sq := new(big.Int).Set(base)
	tmp := new(big.Int)
	for i, n := 0, e.BitLen(); i < n; i++ {
		if e.Bit(i) == 1 {
			tmp.Mul(result, sq)
			result.Mod(tmp, f.p)
		}
		if i+1 < n {
			tmp.Mul(sq, sq)
			sq.Mod(tmp, f.p)
		}
	}
	return result.Mod(result, f.p)
}

// Inverse returns a^-1 mod p, computed as a^(p-2).
//
// It panics when a = 0 mod p, which has no inverse.
func (f *PrimeField) Inverse(a *big.Int) *big.Int {
	r := f.Reduce(a)
	if r.Sign() == 0 {
		panic("s256: inverse of zero")
	}
	return f.exp(r, f.pMinus2)
}

// Div returns a / b mod p, computed as a * b^(p-2).
//
// It panics when b = 0 mod p.
func (f *PrimeField) Div(a, b *big.Int) *big.Int {
	return f.Mul(a, f.Inverse(b))
}

// Sqrt returns a square root of a mod p and whether a actually is a square.
//
// Only primes with p = 3 mod 4 are supported, for which the root is
// a^((p+1)/4).  Sqrt panics for any other prime.
func (f *PrimeField) Sqrt(a *big.Int) (*big.Int, bool) {
	if f.sqrtExp == nil {
		panic("s256: square root requires a prime p = 3 mod 4")
	}
	r := f.Reduce(a)
	root := f.exp(r, f.sqrtExp)
	return root, f.Mul(root, root).Cmp(r) == 0
}

// IsSquare reports whether a is a quadratic residue mod p (zero included).
func (f *PrimeField) IsSquare(a *big.Int) bool {
	r := f.Reduce(a)
	if r.Sign() == 0 {
		return true
	}
	// Euler's criterion: a^((p-1)/2) = 1 for residues.
	e := new(big.Int).Rsh(f.pMinus1, 1)
	return f.exp(r, e).Cmp(bigOne) == 0
}
