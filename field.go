package s256

import (
	"fmt"
	"math/big"
)

// Field describes a prime field at the type level.
//
// Implementations are empty struct types whose Params method returns the
// same *PrimeField for the lifetime of the process.  Using the descriptor as a
// type parameter makes the modulus part of an element's type, so adding an
// element of one field to an element of another does not compile.
type Field interface {
	Params() *PrimeField
}

// FieldElement is an immutable element of the prime field described by F.
//
// The zero value is the element 0.  Every method returns a new element and
// leaves its receiver and arguments untouched.
type FieldElement[F Field] struct {
	num *big.Int
}

func fieldOf[F Field]() *PrimeField {
	var f F
	return f.Params()
}

// NewFieldElement returns num as an element of F.  It fails with
// ErrFieldOverflow when num is not in [0, p).
func NewFieldElement[F Field](num *big.Int) (FieldElement[F], error) {
	f := fieldOf[F]()
	if num == nil || !f.Contains(num) {
		str := fmt.Sprintf("value %v is not in the field of order %v", num, f.p)
		return FieldElement[F]{}, makeError(ErrFieldOverflow, str)
	}
	return FieldElement[F]{num: new(big.Int).Set(num)}, nil
}

// FieldElementFromInt returns num reduced modulo the prime of F.  Negative
// values are accepted.
func FieldElementFromInt[F Field](num *big.Int) FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Reduce(num)}
}

// FieldElementFromInt64 is a convenience wrapper around FieldElementFromInt.
func FieldElementFromInt64[F Field](num int64) FieldElement[F] {
	return FieldElementFromInt[F](big.NewInt(num))
}

// FieldElementFromBytes interprets b as a big-endian unsigned integer and
// returns it as an element of F, failing with ErrFieldOverflow when it is not
// below the prime.
func FieldElementFromBytes[F Field](b []byte) (FieldElement[F], error) {
	return NewFieldElement[F](new(big.Int).SetBytes(b))
}

func (e FieldElement[F]) value() *big.Int {
	if e.num == nil {
		return bigZero
	}
	return e.num
}

// Int returns a copy of the element's value in [0, p).
func (e FieldElement[F]) Int() *big.Int {
	return new(big.Int).Set(e.value())
}

// Prime returns the modulus of the element's field.
func (e FieldElement[F]) Prime() *big.Int {
	return fieldOf[F]().Prime()
}

// Bytes returns the big-endian value padded to the byte size of the field.
func (e FieldElement[F]) Bytes() []byte {
	f := fieldOf[F]()
	return e.value().FillBytes(make([]byte, f.byteSize))
}

// Add returns e + o.
func (e FieldElement[F]) Add(o FieldElement[F]) FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Add(e.value(), o.value())}
}

// Sub returns e - o.
func (e FieldElement[F]) Sub(o FieldElement[F]) FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Sub(e.value(), o.value())}
}

// Mul returns e * o.
func (e FieldElement[F]) Mul(o FieldElement[F]) FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Mul(e.value(), o.value())}
}

// MulInt returns e * k for an integer k, which is reduced first.
func (e FieldElement[F]) MulInt(k int64) FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Mul(e.value(), big.NewInt(k))}
}

// Neg returns -e.
func (e FieldElement[F]) Neg() FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Neg(e.value())}
}

// Pow returns e^exp.  Negative exponents are allowed.
func (e FieldElement[F]) Pow(exp *big.Int) FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Pow(e.value(), exp)}
}

// PowInt is Pow for small exponents.
func (e FieldElement[F]) PowInt(exp int64) FieldElement[F] {
	return e.Pow(big.NewInt(exp))
}

// Inverse returns e^-1.  It panics when e is zero.
func (e FieldElement[F]) Inverse() FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Inverse(e.value())}
}

// Div returns e / o.  It panics when o is zero.
func (e FieldElement[F]) Div(o FieldElement[F]) FieldElement[F] {
	return FieldElement[F]{num: fieldOf[F]().Div(e.value(), o.value())}
}

// Sqrt returns a square root of e and whether one exists.  See
// PrimeField.Sqrt for the restriction on the prime.
func (e FieldElement[F]) Sqrt() (FieldElement[F], bool) {
	r, ok := fieldOf[F]().Sqrt(e.value())
	return FieldElement[F]{num: r}, ok
}

// IsZero reports whether e is 0.
func (e FieldElement[F]) IsZero() bool {
	return e.value().Sign() == 0
}

// IsOdd reports whether the value of e is odd.
func (e FieldElement[F]) IsOdd() bool {
	return e.value().Bit(0) == 1
}

// Equal reports whether e and o are the same element.
func (e FieldElement[F]) Equal(o FieldElement[F]) bool {
	return e.value().Cmp(o.value()) == 0
}

// String returns the element in the form FieldElement_num(prime).
func (e FieldElement[F]) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", e.value(), fieldOf[F]().p)
}
