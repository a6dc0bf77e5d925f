package s256

import (
	"fmt"
	"math/big"
)

// Curve describes a short Weierstrass curve y^2 = x^3 + ax + b over the prime
// field it embeds.  Like Field, implementations are empty descriptor types, so
// two points can only be combined when they have the same curve type.
type Curve interface {
	Field

	// Coefficients returns a and b.  The returned values must be reduced
	// modulo the field prime and must not be modified by the caller.
	Coefficients() (a, b *big.Int)
}

// Point is an immutable point on the curve described by C: either the point
// at infinity or an affine point (x, y) that satisfies the curve equation.
//
// The zero value is the point at infinity.
type Point[C Curve] struct {
	x, y   FieldElement[C]
	affine bool
}

func coefficients[C Curve]() (a, b FieldElement[C]) {
	var c C
	ca, cb := c.Coefficients()
	return FieldElement[C]{num: ca}, FieldElement[C]{num: cb}
}

// onCurve reports whether y^2 = x^3 + ax + b.
func onCurve[C Curve](x, y FieldElement[C]) bool {
	a, b := coefficients[C]()
	left := y.Mul(y)
	right := x.Mul(x).Mul(x).Add(a.Mul(x)).Add(b)
	return left.Equal(right)
}

// NewPoint returns the affine point (x, y), failing with ErrPointNotOnCurve
// when it does not lie on the curve.
func NewPoint[C Curve](x, y FieldElement[C]) (Point[C], error) {
	if !onCurve(x, y) {
		str := fmt.Sprintf("point (%v, %v) is not on the curve", x.value(), y.value())
		return Point[C]{}, makeError(ErrPointNotOnCurve, str)
	}
	return Point[C]{x: x, y: y, affine: true}, nil
}

// NewPointFromInts is NewPoint for integer coordinates, which must already be
// in [0, p).
func NewPointFromInts[C Curve](x, y *big.Int) (Point[C], error) {
	fx, err := NewFieldElement[C](x)
	if err != nil {
		return Point[C]{}, err
	}
	fy, err := NewFieldElement[C](y)
	if err != nil {
		return Point[C]{}, err
	}
	return NewPoint(fx, fy)
}

// Infinity returns the identity of the group on C.
func Infinity[C Curve]() Point[C] {
	return Point[C]{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point[C]) IsInfinity() bool {
	return !p.affine
}

// XY returns the affine coordinates of p.  ok is false for the point at
// infinity, which has none.
func (p Point[C]) XY() (x, y FieldElement[C], ok bool) {
	return p.x, p.y, p.affine
}

// Equal reports whether p and q are the same point.
func (p Point[C]) Equal(q Point[C]) bool {
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p, the reflection of p over the x axis.
func (p Point[C]) Neg() Point[C] {
	if !p.affine {
		return p
	}
	return Point[C]{x: p.x, y: p.y.Neg(), affine: true}
}

// Add returns p + q using the chord-and-tangent rule.
func (p Point[C]) Add(q Point[C]) Point[C] {
	if !p.affine {
		return q
	}
	if !q.affine {
		return p
	}

	var s FieldElement[C]
	switch {
	case p.x.Equal(q.x) && !p.y.Equal(q.y):
		// Vertical chord through p and -p.
		return Point[C]{}
	case p.x.Equal(q.x):
		// Doubling.  A vertical tangent when y = 0.
		if p.y.IsZero() {
			return Point[C]{}
		}
		a, _ := coefficients[C]()
		s = p.x.Mul(p.x).MulInt(3).Add(a).Div(p.y.MulInt(2))
	default:
		s = q.y.Sub(p.y).Div(q.x.Sub(p.x))
	}

	x3 := s.Mul(s).Sub(p.x).Sub(q.x)
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point[C]{x: x3, y: y3, affine: true}
}

// Double returns 2p.
func (p Point[C]) Double() Point[C] {
	return p.Add(p)
}

// ScalarMult returns k*p by double-and-add, walking the bits of k from least
// to most significant.  0*p is the point at infinity and a negative k
// multiplies -p by |k|.
func (p Point[C]) ScalarMult(k *big.Int) Point[C] {
	current := p
	if k.Sign() < 0 {
		current = p.Neg()
	}
	coef := new(big.Int).Abs(k)

	result := Point[C]{}
	for i, n := 0, coef.BitLen(); i < n; i++ {
		if coef.Bit(i) == 1 {
			result = result.Add(current)
		}
		if i+1 < n {
			current = current.Double()
		}
	}
	return result
}

// String returns either Point(infinity) or Point(x, y)_a_b FieldElement(p).
func (p Point[C]) String() string {
	a, b := coefficients[C]()
	prime := fieldOf[C]().p
	if !p.affine {
		return fmt.Sprintf("Point(infinity)_%v_%v FieldElement(%v)", a.value(), b.value(), prime)
	}
	return fmt.Sprintf("Point(%v, %v)_%v_%v FieldElement(%v)", p.x.value(), p.y.value(),
		a.value(), b.value(), prime)
}
