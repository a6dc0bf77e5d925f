package s256

import (
	"math/big"
	"testing"
)

func TestNewPrimeFieldPanics(t *testing.T) {
	testCases := []struct {
		name string
		p    *big.Int
	}{
		{"nil", nil},
		{"two", big.NewInt(2)},
		{"one", big.NewInt(1)},
		{"even", big.NewInt(14)},
		{"odd_composite", big.NewInt(15)},
		{"negative", big.NewInt(-13)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewPrimeField(%v) did not panic", tc.p)
				}
			}()
			NewPrimeField(tc.p)
		})
	}
}

func TestPrimeFieldArithmetic(t *testing.T) {
	f := NewPrimeField(big.NewInt(13))
	i := big.NewInt

	testCases := []struct {
		name string
		got  *big.Int
		want int64
	}{
		{"add_wraps", f.Add(i(7), i(12)), 6},
		{"sub_wraps", f.Sub(i(7), i(12)), 8},
		{"mul", f.Mul(i(7), i(12)), 6},
		{"neg", f.Neg(i(5)), 8},
		{"neg_zero", f.Neg(i(0)), 0},
		{"reduce_negative", f.Reduce(i(-1)), 12},
		{"pow", f.Pow(i(3), i(3)), 1},
		{"pow_zero_exponent", f.Pow(i(9), i(0)), 1},
		{"pow_negative", f.Pow(i(7), i(-3)), 8},
		{"inverse", f.Inverse(i(7)), 2},
		{"div", f.Div(i(7), i(5)), 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got.Cmp(i(tc.want)) != 0 {
				t.Errorf("got %v, want %d", tc.got, tc.want)
			}
		})
	}
}

func TestPrimeFieldOperandsUntouched(t *testing.T) {
	f := NewPrimeField(big.NewInt(13))
	a, b := big.NewInt(7), big.NewInt(12)
	f.Add(a, b)
	f.Mul(a, b)
	f.Pow(a, big.NewInt(-3))
	f.Div(a, b)
	if a.Int64() != 7 || b.Int64() != 12 {
		t.Errorf("operands modified: a=%v b=%v", a, b)
	}
}

func TestPrimeFieldInverseOfZeroPanics(t *testing.T) {
	f := NewPrimeField(big.NewInt(13))
	defer func() {
		if recover() == nil {
			t.Error("Inverse(0) did not panic")
		}
	}()
	f.Inverse(big.NewInt(26))
}

func TestPrimeFieldSqrt(t *testing.T) {
	// 19 = 3 mod 4
	f := NewPrimeField(big.NewInt(19))
	for a := int64(0); a < 19; a++ {
		root, ok := f.Sqrt(big.NewInt(a))
		if ok != f.IsSquare(big.NewInt(a)) {
			t.Errorf("Sqrt(%d) ok=%v disagrees with IsSquare", a, ok)
		}
		if ok && f.Mul(root, root).Int64() != a {
			t.Errorf("Sqrt(%d) = %v is not a root", a, root)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Sqrt modulo 13 did not panic")
		}
	}()
	NewPrimeField(big.NewInt(13)).Sqrt(big.NewInt(4))
}

func TestPrimeFieldSecp256k1(t *testing.T) {
	f := s256Field()
	if f.ByteSize() != 32 {
		t.Errorf("byte size %d, want 32", f.ByteSize())
	}

	// (p-1) * (p-1) = 1 exercises a full 512-bit intermediate product.
	pm1 := new(big.Int).Sub(f.Prime(), bigOne)
	if f.Mul(pm1, pm1).Cmp(bigOne) != 0 {
		t.Error("(p-1)^2 != 1")
	}
	if f.Add(pm1, bigOne).Sign() != 0 {
		t.Error("(p-1) + 1 != 0")
	}

	a := mustHex("c0ffee00deadbeef0123456789abcdef0123456789abcdef0123456789abcdef")
	inv := f.Inverse(a)
	if f.Mul(a, inv).Cmp(bigOne) != 0 {
		t.Error("a * a^-1 != 1")
	}
	if f.Inverse(inv).Cmp(a) != 0 {
		t.Error("(a^-1)^-1 != a")
	}
}
