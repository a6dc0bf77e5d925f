package s256

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"
	"testing"
)

func TestGenerator(t *testing.T) {
	g := Generator()
	x, y, ok := g.XY()
	if !ok {
		t.Fatal("G is the point at infinity")
	}
	if x.Int().Cmp(mustHex(s256GxHex)) != 0 || y.Int().Cmp(mustHex(s256GyHex)) != 0 {
		t.Errorf("unexpected generator %v", g)
	}
	if !onCurve(x, y) {
		t.Error("G is not on the curve")
	}
}

func TestOrderTimesGeneratorIsInfinity(t *testing.T) {
	if !Generator().ScalarMult(Order()).IsInfinity() {
		t.Error("n * G != O")
	}
	// ScalarBaseMult reduces mod n.
	if !ScalarBaseMult(Order()).IsInfinity() {
		t.Error("ScalarBaseMult(n) != O")
	}

	nm1 := new(big.Int).Sub(Order(), bigOne)
	if !ScalarBaseMult(nm1).Equal(Generator().Neg()) {
		t.Error("(n-1) * G != -G")
	}
}

func TestScalarBaseMultNotInfinity(t *testing.T) {
	for i := 0; i < 8; i++ {
		k, err := rand.Int(rand.Reader, Order())
		if err != nil {
			t.Fatal(err)
		}
		if k.Sign() == 0 {
			continue
		}
		if ScalarBaseMult(k).IsInfinity() {
			t.Errorf("%x * G = O", k)
		}
	}
}

func TestScalarMultDistributes(t *testing.T) {
	a := big.NewInt(1234567)
	b := mustHex("f00dbabe0123456789")
	sum := new(big.Int).Add(a, b)

	got := ScalarBaseMult(a).Add(ScalarBaseMult(b))
	if !got.Equal(ScalarBaseMult(sum)) {
		t.Error("aG + bG != (a+b)G")
	}

	ab := new(big.Int).Mul(a, b)
	if !ScalarMult(ScalarBaseMult(a), b).Equal(ScalarBaseMult(ab)) {
		t.Error("b(aG) != (ab)G")
	}
}

func TestKnownPublicPoint(t *testing.T) {
	e := mustHex("8b387de39861728c92ec9f589c303b1038ff60eb3963b12cd212263a1d1e0f00")
	x, y, _ := ScalarBaseMult(e).XY()
	if x.Int().Cmp(mustHex("028d003eab2e428d11983f3e97c3fa0addf3b42740df0d211795ffb3be2f6c52")) != 0 {
		t.Errorf("x = %x", x.Int())
	}
	if y.Int().Cmp(mustHex("0ae987b9ec6ea159c78cb2a937ed89096fb218d9e7594f02b547526d8cd309e2")) != 0 {
		t.Errorf("y = %x", y.Int())
	}
}

func TestDecompressPoint(t *testing.T) {
	g := Generator()
	x, y, _ := g.XY()

	got, err := DecompressPoint(x, y.IsOdd())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Errorf("got %v, want G", got)
	}

	got, err = DecompressPoint(x, !y.IsOdd())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g.Neg()) {
		t.Errorf("got %v, want -G", got)
	}

	// x = 5: 5^3 + 7 = 132 is not a square mod p.
	_, err = DecompressPoint(FieldElementFromInt64[S256](5), false)
	if !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Errorf("got %v, want ErrPubKeyNotOnCurve", err)
	}
}

func TestConstantsConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Generator().IsInfinity() || Order().Sign() == 0 {
				t.Error("bad constants")
			}
		}()
	}
	wg.Wait()
}
