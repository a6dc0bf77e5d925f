package s256

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestPubKeySerialize(t *testing.T) {
	testCases := []struct {
		name       string
		secret     *big.Int
		compressed bool
		want       string
	}{
		{
			name:   "5000_uncompressed",
			secret: big.NewInt(5000),
			want: "04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c" +
				"315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb157a1d10",
		},
		{
			name:       "5001_compressed_odd",
			secret:     big.NewInt(5001),
			compressed: true,
			want:       "0357a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1",
		},
		{
			name:       "2019^5_compressed_even",
			secret:     new(big.Int).Exp(big.NewInt(2019), big.NewInt(5), nil),
			compressed: true,
			want:       "02933ec2d2b111b92737ec12f1c5d20f3233a0ad21cd8b36d0bca7a0cfa5cb8701",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			priv, err := NewPrivateKey(tc.secret)
			if err != nil {
				t.Fatal(err)
			}
			pub := priv.PubKey()
			got := pub.Serialize(tc.compressed)
			if !bytes.Equal(got, hexToBytes(tc.want)) {
				t.Fatalf("got %x, want %s", got, tc.want)
			}

			parsed, err := ParsePubKey(got)
			if err != nil {
				t.Fatalf("ParsePubKey: %v", err)
			}
			if !parsed.IsEqual(pub) {
				t.Errorf("round trip gave %v", parsed.Point())
			}
		})
	}
}

func TestParsePubKeyErrors(t *testing.T) {
	// 2^256 - 1 is above p.
	ff := bytes.Repeat([]byte{0xff}, 32)
	g := Generator()
	gx, gy, _ := g.XY()

	join := func(parts ...[]byte) []byte {
		return bytes.Join(parts, nil)
	}
	offCurveY := gy.Add(FieldElementFromInt64[S256](1)).Bytes()

	testCases := []struct {
		name string
		key  []byte
		err  ErrorKind
	}{
		{"empty", nil, ErrPubKeyInvalidLen},
		{"short", join([]byte{0x02}, gx.Bytes()[:31]), ErrPubKeyInvalidLen},
		{"compressed_bad_prefix", join([]byte{0x04}, gx.Bytes()), ErrPubKeyInvalidFormat},
		{"uncompressed_bad_prefix", join([]byte{0x03}, gx.Bytes(), gy.Bytes()), ErrPubKeyInvalidFormat},
		{"hybrid_prefix", join([]byte{0x06}, gx.Bytes(), gy.Bytes()), ErrPubKeyInvalidFormat},
		{"compressed_x_too_big", join([]byte{0x02}, ff), ErrPubKeyXTooBig},
		{"uncompressed_x_too_big", join([]byte{0x04}, ff, gy.Bytes()), ErrPubKeyXTooBig},
		{"uncompressed_y_too_big", join([]byte{0x04}, gx.Bytes(), ff), ErrPubKeyYTooBig},
		{"uncompressed_off_curve", join([]byte{0x04}, gx.Bytes(), offCurveY), ErrPubKeyNotOnCurve},
		{"compressed_no_root", join([]byte{0x02}, FieldElementFromInt64[S256](5).Bytes()), ErrPubKeyNotOnCurve},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePubKey(tc.key)
			if !errors.Is(err, tc.err) {
				t.Errorf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestParsePubKeyCompressedParity(t *testing.T) {
	pub, err := NewPublicKey(Generator())
	if err != nil {
		t.Fatal(err)
	}
	c := pub.SerializeCompressed()
	c[0] ^= 0x01
	flipped, err := ParsePubKey(c)
	if err != nil {
		t.Fatal(err)
	}
	if !flipped.Point().Equal(Generator().Neg()) {
		t.Error("flipping the prefix should give -G")
	}
}

func TestNewPublicKeyInfinity(t *testing.T) {
	if _, err := NewPublicKey(Infinity[S256]()); !errors.Is(err, ErrPubKeyInfinity) {
		t.Errorf("got %v, want ErrPubKeyInfinity", err)
	}
}

func TestPubKeyAddress(t *testing.T) {
	priv, err := NewPrivateKey(new(big.Int).Exp(big.NewInt(888), big.NewInt(3), nil))
	if err != nil {
		t.Fatal(err)
	}
	pub := priv.PubKey()

	testCases := []struct {
		net  *Network
		want string
	}{
		{MainNet, "148dY81A9BmdpMhvYEVznrM45kWN32vSCN"},
		{TestNet, "mieaqB68xDCtbUBYFoUNcmZNwk74xcBfTP"},
	}

	for _, tc := range testCases {
		t.Run(tc.net.Name, func(t *testing.T) {
			if got := pub.Address(true, tc.net); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestPubKeyAddressMore(t *testing.T) {
	testCases := []struct {
		secret     *big.Int
		compressed bool
		net        *Network
		want       string
	}{
		{big.NewInt(5002), false, TestNet, "mmTPbXQFxboEtNRkwfh6K51jvdtHLxGeMA"},
		{new(big.Int).Exp(big.NewInt(2020), big.NewInt(5), nil), true, TestNet, "mopVkxp8UhXqRYbCYJsbeE1h1fiF64jcoH"},
		{mustHex("12345deadbeef"), true, MainNet, "1F1Pn2y6pDb68E5nYJJeba4TLg2U7B6KF1"},
	}

	for _, tc := range testCases {
		priv, err := NewPrivateKey(tc.secret)
		if err != nil {
			t.Fatal(err)
		}
		if got := priv.PubKey().Address(tc.compressed, tc.net); got != tc.want {
			t.Errorf("secret %x: got %s, want %s", tc.secret, got, tc.want)
		}
	}
}
