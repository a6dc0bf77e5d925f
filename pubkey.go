package s256

import (
	"fmt"
)

// These constants define the lengths of serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

const (
	// pubkeyCompressed is the header byte for a compressed secp256k1 pubkey
	// with an even y coordinate; 0x03 is used for an odd one.
	pubkeyCompressed byte = 0x2

	// pubkeyUncompressed is the header byte for an uncompressed secp256k1
	// pubkey.
	pubkeyUncompressed byte = 0x4
)

// PublicKey is a point on secp256k1 other than the point at infinity.
type PublicKey struct {
	point S256Point
}

// NewPublicKey returns p as a public key.  The point at infinity is
// rejected with ErrPubKeyInfinity.
func NewPublicKey(p S256Point) (*PublicKey, error) {
	if p.IsInfinity() {
		return nil, makeError(ErrPubKeyInfinity, "the point at infinity is not a valid public key")
	}
	return &PublicKey{point: p}, nil
}

// Point returns the underlying curve point.
func (k *PublicKey) Point() S256Point {
	return k.point
}

// IsEqual reports whether k and other are the same key.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return k.point.Equal(other.point)
}

// String returns the compressed SEC encoding in hex.
func (k *PublicKey) String() string {
	return fmt.Sprintf("%x", k.SerializeCompressed())
}

// SerializeUncompressed returns the 65-byte SEC encoding 0x04 || X || Y.
func (k *PublicKey) SerializeUncompressed() []byte {
	x, y, _ := k.point.XY()
	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	b = append(b, pubkeyUncompressed)
	b = append(b, x.Bytes()...)
	return append(b, y.Bytes()...)
}

// SerializeCompressed returns the 33-byte SEC encoding, 0x02 || X when Y is
// even and 0x03 || X when it is odd.
func (k *PublicKey) SerializeCompressed() []byte {
	x, y, _ := k.point.XY()
	format := pubkeyCompressed
	if y.IsOdd() {
		format |= 0x1
	}
	b := make([]byte, 0, PubKeyBytesLenCompressed)
	b = append(b, format)
	return append(b, x.Bytes()...)
}

// Serialize returns the compressed or uncompressed SEC encoding.
func (k *PublicKey) Serialize(compressed bool) []byte {
	if compressed {
		return k.SerializeCompressed()
	}
	return k.SerializeUncompressed()
}

// ParsePubKey parses a secp256k1 public key encoded in the compressed or
// uncompressed SEC format.
//
// Each failure has its own ErrorKind: ErrPubKeyInvalidLen,
// ErrPubKeyInvalidFormat, ErrPubKeyXTooBig, ErrPubKeyYTooBig or
// ErrPubKeyNotOnCurve.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		if serialized[0] != pubkeyUncompressed {
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				serialized[0])
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		x, err := FieldElementFromBytes[S256](serialized[1:33])
		if err != nil {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		y, err := FieldElementFromBytes[S256](serialized[33:])
		if err != nil {
			str := "invalid public key: y >= field prime"
			return nil, makeError(ErrPubKeyYTooBig, str)
		}
		p, err := NewPoint(x, y)
		if err != nil {
			str := fmt.Sprintf("invalid public key: [%v,%v] not on secp256k1 "+
				"curve", x.value(), y.value())
			return nil, makeError(ErrPubKeyNotOnCurve, str)
		}
		return &PublicKey{point: p}, nil

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		if format != pubkeyCompressed && format != pubkeyCompressed|0x1 {
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		x, err := FieldElementFromBytes[S256](serialized[1:33])
		if err != nil {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		p, err := DecompressPoint(x, format&0x1 == 0x1)
		if err != nil {
			return nil, err
		}
		return &PublicKey{point: p}, nil

	default:
		str := fmt.Sprintf("malformed public key: invalid length: %d",
			len(serialized))
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}
}

// Hash160 returns hash160 of the SEC encoding of the key.
func (k *PublicKey) Hash160(compressed bool) [20]byte {
	return Hash160(k.Serialize(compressed))
}

// Address returns the pay-to-pubkey-hash address of the key on net.
func (k *PublicKey) Address(compressed bool, net *Network) string {
	h := k.Hash160(compressed)
	return CheckEncode(h[:], net.PubKeyHashAddrID)
}
