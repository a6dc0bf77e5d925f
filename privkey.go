package s256

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PrivKeyBytesLen is the length of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secret scalar in [1, n-1] together with its public key,
// which is computed once when the key is created.
type PrivateKey struct {
	secret *big.Int
	pub    *PublicKey
}

// NewPrivateKey returns the private key for secret.  It fails with
// ErrPrivKeyOutOfRange unless 1 <= secret <= n-1.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if !inScalarRange(secret) {
		return nil, makeError(ErrPrivKeyOutOfRange,
			"invalid private key: secret is not in [1, n-1]")
	}
	s := new(big.Int).Set(secret)
	return &PrivateKey{secret: s, pub: &PublicKey{point: ScalarBaseMult(s)}}, nil
}

// PrivKeyFromBytes returns the private key for a 32-byte big-endian secret.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d", len(b))
		return nil, makeError(ErrPrivKeyInvalidLen, str)
	}
	return NewPrivateKey(new(big.Int).SetBytes(b))
}

// GeneratePrivateKey returns a new private key from crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	var b [PrivKeyBytesLen]byte
	defer clear(b[:])
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return nil, err
		}
		// Values outside of [1, n-1] are astronomically unlikely; redraw.
		if priv, err := PrivKeyFromBytes(b[:]); err == nil {
			return priv, nil
		}
	}
}

// Secret returns a copy of the secret scalar.
func (p *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(p.secret)
}

// PubKey returns the public key secret*G.
func (p *PrivateKey) PubKey() *PublicKey {
	return p.pub
}

// Serialize returns the secret as 32 big-endian bytes.
func (p *PrivateKey) Serialize() []byte {
	return p.secret.FillBytes(make([]byte, PrivKeyBytesLen))
}

// Zero overwrites the secret scalar in place.  The key must not be used
// afterwards.
func (p *PrivateKey) Zero() {
	clear(p.secret.Bits())
	p.secret.SetInt64(0)
}

// Sign is a shorthand for Sign(p, z).
func (p *PrivateKey) Sign(z *big.Int) *Signature {
	return Sign(p, z)
}

// WIF returns the key in Wallet Import Format for net.  A trailing 0x01 marks
// keys whose public key is meant to be used in compressed form.
func (p *PrivateKey) WIF(compressed bool, net *Network) string {
	payload := p.Serialize()
	if compressed {
		payload = append(payload, compressMagic)
	}
	return CheckEncode(payload, net.PrivateKeyID)
}

// compressMagic is the WIF suffix of keys with a compressed public key.
const compressMagic byte = 0x01

// ParseWIF decodes a Wallet Import Format string.  It returns the key,
// whether its public key is compressed and the network it belongs to.
func ParseWIF(wif string) (*PrivateKey, bool, *Network, error) {
	payload, version, err := CheckDecode(wif)
	if err != nil {
		return nil, false, nil, err
	}
	net, err := networkForPrivateKeyID(version)
	if err != nil {
		return nil, false, nil, err
	}

	var compressed bool
	switch len(payload) {
	case PrivKeyBytesLen:
	case PrivKeyBytesLen + 1:
		if payload[PrivKeyBytesLen] != compressMagic {
			str := fmt.Sprintf("malformed private key: compression flag %#x",
				payload[PrivKeyBytesLen])
			return nil, false, nil, makeError(ErrWIFInvalidCompressFlag, str)
		}
		compressed = true
	default:
		str := fmt.Sprintf("malformed private key: invalid WIF payload length: %d",
			len(payload))
		return nil, false, nil, makeError(ErrWIFInvalidLen, str)
	}

	priv, err := PrivKeyFromBytes(payload[:PrivKeyBytesLen])
	if err != nil {
		return nil, false, nil, err
	}
	return priv, compressed, net, nil
}
