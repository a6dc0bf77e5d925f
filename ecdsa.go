package s256

import (
	"math/big"
)

// Sign creates a deterministic ECDSA signature of the message scalar z with
// priv.  The nonce is derived from the secret and z as in RFC6979 and the
// returned signature always has s <= n/2.
func Sign(priv *PrivateKey, z *big.Int) *Signature {
	nonces := newNonceGenerator(priv.secret, z)
	defer nonces.clear()

	for {
		k := nonces.next()
		if sig, ok := signWithNonce(priv.secret, z, k); ok {
			return sig
		}
	}
}

// signWithNonce computes the signature of z for the given nonce k in
// [1, n-1].  It reports false when k leads to r = 0 or s = 0, in which case the
// caller must pick another nonce.
func signWithNonce(secret, z, k *big.Int) (*Signature, bool) {
	// Compute R = k * G and r = R.x mod n.
	bigR := ScalarBaseMult(k)
	rx, _, ok := bigR.XY()
	if !ok {
		return nil, false
	}
	r := NewScalar(rx.Int())
	if r.IsZero() {
		return nil, false
	}

	// Compute s = (z + r * secret) / k mod n.
	s := NewScalar(z).Add(r.Mul(NewScalar(secret))).Div(NewScalar(k))
	if s.IsZero() {
		return nil, false
	}

	// Both (r, s) and (r, n-s) are valid; only the low one is canonical.
	sv := s.Int()
	if isHighS(sv) {
		sv = s.Neg().Int()
	}
	return &Signature{r: r.Int(), s: sv}, true
}

// Verify reports whether sig is a valid signature of the message scalar z for
// the public key pub.
//
// Signatures whose components are outside of [1, n-1] are rejected without
// any curve arithmetic.  High-S signatures are accepted.
func Verify(pub *PublicKey, z *big.Int, sig *Signature) bool {
	if pub == nil || sig == nil || !inScalarRange(sig.r) || !inScalarRange(sig.s) {
		return false
	}

	// w = s^-1, u = z * w, v = r * w
	w := NewScalar(sig.s).Inverse()
	u := NewScalar(z).Mul(w)
	v := NewScalar(sig.r).Mul(w)

	// T = u * G + v * P
	t := ScalarBaseMult(u.Int()).Add(ScalarMult(pub.point, v.Int()))
	tx, _, ok := t.XY()
	if !ok {
		return false
	}
	return NewScalar(tx.Int()).Int().Cmp(sig.r) == 0
}

// Verify reports whether sig is a valid signature of z for pub.  It is a
// shorthand for Verify(pub, z, sig).
func (sig *Signature) Verify(z *big.Int, pub *PublicKey) bool {
	return Verify(pub, z, sig)
}

// VerifyDER verifies a DER encoded signature of a 32-byte hash against a SEC
// encoded public key.  Any parse failure is reported as an invalid
// signature.
func VerifyDER(pubKey, sig, hash []byte) bool {
	z, err := HashToScalar(hash)
	if err != nil {
		return false
	}
	pub, err := ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	s, err := ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return Verify(pub, z, s)
}
