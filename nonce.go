package s256

import (
	"crypto/hmac"
	"hash"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// rfc6979HMACSHA256 is the HMAC_DRBG of RFC6979 section 3.2 instantiated with
// HMAC-SHA256.
type rfc6979HMACSHA256 struct {
	v     [32]byte
	k     [32]byte
	retry bool
}

func newHMAC(key []byte) hash.Hash {
	return hmac.New(sha256simd.New, key)
}

// newRFC6979HMACSHA256 seeds the generator with the given key material, which
// for ECDSA is int2octets(secret) || bits2octets(hash).
func newRFC6979HMACSHA256(key []byte) *rfc6979HMACSHA256 {
	rng := &rfc6979HMACSHA256{}

	// RFC6979 3.2.b: V = 0x01 0x01 0x01 ... 0x01
	for i := range rng.v {
		rng.v[i] = 0x01
	}
	// RFC6979 3.2.c: K = 0x00 0x00 0x00 ... 0x00 is the zero value.

	// RFC6979 3.2.d: K = HMAC_K(V || 0x00 || key); 3.2.e: V = HMAC_K(V)
	rng.update(0x00, key)
	// RFC6979 3.2.f: K = HMAC_K(V || 0x01 || key); 3.2.g: V = HMAC_K(V)
	rng.update(0x01, key)
	return rng
}

// update sets K = HMAC_K(V || sep || data) and then V = HMAC_K(V).
func (rng *rfc6979HMACSHA256) update(sep byte, data []byte) {
	mac := newHMAC(rng.k[:])
	mac.Write(rng.v[:])
	mac.Write([]byte{sep})
	mac.Write(data)
	mac.Sum(rng.k[:0])

	rng.stepV()
}

// stepV sets V = HMAC_K(V).
func (rng *rfc6979HMACSHA256) stepV() {
	mac := newHMAC(rng.k[:])
	mac.Write(rng.v[:])
	mac.Sum(rng.v[:0])
}

// generate fills out with the next bytes of the stream.  Every call after the
// first one first rekeys the generator as in RFC6979 3.2.h.3, so that each
// call yields a fresh candidate.
func (rng *rfc6979HMACSHA256) generate(out []byte) {
	if rng.retry {
		rng.update(0x00, nil)
	}
	for len(out) > 0 {
		rng.stepV()
		n := copy(out, rng.v[:])
		out = out[n:]
	}
	rng.retry = true
}

// clear wipes the generator state.
func (rng *rfc6979HMACSHA256) clear() {
	for i := range rng.v {
		rng.v[i] = 0
		rng.k[i] = 0
	}
}

// nonceGenerator draws RFC6979 nonces for one (secret, z) pair.
type nonceGenerator struct {
	rng *rfc6979HMACSHA256
}

// newNonceGenerator returns the deterministic nonce stream for signing z with
// secret.  The same inputs always produce the same stream.
func newNonceGenerator(secret, z *big.Int) *nonceGenerator {
	var key [64]byte
	secret.FillBytes(key[:32])
	// bits2octets: the hash is reduced mod n before being used as key
	// material.
	s256OrderField().Reduce(z).FillBytes(key[32:])
	g := &nonceGenerator{rng: newRFC6979HMACSHA256(key[:])}
	for i := range key {
		key[i] = 0
	}
	return g
}

// next returns the next candidate nonce in [1, n-1].  Candidates outside of
// that range are skipped.
func (g *nonceGenerator) next() *big.Int {
	var buf [32]byte
	for {
		g.rng.generate(buf[:])
		k := new(big.Int).SetBytes(buf[:])
		if inScalarRange(k) {
			return k
		}
	}
}

func (g *nonceGenerator) clear() {
	g.rng.clear()
}
