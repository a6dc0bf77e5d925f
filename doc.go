/*
Package s256 implements the secp256k1 primitives needed to sign and verify
Bitcoin-style transactions, written from first principles on top of math/big.

The package is layered the same way the math is:

  - PrimeField: modular add, sub, mul, pow, inverse and square root modulo a
    fixed prime
  - FieldElement: an immutable element of a prime field whose modulus is part
    of its type, so elements of different fields cannot be mixed
  - Point: a point on a short Weierstrass curve y^2 = x^3 + ax + b with the
    chord-and-tangent group law and double-and-add scalar multiplication
  - S256 and S256Order: the secp256k1 curve and the field of scalars modulo
    the group order n
  - PrivateKey, PublicKey and Signature: ECDSA with RFC6979 deterministic
    nonces and low-S normalization
  - SEC public key encoding (compressed and uncompressed), DER signature
    encoding, Base58Check, WIF and pay-to-pubkey-hash addresses

Every value is immutable once constructed and every operation is a pure
computation, so keys, points and signatures may be shared between goroutines
freely.  The curve constants are computed once on first use.

Decoding functions for untrusted input (ParsePubKey, ParseDERSignature,
CheckDecode, ParseWIF, DecodeAddress) return an Error whose Err field is an
ErrorKind that can be matched with errors.Is.  Verification never returns an
error: a malformed or non-matching signature is simply reported as false.

The arithmetic is not constant time and must not be used where side channels
matter.
*/
package s256
