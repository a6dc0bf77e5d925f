// Package signer abstracts ECDSA key handling and signing over secp256k1 so
// that callers can swap the implementation behind it.
//
// Public keys are exchanged as 33-byte compressed SEC encodings, messages are
// 32-byte hashes and signatures are DER encoded.
package signer

// I is a secp256k1 ECDSA signer.
type I interface {
	// Generate creates a fresh new key pair from system entropy.
	Generate() error

	// InitSec initialises the secret (signing) key from the raw bytes, and
	// also derives the public key.
	InitSec(sec []byte) error

	// InitPub initializes the public (verification) key from a compressed or
	// uncompressed SEC encoding.
	InitPub(pub []byte) error

	// Sec returns the secret key bytes.
	Sec() []byte

	// Pub returns the compressed SEC public key bytes.
	Pub() []byte

	// Sign creates a DER signature of a 32-byte message hash using the
	// stored secret key.
	Sign(msg []byte) (sig []byte, err error)

	// Verify checks a message hash and DER signature match the stored public
	// key.  Any invalid signature, malformed ones included, yields false with
	// a nil error.
	Verify(msg, sig []byte) (valid bool, err error)

	// Zero wipes the secret key to prevent memory leaks.
	Zero()
}
