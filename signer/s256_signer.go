package signer

import (
	"errors"
	"math/big"

	s256 "s256.dev"
)

// S256Signer implements the I interface using the s256 package
type S256Signer struct {
	priv      *s256.PrivateKey
	pub       *s256.PublicKey
	hasSecret bool // Whether we have the secret key (if false, can only verify)
}

var _ I = (*S256Signer)(nil)

// NewS256Signer creates a new S256Signer instance
func NewS256Signer() *S256Signer {
	return &S256Signer{
		hasSecret: false,
	}
}

// Generate creates a fresh new key pair from system entropy
func (s *S256Signer) Generate() error {
	priv, err := s256.GeneratePrivateKey()
	if err != nil {
		return err
	}

	s.priv = priv
	s.pub = priv.PubKey()
	s.hasSecret = true

	return nil
}

// InitSec initialises the secret (signing) key from the raw bytes, and also derives the public key
func (s *S256Signer) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("secret key must be 32 bytes")
	}

	priv, err := s256.PrivKeyFromBytes(sec)
	if err != nil {
		return err
	}

	s.priv = priv
	s.pub = priv.PubKey()
	s.hasSecret = true

	return nil
}

// InitPub initializes the public (verification) key from a SEC encoded pubkey
func (s *S256Signer) InitPub(pub []byte) error {
	pubKey, err := s256.ParsePubKey(pub)
	if err != nil {
		return err
	}

	s.pub = pubKey
	s.priv = nil
	s.hasSecret = false

	return nil
}

// Sec returns the secret key bytes
func (s *S256Signer) Sec() []byte {
	if !s.hasSecret || s.priv == nil {
		return nil
	}
	return s.priv.Serialize()
}

// Pub returns the public key bytes (compressed SEC)
func (s *S256Signer) Pub() []byte {
	if s.pub == nil {
		return nil
	}
	return s.pub.SerializeCompressed()
}

// Sign creates a signature using the stored secret key
func (s *S256Signer) Sign(msg []byte) (sig []byte, err error) {
	if !s.hasSecret || s.priv == nil {
		return nil, errors.New("no secret key available for signing")
	}

	if len(msg) != 32 {
		return nil, errors.New("message must be 32 bytes")
	}

	return s.priv.Sign(new(big.Int).SetBytes(msg)).Serialize(), nil
}

// Verify checks a message hash and signature match the stored public key.
// A malformed signature is reported as invalid, not as an error.
func (s *S256Signer) Verify(msg, sig []byte) (valid bool, err error) {
	if s.pub == nil {
		return false, errors.New("no public key available for verification")
	}

	if len(msg) != 32 {
		return false, errors.New("message must be 32 bytes")
	}

	signature, err := s256.ParseDERSignature(sig)
	if err != nil {
		return false, nil
	}

	valid = s256.Verify(s.pub, new(big.Int).SetBytes(msg), signature)
	return valid, nil
}

// Zero wipes the secret key to prevent memory leaks
func (s *S256Signer) Zero() {
	if s.priv != nil {
		s.priv.Zero()
		s.priv = nil
	}
	s.hasSecret = false
	s.pub = nil
}
