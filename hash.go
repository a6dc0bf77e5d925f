package s256

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns SHA256(data).
func Sha256(data []byte) [32]byte {
	return sha256simd.Sum256(data)
}

// Hash256 returns SHA256(SHA256(data)), the hash used for transaction ids,
// signature hashes and Base58Check checksums.
func Hash256(data []byte) [32]byte {
	first := sha256simd.Sum256(data)
	return sha256simd.Sum256(first[:])
}

// Hash160 returns RIPEMD160(SHA256(data)), the hash committed to by
// pay-to-pubkey-hash addresses.
func Hash160(data []byte) [20]byte {
	sum := sha256simd.Sum256(data)
	rmd := ripemd160.New()
	rmd.Write(sum[:])
	var out [20]byte
	copy(out[:], rmd.Sum(nil))
	return out
}

// TxID returns the hash256 of a serialized transaction.  The chainhash.Hash
// String method prints it byte-reversed, the way block explorers show it.
func TxID(serializedTx []byte) chainhash.Hash {
	return chainhash.Hash(Hash256(serializedTx))
}
