package s256

import (
	"bytes"
	"fmt"
	"math/big"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	bigRadix = big.NewInt(58)

	// base58Index maps an ASCII character to its digit value, or -1.
	base58Index = func() [256]int {
		var idx [256]int
		for i := range idx {
			idx[i] = -1
		}
		for i := 0; i < len(base58Alphabet); i++ {
			idx[base58Alphabet[i]] = i
		}
		return idx
	}()
)

// encodingError creates an Error given a set of arguments.
func encodingError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Base58Encode encodes b with the Bitcoin alphabet.  Every leading zero byte
// becomes a leading '1'.
func Base58Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)
	answer := make([]byte, 0, len(b)*138/100+1)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, base58Alphabet[mod.Int64()])
	}

	for _, c := range b {
		if c != 0 {
			break
		}
		answer = append(answer, base58Alphabet[0])
	}

	// reverse
	for i, j := 0, len(answer)-1; i < j; i, j = i+1, j-1 {
		answer[i], answer[j] = answer[j], answer[i]
	}
	return string(answer)
}

// Base58Decode decodes a Base58 string.  Every leading '1' becomes a leading
// zero byte.
func Base58Decode(s string) ([]byte, error) {
	answer := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		v := base58Index[s[i]]
		if v < 0 {
			str := fmt.Sprintf("invalid base58 character %q at position %d", s[i], i)
			return nil, encodingError(ErrBase58InvalidChar, str)
		}
		answer.Mul(answer, bigRadix)
		answer.Add(answer, digit.SetInt64(int64(v)))
	}

	var numZeros int
	for numZeros < len(s) && s[numZeros] == base58Alphabet[0] {
		numZeros++
	}
	tmp := answer.Bytes()
	out := make([]byte, numZeros+len(tmp))
	copy(out[numZeros:], tmp)
	return out, nil
}

// checksum returns the first four bytes of hash256(input).
func checksum(input []byte) [4]byte {
	var cksum [4]byte
	h := Hash256(input)
	copy(cksum[:], h[:4])
	return cksum
}

// Base58CheckEncode returns Base58(b || hash256(b)[:4]).
func Base58CheckEncode(b []byte) string {
	cksum := checksum(b)
	buf := make([]byte, 0, len(b)+4)
	buf = append(buf, b...)
	buf = append(buf, cksum[:]...)
	return Base58Encode(buf)
}

// Base58CheckDecode decodes a Base58Check string and returns the payload
// without its checksum.
func Base58CheckDecode(s string) ([]byte, error) {
	decoded, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 4 {
		str := fmt.Sprintf("base58check data too short: %d bytes", len(decoded))
		return nil, encodingError(ErrBase58TooShort, str)
	}
	payload := decoded[:len(decoded)-4]
	cksum := checksum(payload)
	if !bytes.Equal(cksum[:], decoded[len(decoded)-4:]) {
		return nil, encodingError(ErrBase58Checksum, "base58check checksum mismatch")
	}
	return payload, nil
}

// CheckEncode prepends a version byte to input and returns its Base58Check
// encoding.
func CheckEncode(input []byte, version byte) string {
	b := make([]byte, 0, 1+len(input))
	b = append(b, version)
	b = append(b, input...)
	return Base58CheckEncode(b)
}

// CheckDecode decodes a string produced by CheckEncode and returns the
// payload and its version byte.
func CheckDecode(s string) ([]byte, byte, error) {
	payload, err := Base58CheckDecode(s)
	if err != nil {
		return nil, 0, err
	}
	if len(payload) < 1 {
		return nil, 0, encodingError(ErrBase58TooShort, "base58check data has no version byte")
	}
	return payload[1:], payload[0], nil
}
