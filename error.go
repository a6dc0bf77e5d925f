package s256

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPointNotOnCurve is returned when the coordinates given for a point do
	// not satisfy the curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrFieldOverflow is returned when a value is not in the range [0, p)
	// of the field it is supposed to belong to.
	ErrFieldOverflow = ErrorKind("ErrFieldOverflow")

	// ErrPubKeyInvalidLen is returned when a serialized public key is not one
	// of the allowed lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when a serialized public key has an
	// unrecognized format prefix.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when the X coordinate of a serialized
	// public key is greater than or equal to the field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when the Y coordinate of a serialized
	// public key is greater than or equal to the field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when a serialized public key does not
	// describe a point on the secp256k1 curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyInfinity is returned when attempting to use the point at
	// infinity as a public key.
	ErrPubKeyInfinity = ErrorKind("ErrPubKeyInfinity")

	// ErrPrivKeyOutOfRange is returned when a secret scalar is not in the
	// range [1, n-1].
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")

	// ErrPrivKeyInvalidLen is returned when a serialized private key is not
	// 32 bytes.
	ErrPrivKeyInvalidLen = ErrorKind("ErrPrivKeyInvalidLen")

	// ErrBase58InvalidChar is returned when a string contains a character
	// outside of the Base58 alphabet.
	ErrBase58InvalidChar = ErrorKind("ErrBase58InvalidChar")

	// ErrBase58TooShort is returned when Base58Check data is too short to
	// contain a checksum.
	ErrBase58TooShort = ErrorKind("ErrBase58TooShort")

	// ErrBase58Checksum is returned when the Base58Check checksum does not
	// match the payload.
	ErrBase58Checksum = ErrorKind("ErrBase58Checksum")

	// ErrWIFInvalidLen is returned when a decoded WIF payload is neither 33
	// nor 34 bytes.
	ErrWIFInvalidLen = ErrorKind("ErrWIFInvalidLen")

	// ErrWIFInvalidCompressFlag is returned when a 34 byte WIF payload does
	// not end with the 0x01 compression flag.
	ErrWIFInvalidCompressFlag = ErrorKind("ErrWIFInvalidCompressFlag")

	// ErrUnknownNetwork is returned when a version byte does not belong to a
	// known network.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrHashInvalidLen is returned when a message hash is not 32 bytes.
	ErrHashInvalidLen = ErrorKind("ErrHashInvalidLen")

	// ErrAddrInvalidLen is returned when a decoded address payload is not 21
	// bytes.
	ErrAddrInvalidLen = ErrorKind("ErrAddrInvalidLen")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field arithmetic, public keys,
// signatures or encodings.  It has full support for errors.Is and errors.As,
// so the caller can ascertain the specific reason for the error by checking
// the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
