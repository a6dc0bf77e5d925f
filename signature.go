package s256

import (
	"fmt"
	"math/big"
)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02
)

// Signature is an ECDSA signature (r, s).  It is immutable.
type Signature struct {
	r, s *big.Int
}

// NewSignature returns the signature (r, s).  Both components must be in
// [1, n-1], otherwise an Error of kind ErrSigRIsZero, ErrSigRTooBig,
// ErrSigSIsZero or ErrSigSTooBig is returned.
func NewSignature(r, s *big.Int) (*Signature, error) {
	if err := checkSigComponent(r, "R", ErrSigRTooBig, ErrSigRIsZero); err != nil {
		return nil, err
	}
	if err := checkSigComponent(s, "S", ErrSigSTooBig, ErrSigSIsZero); err != nil {
		return nil, err
	}
	return newSignature(r, s), nil
}

// newSignature returns (r, s) without a range check.
func newSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// checkSigComponent returns an Error unless 1 <= v <= n-1.
func checkSigComponent(v *big.Int, name string, tooBig, isZero ErrorKind) error {
	if v == nil || v.Sign() <= 0 {
		str := fmt.Sprintf("invalid signature: %s is not positive", name)
		return signatureError(isZero, str)
	}
	if !s256OrderField().Contains(v) {
		str := fmt.Sprintf("invalid signature: %s >= group order", name)
		return signatureError(tooBig, str)
	}
	return nil
}

// R returns a copy of the r component.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the s component.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// IsEqual reports whether sig and other have the same components.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

// String returns Signature(r, s) in hex.
func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%064x, %064x)", sig.r, sig.s)
}

// derInt returns the minimal big-endian two's complement encoding of a
// non-negative integer: leading zero bytes are stripped and a single 0x00 is
// put back when the high bit of the first byte is set.
func derInt(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}

// Serialize returns the signature in the DER format
//
//	0x30 <length> 0x02 <length r> r 0x02 <length s> s
//
// The signature is serialized as is; it is up to the signer to produce a
// canonical low-S value, which Sign always does.
func (sig *Signature) Serialize() []byte {
	rb := derInt(sig.r)
	sb := derInt(sig.s)

	// total length of returned signature is 1 byte for each magic and length
	// (6 total), plus lengths of r and s
	length := 6 + len(rb) + len(sb)
	b := make([]byte, 0, length)
	b = append(b, asn1SequenceID, byte(length-2))
	b = append(b, asn1IntegerID, byte(len(rb)))
	b = append(b, rb...)
	b = append(b, asn1IntegerID, byte(len(sb)))
	b = append(b, sb...)
	return b
}

// parseDERInt validates the scalar encoded in b and returns it.  The
// encoding itself was checked by the caller.
func parseDERInt(b []byte, name string, tooBig, isZero ErrorKind) (*big.Int, error) {
	for len(b) > 0 && b[0] == 0x00 {
		b = b[1:]
	}
	if len(b) > 32 {
		str := fmt.Sprintf("invalid signature: %s is larger than 256 bits", name)
		return nil, signatureError(tooBig, str)
	}
	v := new(big.Int).SetBytes(b)
	if err := checkSigComponent(v, name, tooBig, isZero); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseDERSignature parses a signature in the Distinguished Encoding Rules
// (DER) format and enforces that R and S are in [1, n-1].
//
// Every length field is checked against the real size of sig before it is
// used, so a malformed signature results in an Error and never reads out of
// bounds.
func ParseDERSignature(sig []byte) (*Signature, error) {
	const (
		// minSigLen is the minimum length of a DER encoded signature and is
		// when both R and S are 1 byte each.
		minSigLen = 8

		// maxSigLen is the maximum length of a DER encoded signature and is
		// when both R and S are 33 bytes each.
		maxSigLen = 72

		sequenceOffset = 0
		dataLenOffset  = 1
		rTypeOffset    = 2
		rLenOffset     = 3
		rOffset        = 4
	)

	sigLen := len(sig)
	if sigLen < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d", sigLen,
			minSigLen)
		return nil, signatureError(ErrSigTooShort, str)
	}
	if sigLen > maxSigLen {
		str := fmt.Sprintf("malformed signature: too long: %d > %d", sigLen,
			maxSigLen)
		return nil, signatureError(ErrSigTooLong, str)
	}
	if sig[sequenceOffset] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: %#x",
			sig[sequenceOffset])
		return nil, signatureError(ErrSigInvalidSeqID, str)
	}
	if int(sig[dataLenOffset]) != sigLen-2 {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d",
			sig[dataLenOffset], sigLen-2)
		return nil, signatureError(ErrSigInvalidDataLen, str)
	}

	rLen := int(sig[rLenOffset])
	sTypeOffset := rOffset + rLen
	sLenOffset := sTypeOffset + 1
	if sTypeOffset >= sigLen {
		str := "malformed signature: S type indicator missing"
		return nil, signatureError(ErrSigMissingSTypeID, str)
	}
	if sLenOffset >= sigLen {
		str := "malformed signature: S length missing"
		return nil, signatureError(ErrSigMissingSLen, str)
	}
	sOffset := sLenOffset + 1
	sLen := int(sig[sLenOffset])
	if sOffset+sLen != sigLen {
		str := "malformed signature: invalid S length"
		return nil, signatureError(ErrSigInvalidSLen, str)
	}

	if sig[rTypeOffset] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: R integer marker: %#x != %#x",
			sig[rTypeOffset], asn1IntegerID)
		return nil, signatureError(ErrSigInvalidRIntID, str)
	}
	if rLen == 0 {
		str := "malformed signature: R length is zero"
		return nil, signatureError(ErrSigZeroRLen, str)
	}
	if sig[rOffset]&0x80 != 0 {
		str := "malformed signature: R is negative"
		return nil, signatureError(ErrSigNegativeR, str)
	}
	if rLen > 1 && sig[rOffset] == 0x00 && sig[rOffset+1]&0x80 == 0 {
		str := "malformed signature: R value has too much padding"
		return nil, signatureError(ErrSigTooMuchRPadding, str)
	}

	if sig[sTypeOffset] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: S integer marker: %#x != %#x",
			sig[sTypeOffset], asn1IntegerID)
		return nil, signatureError(ErrSigInvalidSIntID, str)
	}
	if sLen == 0 {
		str := "malformed signature: S length is zero"
		return nil, signatureError(ErrSigZeroSLen, str)
	}
	if sig[sOffset]&0x80 != 0 {
		str := "malformed signature: S is negative"
		return nil, signatureError(ErrSigNegativeS, str)
	}
	if sLen > 1 && sig[sOffset] == 0x00 && sig[sOffset+1]&0x80 == 0 {
		str := "malformed signature: S value has too much padding"
		return nil, signatureError(ErrSigTooMuchSPadding, str)
	}

	r, err := parseDERInt(sig[rOffset:rOffset+rLen], "R", ErrSigRTooBig, ErrSigRIsZero)
	if err != nil {
		return nil, err
	}
	s, err := parseDERInt(sig[sOffset:sOffset+sLen], "S", ErrSigSTooBig, ErrSigSIsZero)
	if err != nil {
		return nil, err
	}
	return &Signature{r: r, s: s}, nil
}
