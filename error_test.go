package s256

import (
	"errors"
	"testing"
)

func TestErrorKindStringer(t *testing.T) {
	kinds := []ErrorKind{
		ErrPointNotOnCurve,
		ErrFieldOverflow,
		ErrPubKeyInvalidLen,
		ErrPubKeyInvalidFormat,
		ErrPubKeyXTooBig,
		ErrPubKeyYTooBig,
		ErrPubKeyNotOnCurve,
		ErrPubKeyInfinity,
		ErrPrivKeyOutOfRange,
		ErrPrivKeyInvalidLen,
		ErrBase58InvalidChar,
		ErrBase58TooShort,
		ErrBase58Checksum,
		ErrWIFInvalidLen,
		ErrWIFInvalidCompressFlag,
		ErrUnknownNetwork,
		ErrHashInvalidLen,
		ErrAddrInvalidLen,
		ErrSigTooShort,
		ErrSigTooLong,
		ErrSigInvalidSeqID,
		ErrSigInvalidDataLen,
		ErrSigMissingSTypeID,
		ErrSigMissingSLen,
		ErrSigInvalidSLen,
		ErrSigInvalidRIntID,
		ErrSigZeroRLen,
		ErrSigNegativeR,
		ErrSigTooMuchRPadding,
		ErrSigRIsZero,
		ErrSigRTooBig,
		ErrSigInvalidSIntID,
		ErrSigZeroSLen,
		ErrSigNegativeS,
		ErrSigTooMuchSPadding,
		ErrSigSIsZero,
		ErrSigSTooBig,
	}

	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.Error()
		if s != string(k) || s == "" {
			t.Errorf("bad string %q for kind %v", s, string(k))
		}
		if seen[s] {
			t.Errorf("duplicate kind %s", s)
		}
		seen[s] = true
	}
}

func TestError(t *testing.T) {
	err := makeError(ErrPubKeyInvalidLen, "human-readable error")
	if err.Error() != "human-readable error" {
		t.Errorf("got %q", err.Error())
	}
}

func TestErrorKindIsAs(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{
		{
			name:      "kind == kind",
			err:       ErrPubKeyInvalidLen,
			target:    ErrPubKeyInvalidLen,
			wantMatch: true,
			wantAs:    ErrPubKeyInvalidLen,
		},
		{
			name:      "Error == kind",
			err:       makeError(ErrPubKeyInvalidLen, ""),
			target:    ErrPubKeyInvalidLen,
			wantMatch: true,
			wantAs:    ErrPubKeyInvalidLen,
		},
		{
			name:      "Error == Error",
			err:       signatureError(ErrSigTooShort, ""),
			target:    signatureError(ErrSigTooShort, ""),
			wantMatch: true,
			wantAs:    ErrSigTooShort,
		},
		{
			name:      "kind != other kind",
			err:       ErrPubKeyInvalidFormat,
			target:    ErrPubKeyInvalidLen,
			wantMatch: false,
			wantAs:    ErrPubKeyInvalidFormat,
		},
		{
			name:      "Error != other kind",
			err:       encodingError(ErrBase58Checksum, ""),
			target:    ErrBase58TooShort,
			wantMatch: false,
			wantAs:    ErrBase58Checksum,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.wantMatch {
				t.Errorf("errors.Is = %v, want %v", got, tc.wantMatch)
			}

			var kind ErrorKind
			if !errors.As(tc.err, &kind) {
				t.Fatal("errors.As failed to find an ErrorKind")
			}
			if kind != tc.wantAs {
				t.Errorf("errors.As gave %v, want %v", kind, tc.wantAs)
			}
		})
	}
}
