// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package sourmash

import "errors"

// ErrorKind classifies a sourmash error so callers can switch on the
// failure mode instead of string-matching error text.
type ErrorKind int

// Error kinds, see spec §7.
const (
	_ ErrorKind = iota
	KindMismatchKSize
	KindMismatchAlphabet
	KindMismatchSeed
	KindMismatchSelection
	KindInvalidDNA
	KindInvalidProtein
	KindInvalidCodonLength
	KindInvalidSelection
	KindAbundanceRequired
	KindSerde
	KindLicenseRejected
)

func (k ErrorKind) String() string {
	switch k {
	case KindMismatchKSize:
		return "MismatchKSize"
	case KindMismatchAlphabet:
		return "MismatchAlphabet"
	case KindMismatchSeed:
		return "MismatchSeed"
	case KindMismatchSelection:
		return "MismatchSelection"
	case KindInvalidDNA:
		return "InvalidDNA"
	case KindInvalidProtein:
		return "InvalidProtein"
	case KindInvalidCodonLength:
		return "InvalidCodonLength"
	case KindInvalidSelection:
		return "InvalidSelection"
	case KindAbundanceRequired:
		return "AbundanceRequired"
	case KindSerde:
		return "SerdeError"
	case KindLicenseRejected:
		return "LicenseRejected"
	default:
		return "Unknown"
	}
}

// Error is a sourmash domain error: a stable Kind plus a human message.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return "sourmash: " + e.Kind.String() + ": " + e.Msg }

func newErr(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Is reports whether err (or something it wraps) is a sourmash *Error of
// the given kind. Supports errors.Is(err, sourmash.ErrMismatchSeed) style
// checks since sentinel values below carry a Kind of their own.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors, one per Kind, for errors.Is comparisons against a
// known-shape error without caring about the message.
var (
	ErrMismatchKSize      = newErr(KindMismatchKSize, "k-mer size differs across operands")
	ErrMismatchAlphabet   = newErr(KindMismatchAlphabet, "alphabet differs across operands")
	ErrMismatchSeed       = newErr(KindMismatchSeed, "hash seed differs across operands")
	ErrMismatchSelection  = newErr(KindMismatchSelection, "selection regime is incompatible")
	ErrInvalidDNA         = newErr(KindInvalidDNA, "non-ACGT byte without force")
	ErrInvalidProtein     = newErr(KindInvalidProtein, "codon or translation error")
	ErrInvalidCodonLength = newErr(KindInvalidCodonLength, "codon length outside {1,2,3}")
	ErrInvalidSelection   = newErr(KindInvalidSelection, "exactly one of num/scaled must be nonzero")
	ErrAbundanceRequired  = newErr(KindAbundanceRequired, "angular similarity requires abundance tracking on both sketches")
	ErrSerde              = newErr(KindSerde, "malformed signature document")
	ErrLicenseRejected    = newErr(KindLicenseRejected, "license is not CC0 and strict license mode is enabled")
)

// ErrIllegalBase means a byte outside the accepted DNA/protein alphabet was
// seen where no degenerate handling applies.
var ErrIllegalBase = errors.New("sourmash: illegal base or residue")

// ErrEmptySeq means the input sequence was empty.
var ErrEmptySeq = errors.New("sourmash: empty sequence")

// ErrShortSeq is returned for a k-mer size below 1, which no sequence can
// be sliced with. A sequence shorter than a valid k is not an error: it
// simply yields no k-mers.
var ErrShortSeq = errors.New("sourmash: sequence shorter than k")
