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

import "bytes"

// complementTable maps each byte to its DNA complement; built once at
// package init so ReverseComplement is a single table lookup per base,
// following the teacher's bit2base lookup-table idiom in kmer.go.
var complementTable [256]byte

func init() {
	for i := 0; i < 256; i++ {
		complementTable[i] = byte(i)
	}
	complementTable['A'] = 'T'
	complementTable['T'] = 'A'
	complementTable['C'] = 'G'
	complementTable['G'] = 'C'
}

// uppercaseTable upper-cases a byte via table lookup instead of a branch,
// matching the cost profile the teacher's hot k-mer loops aim for.
var uppercaseTable [256]byte

func init() {
	for i := 0; i < 256; i++ {
		uppercaseTable[i] = byte(i)
	}
	for c := 'a'; c <= 'z'; c++ {
		uppercaseTable[c] = byte(c - 'a' + 'A')
	}
}

// isDNABase reports whether b (already uppercased) is one of A, C, G, T.
func isDNABase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// UppercaseDNA returns s with every byte uppercased, per §4.B.
func UppercaseDNA(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		out[i] = uppercaseTable[b]
	}
	return out
}

// ValidateDNA uppercases mer and checks every byte is in {A,C,G,T}. U
// (RNA) is rejected — callers must pre-convert RNA to DNA. If force is
// true, ValidateDNA never errors; instead ok is false so the caller can
// silently skip the offending k-mer, per §4.B/§7.
func ValidateDNA(mer []byte, force bool) (upper []byte, ok bool, err error) {
	upper = UppercaseDNA(mer)
	for _, b := range upper {
		if !isDNABase(b) {
			if force {
				return upper, false, nil
			}
			return upper, false, ErrInvalidDNA
		}
	}
	return upper, true, nil
}

// ReverseComplement returns the reverse complement of an already-uppercased
// DNA k-mer, via the 256-entry complement table (§4.B).
func ReverseComplement(mer []byte) []byte {
	n := len(mer)
	rc := make([]byte, n)
	for i := 0; i < n; i++ {
		rc[n-1-i] = complementTable[mer[i]]
	}
	return rc
}

// Canonical returns the lexicographically smaller of mer and its reverse
// complement, byte-wise (§4.B). mer must already be uppercased.
func Canonical(mer []byte) []byte {
	rc := ReverseComplement(mer)
	if bytes.Compare(rc, mer) < 0 {
		return rc
	}
	return mer
}
