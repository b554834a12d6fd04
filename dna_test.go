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

import (
	"bytes"
	"math/rand"
	"testing"
)

var randomDNAMers [][]byte

func init() {
	bases := []byte("ACGT")
	randomDNAMers = make([][]byte, 1000)
	for i := range randomDNAMers {
		mer := make([]byte, rand.Intn(30)+1)
		for j := range mer {
			mer[j] = bases[rand.Intn(4)]
		}
		randomDNAMers[i] = mer
	}
}

func TestUppercaseDNA(t *testing.T) {
	got := UppercaseDNA([]byte("acgtACGT"))
	if !bytes.Equal(got, []byte("ACGTACGT")) {
		t.Errorf("UppercaseDNA: got %s", got)
	}
}

func TestValidateDNA(t *testing.T) {
	if _, ok, err := ValidateDNA([]byte("ACGT"), false); !ok || err != nil {
		t.Errorf("ACGT should validate, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := ValidateDNA([]byte("ACGN"), false); ok || err != ErrInvalidDNA {
		t.Errorf("ACGN should fail with ErrInvalidDNA, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := ValidateDNA([]byte("ACGN"), true); ok || err != nil {
		t.Errorf("ACGN with force should fail silently, got ok=%v err=%v", ok, err)
	}
}

func TestReverseComplement(t *testing.T) {
	cases := map[string]string{
		"A":    "T",
		"ACGT": "ACGT",
		"AAAA": "TTTT",
		"GATTACA": "TGTAATC",
	}
	for in, want := range cases {
		got := ReverseComplement([]byte(in))
		if string(got) != want {
			t.Errorf("ReverseComplement(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestCanonical(t *testing.T) {
	// AAAA's reverse complement is TTTT; AAAA < TTTT lexically.
	if got := Canonical([]byte("AAAA")); string(got) != "AAAA" {
		t.Errorf("Canonical(AAAA) = %s", got)
	}
	if got := Canonical([]byte("TTTT")); string(got) != "AAAA" {
		t.Errorf("Canonical(TTTT) = %s", got)
	}

	for _, mer := range randomDNAMers {
		a := Canonical(mer)
		b := Canonical(ReverseComplement(mer))
		if !bytes.Equal(a, b) {
			t.Fatalf("Canonical not invariant under reverse complement for %s", mer)
		}
	}
}
