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
	"testing"
)

func TestTranslateCodon(t *testing.T) {
	cases := map[string]byte{
		"ATG": 'M',
		"TAA": '*',
		"GCT": 'A',
		"GCN": 'A',
		"CG":  'R', // CGN -> R after N padding
		"A":   'X',
	}
	for codon, want := range cases {
		got, err := TranslateCodon([]byte(codon))
		if err != nil {
			t.Fatalf("TranslateCodon(%s): %s", codon, err)
		}
		if got != want {
			t.Errorf("TranslateCodon(%s) = %c, want %c", codon, got, want)
		}
	}

	if _, err := TranslateCodon([]byte("ACGTA")); err != ErrInvalidCodonLength {
		t.Errorf("expected ErrInvalidCodonLength for overlong codon")
	}
}

func TestTranslate(t *testing.T) {
	aa, err := Translate([]byte("ATGGCTTAA"))
	if err != nil {
		t.Fatal(err)
	}
	if string(aa) != "MA*" {
		t.Errorf("Translate(ATGGCTTAA) = %s, want MA*", aa)
	}

	// a trailing partial codon is still translated, not dropped.
	aa, err = Translate([]byte("ATGGC"))
	if err != nil {
		t.Fatal(err)
	}
	if len(aa) != 2 {
		t.Errorf("Translate(ATGGC) should yield 2 residues, got %d (%s)", len(aa), aa)
	}
}

func TestReencodeProtein(t *testing.T) {
	aa := []byte("ACDEFGHIKLMNPQRSTVWY")

	if got := ReencodeProtein(aa, AlphabetProtein); string(got) != string(aa) {
		t.Errorf("ReencodeProtein identity failed: %s", got)
	}

	dayhoff := ReencodeProtein(aa, AlphabetDayhoff)
	if len(dayhoff) != len(aa) {
		t.Fatalf("dayhoff re-encoding changed length")
	}
	for _, c := range dayhoff {
		switch c {
		case 'a', 'b', 'c', 'd', 'e', 'f':
		default:
			t.Errorf("unexpected dayhoff class byte %c", c)
		}
	}

	hp := ReencodeProtein(aa, AlphabetHP)
	for _, c := range hp {
		if c != 'h' && c != 'p' {
			t.Errorf("unexpected hp class byte %c", c)
		}
	}
}
