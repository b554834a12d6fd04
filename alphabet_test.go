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

import "testing"

func TestAlphabetString(t *testing.T) {
	cases := map[Alphabet]string{
		AlphabetDNA:     "DNA",
		AlphabetProtein: "protein",
		AlphabetDayhoff: "dayhoff",
		AlphabetHP:      "hp",
	}
	for a, want := range cases {
		if got := a.String(); got != want {
			t.Errorf("%d.String() = %s, want %s", a, got, want)
		}
	}
}

func TestAlphabetIsProtein(t *testing.T) {
	if AlphabetDNA.IsProtein() {
		t.Error("DNA should not be IsProtein")
	}
	for _, a := range []Alphabet{AlphabetProtein, AlphabetDayhoff, AlphabetHP} {
		if !a.IsProtein() {
			t.Errorf("%s should be IsProtein", a)
		}
	}
}

func TestAlphabetFromMolecule(t *testing.T) {
	for molecule, want := range map[string]Alphabet{
		"DNA": AlphabetDNA, "dna": AlphabetDNA,
		"protein": AlphabetProtein,
		"dayhoff": AlphabetDayhoff,
		"hp":      AlphabetHP,
	} {
		got, err := alphabetFromMolecule(molecule)
		if err != nil {
			t.Fatalf("alphabetFromMolecule(%s): %s", molecule, err)
		}
		if got != want {
			t.Errorf("alphabetFromMolecule(%s) = %v, want %v", molecule, got, want)
		}
	}

	if _, err := alphabetFromMolecule("rna"); err == nil {
		t.Error("expected error for unknown molecule")
	}
}
