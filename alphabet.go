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

// Alphabet selects the residue encoding a Sketch hashes over, per §3.
type Alphabet uint8

// Alphabets, see GLOSSARY.
const (
	AlphabetDNA Alphabet = iota
	AlphabetProtein
	AlphabetDayhoff
	AlphabetHP
)

// String names an Alphabet the way the wire format spells it (§4.F).
func (a Alphabet) String() string {
	switch a {
	case AlphabetDNA:
		return "DNA"
	case AlphabetProtein:
		return "protein"
	case AlphabetDayhoff:
		return "dayhoff"
	case AlphabetHP:
		return "hp"
	default:
		return "unknown"
	}
}

// IsProtein reports whether a operates on amino acids (as opposed to raw
// nucleotides), i.e. whether the configured k must be divisible by 3.
func (a Alphabet) IsProtein() bool {
	return a != AlphabetDNA
}

// hashFunctionName returns the wire-format hash_function string for a, per
// §4.F's four molecule/hash_function pairings.
func (a Alphabet) hashFunctionName() string {
	switch a {
	case AlphabetDNA:
		return "0.murmur64"
	case AlphabetProtein:
		return "0.murmur64_protein"
	case AlphabetDayhoff:
		return "0.murmur64_dayhoff"
	case AlphabetHP:
		return "0.murmur64_hp"
	default:
		return "0.murmur64"
	}
}

// alphabetFromMolecule parses the wire-format "molecule" field.
func alphabetFromMolecule(s string) (Alphabet, error) {
	switch s {
	case "DNA", "dna":
		return AlphabetDNA, nil
	case "protein":
		return AlphabetProtein, nil
	case "dayhoff":
		return AlphabetDayhoff, nil
	case "hp":
		return AlphabetHP, nil
	default:
		return 0, newErr(KindSerde, "unknown molecule: "+s)
	}
}
