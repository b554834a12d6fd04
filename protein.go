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

// codonTable is the standard genetic code, keyed by an uppercased 3-byte
// codon. Fourfold-degenerate codons additionally carry an N-ambiguity
// entry (e.g. "GCN" -> 'A'), per §4.B.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L', "CTN": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V', "GTN": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "TCN": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P', "CCN": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T', "ACN": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A', "GCN": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "CGN": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G', "GGN": 'G',
}

// TranslateCodon maps a 3-nucleotide codon to its amino acid, per the
// standard genetic code with N-ambiguity entries for fourfold-degenerate
// codons. A 2-byte codon (truncated at the end of a frame) is padded with
// 'N'; a 1-byte remainder maps to 'X'; any other length is a caller error
// (§4.B — unreachable from Translate, which only ever hands it 1..3 bytes).
func TranslateCodon(codon []byte) (byte, error) {
	switch len(codon) {
	case 3:
		c := UppercaseDNA(codon)
		if aa, ok := codonTable[string(c)]; ok {
			return aa, nil
		}
		return 'X', nil
	case 2:
		c := append(UppercaseDNA(codon), 'N')
		if aa, ok := codonTable[string(c)]; ok {
			return aa, nil
		}
		return 'X', nil
	case 1:
		return 'X', nil
	default:
		return 0, ErrInvalidCodonLength
	}
}

// Translate converts a nucleotide sequence into its amino-acid translation,
// codon by codon, stopping at the last full-or-partial codon (floor to a
// multiple of 3 is the caller's job if an exact frame is wanted). Per
// §4.C, this never errors except on the unreachable >3-byte codon case.
func Translate(seq []byte) ([]byte, error) {
	n := len(seq) / 3
	rem := len(seq) % 3
	out := make([]byte, 0, n+1)
	for i := 0; i < n; i++ {
		aa, err := TranslateCodon(seq[i*3 : i*3+3])
		if err != nil {
			return out, err
		}
		out = append(out, aa)
	}
	if rem > 0 {
		aa, err := TranslateCodon(seq[n*3:])
		if err != nil {
			return out, err
		}
		out = append(out, aa)
	}
	return out, nil
}

// dayhoffTable partitions the 20 standard amino acids into Dayhoff's 6
// classes: sulfur(a), small(b), acid+amide(c), basic(d), hydrophobic(e),
// aromatic(f). Unknowns (including '*' and 'X') map to 'X'.
var dayhoffTable = map[byte]byte{
	'C': 'a',
	'A': 'b', 'G': 'b', 'P': 'b', 'S': 'b', 'T': 'b',
	'D': 'c', 'E': 'c', 'N': 'c', 'Q': 'c',
	'H': 'd', 'K': 'd', 'R': 'd',
	'I': 'e', 'L': 'e', 'M': 'e', 'V': 'e',
	'F': 'f', 'W': 'f', 'Y': 'f',
}

// ToDayhoff re-encodes an amino-acid byte into its Dayhoff class, per §4.B.
func ToDayhoff(aa byte) byte {
	if c, ok := dayhoffTable[aa]; ok {
		return c
	}
	return 'X'
}

// hpTable is the binary hydrophobic('h')/polar('p') reduction.
var hpTable = map[byte]byte{
	'A': 'h', 'C': 'h', 'F': 'h', 'I': 'h', 'L': 'h', 'M': 'h', 'V': 'h', 'W': 'h', 'Y': 'h',
	'G': 'p', 'P': 'p', 'S': 'p', 'T': 'p', 'D': 'p', 'E': 'p', 'N': 'p', 'Q': 'p', 'H': 'p', 'K': 'p', 'R': 'p',
}

// ToHP re-encodes an amino-acid byte into hydrophobic/polar, per §4.B.
func ToHP(aa byte) byte {
	if c, ok := hpTable[aa]; ok {
		return c
	}
	return 'X'
}

// ReencodeProtein applies the Alphabet's reduced encoding (Dayhoff or HP)
// to an amino-acid sequence in place conceptually, returning a new slice.
// Alphabet Protein is the identity map.
func ReencodeProtein(aa []byte, alphabet Alphabet) []byte {
	if alphabet == AlphabetProtein {
		return aa
	}
	out := make([]byte, len(aa))
	for i, b := range aa {
		switch alphabet {
		case AlphabetDayhoff:
			out[i] = ToDayhoff(b)
		case AlphabetHP:
			out[i] = ToHP(b)
		default:
			out[i] = b
		}
	}
	return out
}
