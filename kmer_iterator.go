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

// KmerIterator is a lazy, finite, non-restartable stream of 64-bit k-mer
// hashes drawn from a single input sequence under a Sketch's (k, alphabet,
// seed) parameters, per §4.C. A KmerIterator is not safe for concurrent
// use — like a Sketch, it is a plain mutable value (§5).
type KmerIterator struct {
	k        int
	seed     uint64
	alphabet Alphabet
	force    bool

	// dnaSeq holds the uppercased input for the DNA path.
	dnaSeq []byte
	dnaPos int

	// frames holds one re-encoded amino-acid sequence per reading frame:
	// length 1 for the protein-direct path, length 6 (3 forward + 3
	// reverse-complement) for the protein-from-DNA path.
	frames    [][]byte
	frameSize int // k/3, the amino-acid window width
	frameIdx  int
	framePos  int

	isProtein bool // dispatches Next between the DNA and protein paths
	done      bool
	err       error
}

// NewDNAIterator returns a KmerIterator over DNA k-mers of s, hashed with
// seed. If force is true, k-mers containing a non-ACGT byte are silently
// skipped instead of raising InvalidDNA.
func NewDNAIterator(s []byte, k int, seed uint64, force bool) (*KmerIterator, error) {
	if k < 1 {
		return nil, ErrShortSeq
	}
	if len(s) == 0 {
		return nil, ErrEmptySeq
	}
	return &KmerIterator{
		k:        k,
		seed:     seed,
		alphabet: AlphabetDNA,
		force:    force,
		dnaSeq:   UppercaseDNA(s),
	}, nil
}

// NewProteinIterator returns a KmerIterator over alphabet (Protein, Dayhoff,
// or HP) k-mers of s. k is the nucleotide-equivalent size (must be
// divisible by 3); the effective amino-acid window is k/3. If
// sourceIsNucleotide is true, s is translated in all 6 frames (3 forward,
// 3 on the reverse complement) before re-encoding and sliding the window,
// per §4.C's protein-from-DNA path; otherwise s is treated as already
// being amino acids (protein-direct path).
func NewProteinIterator(s []byte, k int, seed uint64, alphabet Alphabet, sourceIsNucleotide bool) (*KmerIterator, error) {
	if k < 1 || k%3 != 0 {
		return nil, newErr(KindInvalidSelection, "protein k-size must be a positive multiple of 3")
	}
	if len(s) == 0 {
		return nil, ErrEmptySeq
	}
	frameSize := k / 3

	it := &KmerIterator{
		k:         k,
		seed:      seed,
		alphabet:  alphabet,
		frameSize: frameSize,
		isProtein: true,
	}

	if sourceIsNucleotide {
		upper := UppercaseDNA(s)
		rc := ReverseComplement(upper)
		frames := make([][]byte, 0, 6)
		for _, strand := range [2][]byte{upper, rc} {
			for shift := 0; shift < 3; shift++ {
				if shift >= len(strand) {
					frames = append(frames, nil)
					continue
				}
				aa, err := Translate(strand[shift:])
				if err != nil {
					return nil, err
				}
				frames = append(frames, ReencodeProtein(aa, alphabet))
			}
		}
		it.frames = frames
	} else {
		it.frames = [][]byte{ReencodeProtein(s, alphabet)}
	}

	return it, nil
}

// Next returns the next k-mer hash in the stream. ok is false once the
// stream is exhausted; err is non-nil only on InvalidDNA (without force),
// after which the iterator is also exhausted. Translation errors surface
// from NewProteinIterator, before any hash is emitted.
// K-mers already emitted before an error remain valid — there is no
// rollback (§4.C).
func (it *KmerIterator) Next() (hash uint64, ok bool, err error) {
	if it.done {
		return 0, false, it.err
	}
	if it.isProtein {
		return it.nextProtein()
	}
	return it.nextDNA()
}

func (it *KmerIterator) nextDNA() (uint64, bool, error) {
	for it.dnaPos+it.k <= len(it.dnaSeq) {
		mer := it.dnaSeq[it.dnaPos : it.dnaPos+it.k]
		it.dnaPos++

		ok := true
		for _, b := range mer {
			if !isDNABase(b) {
				ok = false
				break
			}
		}
		if !ok {
			if it.force {
				continue
			}
			it.done = true
			it.err = ErrInvalidDNA
			return 0, false, ErrInvalidDNA
		}

		canon := Canonical(mer)
		return hashKmer(canon, it.seed), true, nil
	}
	it.done = true
	return 0, false, nil
}

func (it *KmerIterator) nextProtein() (uint64, bool, error) {
	for it.frameIdx < len(it.frames) {
		frame := it.frames[it.frameIdx]
		if it.framePos+it.frameSize > len(frame) {
			it.frameIdx++
			it.framePos = 0
			continue
		}
		window := frame[it.framePos : it.framePos+it.frameSize]
		it.framePos++
		return hashKmer(window, it.seed), true, nil
	}
	it.done = true
	return 0, false, nil
}
