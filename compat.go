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

// Compatible checks the compatibility predicate of §4.G/§7: k, alphabet,
// and seed must match exactly. Selection regimes must match exactly
// unless allowDownsample is true, in which case two scaled-mode sketches
// with differing Scaled are still considered compatible (the caller is
// expected to virtually downsample before comparing); a num/scaled
// mismatch, or differing Num values, is never reconciled by downsampling.
func Compatible(a, b *Sketch, allowDownsample bool) error {
	if a.K != b.K {
		return ErrMismatchKSize
	}
	if a.Alphabet != b.Alphabet {
		return ErrMismatchAlphabet
	}
	if a.Seed != b.Seed {
		return ErrMismatchSeed
	}

	aScaled := a.Num == 0
	bScaled := b.Num == 0
	if aScaled != bScaled {
		return ErrMismatchSelection
	}

	if !aScaled { // both num-mode
		if a.Num != b.Num {
			return ErrMismatchSelection
		}
		return nil
	}

	// both scaled-mode
	if a.Scaled != b.Scaled && !allowDownsample {
		return ErrMismatchSelection
	}
	return nil
}
