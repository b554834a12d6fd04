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
	"math"
	"sort"

	"github.com/twotwotwo/sorts/sortutil"
)

// maxUint64 is the full 64-bit hash space ceiling, (2^64)-1.
const maxUint64 = ^uint64(0)

// parallelSortThreshold is the batch size above which AddMany reaches for
// the parallel sorter instead of the stdlib one, mirroring the teacher's
// own threshold-gated use of twotwotwo/sorts in cmd/common.go.
const parallelSortThreshold = 8192

// Sketch is a bounded, ordered multiset of 64-bit hashes with optional
// per-hash abundance, per spec §3/§4.D. Its fixed parameters (K, Alphabet,
// Seed, Num, Scaled, TrackAbundance) are set at construction and never
// change; mins/abunds are the only mutable state. A Sketch is a plain
// value type and is not safe for concurrent mutation (§5).
type Sketch struct {
	K              int
	Alphabet       Alphabet
	Seed           uint64
	Num            uint64 // 0 means scaled-mode
	Scaled         uint64 // 0 means num-mode
	MaxHash        uint64 // derived from Scaled; 0 in num-mode
	TrackAbundance bool
	Force          bool // DNA force flag consulted by AddSequence

	mins   []uint64
	abunds []uint64 // nil unless TrackAbundance; parallel to mins
}

// NewSketch constructs a Sketch with fixed parameters. Exactly one of
// num/scaled must be nonzero (§3); for protein alphabets, k must be a
// multiple of 3 (the amino-acid window is k/3, §3).
func NewSketch(k int, alphabet Alphabet, seed uint64, num, scaled uint64, trackAbundance bool) (*Sketch, error) {
	if (num == 0) == (scaled == 0) {
		return nil, ErrInvalidSelection
	}
	if k < 1 {
		return nil, ErrShortSeq
	}
	if alphabet.IsProtein() && k%3 != 0 {
		return nil, newErr(KindInvalidSelection, "protein-family k must be divisible by 3")
	}

	s := &Sketch{
		K:              k,
		Alphabet:       alphabet,
		Seed:           seed,
		Num:            num,
		Scaled:         scaled,
		TrackAbundance: trackAbundance,
	}
	if scaled > 0 {
		s.MaxHash = maxUint64 / scaled
	}

	capacity := 1000
	if num > 0 {
		capacity = int(num) + 1
	}
	s.mins = make([]uint64, 0, capacity)
	if trackAbundance {
		s.abunds = make([]uint64, 0, capacity)
	}
	return s, nil
}

// Len returns the current cardinality of the sketch.
func (s *Sketch) Len() int { return len(s.mins) }

// Mins returns the ordered, strictly ascending backing hash set. The
// caller must not mutate the returned slice.
func (s *Sketch) Mins() []uint64 { return s.mins }

// Abunds returns the per-hash abundance array parallel to Mins, or nil if
// TrackAbundance is false.
func (s *Sketch) Abunds() []uint64 { return s.abunds }

// search returns the index of h in mins, and whether it was found.
func (s *Sketch) search(h uint64) (int, bool) {
	i := sort.Search(len(s.mins), func(i int) bool { return s.mins[i] >= h })
	if i < len(s.mins) && s.mins[i] == h {
		return i, true
	}
	return i, false
}

// AddHash inserts one hash with abundance 1 (or increments its existing
// abundance by 1), applying the num/scaled bound-eviction discipline of
// §4.D.
func (s *Sketch) AddHash(h uint64) {
	s.addHashN(h, 1)
}

// addHashN is AddHash generalized to a batch count, used by AddMany to
// fold duplicate hashes in one pass before touching the backing arrays.
func (s *Sketch) addHashN(h uint64, count uint64) {
	if s.Scaled > 0 && h > s.MaxHash {
		return
	}

	i, found := s.search(h)
	if found {
		if s.TrackAbundance {
			s.abunds[i] += count
		}
		return
	}

	if s.Num > 0 {
		if uint64(len(s.mins)) < s.Num {
			s.insertAt(i, h, count)
			return
		}
		// full: only accept a hash smaller than the current maximum.
		if h > s.mins[len(s.mins)-1] {
			return
		}
		s.insertAt(i, h, count)
		s.popMax()
		return
	}

	// scaled-mode: unbounded, no eviction.
	s.insertAt(i, h, count)
}

// insertAt inserts h (with abundance seed value count, if tracking) at
// position i, keeping mins strictly ascending.
func (s *Sketch) insertAt(i int, h uint64, count uint64) {
	s.mins = append(s.mins, 0)
	copy(s.mins[i+1:], s.mins[i:])
	s.mins[i] = h

	if s.TrackAbundance {
		s.abunds = append(s.abunds, 0)
		copy(s.abunds[i+1:], s.abunds[i:])
		s.abunds[i] = count
	}
}

// popMax removes the largest entry (and its abundance), used to restore
// |mins| <= Num after an insertion in num-mode.
func (s *Sketch) popMax() {
	last := len(s.mins) - 1
	s.mins = s.mins[:last]
	if s.TrackAbundance {
		s.abunds = s.abunds[:last]
	}
}

// AddMany adds a batch of hashes. Semantically equivalent to calling
// AddHash in a loop, but sorts and folds duplicates first for amortized
// O(n log n) cost, per §4.D.
func (s *Sketch) AddMany(hashes []uint64) {
	if len(hashes) == 0 {
		return
	}
	sorted := make([]uint64, len(hashes))
	copy(sorted, hashes)
	if len(sorted) >= parallelSortThreshold {
		sortutil.Uint64s(sorted)
	} else {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	}

	var i int
	for i < len(sorted) {
		h := sorted[i]
		count := uint64(1)
		j := i + 1
		for j < len(sorted) && sorted[j] == h {
			count++
			j++
		}
		i = j

		if s.Num > 0 && uint64(len(s.mins)) == s.Num && h > s.mins[len(s.mins)-1] {
			// sorted ascending: every remaining hash is >= h, so also rejected.
			break
		}
		s.addHashN(h, count)
	}
}

// AddSequence feeds every k-mer hash KmerIterator emits for s into the
// sketch (component C into component D, §4.C). If the iterator errors
// partway (InvalidDNA without force), the k-mers processed before the
// error remain in the sketch — there is no rollback,
// per §4.C/§9's documented choice.
func (s *Sketch) AddSequence(seq []byte, sourceIsNucleotide bool) error {
	var it *KmerIterator
	var err error

	if s.Alphabet == AlphabetDNA {
		it, err = NewDNAIterator(seq, s.K, s.Seed, s.Force)
	} else {
		it, err = NewProteinIterator(seq, s.K, s.Seed, s.Alphabet, sourceIsNucleotide)
	}
	if err != nil {
		return err
	}

	for {
		h, ok, iterErr := it.Next()
		if !ok {
			return iterErr
		}
		s.AddHash(h)
	}
}

// RemoveHash removes h (and its abundance, if tracked). No error if h is
// absent, per §4.D.
func (s *Sketch) RemoveHash(h uint64) {
	i, found := s.search(h)
	if !found {
		return
	}
	s.mins = append(s.mins[:i], s.mins[i+1:]...)
	if s.TrackAbundance {
		s.abunds = append(s.abunds[:i], s.abunds[i+1:]...)
	}
}

// RemoveMany removes every hash in hs (absent ones are no-ops).
func (s *Sketch) RemoveMany(hs []uint64) {
	for _, h := range hs {
		s.RemoveHash(h)
	}
}

// Merge unions other into s in place. Requires s and other to be
// compatible (§4.G); additionally, per the documented open-question
// resolution (§9), both sides must agree on TrackAbundance or Merge fails
// with MismatchSelection. Colliding hashes sum abundances when both track;
// after merging, a num-mode sketch is truncated back to its N smallest.
func (s *Sketch) Merge(other *Sketch) error {
	if err := Compatible(s, other, false); err != nil {
		return err
	}
	if s.TrackAbundance != other.TrackAbundance {
		return ErrMismatchSelection
	}

	merged := make([]uint64, 0, len(s.mins)+len(other.mins))
	var mergedAbunds []uint64
	if s.TrackAbundance {
		mergedAbunds = make([]uint64, 0, len(s.mins)+len(other.mins))
	}

	i, j := 0, 0
	for i < len(s.mins) && j < len(other.mins) {
		switch {
		case s.mins[i] < other.mins[j]:
			merged = append(merged, s.mins[i])
			if s.TrackAbundance {
				mergedAbunds = append(mergedAbunds, s.abunds[i])
			}
			i++
		case s.mins[i] > other.mins[j]:
			merged = append(merged, other.mins[j])
			if s.TrackAbundance {
				mergedAbunds = append(mergedAbunds, other.abunds[j])
			}
			j++
		default:
			merged = append(merged, s.mins[i])
			if s.TrackAbundance {
				mergedAbunds = append(mergedAbunds, s.abunds[i]+other.abunds[j])
			}
			i++
			j++
		}
	}
	for ; i < len(s.mins); i++ {
		merged = append(merged, s.mins[i])
		if s.TrackAbundance {
			mergedAbunds = append(mergedAbunds, s.abunds[i])
		}
	}
	for ; j < len(other.mins); j++ {
		merged = append(merged, other.mins[j])
		if s.TrackAbundance {
			mergedAbunds = append(mergedAbunds, other.abunds[j])
		}
	}

	if s.Num > 0 && uint64(len(merged)) > s.Num {
		merged = merged[:s.Num]
		if s.TrackAbundance {
			mergedAbunds = mergedAbunds[:s.Num]
		}
	}

	s.mins = merged
	s.abunds = mergedAbunds
	return nil
}

// Intersection returns a new Sketch (with s's parameters) holding the
// hashes common to s and other. Requires compatibility. Abundances, when
// both sides track, are the per-entry minima; otherwise the result does
// not track abundance.
func (s *Sketch) Intersection(other *Sketch) (*Sketch, error) {
	if err := Compatible(s, other, false); err != nil {
		return nil, err
	}

	trackAbundance := s.TrackAbundance && other.TrackAbundance
	out, err := NewSketch(s.K, s.Alphabet, s.Seed, s.Num, s.Scaled, trackAbundance)
	if err != nil {
		return nil, err
	}

	i, j := 0, 0
	for i < len(s.mins) && j < len(other.mins) {
		switch {
		case s.mins[i] < other.mins[j]:
			i++
		case s.mins[i] > other.mins[j]:
			j++
		default:
			out.mins = append(out.mins, s.mins[i])
			if trackAbundance {
				out.abunds = append(out.abunds, min64(s.abunds[i], other.abunds[j]))
			}
			i++
			j++
		}
	}
	return out, nil
}

// UnionSize returns |s ∪ other| = |s| + |other| - |s ∩ other|. Requires
// compatibility.
func (s *Sketch) UnionSize(other *Sketch) (uint64, error) {
	common, err := s.CountCommon(other, false)
	if err != nil {
		return 0, err
	}
	return uint64(len(s.mins)) + uint64(len(other.mins)) - common, nil
}

// CountCommon returns the size of s ∩ other. If downsample is true and
// both sketches are scaled-mode, they are virtually downsampled to the
// larger Scaled (i.e. the smaller MaxHash) before counting, without
// mutating either sketch; otherwise strict compatibility is required.
func (s *Sketch) CountCommon(other *Sketch, downsample bool) (uint64, error) {
	if downsample && s.Scaled > 0 && other.Scaled > 0 {
		if err := Compatible(s, other, true); err != nil {
			return 0, err
		}
		maxHash := s.MaxHash
		if other.MaxHash < maxHash {
			maxHash = other.MaxHash
		}
		return countCommonBounded(s.mins, other.mins, maxHash), nil
	}

	if err := Compatible(s, other, false); err != nil {
		return 0, err
	}
	return countCommonBounded(s.mins, other.mins, maxUint64), nil
}

// countCommonBounded counts the intersection size of two ascending hash
// slices, only considering entries <= bound.
func countCommonBounded(a, b []uint64, bound uint64) uint64 {
	var n uint64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] > bound {
			break
		}
		if b[j] > bound {
			break
		}
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

// Jaccard returns |s ∩ other| / |s ∪ other|, 0 if the union is empty.
// Requires compatibility (no implicit downsampling, §1 Non-goals).
func (s *Sketch) Jaccard(other *Sketch) (float64, error) {
	common, err := s.CountCommon(other, false)
	if err != nil {
		return 0, err
	}
	union := uint64(len(s.mins)) + uint64(len(other.mins)) - common
	if union == 0 {
		return 0, nil
	}
	return float64(common) / float64(union), nil
}

// Containment returns |s ∩ other| / |s|, 0 if s is empty. Requires
// compatibility.
func (s *Sketch) Containment(other *Sketch) (float64, error) {
	common, err := s.CountCommon(other, false)
	if err != nil {
		return 0, err
	}
	if len(s.mins) == 0 {
		return 0, nil
	}
	return float64(common) / float64(len(s.mins)), nil
}

// AngularSimilarity treats (mins, abunds) as a sparse vector and returns
// the angular similarity 1 - 2*acos(cos)/pi between s and other. Both
// sketches must track abundance, else it fails with AbundanceRequired.
func (s *Sketch) AngularSimilarity(other *Sketch) (float64, error) {
	if err := Compatible(s, other, false); err != nil {
		return 0, err
	}
	if !s.TrackAbundance || !other.TrackAbundance {
		return 0, ErrAbundanceRequired
	}

	var dot, normA, normB float64
	i, j := 0, 0
	for i < len(s.mins) && j < len(other.mins) {
		switch {
		case s.mins[i] < other.mins[j]:
			normA += float64(s.abunds[i]) * float64(s.abunds[i])
			i++
		case s.mins[i] > other.mins[j]:
			normB += float64(other.abunds[j]) * float64(other.abunds[j])
			j++
		default:
			dot += float64(s.abunds[i]) * float64(other.abunds[j])
			normA += float64(s.abunds[i]) * float64(s.abunds[i])
			normB += float64(other.abunds[j]) * float64(other.abunds[j])
			i++
			j++
		}
	}
	for ; i < len(s.mins); i++ {
		normA += float64(s.abunds[i]) * float64(s.abunds[i])
	}
	for ; j < len(other.mins); j++ {
		normB += float64(other.abunds[j]) * float64(other.abunds[j])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos > 1 {
		cos = 1
	} else if cos < 0 {
		cos = 0
	}
	return 1 - (2*math.Acos(cos))/math.Pi, nil
}

// DownsampleScaled returns a new Sketch with a larger Scaled (smaller
// MaxHash), retaining only the entries of s that still qualify.
// Abundance, if tracked, is preserved pointwise. It is an error to
// "downsample" to a smaller Scaled (that would enlarge the set).
func (s *Sketch) DownsampleScaled(newScaled uint64) (*Sketch, error) {
	if s.Scaled == 0 || newScaled < s.Scaled {
		return nil, ErrMismatchSelection
	}
	out, err := NewSketch(s.K, s.Alphabet, s.Seed, 0, newScaled, s.TrackAbundance)
	if err != nil {
		return nil, err
	}
	for i, h := range s.mins {
		if h > out.MaxHash {
			break
		}
		out.mins = append(out.mins, h)
		if s.TrackAbundance {
			out.abunds = append(out.abunds, s.abunds[i])
		}
	}
	return out, nil
}

// DownsampleNum returns a new Sketch bounded to a smaller Num, keeping the
// newNum smallest hashes of s. Abundance, if tracked, is preserved
// pointwise. It is an error to "downsample" to a larger Num.
func (s *Sketch) DownsampleNum(newNum uint64) (*Sketch, error) {
	if s.Num == 0 || newNum > s.Num {
		return nil, ErrMismatchSelection
	}
	out, err := NewSketch(s.K, s.Alphabet, s.Seed, newNum, 0, s.TrackAbundance)
	if err != nil {
		return nil, err
	}
	n := int(newNum)
	if n > len(s.mins) {
		n = len(s.mins)
	}
	out.mins = append(out.mins, s.mins[:n]...)
	if s.TrackAbundance {
		out.abunds = append(out.abunds, s.abunds[:n]...)
	}
	return out, nil
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
