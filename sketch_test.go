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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var randomHashes []uint64

func init() {
	randomHashes = make([]uint64, 5000)
	for i := range randomHashes {
		randomHashes[i] = rand.Uint64()
	}
}

func TestSketchNumModeBound(t *testing.T) {
	s, err := NewSketch(21, AlphabetDNA, DefaultSeed, 100, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	s.AddMany(randomHashes)
	if s.Len() != 100 {
		t.Fatalf("num-mode sketch should hold exactly 100 hashes, got %d", s.Len())
	}
	for i := 1; i < len(s.mins); i++ {
		if s.mins[i-1] >= s.mins[i] {
			t.Fatalf("mins not strictly ascending at %d", i)
		}
	}
}

func TestSketchScaledModeCutoff(t *testing.T) {
	s, err := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	s.AddMany(randomHashes)
	for _, h := range s.mins {
		if h > s.MaxHash {
			t.Fatalf("scaled-mode sketch retained a hash above MaxHash: %d > %d", h, s.MaxHash)
		}
	}
}

func TestSketchAbundance(t *testing.T) {
	s, err := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	s.AddHash(1)
	s.AddHash(1)
	s.AddHash(1)
	s.AddHash(2)
	if s.Len() != 2 {
		t.Fatalf("expected 2 distinct hashes, got %d", s.Len())
	}
	i, _ := s.search(1)
	if s.abunds[i] != 3 {
		t.Errorf("abundance of hash 1 should be 3, got %d", s.abunds[i])
	}
}

func TestSketchMergeAbundanceSum(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	a.AddHash(1)
	a.AddHash(1)
	b.AddHash(1)
	b.AddHash(2)

	if err := a.Merge(b); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 {
		t.Fatalf("expected 2 hashes after merge, got %d", a.Len())
	}
	i, _ := a.search(1)
	if a.abunds[i] != 3 {
		t.Errorf("merged abundance of hash 1 should be 3, got %d", a.abunds[i])
	}
}

func TestSketchMergeRequiresMatchingAbundanceTracking(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	if err := a.Merge(b); err != ErrMismatchSelection {
		t.Errorf("expected ErrMismatchSelection, got %v", err)
	}
}

func TestSketchIntersectionMinAbundance(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	a.AddHash(1)
	a.AddHash(1)
	a.AddHash(1)
	b.AddHash(1)
	b.AddHash(2)

	inter, err := a.Intersection(b)
	if err != nil {
		t.Fatal(err)
	}
	if inter.Len() != 1 {
		t.Fatalf("expected intersection of size 1, got %d", inter.Len())
	}
	if inter.abunds[0] != 1 {
		t.Errorf("intersection abundance should be min(3,1)=1, got %d", inter.abunds[0])
	}
}

func TestSketchJaccardAndContainment(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	a.AddMany([]uint64{1, 2, 3, 4})
	b.AddMany([]uint64{3, 4, 5, 6})

	j, err := a.Jaccard(b)
	if err != nil {
		t.Fatal(err)
	}
	if j != 2.0/6.0 {
		t.Errorf("Jaccard = %v, want %v", j, 2.0/6.0)
	}

	c, err := a.Containment(b)
	if err != nil {
		t.Fatal(err)
	}
	if c != 2.0/4.0 {
		t.Errorf("Containment = %v, want %v", c, 2.0/4.0)
	}
}

func TestSketchAngularSimilarityIdentical(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	a.AddHash(1)
	a.AddHash(1)
	a.AddHash(2)

	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, true)
	b.AddHash(1)
	b.AddHash(1)
	b.AddHash(2)

	sim, err := a.AngularSimilarity(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := sim - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("angular similarity of identical sketches = %v, want 1", sim)
	}
}

func TestSketchAngularSimilarityRequiresAbundance(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	if _, err := a.AngularSimilarity(b); err != ErrAbundanceRequired {
		t.Errorf("expected ErrAbundanceRequired, got %v", err)
	}
}

func TestSketchDownsampleScaled(t *testing.T) {
	s, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	s.AddMany(randomHashes)

	down, err := s.DownsampleScaled(100)
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range down.mins {
		if h > down.MaxHash {
			t.Fatalf("downsampled sketch retained a hash above its new MaxHash")
		}
	}
	if _, err := s.DownsampleScaled(0); err == nil {
		t.Error("downsampling to a smaller scaled should fail")
	}
}

func TestSketchDownsampleNum(t *testing.T) {
	s, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 50, 0, false)
	s.AddMany(randomHashes)

	down, err := s.DownsampleNum(10)
	if err != nil {
		t.Fatal(err)
	}
	if down.Len() != 10 {
		t.Fatalf("expected 10 hashes, got %d", down.Len())
	}
	if diff := cmp.Diff(down.mins, s.mins[:10]); diff != "" {
		t.Errorf("DownsampleNum should keep the N smallest hashes (-got +want):\n%s", diff)
	}
}

func TestSketchMergeIdempotent(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	a.AddMany(randomHashes[:500])

	before := append([]uint64{}, a.mins...)

	clone, _ := NewSketch(a.K, a.Alphabet, a.Seed, a.Num, a.Scaled, a.TrackAbundance)
	clone.mins = append(clone.mins, a.mins...)

	if err := a.Merge(clone); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, a.mins); diff != "" {
		t.Errorf("A.Merge(A) should be a no-op (-before +after):\n%s", diff)
	}
}

func TestSketchCountCommonAndJaccardCommutative(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	a.AddMany(randomHashes[:2000])
	b.AddMany(randomHashes[1000:3000])

	commonAB, err := a.CountCommon(b, false)
	if err != nil {
		t.Fatal(err)
	}
	commonBA, err := b.CountCommon(a, false)
	if err != nil {
		t.Fatal(err)
	}
	if commonAB != commonBA {
		t.Errorf("CountCommon should be commutative: a,b=%d b,a=%d", commonAB, commonBA)
	}

	jAB, err := a.Jaccard(b)
	if err != nil {
		t.Fatal(err)
	}
	jBA, err := b.Jaccard(a)
	if err != nil {
		t.Fatal(err)
	}
	if jAB != jBA {
		t.Errorf("Jaccard should be commutative: a,b=%v b,a=%v", jAB, jBA)
	}
}

func TestSketchUnionSizeAssociative(t *testing.T) {
	a, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	b, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	c, _ := NewSketch(21, AlphabetDNA, DefaultSeed, 0, 1, false)
	a.AddMany(randomHashes[:1500])
	b.AddMany(randomHashes[1000:2500])
	c.AddMany(randomHashes[2000:3500])

	abThenC, err := unionOf(t, a, b)
	if err != nil {
		t.Fatal(err)
	}
	left, err := abThenC.UnionSize(c)
	if err != nil {
		t.Fatal(err)
	}

	bcThenA, err := unionOf(t, b, c)
	if err != nil {
		t.Fatal(err)
	}
	right, err := bcThenA.UnionSize(a)
	if err != nil {
		t.Fatal(err)
	}

	if left != right {
		t.Errorf("UnionSize should be associative: (a∪b)∪c=%d a∪(b∪c)... =%d", left, right)
	}
}

// unionOf merges copies of x and y (leaving x and y untouched) and returns
// the result, for composing multi-way union checks.
func unionOf(t *testing.T, x, y *Sketch) (*Sketch, error) {
	t.Helper()
	merged, err := NewSketch(x.K, x.Alphabet, x.Seed, x.Num, x.Scaled, x.TrackAbundance)
	if err != nil {
		return nil, err
	}
	merged.mins = append(merged.mins, x.mins...)
	if err := merged.Merge(y); err != nil {
		return nil, err
	}
	return merged, nil
}

func TestSketchAddSequenceNoRollback(t *testing.T) {
	s, _ := NewSketch(4, AlphabetDNA, DefaultSeed, 0, 1, false)
	err := s.AddSequence([]byte("ACGTACGNACGT"), false)
	if err != ErrInvalidDNA {
		t.Fatalf("expected ErrInvalidDNA, got %v", err)
	}
	if s.Len() == 0 {
		t.Error("k-mers seen before the invalid base should remain in the sketch")
	}
}
