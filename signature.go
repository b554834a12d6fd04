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

import "fmt"

// DefaultLicense is the license stamped on a freshly built Signature.
const DefaultLicense = "CC0"

// Signature is a named container of one or more Sketches plus metadata,
// per spec §3. It owns its Sketches; a Signature tree has no cyclic
// references (§9).
type Signature struct {
	Name     string
	Filename string
	License  string
	Email    string
	Sketches []*Sketch
}

// NewSignature returns an empty Signature with the default license.
func NewSignature(name string) *Signature {
	return &Signature{Name: name, License: DefaultLicense}
}

// selectionKey identifies a Sketch's compatibility-relevant parameters,
// used to detect duplicate sketches within one Signature (§4.E).
type selectionKey struct {
	k        int
	alphabet Alphabet
	num      uint64
	scaled   uint64
	seed     uint64
}

func keyOf(s *Sketch) selectionKey {
	return selectionKey{k: s.K, alphabet: s.Alphabet, num: s.Num, scaled: s.Scaled, seed: s.Seed}
}

// DuplicateWarnings reports, without failing, every (k, alphabet, num,
// scaled, seed) tuple that appears more than once among sig's sketches —
// duplicates are permitted but discouraged (§3/§4.E).
func (sig *Signature) DuplicateWarnings() []string {
	seen := make(map[selectionKey]int)
	var warnings []string
	for _, s := range sig.Sketches {
		k := keyOf(s)
		seen[k]++
		if seen[k] == 2 {
			warnings = append(warnings, fmt.Sprintf(
				"duplicate sketch parameters: k=%d alphabet=%s num=%d scaled=%d seed=%d",
				k.k, k.alphabet, k.num, k.scaled, k.seed))
		}
	}
	return warnings
}

// SelectFilter narrows the sketches a Select call considers. A nil
// pointer field means "don't filter on this".
type SelectFilter struct {
	K        *int
	Alphabet *Alphabet
	NumEq    *uint64
	ScaledGe *uint64
	Abund    *bool
}

// Select returns every contained Sketch matching filter, in the order
// they appear in the Signature. A Signature commonly holds sketches at
// several k-sizes or alphabets (§4.E), so Select returns all matches
// rather than only the first.
func (sig *Signature) Select(filter SelectFilter) []*Sketch {
	var out []*Sketch
	for _, s := range sig.Sketches {
		if filter.K != nil && s.K != *filter.K {
			continue
		}
		if filter.Alphabet != nil && s.Alphabet != *filter.Alphabet {
			continue
		}
		if filter.NumEq != nil && s.Num != *filter.NumEq {
			continue
		}
		if filter.ScaledGe != nil && s.Scaled < *filter.ScaledGe {
			continue
		}
		if filter.Abund != nil && s.TrackAbundance != *filter.Abund {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SelectFirst returns the first Sketch matching filter, or nil.
func (sig *Signature) SelectFirst(filter SelectFilter) *Sketch {
	matches := sig.Select(filter)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// Equal reports whether sig and other hold the same ordered list of
// sketches, byte-for-byte on parameters, mins, and abunds. Comparison is
// list-order sensitive and ignores Name/Filename (§4.E).
func (sig *Signature) Equal(other *Signature) bool {
	if len(sig.Sketches) != len(other.Sketches) {
		return false
	}
	for i, s := range sig.Sketches {
		if !sketchEqual(s, other.Sketches[i]) {
			return false
		}
	}
	return true
}

func sketchEqual(a, b *Sketch) bool {
	if a.K != b.K || a.Alphabet != b.Alphabet || a.Seed != b.Seed ||
		a.Num != b.Num || a.Scaled != b.Scaled || a.TrackAbundance != b.TrackAbundance {
		return false
	}
	if len(a.mins) != len(b.mins) {
		return false
	}
	for i := range a.mins {
		if a.mins[i] != b.mins[i] {
			return false
		}
	}
	if a.TrackAbundance {
		for i := range a.abunds {
			if a.abunds[i] != b.abunds[i] {
				return false
			}
		}
	}
	return true
}
