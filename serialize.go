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
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"os"
	"strconv"
)

// sketchDoc is the on-wire shape of one sketch within a signature
// document's "signatures" array, per §4.F.
type sketchDoc struct {
	Num            uint64   `json:"num"`
	Ksize          int      `json:"ksize"`
	Seed           uint64   `json:"seed"`
	MaxHash        uint64   `json:"max_hash"`
	Molecule       string   `json:"molecule"`
	Mins           []uint64 `json:"mins"`
	Abundances     []uint64 `json:"abundances,omitempty"`
	TrackAbundance bool     `json:"track_abundance"`
	MD5sum         string   `json:"md5sum"`
}

// signatureDoc is the top-level on-wire document, one per Signature, per
// §4.F. A file holds a JSON array of these.
type signatureDoc struct {
	Class        string      `json:"class"`
	Email        string      `json:"email"`
	HashFunction string      `json:"hash_function"`
	Filename     string      `json:"filename"`
	Name         string      `json:"name"`
	License      string      `json:"license"`
	Signatures   []sketchDoc `json:"signatures"`
}

// signatureClass is the fixed "class" discriminator stamped on every
// document this package writes.
const signatureClass = "sourmash_signature"

// fingerprint computes the canonical MD5 of a sketch's hash set: the
// decimal k-mer size, followed immediately by the decimal value of every
// hash in ascending order, with no separators or "k=" prefix (§6). This
// exact byte sequence is what makes the digest stable across
// implementations, so it must never be changed casually.
func fingerprint(ksize int, mins []uint64) string {
	h := md5.New()
	h.Write([]byte(strconv.Itoa(ksize)))
	for _, v := range mins {
		h.Write([]byte(strconv.FormatUint(v, 10)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// toDoc converts s to its wire representation, computing its md5sum.
func (s *Sketch) toDoc() sketchDoc {
	doc := sketchDoc{
		Num:            s.Num,
		Ksize:          s.K,
		Seed:           s.Seed,
		MaxHash:        s.MaxHash,
		Molecule:       s.Alphabet.String(),
		Mins:           s.mins,
		TrackAbundance: s.TrackAbundance,
		MD5sum:         fingerprint(s.K, s.mins),
	}
	if s.TrackAbundance {
		doc.Abundances = s.abunds
	}
	return doc
}

// sketchFromDoc reconstructs a Sketch from its wire representation. The
// md5sum field is verified against the freshly computed fingerprint;
// a mismatch returns ErrSerde rather than silently trusting the file.
func sketchFromDoc(doc sketchDoc) (*Sketch, error) {
	alphabet, err := alphabetFromMolecule(doc.Molecule)
	if err != nil {
		return nil, err
	}
	s, err := NewSketch(doc.Ksize, alphabet, doc.Seed, doc.Num, doc.MaxHashToScaled(), doc.TrackAbundance)
	if err != nil {
		return nil, err
	}
	s.mins = append(s.mins, doc.Mins...)
	if doc.TrackAbundance {
		if len(doc.Abundances) != len(doc.Mins) {
			return nil, newErr(KindSerde, "abundances length does not match mins length")
		}
		s.abunds = append(s.abunds, doc.Abundances...)
	}
	if doc.Num == 0 {
		s.MaxHash = doc.MaxHash
	}

	if doc.MD5sum != "" && fingerprint(s.K, s.mins) != doc.MD5sum {
		return nil, newErr(KindSerde, "md5sum does not match sketch contents")
	}
	return s, nil
}

// MaxHashToScaled recovers the Scaled a sketch was constructed with from
// its stored MaxHash, the inverse of NewSketch's MaxHash = (2^64-1)/Scaled
// derivation. num-mode documents carry MaxHash == 0 and this is unused.
func (d sketchDoc) MaxHashToScaled() uint64 {
	if d.Num > 0 || d.MaxHash == 0 {
		return 0
	}
	return maxUint64 / d.MaxHash
}

// Marshal encodes sig as one canonical signature document, per §4.F. The
// "class" and "hash_function" fields are derived, not user-settable;
// hash_function is taken from the first sketch's alphabet, matching the
// convention that all sketches in one document share a hash family.
func (sig *Signature) Marshal() ([]byte, error) {
	doc := signatureDoc{
		Class:    signatureClass,
		Email:    sig.Email,
		Filename: sig.Filename,
		Name:     sig.Name,
		License:  sig.License,
	}
	if len(sig.Sketches) > 0 {
		doc.HashFunction = sig.Sketches[0].Alphabet.hashFunctionName()
	} else {
		doc.HashFunction = AlphabetDNA.hashFunctionName()
	}
	for _, s := range sig.Sketches {
		doc.Signatures = append(doc.Signatures, s.toDoc())
	}
	return json.Marshal([]signatureDoc{doc})
}

// MarshalIndent is Marshal with human-readable indentation, for CLI
// output destined to a terminal or a file a person will read.
func (sig *Signature) MarshalIndent() ([]byte, error) {
	doc := signatureDoc{
		Class:    signatureClass,
		Email:    sig.Email,
		Filename: sig.Filename,
		Name:     sig.Name,
		License:  sig.License,
	}
	if len(sig.Sketches) > 0 {
		doc.HashFunction = sig.Sketches[0].Alphabet.hashFunctionName()
	} else {
		doc.HashFunction = AlphabetDNA.hashFunctionName()
	}
	for _, s := range sig.Sketches {
		doc.Signatures = append(doc.Signatures, s.toDoc())
	}
	return json.MarshalIndent([]signatureDoc{doc}, "", "  ")
}

// Save writes sig to path as an indented signature document. When
// strictLicense is set, a License that is neither DefaultLicense nor empty
// is rejected with ErrLicenseRejected instead of being written; pass-through of
// non-CC0 licenses is otherwise the default (§9).
func (sig *Signature) Save(path string, strictLicense bool) error {
	if strictLicense && sig.License != DefaultLicense && sig.License != "" {
		return ErrLicenseRejected
	}
	data, err := sig.MarshalIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// UnmarshalSignatures decodes a signature document (a JSON array of one
// or more signatures, the format sourmash-style tooling emits) into
// Signature values. Unknown fields are tolerated for forward
// compatibility (§4.F); every sketch's md5sum is verified against its
// own mins during decode.
func UnmarshalSignatures(data []byte) ([]*Signature, error) {
	var docs []signatureDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, newErr(KindSerde, err.Error())
	}

	out := make([]*Signature, 0, len(docs))
	for _, d := range docs {
		sig := &Signature{
			Name:     d.Name,
			Filename: d.Filename,
			License:  d.License,
			Email:    d.Email,
		}
		for _, sd := range d.Signatures {
			s, err := sketchFromDoc(sd)
			if err != nil {
				return nil, err
			}
			sig.Sketches = append(sig.Sketches, s)
		}
		out = append(out, sig)
	}
	return out, nil
}
