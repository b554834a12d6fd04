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

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/spf13/cobra"

	sourmash "github.com/sourmash-bio/sourmash-sub002"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "build sketches from FASTA/FASTQ sequences",
	Long: `build sketches from FASTA/FASTQ sequences

Each input file becomes one signature holding one sketch per requested
k-mer size. Gzip-compressed inputs are read transparently.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		ksizes := parseKsizes(getFlagString(cmd, "ksizes"))
		num := getFlagUint64(cmd, "num")
		scaled := getFlagUint64(cmd, "scaled")
		seed := getFlagUint64(cmd, "seed")
		trackAbundance := getFlagBool(cmd, "track-abundance")
		force := getFlagBool(cmd, "force")
		alphabetName := getFlagString(cmd, "alphabet")
		inputIsProtein := getFlagBool(cmd, "input-is-protein")
		outFile := getFlagString(cmd, "out-file")
		name := getFlagString(cmd, "name")

		if (num == 0) == (scaled == 0) {
			checkError(fmt.Errorf("exactly one of --num/--scaled must be nonzero"))
		}

		alphabet, err := parseAlphabet(alphabetName)
		checkError(err)

		seq.ValidateSeq = false

		files := getFileList(cmd, args)
		checkFiles(files...)

		for _, file := range files {
			sig := sourmash.NewSignature(sigName(name, file))
			sig.Filename = file

			sketches := make([]*sourmash.Sketch, len(ksizes))
			for i, k := range ksizes {
				effectiveK := k
				if alphabet.IsProtein() {
					effectiveK = k * 3
				}
				sk, err := sourmash.NewSketch(effectiveK, alphabet, seed, num, scaled, trackAbundance)
				checkError(err)
				sk.Force = force
				sketches[i] = sk
			}

			if opt.Verbose {
				log.Infof("computing sketches for %s", file)
			}

			fastxReader, err := fastx.NewDefaultReader(file)
			checkError(errors.Wrapf(err, "opening %s", file))

			for {
				record, err := fastxReader.Read()
				if err != nil {
					if err == io.EOF {
						break
					}
					checkError(errors.Wrapf(err, "reading %s", file))
					break
				}

				for _, sk := range sketches {
					sourceIsNucleotide := alphabet.IsProtein() && !inputIsProtein
					if err := sk.AddSequence(record.Seq.Seq, sourceIsNucleotide); err != nil {
						if opt.Verbose {
							log.Warningf("%s: %s: %s", file, record.ID, err)
						}
					}
				}
			}

			sig.Sketches = sketches
			for _, w := range sig.DuplicateWarnings() {
				log.Warning(w)
			}

			data, err := sig.MarshalIndent()
			checkError(errors.Wrap(err, "marshaling signature"))

			dest := outFile
			if dest == "" {
				dest = file + ".sig"
			}
			writeSignature(dest, data, opt)
		}
	},
}

func init() {
	RootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringP("ksizes", "k", "21", "comma-separated k-mer sizes (amino-acid size for protein-family alphabets)")
	computeCmd.Flags().Uint64P("num", "n", 0, "sketch cardinality for num-mode (mutually exclusive with --scaled)")
	computeCmd.Flags().Uint64P("scaled", "s", 1000, "modulus for scaled-mode (mutually exclusive with --num)")
	computeCmd.Flags().Uint64P("seed", "", sourmash.DefaultSeed, "murmur3 hash seed")
	computeCmd.Flags().BoolP("track-abundance", "a", false, "record per-hash abundance")
	computeCmd.Flags().BoolP("force", "f", false, "skip k-mers containing non-ACGT bases instead of dropping the rest of the record at the first one")
	computeCmd.Flags().StringP("alphabet", "", "dna", "molecule: dna, protein, dayhoff, or hp")
	computeCmd.Flags().BoolP("input-is-protein", "", false, "for protein-family alphabets, treat input records as amino acids instead of translating them from DNA")
	computeCmd.Flags().StringP("out-file", "o", "", `output signature file ("-" for stdout, default: <infile>.sig)`)
	computeCmd.Flags().StringP("name", "", "", "signature name (default: input file basename)")
}

func parseKsizes(s string) []int {
	var ks []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		checkError(errors.Wrapf(err, "parsing k-mer size %q", part))
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		checkError(fmt.Errorf("at least one --ksizes value is required"))
	}
	return ks
}

func parseAlphabet(s string) (sourmash.Alphabet, error) {
	switch strings.ToLower(s) {
	case "dna":
		return sourmash.AlphabetDNA, nil
	case "protein":
		return sourmash.AlphabetProtein, nil
	case "dayhoff":
		return sourmash.AlphabetDayhoff, nil
	case "hp":
		return sourmash.AlphabetHP, nil
	default:
		return 0, fmt.Errorf("unknown alphabet: %s", s)
	}
}

func sigName(explicit, file string) string {
	if explicit != "" {
		return explicit
	}
	if isStdin(file) {
		return "stdin"
	}
	return filepath.Base(file)
}

func writeSignature(dest string, data []byte, opt *Options) {
	gzipped := opt.Compress && strings.HasSuffix(strings.ToLower(dest), ".gz")
	bw, gw, f, err := outStream(dest, gzipped, opt.CompressionLevel)
	checkError(errors.Wrapf(err, "writing %s", dest))
	defer func() {
		bw.Flush()
		if gw != nil {
			gw.Close()
		}
		if f != nil && dest != "-" {
			f.Close()
		}
	}()
	bw.Write(data)
	bw.WriteString("\n")
}
