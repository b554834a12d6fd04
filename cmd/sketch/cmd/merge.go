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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	sourmash "github.com/sourmash-bio/sourmash-sub002"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "union multiple signatures' sketches into one",
	Long: `union multiple signatures' sketches into one

All input files must carry a sketch at the requested k-mer size and
alphabet, and those sketches must be pairwise compatible.

`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			checkError(fmt.Errorf("merge requires at least 2 signature files"))
		}

		opt := getOptions(cmd)
		ksize := getFlagInt(cmd, "ksize")
		alphabetName := getFlagString(cmd, "alphabet")
		outFile := getFlagString(cmd, "out-file")
		name := getFlagString(cmd, "name")

		alphabet, err := parseAlphabet(alphabetName)
		checkError(err)

		checkFiles(args...)

		var merged *sourmash.Sketch
		for _, file := range args {
			data, err := readAll(file)
			checkError(errors.Wrapf(err, "reading %s", file))

			sigs, err := sourmash.UnmarshalSignatures(data)
			checkError(errors.Wrapf(err, "parsing %s", file))
			if len(sigs) == 0 {
				checkError(fmt.Errorf("%s: no signatures found", file))
			}

			sk := sigs[0].SelectFirst(selectFilterFor(ksize, alphabet))
			if sk == nil {
				checkError(fmt.Errorf("%s: no sketch matching k=%d alphabet=%s", file, ksize, alphabet))
			}

			if merged == nil {
				merged, err = sourmash.NewSketch(sk.K, sk.Alphabet, sk.Seed, sk.Num, sk.Scaled, sk.TrackAbundance)
				checkError(err)
			}
			checkError(errors.Wrapf(merged.Merge(sk), "merging %s", file))
		}

		sig := sourmash.NewSignature(name)
		if sig.Name == "" {
			sig.Name = "merged(" + strings.Join(args, ",") + ")"
		}
		sig.Sketches = []*sourmash.Sketch{merged}

		data, err := sig.MarshalIndent()
		checkError(errors.Wrap(err, "marshaling signature"))
		writeSignature(outFile, data, opt)
	},
}

func init() {
	RootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().IntP("ksize", "k", 21, "k-mer size to merge")
	mergeCmd.Flags().StringP("alphabet", "", "dna", "molecule: dna, protein, dayhoff, or hp")
	mergeCmd.Flags().StringP("out-file", "o", "-", `output signature file ("-" for stdout)`)
	mergeCmd.Flags().StringP("name", "", "", "merged signature name")
}
