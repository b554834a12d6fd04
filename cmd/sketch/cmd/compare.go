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

	"github.com/pkg/errors"
	"github.com/shenwei356/stable"
	"github.com/spf13/cobra"

	sourmash "github.com/sourmash-bio/sourmash-sub002"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "compare signatures pairwise",
	Long: `compare signatures pairwise

Loads two or more signature files, checks that the requested k-mer size
and alphabet are present and mutually compatible in every one, and
prints a similarity matrix.

`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			checkError(fmt.Errorf("compare requires at least 2 signature files"))
		}

		ksize := getFlagInt(cmd, "ksize")
		alphabetName := getFlagString(cmd, "alphabet")
		containment := getFlagBool(cmd, "containment")
		downsample := getFlagBool(cmd, "downsample")

		alphabet, err := parseAlphabet(alphabetName)
		checkError(err)

		checkFiles(args...)

		sketches := make([]*sourmash.Sketch, len(args))
		labels := make([]string, len(args))
		for i, file := range args {
			data, err := readAll(file)
			checkError(errors.Wrapf(err, "reading %s", file))

			sigs, err := sourmash.UnmarshalSignatures(data)
			checkError(errors.Wrapf(err, "parsing %s", file))
			if len(sigs) == 0 {
				checkError(fmt.Errorf("%s: no signatures found", file))
			}

			k := ksize
			sk := sigs[0].SelectFirst(selectFilterFor(k, alphabet))
			if sk == nil {
				checkError(fmt.Errorf("%s: no sketch matching k=%d alphabet=%s", file, k, alphabet))
			}
			sketches[i] = sk
			labels[i] = sigs[0].Name
			if labels[i] == "" {
				labels[i] = file
			}
		}

		n := len(sketches)
		matrix := make([][]float64, n)
		for i := range matrix {
			matrix[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					matrix[i][j] = 1
					continue
				}
				a, b := sketches[i], sketches[j]
				if downsample && a.Scaled > 0 && b.Scaled > 0 && a.Scaled != b.Scaled {
					var derr error
					if a.Scaled < b.Scaled {
						a, derr = a.DownsampleScaled(b.Scaled)
					} else {
						b, derr = b.DownsampleScaled(a.Scaled)
					}
					checkError(errors.Wrapf(derr, "downsampling %s vs %s", labels[i], labels[j]))
				}
				var v float64
				var err error
				if containment {
					v, err = a.Containment(b)
				} else {
					common, cerr := a.CountCommon(b, downsample)
					if cerr != nil {
						err = cerr
					} else {
						union, uerr := a.UnionSize(b)
						if uerr != nil {
							err = uerr
						} else if union > 0 {
							v = float64(common) / float64(union)
						}
					}
				}
				checkError(errors.Wrapf(err, "comparing %s vs %s", labels[i], labels[j]))
				matrix[i][j] = v
			}
		}

		style := &stable.TableStyle{
			Name:      "plain",
			HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			Padding:   "",
		}
		columns := []stable.Column{{Header: ""}}
		for _, l := range labels {
			columns = append(columns, stable.Column{Header: l, Align: stable.AlignRight})
		}
		tbl := stable.New()
		tbl.HeaderWithFormat(columns)
		for i, l := range labels {
			row := make([]interface{}, 0, n+1)
			row = append(row, l)
			for j := 0; j < n; j++ {
				row = append(row, fmt.Sprintf("%.3f", matrix[i][j]))
			}
			tbl.AddRow(row)
		}
		fmt.Print(string(tbl.Render(style)))
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntP("ksize", "k", 21, "k-mer size to compare")
	compareCmd.Flags().StringP("alphabet", "", "dna", "molecule: dna, protein, dayhoff, or hp")
	compareCmd.Flags().BoolP("containment", "", false, "report containment instead of Jaccard similarity")
	compareCmd.Flags().BoolP("downsample", "", false, "virtually downsample scaled sketches to a common resolution before comparing")
}

func selectFilterFor(k int, alphabet sourmash.Alphabet) sourmash.SelectFilter {
	return sourmash.SelectFilter{K: &k, Alphabet: &alphabet}
}
