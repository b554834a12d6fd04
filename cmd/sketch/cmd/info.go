// Copyright © 2018-2021 Wei Shen <shenwei356@gmail.com>
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

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/stable"
	"github.com/spf13/cobra"

	sourmash "github.com/sourmash-bio/sourmash-sub002"
)

var infoCmd = &cobra.Command{
	Use:     "info",
	Aliases: []string{"stats"},
	Short:   "print parameters and cardinality of each sketch in a signature file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"-"}
		}
		checkFiles(args...)

		style := &stable.TableStyle{
			Name:      "plain",
			HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			Padding:   "",
		}
		columns := []stable.Column{
			{Header: "file"},
			{Header: "name"},
			{Header: "k", Align: stable.AlignRight},
			{Header: "alphabet"},
			{Header: "num", Align: stable.AlignRight},
			{Header: "scaled", Align: stable.AlignRight},
			{Header: "abundance"},
			{Header: "size", Align: stable.AlignRight},
		}
		tbl := stable.New()
		tbl.HeaderWithFormat(columns)

		for _, file := range args {
			data, err := readAll(file)
			checkError(errors.Wrapf(err, "reading %s", file))

			sigs, err := sourmash.UnmarshalSignatures(data)
			checkError(errors.Wrapf(err, "parsing %s", file))

			for _, sig := range sigs {
				for _, sk := range sig.Sketches {
					scaled := "-"
					if sk.Scaled > 0 {
						scaled = fmt.Sprintf("%d", sk.Scaled)
					}
					num := "-"
					if sk.Num > 0 {
						num = fmt.Sprintf("%d", sk.Num)
					}
					tbl.AddRow([]interface{}{
						file,
						sig.Name,
						sk.K,
						sk.Alphabet.String(),
						num,
						scaled,
						boolStr("yes", "no", sk.TrackAbundance),
						humanize.Comma(int64(sk.Len())),
					})
				}
			}
		}
		fmt.Print(string(tbl.Render(style)))
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func boolStr(sTrue, sFalse string, v bool) string {
	if v {
		return sTrue
	}
	return sFalse
}
