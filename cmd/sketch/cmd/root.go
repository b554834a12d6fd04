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
	"os"
	"runtime"

	"github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
)

// VERSION is the CLI release tag, bumped on each tagged release.
const VERSION = "0.1.0"

var log = logging.MustGetLogger("sketch")

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "sketch",
	Short: "MinHash-style sequence sketching toolkit",
	Long: fmt.Sprintf(`sketch - MinHash-style sequence sketching toolkit

A command-line toolkit for building, comparing and merging bounded k-mer
sketches of DNA or protein sequences, and for serializing them into
portable signature files.

Version: %s

`, VERSION),
}

// Execute runs RootCmd; child commands register themselves on it in their
// own init functions. Called once by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	defaultThreads := runtime.NumCPU()
	if defaultThreads > 2 {
		defaultThreads = 2
	}

	RootCmd.PersistentFlags().IntP("threads", "j", defaultThreads, "number of CPUs to use")
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print verbose information")
	RootCmd.PersistentFlags().BoolP("no-compress", "C", false, "do not gzip-compress signature output")
	RootCmd.PersistentFlags().IntP("compression-level", "", 6, "gzip compression level, -2 (huffman-only) to 9 (best)")
	RootCmd.PersistentFlags().StringP("infile-list", "i", "", "file of input files list (one per line); overrides cli arguments")
}
