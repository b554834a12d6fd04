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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
)

// Options carries the persistent flags shared by every subcommand.
type Options struct {
	NumCPUs          int
	Verbose          bool
	Compress         bool
	CompressionLevel int
}

func getOptions(cmd *cobra.Command) *Options {
	return &Options{
		NumCPUs:          getFlagPositiveInt(cmd, "threads"),
		Verbose:          getFlagBool(cmd, "verbose"),
		Compress:         !getFlagBool(cmd, "no-compress"),
		CompressionLevel: getFlagInt(cmd, "compression-level"),
	}
}

// checkError logs a fatal error with its boundary context and exits, the
// standard failure path for CLI commands (core library errors never do
// this themselves).
func checkError(err error) {
	if err != nil {
		log.Error(errors.WithStack(err))
		os.Exit(-1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	checkError(errors.Wrapf(err, "flag --%s", flag))
	return value
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	checkError(errors.Wrapf(err, "flag --%s", flag))
	return value
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	value, err := cmd.Flags().GetInt(flag)
	checkError(errors.Wrapf(err, "flag --%s", flag))
	return value
}

func getFlagPositiveInt(cmd *cobra.Command, flag string) int {
	value := getFlagInt(cmd, flag)
	if value <= 0 {
		checkError(fmt.Errorf("value of flag --%s should be a positive integer", flag))
	}
	return value
}

func getFlagUint64(cmd *cobra.Command, flag string) uint64 {
	value, err := cmd.Flags().GetUint64(flag)
	checkError(errors.Wrapf(err, "flag --%s", flag))
	return value
}

// expandPath resolves a leading ~ in a CLI path flag.
func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	checkError(errors.Wrapf(err, "expanding path %q", path))
	return expanded
}

// getFileList collects input file paths from the --infile-list file when
// it is given (cli args are then ignored), otherwise from cli args, and
// falls back to stdin ("-") when neither yields a path.
func getFileList(cmd *cobra.Command, args []string) []string {
	listFile := getFlagString(cmd, "infile-list")
	if listFile == "" {
		if len(args) == 0 {
			return []string{"-"}
		}
		return args
	}

	reader, err := breader.NewDefaultBufferedReader(expandPath(listFile))
	checkError(errors.Wrapf(err, "reading file list %s", listFile))

	var files []string
	for chunk := range reader.Ch {
		checkError(chunk.Err)
		for _, data := range chunk.Data {
			line := data.(string)
			if line == "" {
				continue
			}
			files = append(files, line)
		}
	}
	if len(files) == 0 {
		return []string{"-"}
	}
	return files
}

func isStdin(file string) bool { return file == "-" }

// checkFiles verifies every non-stdin path exists before any command
// commits to opening it.
func checkFiles(files ...string) {
	for _, file := range files {
		if isStdin(file) {
			continue
		}
		ok, err := pathutil.Exists(file)
		checkError(errors.Wrapf(err, "checking file %s", file))
		if !ok {
			checkError(fmt.Errorf("file does not exist: %s", file))
		}
	}
}
