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
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// outStream opens file for writing, wrapping it in a gzip writer when
// gzipped is true. "-" means stdout. The caller must flush/close the
// returned writers in order: bufio writer, then gzip writer (if any),
// then the file.
func outStream(file string, gzipped bool, level int) (*bufio.Writer, io.WriteCloser, *os.File, error) {
	var w *os.File
	var err error
	if file == "-" {
		w = os.Stdout
	} else {
		w, err = os.Create(file)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "creating %s", file)
		}
	}

	if gzipped {
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "creating gzip writer")
		}
		return bufio.NewWriterSize(gw, os.Getpagesize()), gw, w, nil
	}
	return bufio.NewWriterSize(w, os.Getpagesize()), nil, w, nil
}

// readAll reads file fully, transparently decompressing it if it is
// gzipped or file carries a .gz suffix. "-" means stdin.
func readAll(file string) ([]byte, error) {
	var r io.ReadCloser
	if file == "-" {
		r = ioutil.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", file)
		}
		r = f
	}
	defer r.Close()

	br := bufio.NewReaderSize(r, os.Getpagesize())
	if gzipped, err := isGzip(br); err != nil {
		return nil, errors.Wrapf(err, "checking whether %s is gzipped", file)
	} else if gzipped || strings.HasSuffix(strings.ToLower(file), ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "creating gzip reader for %s", file)
		}
		defer gr.Close()
		return ioutil.ReadAll(gr)
	}
	return ioutil.ReadAll(br)
}

func isGzip(b *bufio.Reader) (bool, error) {
	magic, err := b.Peek(2)
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}
