/*
 * source.go, part of mol2props.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mol2

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// Line is one line of a text file, without the line terminator, and its
// 1-based position in the file.
type Line struct {
	Text   string
	Number int
}

// LineReader is anything that can give lines sequentially, returning io.EOF after the last one.
type LineReader interface {
	Next() (Line, error)
}

// Source reads lines from a file or stream, one at a time, forward only.
type Source struct {
	name    string
	f       io.Closer //the file, if the source opened it
	decomp  io.Closer //the decompressor, if it needs closing
	h       *bufio.Reader
	current int
	closed  bool
}

// zstd.Decoder doesn't implement io.Closer
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Open opens the file name for reading. The file is decompressed on the fly
// if it has a .gz, .zst/.zstd or .sz/.s2 extension.
func Open(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: name, deco: []string{"Open"}, critical: true, err: err}
	}
	S, err := NewSource(f, name)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Open")
	}
	S.f = f
	return S, nil
}

// NewSource returns a Source that reads from r. The name is used for error messages
// and, through its extension, to choose a decompressor. The Source doesn't close r.
func NewSource(r io.Reader, name string) (*Source, error) {
	S := &Source{name: name}
	intermediate := bufio.NewReader(r)
	var in io.Reader
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(intermediate)
		if err != nil {
			return nil, Error{message: "Can't read gzip header", filename: name, deco: []string{"NewSource"}, critical: true, err: err}
		}
		S.decomp = gz
		in = gz
	case ".zst", ".zstd":
		zs, err := zstd.NewReader(intermediate)
		if err != nil {
			return nil, Error{message: "Can't start zstd decoder", filename: name, deco: []string{"NewSource"}, critical: true, err: err}
		}
		S.decomp = zstdCloser{zs}
		in = zs
	case ".sz", ".s2":
		in = s2.NewReader(intermediate)
	default:
		in = intermediate
	}
	S.h = bufio.NewReader(in)
	return S, nil
}

// Name returns the name of the source.
func (S *Source) Name() string {
	return S.name
}

// Next returns the next line of the source. It returns io.EOF after the last line. A last
// line without terminator is still returned.
func (S *Source) Next() (Line, error) {
	if S.closed {
		return Line{}, io.EOF
	}
	str, err := S.h.ReadString('\n')
	if err != nil && (err != io.EOF || str == "") {
		if err == io.EOF {
			return Line{}, io.EOF
		}
		return Line{}, Error{message: ReadFailure, filename: S.name, line: S.current + 1, deco: []string{"Next"}, critical: true, err: err}
	}
	S.current++
	str = strings.TrimSuffix(str, "\n")
	str = strings.TrimSuffix(str, "\r")
	return Line{Text: str, Number: S.current}, nil
}

// Close releases the decompressor and the file, if the Source opened it.
// It is safe to call Close more than once.
func (S *Source) Close() error {
	if S == nil || S.closed {
		return nil
	}
	S.closed = true
	var err error
	if S.decomp != nil {
		err = S.decomp.Close()
	}
	if S.f != nil {
		if err2 := S.f.Close(); err == nil {
			err = err2
		}
	}
	return err
}

// StringSource returns a LineReader over the lines of s.
func StringSource(s string) *Source {
	S, _ := NewSource(strings.NewReader(s), "")
	return S
}
