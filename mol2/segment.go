/*
 * segment.go, part of mol2props.
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
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// StartMarker marks the first line of a MOL2 record.
	StartMarker = "@<TRIPOS>MOLECULE"
	// EndMarker marks the last line of a record. It is the root keyword of the
	// SUBSTRUCTURE section, which is expected once per record, after the start marker.
	EndMarker = "ROOT"
)

// State is the state of the segmenter.
type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	if s == Recording {
		return "Recording"
	}
	return "Idle"
}

// OrphanPolicy decides what to do with an end marker found outside a record.
type OrphanPolicy int

const (
	OrphanBlock  OrphanPolicy = iota //emit a one-line block with the marker
	OrphanSkip                       //ignore the line
	OrphanReject                     //stop with an error
)

// ParseOrphanPolicy returns the policy named by s ("block", "skip" or "reject").
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch strings.ToLower(s) {
	case "block", "":
		return OrphanBlock, nil
	case "skip":
		return OrphanSkip, nil
	case "reject":
		return OrphanReject, nil
	}
	return OrphanBlock, fmt.Errorf("unknown orphan policy %q", s)
}

func (o OrphanPolicy) String() string {
	switch o {
	case OrphanSkip:
		return "skip"
	case OrphanReject:
		return "reject"
	}
	return "block"
}

// Options control the segmentation.
type Options struct {
	StartMarker string
	EndMarker   string
	KeepCommas  bool //if false, commas are removed from the block text.
	Orphans     OrphanPolicy
	Log         *log.Logger //if nil, log.Default() is used
}

// DefaultOptions returns the options that reproduce the usual reading of
// multi-molecule MOL2 files.
func DefaultOptions() Options {
	return Options{StartMarker: StartMarker, EndMarker: EndMarker}
}

// AnomalyKind is the kind of irregularity found while segmenting.
type AnomalyKind string

const (
	Unterminated AnomalyKind = "unterminated" //the source ended inside a record, which was dropped
	OrphanEnd    AnomalyKind = "orphan-end"   //an end marker was found outside a record
	Restarted    AnomalyKind = "restarted"    //a start marker was found inside a record, which was discarded
)

// Anomaly is a format irregularity in the source. None of them stop the segmentation,
// except an orphan end marker under the OrphanReject policy.
type Anomaly struct {
	Kind    AnomalyKind
	Line    int //line where the anomaly was detected
	From    int //first line of the affected record, if any
	Message string
}

// Segmenter splits a sequence of lines in molecule blocks. The blocks are produced
// lazily, one per call to Next. A Segmenter can't be restarted.
type Segmenter struct {
	src       LineReader
	name      string
	opts      Options
	log       *log.Logger
	state     State
	acc       []Line
	emitted   int
	anomalies []Anomaly
	done      bool
}

// NewSegmenter returns a segmenter reading from src. Empty markers in opts are
// replaced by the default ones.
func NewSegmenter(src LineReader, opts Options) *Segmenter {
	if opts.StartMarker == "" {
		opts.StartMarker = StartMarker
	}
	if opts.EndMarker == "" {
		opts.EndMarker = EndMarker
	}
	S := &Segmenter{src: src, opts: opts, log: opts.Log}
	if S.log == nil {
		S.log = log.Default()
	}
	if n, ok := src.(interface{ Name() string }); ok {
		S.name = n.Name()
	}
	return S
}

// Name returns the name of the line source, if it has one.
func (S *Segmenter) Name() string {
	return S.name
}

// State returns the current state of the segmenter
func (S *Segmenter) State() State {
	return S.state
}

// Anomalies returns the irregularities found so far.
func (S *Segmenter) Anomalies() []Anomaly {
	return S.anomalies
}

// Emitted returns the number of blocks emitted so far.
func (S *Segmenter) Emitted() int {
	return S.emitted
}

func (S *Segmenter) anomaly(a Anomaly) {
	S.anomalies = append(S.anomalies, a)
	S.log.Warn(a.Message, "kind", a.Kind, "line", a.Line, "file", S.name)
}

func (S *Segmenter) emit(lines []Line) *Block {
	b := newBlock(S.emitted, lines, S.opts.KeepCommas)
	S.emitted++
	return b
}

// Next returns the next block. After the last block it returns io.EOF, and keeps
// returning it in later calls. Any other error means that the line source failed, or
// that an orphan end marker was found under OrphanReject.
func (S *Segmenter) Next() (*Block, error) {
	if S.done {
		return nil, io.EOF
	}
	for {
		line, err := S.src.Next()
		if err != nil {
			S.done = true
			if err != io.EOF {
				return nil, errDecorate(err, "Segmenter.Next")
			}
			if S.state == Recording {
				S.anomaly(Anomaly{Kind: Unterminated, Line: S.acc[len(S.acc)-1].Number, From: S.acc[0].Number,
					Message: fmt.Sprintf("Record starting at line %d has no end marker, dropped", S.acc[0].Number)})
			}
			S.acc = nil
			S.state = Idle
			return nil, io.EOF
		}
		switch {
		case strings.Contains(line.Text, S.opts.StartMarker):
			if S.state == Recording {
				S.anomaly(Anomaly{Kind: Restarted, Line: line.Number, From: S.acc[0].Number,
					Message: fmt.Sprintf("Record starting at line %d restarted before its end marker", S.acc[0].Number)})
			}
			S.acc = []Line{line}
			S.state = Recording
		case strings.Contains(line.Text, S.opts.EndMarker):
			if S.state == Recording {
				lines := append(S.acc, line)
				S.acc = nil
				S.state = Idle
				return S.emit(lines), nil
			}
			S.anomaly(Anomaly{Kind: OrphanEnd, Line: line.Number, Message: OrphanEndFound})
			switch S.opts.Orphans {
			case OrphanReject:
				S.done = true
				return nil, Error{message: OrphanEndFound, filename: S.name, line: line.Number, deco: []string{"Segmenter.Next"}, critical: true, err: ErrOrphanEnd}
			case OrphanBlock:
				return S.emit([]Line{line}), nil
			}
		default:
			if S.state == Recording {
				S.acc = append(S.acc, line)
			}
		}
	}
}

// Segment reads all the blocks from src.
func Segment(src LineReader, opts Options) ([]*Block, []Anomaly, error) {
	S := NewSegmenter(src, opts)
	var blocks []*Block
	for {
		b, err := S.Next()
		if err == io.EOF {
			return blocks, S.Anomalies(), nil
		}
		if err != nil {
			return blocks, S.Anomalies(), errDecorate(err, "Segment")
		}
		blocks = append(blocks, b)
	}
}
