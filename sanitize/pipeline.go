/*
 * pipeline.go, part of mol2props.
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

package sanitize

import (
	"errors"
	"io"
	"sort"

	"github.com/rmera/mol2props/mol2"
)

// LineSource is a source of lines that has to be closed after use, such as a *mol2.Source.
type LineSource interface {
	mol2.LineReader
	io.Closer
}

func openMOL2(path string) (LineSource, error) {
	src, err := mol2.Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// ProcessFile segments, parses and checks all the records in the MOL2 file path, which
// can be compressed (see mol2.Open). The source is closed before returning. The returned
// error is only non-nil if the file could not be read or segmented. Failed records are
// given in the report.
func (D *Driver) ProcessFile(path string, opts mol2.Options) (*Report, error) {
	open := D.Open
	if open == nil {
		open = openMOL2
	}
	src, err := open(path)
	if err != nil {
		return nil, errDecorate(err, "Driver.ProcessFile")
	}
	defer src.Close()
	if opts.Log == nil {
		opts.Log = D.Log
	}
	rep, err := D.Process(mol2.NewSegmenter(src, opts))
	return rep, errDecorate(err, "Driver.ProcessFile")
}

// Process reads all the blocks from seg, parses them and then checks them,
// stopping at the first failure if D.FailFast is set.
func (D *Driver) Process(seg *mol2.Segmenter) (*Report, error) {
	rep := &Report{File: seg.Name()}
	var blocks []*mol2.Block
	for {
		b, err := seg.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			rep.Blocks = len(blocks)
			rep.Anomalies = seg.Anomalies()
			rep.Aborted = true
			return rep, errDecorate(err, "Driver.Process")
		}
		blocks = append(blocks, b)
	}
	rep.Blocks = len(blocks)
	rep.Anomalies = seg.Anomalies()
	D.logger().Info("segmented", "file", rep.File, "blocks", rep.Blocks, "anomalies", len(rep.Anomalies))

	records := make([]Record, 0, len(blocks))
	origin := make([]*mol2.Block, 0, len(blocks)) //the block of each record
	for _, b := range blocks {
		rec, err := D.TK.ParseBlock(b.Text())
		if err != nil {
			res := newResult(b.Index(), "", StageParse, err)
			res.locate(b)
			rep.Failures = append(rep.Failures, res)
			D.logger().Warn("unable to parse block", "block", b.Index(), "line", b.First(), "err", err, "trace", res.Trace)
			if D.FailFast {
				rep.Parsed = len(records)
				rep.Aborted = true
				return rep, nil
			}
			continue
		}
		records = append(records, rec)
		origin = append(origin, b)
	}
	rep.Parsed = len(records)

	if D.FailFast {
		err := D.Validate(records)
		if err == nil {
			rep.Passed = len(records)
			return rep, nil
		}
		var rerr RecordError
		if !errors.As(err, &rerr) {
			return rep, errDecorate(err, "Driver.Process")
		}
		res := newResult(rerr.Index, rerr.Name, StageSanitize, rerr.err)
		res.locate(origin[rerr.Index])
		rep.Failures = append(rep.Failures, res)
		rep.Passed = rerr.Index
		rep.Aborted = true
		return rep, nil
	}
	each := D.ValidateEach(records)
	for _, res := range each.Failures {
		res.locate(origin[res.Index])
		rep.Failures = append(rep.Failures, res)
	}
	sort.SliceStable(rep.Failures, func(i, j int) bool { return rep.Failures[i].Index < rep.Failures[j].Index })
	rep.Passed = each.Passed
	return rep, nil
}
