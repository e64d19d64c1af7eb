/*
 * driver.go, part of mol2props.
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
	"github.com/charmbracelet/log"
)

// Driver runs the fixed check sequence on records: first a tolerant update of
// the property cache, then Sanitize with Ops.
type Driver struct {
	TK       Toolkit
	Ops      Ops
	FailFast bool        //used by Process, see Validate.
	Log      *log.Logger //if nil, log.Default() is used

	//Open opens the files given to ProcessFile. If nil, mol2.Open is used.
	Open func(path string) (LineSource, error)
}

// NewDriver returns a driver for tk that runs DefaultOps and isolates failures.
func NewDriver(tk Toolkit) *Driver {
	return &Driver{TK: tk, Ops: DefaultOps}
}

func (D *Driver) logger() *log.Logger {
	if D.Log == nil {
		return log.Default()
	}
	return D.Log
}

func (D *Driver) check(rec Record) error {
	if err := D.TK.UpdatePropertyCache(rec, false); err != nil {
		return err
	}
	return D.TK.Sanitize(rec, D.Ops)
}

// Validate checks the records in order, and returns a RecordError for the first one
// that fails. Records after the failing one are not checked.
func (D *Driver) Validate(records []Record) error {
	for i, rec := range records {
		if err := D.check(rec); err != nil {
			D.logger().Error("record failed, aborting", "record", i, "name", rec.Name(), "err", err)
			return RecordError{Index: i, Name: rec.Name(), Stage: StageSanitize, deco: []string{"Driver.Validate"}, err: err}
		}
		D.logger().Debug("record sanitized", "record", i, "name", rec.Name())
	}
	return nil
}

// ValidateEach checks every record, independently of the others, and returns
// a report with the failures and the number of records that passed.
func (D *Driver) ValidateEach(records []Record) *Report {
	rep := &Report{Parsed: len(records)}
	for i, rec := range records {
		if err := D.check(rec); err != nil {
			D.logger().Warn("record failed", "record", i, "name", rec.Name(), "err", err)
			rep.Failures = append(rep.Failures, newResult(i, rec.Name(), StageSanitize, err))
			continue
		}
		D.logger().Debug("record sanitized", "record", i, "name", rec.Name())
		rep.Passed++
	}
	return rep
}
