/*
 * toolkit.go, part of mol2props.
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
	chem "github.com/rmera/mol2props"
	"github.com/rmera/mol2props/mol2"
)

// Record is a parsed structure object. The driver doesn't look inside it, it only
// passes it back to the toolkit that produced it.
type Record interface {
	Name() string
}

// Toolkit is the chemistry toolkit used to parse and check each record.
type Toolkit interface {

	//ParseBlock parses the text of a record into a structure object.
	ParseBlock(text string) (Record, error)

	//UpdatePropertyCache recomputes the derived properties of the record. If strict is false,
	//otherwise-invalid valences are tolerated.
	UpdatePropertyCache(rec Record, strict bool) error

	//Sanitize runs the given operations on the record, modifying it in place.
	Sanitize(rec Record, ops Ops) error
}

// Native is a Toolkit implemented in this library. Its records are *chem.Molecule.
type Native struct {
	Log *log.Logger //if nil, log.Default() is used
}

func (N Native) logger() *log.Logger {
	if N.Log == nil {
		return log.Default()
	}
	return N.Log
}

func molecule(rec Record, caller string) (*chem.Molecule, error) {
	mol, ok := rec.(*chem.Molecule)
	if !ok || mol == nil {
		return nil, ValidationError{Atom: -1, message: ErrForeignRecord.Error(), deco: []string{caller}, critical: true, err: ErrForeignRecord}
	}
	return mol, nil
}

// ParseBlock parses a MOL2 block, without sanitizing it.
func (N Native) ParseBlock(text string) (Record, error) {
	mol, err := mol2.ParseBlock(text)
	if err != nil {
		return nil, errDecorate(err, "Native.ParseBlock")
	}
	return mol, nil
}

// UpdatePropertyCache recomputes the valences and implicit hydrogens of every atom in rec.
func (N Native) UpdatePropertyCache(rec Record, strict bool) error {
	mol, err := molecule(rec, "Native.UpdatePropertyCache")
	if err != nil {
		return err
	}
	return errDecorate(updatePropertyCache(mol.Topology, strict, N.logger()), "Native.UpdatePropertyCache")
}

// Sanitize runs ops on rec, in order, stopping at the first failure.
func (N Native) Sanitize(rec Record, ops Ops) error {
	mol, err := molecule(rec, "Native.Sanitize")
	if err != nil {
		return err
	}
	for _, op := range ops.List() {
		var err error
		switch op {
		case OpCleanup:
			cleanup(mol.Topology)
		case OpProperties:
			err = updatePropertyCache(mol.Topology, true, N.logger())
		case OpSymmRings:
			findRings(mol.Topology)
		case OpKekulize, OpSetAromaticity:
			err = unsupported(mol.Topology, op)
		case OpFindRadicals:
			findRadicals(mol.Topology)
		case OpSetConjugation:
			setConjugation(mol.Topology)
		case OpSetHybridization:
			setHybridization(mol.Topology)
		case OpCleanupGeometry:
			err = checkGeometry(mol)
		}
		if err != nil {
			return errDecorate(err, "Native.Sanitize")
		}
	}
	return nil
}
