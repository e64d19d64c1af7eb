/*
 * chem.go, part of mol2props.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"fmt"

	v3 "github.com/rmera/mol2props/v3"
)

/**Note: Many functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

// Hybridization is the orbital hybridization assigned to an atom
// by the toolkit's property perception.
type Hybridization int

const (
	Unspecified Hybridization = iota
	S
	SP
	SP2
	SP3
)

func (H Hybridization) String() string {
	switch H {
	case S:
		return "S"
	case SP:
		return "SP"
	case SP2:
		return "SP2"
	case SP3:
		return "SP3"
	}
	return "UNSPECIFIED"
}

// Atom contains the atoms read except for the coordinates, which will be in a matrix.
// The fields after Bonds form the property cache, which is filled by the toolkit.
type Atom struct {
	Name         string
	ID           int //the id given in the file
	index        int
	Type         string //the SYBYL atom type, i.e. C.3, N.ar
	Molname      string //substructure name
	MolID        int    //substructure id
	Mass         float64
	Charge       float64 //partial charge from the file
	FormalCharge int
	Symbol       string
	NoImplicit   bool //if true, all the hydrogens of the atom are explicit
	Bonds        []*Bond

	ExplicitValence int
	ImplicitHs      int
	NumRadicals     int
	Hybridization   Hybridization
	InRing          bool
}

//Atom methods

// Index returns the index of the atom in its topology
func (A *Atom) Index() int {
	return A.index
}

// Degree returns the number of explicit neighbors of the atom.
func (A *Atom) Degree() int {
	return len(A.Bonds)
}

// TotalHs returns the number of explicit plus implicit hydrogens bound to the atom.
func (A *Atom) TotalHs() int {
	n := A.ImplicitHs
	for _, b := range A.Bonds {
		if b.Cross(A).Symbol == "H" {
			n++
		}
	}
	return n
}

// Dummy returns true if the atom is a dummy or lone pair, i.e.
// it has no chemistry that can be checked.
func (A *Atom) Dummy() bool {
	return A.Symbol == "*" || A.Symbol == ""
}

/*****Topology type***/

// Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates)
type Topology struct {
	Atoms      []*Atom
	Bonds      []*Bond
	Rings      [][]int //atom indexes of each ring, filled by ring perception
	name       string
	molType    string
	chargeType string
}

// NewTopology makes a topology with ats atoms and returns it.
func NewTopology(ats ...[]*Atom) *Topology {
	top := new(Topology)
	if len(ats) > 0 {
		top.Atoms = ats[0]
	}
	top.FillIndexes()
	return top
}

/*Topology methods*/

// Name returns the name of the molecule
func (T *Topology) Name() string {
	return T.name
}

// SetName sets the name of the molecule to name
func (T *Topology) SetName(name string) {
	T.name = name
}

// MolType returns the molecule type given in the file (SMALL, PROTEIN...)
func (T *Topology) MolType() string {
	return T.molType
}

// ChargeType returns the kind of partial charges given in the file.
func (T *Topology) ChargeType() string {
	return T.chargeType
}

// SetTypes sets the molecule and charge types.
func (T *Topology) SetTypes(molType, chargeType string) {
	T.molType = molType
	T.chargeType = chargeType
}

// FillIndexes sets the Index value of each atom to that corresponding to its
// place in the topology.
func (T *Topology) FillIndexes() {
	for key, val := range T.Atoms {
		val.index = key
	}
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// AppendAtom appends an atom at the end of the topology
func (T *Topology) AppendAtom(at *Atom) {
	at.index = len(T.Atoms)
	T.Atoms = append(T.Atoms, at)
}

// Len returns the length of the molecule.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Aromatic returns true if any bond in the topology is marked as aromatic.
func (T *Topology) Aromatic() bool {
	for _, b := range T.Bonds {
		if b.Aromatic {
			return true
		}
	}
	return false
}

/**Type Molecule**/

// Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
// Coordinates, is stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

// NewMolecule makes a molecule with ats atoms, and coords coordinates, and returns it.
// It returns error if one of the coordinate sets doesn't match the atoms.
func NewMolecule(ats *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil Topology", []string{"NewMolecule"}}
	}
	mol := new(Molecule)
	mol.Topology = ats
	mol.Coords = coords
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

// Corrupted checks whether the molecule is corrupted, i.e. the
// coordinates don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	for i := range M.Coords {
		if M.Len() != M.Coords[i].NVecs() {
			return CError{fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, M.Len(), M.Coords[i].NVecs()), []string{"Corrupted"}}
		}
	}
	return nil
}

// LenFrames returns the number of frames in the molecule
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}

