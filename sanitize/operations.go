/*
 * operations.go, part of mol2props.
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
	"fmt"

	chem "github.com/rmera/mol2props"
	"github.com/rmera/mol2props/chemgraph"
)

// cleanup turns neutral 5-valent nitrogens with a double bond to an oxygen
// (i.e. nitro groups written as N(=O)=O) into their charge-separated form.
func cleanup(T *chem.Topology) {
	for _, at := range T.Atoms {
		if at.Symbol != "N" || at.FormalCharge != 0 || ExplicitValence(at) != 5 {
			continue
		}
		for _, b := range at.Bonds {
			O := b.Cross(at)
			if O.Symbol == "O" && b.Order == 2 && O.FormalCharge == 0 && O.Degree() == 1 {
				b.Order = 1
				b.Type = "1"
				at.FormalCharge = 1
				O.FormalCharge = -1
				break
			}
		}
	}
}

// findRings sets the ring membership of atoms and bonds, and the rings of the topology.
func findRings(T *chem.Topology) {
	g := chemgraph.TopologyFromChem(T)
	T.Rings = g.CycleBasis()
	for _, at := range T.Atoms {
		at.InRing = false
	}
	for _, b := range T.Bonds {
		b.InRing = false
	}
	for _, r := range T.Rings {
		for _, i := range r {
			T.Atoms[i].InRing = true
		}
		for _, b := range g.RingBonds(r) {
			b.InRing = true
		}
	}
}

// Kekulization and aromaticity perception are not done by this toolkit.
// They are only a problem if the molecule has aromatic bonds.
func unsupported(T *chem.Topology, op Ops) error {
	if !T.Aromatic() {
		return nil
	}
	return ValidationError{Op: op, Atom: -1, message: fmt.Sprintf("%s requested on a molecule with aromatic bonds", op), deco: []string{"unsupported"}, critical: true, err: ErrUnsupported}
}

// findRadicals assigns radical electrons to atoms whose hydrogens are all explicit, and
// have less bonds than their smallest permitted valence.
func findRadicals(T *chem.Topology) {
	for _, at := range T.Atoms {
		at.NumRadicals = 0
		if at.Dummy() || !at.NoImplicit {
			continue
		}
		allowed := chem.AllowedValences(at.Symbol, at.FormalCharge)
		if len(allowed) == 0 {
			continue
		}
		v := ExplicitValence(at)
		if v < allowed[0] {
			at.NumRadicals = allowed[0] - v
		}
	}
}

func hasOtherUnsaturated(at *chem.Atom, b *chem.Bond) []*chem.Bond {
	var ret []*chem.Bond
	for _, o := range at.Bonds {
		if o != b && o.Unsaturated() {
			ret = append(ret, o)
		}
	}
	return ret
}

// setConjugation marks aromatic bonds, and single bonds between two unsaturated atoms
// (together with the unsaturated bonds) as conjugated.
func setConjugation(T *chem.Topology) {
	for _, b := range T.Bonds {
		b.Conjugated = b.Aromatic
	}
	for _, b := range T.Bonds {
		if b.Unsaturated() {
			continue
		}
		u1 := hasOtherUnsaturated(b.At1, b)
		u2 := hasOtherUnsaturated(b.At2, b)
		if len(u1) == 0 || len(u2) == 0 {
			continue
		}
		b.Conjugated = true
		for _, u := range append(u1, u2...) {
			u.Conjugated = true
		}
	}
}

// setHybridization assigns a hybridization to every atom from its number
// of neighbors and pi bonds.
func setHybridization(T *chem.Topology) {
	for _, at := range T.Atoms {
		degree := at.Degree() + at.ImplicitHs
		pi := 0
		aromatic := false
		for _, b := range at.Bonds {
			switch {
			case b.Aromatic:
				aromatic = true
			case b.Order >= 2:
				pi += int(b.Order) - 1
			}
		}
		if aromatic {
			pi++
		}
		switch {
		case at.Dummy() || degree == 0:
			at.Hybridization = chem.Unspecified
		case at.Symbol == "H":
			at.Hybridization = chem.S
		case pi >= 2:
			at.Hybridization = chem.SP
		case pi == 1:
			at.Hybridization = chem.SP2
		default:
			at.Hybridization = chem.SP3
		}
	}
}

// checkGeometry returns an error if two atoms are closer than chem.TooClose.
// Molecules without coordinates (all zeros) are not checked.
func checkGeometry(mol *chem.Molecule) error {
	if mol.LenFrames() == 0 {
		return nil
	}
	coords := mol.Coords[0]
	if coords.IsNull() {
		return nil
	}
	n := coords.NVecs()
	for i := 0; i < n; i++ {
		if mol.Atom(i).Dummy() {
			continue
		}
		for j := i + 1; j < n; j++ {
			if mol.Atom(j).Dummy() {
				continue
			}
			if d := coords.Distance(i, j); d < chem.TooClose {
				return newValidationError(OpCleanupGeometry, i, "checkGeometry",
					"atoms # %d %s and # %d %s overlap (%.3f A)", i, mol.Atom(i).Symbol, j, mol.Atom(j).Symbol, d)
			}
		}
	}
	return nil
}
