/*
 * bonds.go, part of mol2props.
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
)

// TooClose is the distance in A under which two atoms are considered to overlap.
// From DOI:10.1186/1758-2946-3-33
const TooClose = 0.63

// Bond connects two atoms. Order 0 means undetermined, aromatic bonds
// have order 1.5.
type Bond struct {
	Index      int
	At1        *Atom
	At2        *Atom
	Order      float64
	Type       string //the SYBYL bond type
	Aromatic   bool
	Conjugated bool
	InRing     bool
}

// Cross returns the atom bonded to origin through B
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //this has to be a programming error, so a panic is warranted.
}

// Unsaturated returns true if the bond is double, triple or aromatic.
func (B *Bond) Unsaturated() bool {
	return B.Aromatic || B.Order >= 2
}

// Connect bonds the atoms with indexes i and j in T, with the given order and
// SYBYL type, and returns the new bond.
func Connect(T *Topology, i, j int, order float64, bondtype string) (*Bond, error) {
	if i >= T.Len() || j >= T.Len() || i < 0 || j < 0 {
		return nil, CError{fmt.Sprintf("Bond between atoms %d and %d out of range (%d atoms)", i, j, T.Len()), []string{"Connect"}}
	}
	if i == j {
		return nil, CError{fmt.Sprintf("Atom %d can't be bonded to itself", i), []string{"Connect"}}
	}
	b := &Bond{Index: len(T.Bonds), At1: T.Atoms[i], At2: T.Atoms[j], Order: order, Type: bondtype}
	b.Aromatic = bondtype == "ar"
	b.At1.Bonds = append(b.At1.Bonds, b)
	b.At2.Bonds = append(b.At2.Bonds, b)
	T.Bonds = append(T.Bonds, b)
	return b, nil
}

// BondOrderSum returns the sum of the orders of the bonds of at.
func BondOrderSum(at *Atom) float64 {
	var sum float64
	for _, b := range at.Bonds {
		sum += b.Order
	}
	return sum
}
