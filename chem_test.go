/*
 * chem_test.go, part of mol2props.
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
	"testing"

	v3 "github.com/rmera/mol2props/v3"
)

// water builds a water molecule by hand.
func water(Te *testing.T) *Molecule {
	ats := []*Atom{
		{Name: "O1", ID: 1, Symbol: "O", Type: "O.3", Mass: Mass("O")},
		{Name: "H1", ID: 2, Symbol: "H", Type: "H", Mass: Mass("H")},
		{Name: "H2", ID: 3, Symbol: "H", Type: "H", Mass: Mass("H")},
	}
	top := NewTopology(ats)
	top.SetName("water")
	for _, j := range []int{1, 2} {
		if _, err := Connect(top, 0, j, 1, "1"); err != nil {
			Te.Fatal(err)
		}
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0.96, 0, 0, -0.24, 0.93, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule(top, []*v3.Matrix{coords})
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestTopology(Te *testing.T) {
	mol := water(Te)
	if mol.Name() != "water" {
		Te.Errorf("wrong name %q", mol.Name())
	}
	O := mol.Atom(0)
	if O.Degree() != 2 || O.TotalHs() != 2 {
		Te.Errorf("oxygen should have 2 bonds and 2 Hs, got %d and %d", O.Degree(), O.TotalHs())
	}
	if BondOrderSum(O) != 2 {
		Te.Errorf("wrong bond order sum %v", BondOrderSum(O))
	}
	if mol.Bonds[1].Cross(O) != mol.Atom(2) {
		Te.Error("Cross returned the wrong atom")
	}
	if mol.Atom(2).Index() != 2 {
		Te.Errorf("wrong index %d", mol.Atom(2).Index())
	}
	if O.Mass != 16.00 {
		Te.Errorf("wrong O mass %v", O.Mass)
	}
	if _, err := Connect(mol.Topology, 1, 1, 1, "1"); err == nil {
		Te.Error("self bond should fail")
	}
	if _, err := Connect(mol.Topology, 1, 7, 1, "1"); err == nil {
		Te.Error("bond to a missing atom should fail")
	}
}

func TestMoleculeCoords(Te *testing.T) {
	mol := water(Te)
	if mol.LenFrames() != 1 || mol.Coords[0].At(1, 0) != 0.96 {
		Te.Errorf("wrong coordinates %v", mol.Coords)
	}
	if _, err := NewMolecule(mol.Topology, []*v3.Matrix{v3.Zeros(2)}); err == nil {
		Te.Error("mismatched coordinates should give an error")
	}
	if _, err := NewMolecule(nil, nil); err == nil {
		Te.Error("a nil topology should give an error")
	}
}

func TestAllowedValences(Te *testing.T) {
	cases := []struct {
		symbol string
		charge int
		want   int
	}{
		{"C", 0, 4},
		{"N", 0, 3},
		{"N", 1, 4},
		{"O", -1, 1},
		{"C", 1, 3},
		{"B", -1, 4},
	}
	for _, c := range cases {
		v := AllowedValences(c.symbol, c.charge)
		if len(v) == 0 || v[0] != c.want {
			Te.Errorf("%s(%d): expected %d, got %v", c.symbol, c.charge, c.want, v)
		}
	}
	if AllowedValences("Zn", 2) != nil {
		Te.Error("metals should not be checked")
	}
	if v := AllowedValences("S", 0); len(v) != 3 || v[2] != 6 {
		Te.Errorf("wrong valences for S: %v", v)
	}
}
