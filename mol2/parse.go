/*
 * parse.go, part of mol2props.
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
	"strconv"
	"strings"

	chem "github.com/rmera/mol2props"
	v3 "github.com/rmera/mol2props/v3"
)

const rti = "@<TRIPOS>"

// Bond orders for the SYBYL bond types. "nc" (not connected) bonds are not read.
var bondOrders = map[string]float64{
	"1":  1,
	"2":  2,
	"3":  3,
	"ar": 1.5,
	"am": 1,
	"du": 1,
	"un": 0,
}

// Formal charges implied by some SYBYL atom types.
var typeCharges = map[string]int{
	"N.4": 1,
}

// SymbolFromType returns the element symbol for a SYBYL atom type (i.e. "C" for "C.ar",
// "Cl" for "Cl"). Dummy atoms and lone pairs give "*".
func SymbolFromType(sybyl string) string {
	s := sybyl
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	switch strings.ToUpper(s) {
	case "DU", "LP", "ANY", "HEV", "HET", "HAL":
		return "*"
	}
	if len(s) > 1 {
		s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	} else {
		s = strings.ToUpper(s)
	}
	return s
}

// parser keeps the state while reading a block.
type parser struct {
	top       *chem.Topology
	coords    []float64
	ids       map[int]int //file id -> index
	natoms    int
	nbonds    int
	bondsRead int
	section   string
	molLine   int //lines read in the MOLECULE section
	header    bool
	lineno    int
}

func (P *parser) errorf(format string, args ...interface{}) error {
	return Error{message: fmt.Sprintf(format, args...), line: P.lineno, deco: []string{"ParseBlock"}, critical: true}
}

// ParseBlock parses the text of one MOL2 record into a molecule. Line numbers in the errors
// are relative to the block, starting from 1.
func ParseBlock(text string) (*chem.Molecule, error) {
	P := &parser{top: chem.NewTopology(), ids: make(map[int]int), natoms: -1}
	for _, raw := range strings.Split(text, "\n") {
		P.lineno++
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, rti) {
			P.section = strings.TrimPrefix(trimmed, rti)
			P.header = P.header || P.section == "MOLECULE"
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		//blank lines are meaningful in the MOLECULE section, once the name has been read.
		if trimmed == "" && (P.section != "MOLECULE" || P.molLine == 0) {
			continue
		}
		var err error
		switch P.section {
		case "MOLECULE":
			err = P.molecule(line)
		case "ATOM":
			err = P.atom(trimmed)
		case "BOND":
			err = P.bond(trimmed)
		}
		if err != nil {
			return nil, err
		}
	}
	return P.finish()
}

func (P *parser) molecule(line string) error {
	P.molLine++
	switch P.molLine {
	case 1:
		P.top.SetName(strings.TrimSpace(line))
	case 2:
		f := strings.Fields(line)
		if len(f) < 1 {
			return P.errorf("%s: %q", BadCounts, line)
		}
		var err error
		if P.natoms, err = strconv.Atoi(f[0]); err != nil {
			return P.errorf("%s: %q", BadCounts, line)
		}
		P.nbonds = -1
		if len(f) > 1 {
			if P.nbonds, err = strconv.Atoi(f[1]); err != nil {
				return P.errorf("%s: %q", BadCounts, line)
			}
		}
	case 3:
		P.top.SetTypes(strings.TrimSpace(line), P.top.ChargeType())
	case 4:
		P.top.SetTypes(P.top.MolType(), strings.TrimSpace(line))
	}
	return nil
}

func (P *parser) atom(line string) error {
	f := strings.Fields(line)
	if len(f) < 6 {
		return P.errorf("%s: too few fields in %q", BadAtom, line)
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return P.errorf("%s: bad atom id %q", BadAtom, f[0])
	}
	if _, ok := P.ids[id]; ok {
		return P.errorf("%s: repeated atom id %d", BadAtom, id)
	}
	var xyz [3]float64
	for i := range xyz {
		if xyz[i], err = strconv.ParseFloat(f[2+i], 64); err != nil {
			return P.errorf("%s: bad coordinate %q", BadAtom, f[2+i])
		}
	}
	at := &chem.Atom{ID: id, Name: f[1], Type: f[5], NoImplicit: true}
	at.Symbol = SymbolFromType(at.Type)
	at.Mass = chem.Mass(at.Symbol)
	at.FormalCharge = typeCharges[at.Type]
	if len(f) > 6 {
		if at.MolID, err = strconv.Atoi(f[6]); err != nil {
			return P.errorf("%s: bad substructure id %q", BadAtom, f[6])
		}
	}
	if len(f) > 7 {
		at.Molname = f[7]
	}
	if len(f) > 8 {
		if at.Charge, err = strconv.ParseFloat(f[8], 64); err != nil {
			return P.errorf("%s: bad charge %q", BadAtom, f[8])
		}
	}
	P.ids[id] = P.top.Len()
	P.top.AppendAtom(at)
	P.coords = append(P.coords, xyz[:]...)
	return nil
}

func (P *parser) bond(line string) error {
	f := strings.Fields(line)
	if len(f) < 4 {
		return P.errorf("%s: too few fields in %q", BadBond, line)
	}
	var ends [2]int
	for i := range ends {
		id, err := strconv.Atoi(f[1+i])
		if err != nil {
			return P.errorf("%s: bad atom id %q", BadBond, f[1+i])
		}
		index, ok := P.ids[id]
		if !ok {
			return P.errorf("%s: %d", UnknownAtom, id)
		}
		ends[i] = index
	}
	btype := strings.ToLower(f[3])
	P.bondsRead++
	if btype == "nc" {
		return nil
	}
	order, ok := bondOrders[btype]
	if !ok {
		return P.errorf("%s: %q", UnknownBond, f[3])
	}
	if _, err := chem.Connect(P.top, ends[0], ends[1], order, btype); err != nil {
		return P.errorf("%s: %s", BadBond, err.Error())
	}
	return nil
}

func (P *parser) finish() (*chem.Molecule, error) {
	P.lineno = 0
	if !P.header {
		return nil, P.errorf(NoHeader)
	}
	if P.natoms < 0 {
		return nil, P.errorf("%s: no counts line", BadCounts)
	}
	if P.top.Len() == 0 {
		return nil, P.errorf(EmptyMolecule)
	}
	if P.natoms != P.top.Len() {
		return nil, P.errorf("%s: %d in header, %d read", AtomCount, P.natoms, P.top.Len())
	}
	if P.nbonds >= 0 && P.nbonds != P.bondsRead {
		return nil, P.errorf("%s: %d in header, %d read", BondCount, P.nbonds, P.bondsRead)
	}
	coords, err := v3.NewMatrix(P.coords)
	if err != nil {
		return nil, errDecorate(err, "ParseBlock")
	}
	mol, err := chem.NewMolecule(P.top, []*v3.Matrix{coords})
	if err != nil {
		return nil, errDecorate(err, "ParseBlock")
	}
	return mol, nil
}
