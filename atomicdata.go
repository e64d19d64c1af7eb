/*
 * atomicdata.go, part of mol2props.
 *
 *
 * Copyright 2014 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

// A map for assigning mass to elements.
// Note that just common "bio-elements" and halogens are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"B":  10.81,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Li": 6.94,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"Al": 26.98,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// A map with the permitted valences of the neutral elements, smallest first.
// Elements absent from the map (i.e. metals) are not checked.
var symbolValences = map[string][]int{
	"H":  {1},
	"B":  {3},
	"C":  {4},
	"N":  {3},
	"O":  {2},
	"F":  {1},
	"Si": {4},
	"P":  {3, 5, 7},
	"S":  {2, 4, 6},
	"Cl": {1},
	"Se": {2, 4, 6},
	"Br": {1},
	"I":  {1, 3, 5},
}

// Elements that gain a bond when positively charged (isoelectronic with the next
// group, i.e. N+ behaves like C).
var electronRich = []string{"N", "P", "O", "S", "Se"}

// Mass returns the mass for the element symbol, or 0 if unknown.
func Mass(symbol string) float64 {
	return symbolMass[symbol]
}

// AllowedValences returns the permitted valences for an atom of the given element with the given formal charge,
// smallest first. A nil slice means that the valence of this element is not checked.
func AllowedValences(symbol string, charge int) []int {
	vals, ok := symbolValences[symbol]
	if !ok {
		return nil
	}
	ret := make([]int, 0, len(vals))
	for _, v := range vals {
		switch {
		case charge > 0 && isInString(electronRich, symbol):
			v += charge
		case charge > 0:
			v -= charge
		case charge < 0 && symbol == "B": //B- is isoelectronic with C
			v -= charge
		case charge < 0:
			v += charge
		}
		if v >= 0 {
			ret = append(ret, v)
		}
	}
	return ret
}
