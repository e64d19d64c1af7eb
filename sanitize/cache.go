/*
 * cache.go, part of mol2props.
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
	"math"

	"github.com/charmbracelet/log"
	chem "github.com/rmera/mol2props"
)

// ExplicitValence returns the valence of at given by its explicit bonds. Aromatic
// bonds count 1.5, and the sum is rounded down after adding a small tolerance,
// so an aromatic carbon with 3 aromatic bonds has valence 4.
func ExplicitValence(at *chem.Atom) int {
	return int(math.Floor(chem.BondOrderSum(at) + 0.1))
}

func aromaticAtom(at *chem.Atom) bool {
	for _, b := range at.Bonds {
		if b.Aromatic {
			return true
		}
	}
	return false
}

// updatePropertyCache fills the explicit valence and implicit hydrogens of all atoms in T.
// If strict is true, it returns an error for the first atom with a valence greater than
// permitted. Otherwise, such atoms are logged at debug level and left without implicit hydrogens.
func updatePropertyCache(T *chem.Topology, strict bool, logger *log.Logger) error {
	for i, at := range T.Atoms {
		at.ExplicitValence = ExplicitValence(at)
		at.ImplicitHs = 0
		if at.Dummy() {
			continue
		}
		allowed := chem.AllowedValences(at.Symbol, at.FormalCharge)
		if allowed == nil {
			continue
		}
		max := allowed[len(allowed)-1]
		if at.ExplicitValence > max && aromaticAtom(at) && chem.BondOrderSum(at)-float64(max) <= 1.5 {
			//aromatic atoms bonded to H, such as pyrrole's N, are only over the limit because
			//their aromatic bonds count 1.5. Without kekulization, the largest valence is taken.
			at.ExplicitValence = max
		}
		if at.ExplicitValence > max {
			if strict {
				return newValidationError(OpProperties, i, "updatePropertyCache",
					"Explicit valence for atom # %d %s, %d, is greater than permitted", i, at.Symbol, at.ExplicitValence)
			}
			logger.Debug("valence over the permitted maximum", "molecule", T.Name(), "atom", i, "symbol", at.Symbol, "valence", at.ExplicitValence)
			continue
		}
		if at.NoImplicit {
			continue
		}
		for _, v := range allowed {
			if v >= at.ExplicitValence {
				at.ImplicitHs = v - at.ExplicitValence
				break
			}
		}
	}
	return nil
}
