/*
 * v3_test.go, part of mol2props.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	if v := A.At(1, 2); v != 6 {
		Te.Errorf("vector 1 z should be 6, got %v", v)
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("a slice not divisible by 3 should give an error")
	}
}

func TestDistanceAndNull(Te *testing.T) {
	A := Zeros(2)
	if !A.IsNull() {
		Te.Error("a zero matrix should be null")
	}
	A.Set(1, 0, 3)
	A.Set(1, 1, 4)
	if A.IsNull() {
		Te.Error("matrix with a non-zero vector reported as null")
	}
	if d := A.Distance(0, 1); math.Abs(d-5) > 1e-9 {
		Te.Errorf("expected distance 5, got %v", d)
	}
	if Zeros(0).NVecs() != 0 {
		Te.Error("empty matrix should have no vectors")
	}
}
