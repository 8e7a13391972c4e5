/*
 * dos_test.go, part of gocrys.
 *
 *
 * Copyright 2024 The gocrys authors
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

package crys

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

//testDos returns a 2-projection DOS in eV on 5 energy points.
func testDos(Te *testing.T, spin int) *Dos {
	energy := []float64{-2, -1, 0, 1, 2}
	doss := make([][][]float64, 2)
	for p := range doss {
		doss[p] = make([][]float64, len(energy))
		for e := range energy {
			v := make([]float64, spin)
			for s := range v {
				v[s] = float64(p+1) * float64(e+s)
			}
			doss[p][e] = v
		}
	}
	D, err := NewDos(spin, -4.2, doss, energy, "eV")
	if err != nil {
		Te.Fatal(err)
	}
	return D
}

type dosSnapshot struct {
	Unit     string
	EFermi   float64
	Energy   []float64
	Channels [][]float64
}

func snapDos(D *Dos) dosSnapshot {
	s := dosSnapshot{Unit: D.Unit(), EFermi: D.EFermi(), Energy: D.Energy()}
	for i := 0; i < D.Spin(); i++ {
		s.Channels = append(s.Channels, D.Channel(i).RawMatrix().Data)
	}
	return s
}

func TestNewDosValidation(Te *testing.T) {
	D := testDos(Te, 2)
	if D.NProj() != 2 || D.NEnergy() != 5 || D.Value(1, 3, 1) != 8 {
		Te.Errorf("wrong DOS layout: %d %d %v", D.NProj(), D.NEnergy(), D.Value(1, 3, 1))
	}
	neg := [][][]float64{{{1}, {-0.1}}}
	if _, err := NewDos(1, 0, neg, []float64{0, 1}, "eV"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("negative densities should be rejected, got %v", err)
	}
	ok := [][][]float64{{{1}, {0.1}}}
	if _, err := NewDos(1, 0, ok, []float64{1, 0}, "eV"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("decreasing energies should be rejected, got %v", err)
	}
	if _, err := NewDos(1, 0, ok, []float64{0, 1, 2}, "eV"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("mismatched energies should be rejected, got %v", err)
	}
	if _, err := NewDos(1, 0, ok, []float64{0, 1}, "meV"); !errors.Is(err, ErrInvalidUnit) {
		Te.Errorf("unknown unit should be rejected, got %v", err)
	}
}

func TestDosSetUnit(Te *testing.T) {
	D := testDos(Te, 2)
	orig := snapDos(D)
	if _, err := D.SetUnit("a.u."); err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinRel(D.Energy()[4], 2/H2eV, 1e-12) {
		Te.Errorf("energy not converted: %v", D.Energy())
	}
	//states per eV to states per Hartree
	if !scalar.EqualWithinRel(D.Value(1, 3, 1), 8*H2eV, 1e-12) {
		Te.Errorf("density not converted: %v", D.Value(1, 3, 1))
	}
	if _, err := D.SetUnit("eV"); err != nil {
		Te.Fatal(err)
	}
	now := snapDos(D)
	if now.Unit != orig.Unit || !floats.EqualApprox(now.Energy, orig.Energy, 1e-9) || !scalar.EqualWithinRel(now.EFermi, orig.EFermi, 1e-9) {
		Te.Errorf("round trip changed the energies")
	}
	for i := range now.Channels {
		if !floats.EqualApprox(now.Channels[i], orig.Channels[i], 1e-9) {
			Te.Errorf("round trip changed the densities of channel %d", i)
		}
	}
	before := snapDos(D)
	D.SetUnit("ev")
	if !reflect.DeepEqual(before, snapDos(D)) {
		Te.Errorf("SetUnit to the current unit changed the DOS")
	}
	if _, err := D.SetUnit("kelvin"); !errors.Is(err, ErrInvalidUnit) {
		Te.Errorf("expected InvalidUnit, got %v", err)
	}
	if !reflect.DeepEqual(before, snapDos(D)) {
		Te.Errorf("a failed SetUnit changed the DOS")
	}
}
