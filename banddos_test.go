/*
 * banddos_test.go, part of gocrys.
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
)

func TestBandDos(Te *testing.T) {
	if _, err := NewBandDos(nil, testDos(Te, 1)); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("a nil member should be rejected, got %v", err)
	}
	B := testBand(Te, 1)
	D := testDos(Te, 1)
	BD, err := NewBandDos(B, D)
	if err != nil {
		Te.Fatal(err)
	}
	B.Gap()
	bsnap, dsnap := snapBand(B), snapDos(D)
	if _, err := BD.SetUnit("kelvin"); !errors.Is(err, ErrInvalidUnit) {
		Te.Errorf("expected InvalidUnit, got %v", err)
	}
	if !reflect.DeepEqual(bsnap, snapBand(B)) || !reflect.DeepEqual(dsnap, snapDos(D)) {
		Te.Errorf("a failed SetUnit changed a member")
	}
	ret, err := BD.SetUnit("Hartree-Bohr")
	if err != nil {
		Te.Fatal(err)
	}
	if ret != BD || BD.Unit() != UnitAU || B.Unit() != UnitAU || D.Unit() != UnitAU {
		Te.Errorf("both members should be in a.u.: %s %s", B.Unit(), D.Unit())
	}
	if _, err := BD.SetUnit("eV"); err != nil {
		Te.Fatal(err)
	}
	if !approxSnap(bsnap, snapBand(B), 1e-9) {
		Te.Errorf("round trip changed the band structure")
	}
}

func TestUniters(Te *testing.T) {
	C, err := NewChargeDensity(1, [][]float64{{1, 0, 0}, {0, 1, 0}}, testMap(Te, 0), nil, nil, "a.u.")
	if err != nil {
		Te.Fatal(err)
	}
	BD, _ := NewBandDos(testBand(Te, 1), testDos(Te, 1))
	uniters := []Uniter{testBand(Te, 2), testDos(Te, 2), BD, C}
	expected := []string{UnitEV, UnitEV, UnitEV, UnitAU}
	for i, u := range uniters {
		if u.Unit() != expected[i] {
			Te.Errorf("object %d: expected unit %s, got %s", i, expected[i], u.Unit())
		}
		if _, err := u.CheckUnit("kelvin"); !errors.Is(err, ErrInvalidUnit) {
			Te.Errorf("object %d accepted kelvin", i)
		}
	}
	if c, _ := C.CheckUnit("BOHR"); c != UnitAU {
		Te.Errorf("Bohr should be an alias of %s, got %s", UnitAU, c)
	}
}

func TestBandDosMixedUnits(Te *testing.T) {
	B := testBand(Te, 1)
	D := testDos(Te, 1)
	if _, err := D.SetUnit("a.u."); err != nil {
		Te.Fatal(err)
	}
	dsnap := snapDos(D)
	if _, err := NewBandDos(B, D); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("a band structure in eV and a DOS in a.u. should be rejected, got %v", err)
	}
	if !reflect.DeepEqual(dsnap, snapDos(D)) || B.Unit() != UnitEV {
		Te.Errorf("a rejected NewBandDos changed its arguments")
	}
	B.SetUnit("a.u.")
	BD, err := NewBandDos(B, D)
	if err != nil {
		Te.Fatal(err)
	}
	bsnap := snapBand(B)
	BD.SetUnit(BD.Unit())
	if !reflect.DeepEqual(bsnap, snapBand(B)) || !reflect.DeepEqual(dsnap, snapDos(D)) {
		Te.Errorf("SetUnit to the current unit changed a member")
	}
}
