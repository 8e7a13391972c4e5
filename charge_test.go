/*
 * charge_test.go, part of gocrys.
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
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func testMap(Te *testing.T, offset float64) *Map {
	M, err := NewMap2D([][]float64{
		{1 + offset, 2 + offset, 3 + offset},
		{4 + offset, 5 + offset, 6 + offset},
	})
	if err != nil {
		Te.Fatal(err)
	}
	return M
}

func testCharge(Te *testing.T, offset float64, b []float64) *ChargeDensity {
	C, err := NewChargeDensityECHG(2, []float64{1, 0, 0}, b, []float64{0, 1, 0}, 0, testMap(Te, offset), testMap(Te, offset/2), nil, "Angstrom")
	if err != nil {
		Te.Fatal(err)
	}
	return C
}

func TestMap(Te *testing.T) {
	M := testMap(Te, 0)
	if !reflect.DeepEqual(M.Dims(), []int{2, 3}) || M.At(1, 2) != 6 || M.Len() != 6 {
		Te.Errorf("wrong map %v %v", M.Dims(), M.At(1, 2))
	}
	M3, err := NewMap([]int{2, 2, 2}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	M3.Set(7, 1, 0, 1)
	if M3.Data()[5] != 7 {
		Te.Errorf("wrong row-major layout: %v", M3.Data())
	}
	if _, err := NewMap([]int{2, 2}, []float64{1}); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("wrong data length should be rejected, got %v", err)
	}
	if _, err := NewMap2D([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("ragged rows should be rejected, got %v", err)
	}
}

func TestNewChargeDensity(Te *testing.T) {
	C := testCharge(Te, 0, []float64{0, 0, 0})
	gv := C.GridVectors()
	if gv.At(0, 0) != 1 || gv.At(1, 1) != 1 {
		Te.Errorf("grid vectors should be a-b and c-b, got %v", gv.RawMatrix().Data)
	}
	if !C.HasSpinMap() || C.SpinMap().At(0, 0) != 1 {
		Te.Errorf("wrong spin map")
	}
	wrong, _ := NewMap2D([][]float64{{1, 2}, {3, 4}})
	if _, err := NewChargeDensity(2, [][]float64{{1, 0, 0}, {0, 1, 0}}, testMap(Te, 0), wrong, nil, "Angstrom"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("a spin map of a different shape should be rejected, got %v", err)
	}
	if _, err := NewChargeDensity(1, [][]float64{{1, 0, 0}}, testMap(Te, 0), nil, nil, "Angstrom"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("one grid vector for a 2D map should be rejected, got %v", err)
	}
	if _, err := NewChargeDensity(1, [][]float64{{1, 0, 0}, {0, 1, 0}}, testMap(Te, 0), nil, nil, "eV"); !errors.Is(err, ErrInvalidUnit) {
		Te.Errorf("eV is not a density unit, got %v", err)
	}
}

func TestDifference(Te *testing.T) {
	ref := testCharge(Te, 10, []float64{0, 0, 0})
	o1 := testCharge(Te, 2, []float64{0, 0, 0})
	o2 := testCharge(Te, 1, []float64{0.00001, 0, 0}) //within tolerance
	D, err := Difference(ref, o1, o2)
	if err != nil {
		Te.Fatal(err)
	}
	//(1+10)-(1+2)-(1+1)
	if D.ChargeMap().At(0, 0) != 6 {
		Te.Errorf("wrong difference %v", D.ChargeMap().At(0, 0))
	}
	//(1+5)-(1+1)-(1+0.5)
	if D.SpinMap().At(0, 0) != 2.5 {
		Te.Errorf("wrong spin difference %v", D.SpinMap().At(0, 0))
	}
	if ref.ChargeMap().At(0, 0) != 11 || o1.ChargeMap().At(0, 0) != 3 {
		Te.Errorf("operands were modified")
	}
}

func TestDifferenceRejection(Te *testing.T) {
	ref := testCharge(Te, 10, []float64{0, 0, 0})
	far := testCharge(Te, 2, []float64{0.001, 0, 0})
	refData, farData := ref.ChargeMap().Data(), far.ChargeMap().Data()
	refSpin, farSpin := ref.SpinMap().Data(), far.SpinMap().Data()
	_, err := Difference(ref, far)
	if !errors.Is(err, ErrInconsistentGrid) {
		Te.Errorf("expected InconsistentGrid, got %v", err)
	}
	if !floats.Equal(refData, ref.ChargeMap().Data()) || !floats.Equal(farData, far.ChargeMap().Data()) ||
		!floats.Equal(refSpin, ref.SpinMap().Data()) || !floats.Equal(farSpin, far.SpinMap().Data()) {
		Te.Errorf("a failed Difference modified the operands")
	}
	M3, _ := NewMap([]int{3, 3}, nil)
	shape, err := NewChargeDensity(2, [][]float64{{1, 0, 0}, {0, 1, 0}}, M3, M3, nil, "Angstrom")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = Difference(ref, shape); !errors.Is(err, ErrInconsistentGrid) {
		Te.Errorf("different shapes: expected InconsistentGrid, got %v", err)
	}
	noSpin, _ := NewChargeDensity(1, [][]float64{{1, 0, 0}, {0, 1, 0}}, testMap(Te, 0), nil, nil, "Angstrom")
	if _, err = Difference(ref, noSpin); !errors.Is(err, ErrInconsistentGrid) {
		Te.Errorf("missing spin map: expected InconsistentGrid, got %v", err)
	}
	au := testCharge(Te, 0, []float64{0, 0, 0})
	au.SetUnit("a.u.")
	if _, err = Difference(ref, au); !errors.Is(err, ErrInconsistentGrid) {
		Te.Errorf("different units: expected InconsistentGrid, got %v", err)
	}
}

func TestChargeSetUnit(Te *testing.T) {
	C := testCharge(Te, 0, []float64{0, 0, 0})
	chg, spin := C.ChargeMap().Data(), C.SpinMap().Data()
	gv := C.GridVectors().RawMatrix().Data
	if _, err := C.SetUnit("BOHR"); err != nil {
		Te.Fatal(err)
	}
	cube := math.Pow(0.529177210903, 3)
	if !scalar.EqualWithinRel(C.ChargeMap().At(1, 2), 6*cube, 1e-12) {
		Te.Errorf("e/A^3 to e/Bohr^3: expected %v, got %v", 6*cube, C.ChargeMap().At(1, 2))
	}
	if !scalar.EqualWithinRel(C.GridVectors().At(0, 0), 1/Bohr2A, 1e-12) {
		Te.Errorf("grid vectors not converted")
	}
	pts, _ := C.Points()
	if !scalar.EqualWithinRel(pts.At(2, 1), 1/Bohr2A, 1e-12) {
		Te.Errorf("points not converted")
	}
	snap := C.Clone()
	if _, err := C.SetUnit("kelvin"); !errors.Is(err, ErrInvalidUnit) {
		Te.Errorf("expected InvalidUnit, got %v", err)
	}
	if !reflect.DeepEqual(snap, C) {
		Te.Errorf("a failed SetUnit changed the charge density")
	}
	C.SetUnit("a.u.")
	if !reflect.DeepEqual(snap, C) {
		Te.Errorf("SetUnit to the current unit changed the charge density")
	}
	if _, err := C.SetUnit("angstrom"); err != nil {
		Te.Fatal(err)
	}
	if C.Unit() != UnitAngstrom {
		Te.Errorf("wrong unit %s", C.Unit())
	}
	if !floats.EqualApprox(chg, C.ChargeMap().Data(), 1e-9) || !floats.EqualApprox(spin, C.SpinMap().Data(), 1e-9) ||
		!floats.EqualApprox(gv, C.GridVectors().RawMatrix().Data, 1e-9) {
		Te.Errorf("round trip changed the charge density")
	}
}

func TestDifferenceNilReference(Te *testing.T) {
	if _, err := Difference(nil, testCharge(Te, 0, []float64{0, 0, 0})); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("a nil reference should give InvalidInput, got %v", err)
	}
	if _, err := Difference(nil); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("a nil reference should give InvalidInput, got %v", err)
	}
}

func TestZeroGridVector(Te *testing.T) {
	if _, err := NewChargeDensity(1, [][]float64{{1, 0, 0}, {0, 0, 0}}, testMap(Te, 0), nil, nil, "Angstrom"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("a zero-length grid vector should be rejected, got %v", err)
	}
	//c == b
	if _, err := NewChargeDensityECHG(1, []float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 1, 0}, 0, testMap(Te, 0), nil, nil, "Angstrom"); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("coincident ECHG points should be rejected, got %v", err)
	}
}
