/*
 * charge.go, part of gocrys.
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
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//bohr3 is the volume of a cubic Bohr in A^3.
const bohr3 = Bohr2A * Bohr2A * Bohr2A

//ChargeDensity is a 2D or 3D charge density map, with an optional spin density map
//on the same grid. Densities are in e/A^3 (unit UnitAngstrom) or e/Bohr^3 (UnitAU).
//The grid is defined by one base vector per dimension of the map.
//ChargeDensity is not safe for concurrent conversion and reading.
type ChargeDensity struct {
	spin    int
	gridv   *mat.Dense
	chg     *Map
	spinMap *Map
	unit    string

	//A, B, C define the plane of a 2D map, as given by CRYSTAL's ECHG.
	//nil if the map wasn't built from them.
	points *mat.Dense
	cosxy  float64

	//Structure is the crystal structure the map belongs to, if any.
	//It is not used nor changed by this package.
	Structure any
}

//NewChargeDensity returns a charge density for the given data. gridv contains one 3-element
//base vector per dimension of chg. spinMap can be nil, otherwise it must have the same
//shape as chg. The maps are copied. unit is UnitAngstrom or UnitAU.
func NewChargeDensity(spin int, gridv [][]float64, chg, spinMap *Map, structure any, unit string) (*ChargeDensity, error) {
	u, err := canonical(unit, densityUnits)
	if err != nil {
		return nil, errDecorate(err, "NewChargeDensity")
	}
	if spin != 1 && spin != 2 {
		return nil, newError(InvalidInput, fmt.Sprintf("NewChargeDensity: spin must be 1 or 2, not %d", spin))
	}
	if chg == nil {
		return nil, newError(InvalidInput, "NewChargeDensity: no charge density map given")
	}
	nd := len(chg.dims)
	if nd != 2 && nd != 3 {
		return nil, newError(InvalidInput, fmt.Sprintf("NewChargeDensity: maps must be 2D or 3D, not %dD", nd))
	}
	if gridv == nil {
		return nil, newError(InvalidInput, "NewChargeDensity: no grid vectors given")
	}
	gv, err := rows3(gridv, nd)
	if err != nil {
		return nil, errDecorate(err, "NewChargeDensity: grid vectors")
	}
	for i := 0; i < nd; i++ {
		if floats.Norm(gv.RawRowView(i), 2) < GridTol {
			return nil, newError(InvalidInput, fmt.Sprintf("NewChargeDensity: grid vector %d has zero length", i))
		}
	}
	C := &ChargeDensity{
		spin:      spin,
		gridv:     gv,
		chg:       chg.Clone(),
		unit:      u,
		Structure: structure,
	}
	if spinMap != nil {
		if !spinMap.SameShape(chg) {
			return nil, newError(InvalidInput, fmt.Sprintf("NewChargeDensity: spin map dimensions %v don't match charge map dimensions %v", spinMap.dims, chg.dims))
		}
		C.spinMap = spinMap.Clone()
	}
	return C, nil
}

//NewChargeDensityECHG returns a 2D charge density defined, as in CRYSTAL's ECHG keyword, by
//the points a, b and c, in the length unit given: the grid vectors are a-b and c-b.
//cosxy is the cosine of the angle between them.
func NewChargeDensityECHG(spin int, a, b, c []float64, cosxy float64, chg, spinMap *Map, structure any, unit string) (*ChargeDensity, error) {
	pts, err := rows3([][]float64{a, b, c}, 3)
	if err != nil {
		return nil, errDecorate(err, "NewChargeDensityECHG: points")
	}
	ab := make([]float64, 3)
	cb := make([]float64, 3)
	floats.SubTo(ab, a, b)
	floats.SubTo(cb, c, b)
	C, err := NewChargeDensity(spin, [][]float64{ab, cb}, chg, spinMap, structure, unit)
	if err != nil {
		return nil, errDecorate(err, "NewChargeDensityECHG")
	}
	C.points = pts
	C.cosxy = cosxy
	return C, nil
}

//Difference returns a new charge density with the maps of ref minus those of each of others.
//All the densities must have the same unit, grid vectors (within GridTol) and map shapes,
//and either all or none must have a spin map. Otherwise an InconsistentGrid error is
//returned. None of the operands is changed.
func Difference(ref *ChargeDensity, others ...*ChargeDensity) (*ChargeDensity, error) {
	if ref == nil {
		return nil, newError(InvalidInput, "Difference: nil reference charge density")
	}
	for i, o := range others {
		if err := ref.consistent(o); err != nil {
			err.Decorate(fmt.Sprintf("Difference: operand %d", i+1))
			return nil, err
		}
	}
	ret := ref.Clone()
	for _, o := range others {
		ret.chg.Sub(o.chg)
		if ret.spinMap != nil {
			ret.spinMap.Sub(o.spinMap)
		}
	}
	return ret, nil
}

//consistent returns an error if C and o can't be combined.
func (C *ChargeDensity) consistent(o *ChargeDensity) *Error {
	if o == nil {
		return newError(InconsistentGrid, "nil charge density")
	}
	if C.unit != o.unit {
		return newError(InconsistentGrid, fmt.Sprintf("units %s and %s differ", C.unit, o.unit))
	}
	r, _ := C.gridv.Dims()
	ro, _ := o.gridv.Dims()
	if r != ro {
		return newError(InconsistentGrid, fmt.Sprintf("%d and %d grid vectors", r, ro))
	}
	for i := 0; i < r; i++ {
		d := floats.Distance(C.gridv.RawRowView(i), o.gridv.RawRowView(i), 2)
		if d > GridTol {
			return newError(InconsistentGrid, fmt.Sprintf("grid vector %d differs by %g", i, d))
		}
	}
	if !C.chg.SameShape(o.chg) {
		return newError(InconsistentGrid, fmt.Sprintf("charge maps have dimensions %v and %v", C.chg.dims, o.chg.dims))
	}
	if (C.spinMap == nil) != (o.spinMap == nil) {
		return newError(InconsistentGrid, "only one of the densities has a spin map")
	}
	if C.spinMap != nil && !C.spinMap.SameShape(o.spinMap) {
		return newError(InconsistentGrid, fmt.Sprintf("spin maps have dimensions %v and %v", C.spinMap.dims, o.spinMap.dims))
	}
	return nil
}

//Clone returns a deep copy of C. The Structure is shared.
func (C *ChargeDensity) Clone() *ChargeDensity {
	ret := &ChargeDensity{
		spin:      C.spin,
		gridv:     mat.DenseCopyOf(C.gridv),
		chg:       C.chg.Clone(),
		unit:      C.unit,
		cosxy:     C.cosxy,
		Structure: C.Structure,
	}
	if C.spinMap != nil {
		ret.spinMap = C.spinMap.Clone()
	}
	if C.points != nil {
		ret.points = mat.DenseCopyOf(C.points)
	}
	return ret
}

//Spin returns 1 for closed shell and 2 for open shell systems.
func (C *ChargeDensity) Spin() int { return C.spin }

//Unit returns the current unit.
func (C *ChargeDensity) Unit() string { return C.unit }

//GridVectors returns a copy of the grid base vectors, one per row.
func (C *ChargeDensity) GridVectors() *mat.Dense { return mat.DenseCopyOf(C.gridv) }

//ChargeMap returns a copy of the charge density map.
func (C *ChargeDensity) ChargeMap() *Map { return C.chg.Clone() }

//HasSpinMap returns true if a spin density map is available.
func (C *ChargeDensity) HasSpinMap() bool { return C.spinMap != nil }

//SpinMap returns a copy of the spin density map. It panics if there is none.
func (C *ChargeDensity) SpinMap() *Map {
	if C.spinMap == nil {
		panic(ErrNoSpinMap)
	}
	return C.spinMap.Clone()
}

//Points returns a copy of the A, B and C points (one per row) defining
//a 2D map, or nil, and the cosine of the angle between the grid vectors.
func (C *ChargeDensity) Points() (*mat.Dense, float64) {
	if C.points == nil {
		return nil, C.cosxy
	}
	return mat.DenseCopyOf(C.points), C.cosxy
}

//CheckUnit returns the canonical form of unit or an InvalidUnit error.
func (C *ChargeDensity) CheckUnit(unit string) (string, error) {
	return canonical(unit, densityUnits)
}

//SetUnit converts the densities, which are per unit volume, and the grid
//to unit, and returns C. If unit is not valid, C is not changed and an
//InvalidUnit error is returned.
func (C *ChargeDensity) SetUnit(unit string) (*ChargeDensity, error) {
	u, err := C.CheckUnit(unit)
	if err != nil {
		return nil, errDecorate(err, "ChargeDensity.SetUnit")
	}
	if u == C.unit {
		return C, nil
	}
	factor := bohr3 //e/A^3 to e/Bohr^3
	l := AngstromToBohrs
	if u == UnitAngstrom {
		factor = 1 / bohr3
		l = BohrToAngstroms
	}
	C.chg.Scale(factor)
	if C.spinMap != nil {
		C.spinMap.Scale(factor)
	}
	denseApply(C.gridv, l)
	if C.points != nil {
		denseApply(C.points, l)
	}
	C.unit = u
	return C, nil
}
