/*
 * dos.go, part of gocrys.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//Dos is an electronic density of states, with energies referred to the Fermi level.
//The densities are positive for both spin channels, the sign of the beta channel
//is a matter of presentation.
//As with Band, a Dos must not be converted and read concurrently.
type Dos struct {
	spin   int
	efermi float64
	doss   []*mat.Dense //one nProj x nEnergy matrix per spin channel
	energy []float64
	unit   string
}

//NewDos returns a density of states. doss is indexed as doss[projection][energy][spin]
//and energy contains the non-decreasing energies at which the densities are given.
//unit is UnitEV or UnitAU. The data is copied.
func NewDos(spin int, efermi float64, doss [][][]float64, energy []float64, unit string) (*Dos, error) {
	u, err := canonical(unit, energyUnits)
	if err != nil {
		return nil, errDecorate(err, "NewDos")
	}
	if spin != 1 && spin != 2 {
		return nil, newError(InvalidInput, fmt.Sprintf("NewDos: spin must be 1 or 2, not %d", spin))
	}
	if len(energy) == 0 {
		return nil, newError(InvalidInput, "NewDos: no energies given")
	}
	if !sort.Float64sAreSorted(energy) {
		return nil, newError(InvalidInput, "NewDos: energies must be non-decreasing")
	}
	channels, err := channelsFrom(doss, len(energy), spin)
	if err != nil {
		return nil, errDecorate(err, "NewDos")
	}
	for s, ch := range channels {
		for _, v := range ch.RawMatrix().Data {
			if v < 0 {
				return nil, newError(InvalidInput, fmt.Sprintf("NewDos: negative density of states in channel %d", s))
			}
		}
	}
	D := &Dos{
		spin:   spin,
		efermi: efermi,
		doss:   channels,
		energy: append([]float64(nil), energy...),
		unit:   u,
	}
	return D, nil
}

//Spin returns 1 for closed shell and 2 for open shell systems.
func (D *Dos) Spin() int { return D.spin }

//NProj returns the number of projections.
func (D *Dos) NProj() int {
	r, _ := D.doss[0].Dims()
	return r
}

//NEnergy returns the number of energy points.
func (D *Dos) NEnergy() int { return len(D.energy) }

//Unit returns the current unit.
func (D *Dos) Unit() string { return D.unit }

//EFermi returns the Fermi energy.
func (D *Dos) EFermi() float64 { return D.efermi }

//Energy returns a copy of the energies.
func (D *Dos) Energy() []float64 { return append([]float64(nil), D.energy...) }

//Value returns the density of projection p at the energy point e for the spin channel s.
func (D *Dos) Value(p, e, s int) float64 {
	if s < 0 || s >= D.spin {
		panic(ErrIndexOutOfRange)
	}
	return D.doss[s].At(p, e)
}

//Channel returns a copy of the nProj x nEnergy matrix of the spin channel s.
func (D *Dos) Channel(s int) *mat.Dense {
	if s < 0 || s >= D.spin {
		panic(ErrIndexOutOfRange)
	}
	return mat.DenseCopyOf(D.doss[s])
}

//CheckUnit returns the canonical form of unit or an InvalidUnit error.
func (D *Dos) CheckUnit(unit string) (string, error) {
	return canonical(unit, energyUnits)
}

//SetUnit converts the energies of D to unit, and the densities, which are per unit
//of energy, accordingly. It returns D. If unit is not valid, D is not changed and
//an InvalidUnit error is returned.
func (D *Dos) SetUnit(unit string) (*Dos, error) {
	u, err := D.CheckUnit(unit)
	if err != nil {
		return nil, errDecorate(err, "Dos.SetUnit")
	}
	if u == D.unit {
		return D, nil
	}
	e, _ := energyLengthTo(u)
	inv := EvToHartrees //states per Hartree to states per eV
	if u == UnitAU {
		inv = HartreeToEvs
	}
	D.efermi = e([]float64{D.efermi}, []float64{D.efermi})[0]
	e(D.energy, D.energy)
	for _, ch := range D.doss {
		denseApply(ch, inv)
	}
	D.unit = u
	return D, nil
}
