/*
 * banddos.go, part of gocrys.
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

import "fmt"

//BandDos pairs a band structure with a density of states of the same system.
type BandDos struct {
	Band *Band
	Dos  *Dos
}

//NewBandDos returns a BandDos containing b and d, which are not copied.
//b and d must be in the same unit.
func NewBandDos(b *Band, d *Dos) (*BandDos, error) {
	if b == nil || d == nil {
		return nil, newError(InvalidInput, "NewBandDos: both the band structure and the DOS are needed")
	}
	if b.Unit() != d.Unit() {
		return nil, newError(InvalidInput, fmt.Sprintf("NewBandDos: band structure in %s but DOS in %s", b.Unit(), d.Unit()))
	}
	return &BandDos{Band: b, Dos: d}, nil
}

//Unit returns the unit of the band structure, which is also that of the DOS.
func (BD *BandDos) Unit() string { return BD.Band.Unit() }

//CheckUnit returns the canonical form of unit if both members accept it.
func (BD *BandDos) CheckUnit(unit string) (string, error) {
	u, err := BD.Band.CheckUnit(unit)
	if err != nil {
		return "", errDecorate(err, "BandDos.CheckUnit")
	}
	if _, err = BD.Dos.CheckUnit(unit); err != nil {
		return "", errDecorate(err, "BandDos.CheckUnit")
	}
	return u, nil
}

//SetUnit sets unit for both the band structure and the DOS. The unit is checked for
//both before anything is changed, so either both members are converted or none is.
func (BD *BandDos) SetUnit(unit string) (*BandDos, error) {
	u, err := BD.CheckUnit(unit)
	if err != nil {
		return nil, errDecorate(err, "BandDos.SetUnit")
	}
	//Neither can fail now.
	if _, err := BD.Band.SetUnit(u); err != nil {
		panic(err)
	}
	if _, err := BD.Dos.SetUnit(u); err != nil {
		panic(err)
	}
	return BD, nil
}
