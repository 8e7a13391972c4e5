/*
 * interfaces.go, part of gocrys.
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
	"strings"
)

//Units. For bands and densities of states, UnitEV means energies in eV and
//lengths in Angstrom, while UnitAU means Hartree and Bohr. For charge densities,
//UnitAngstrom means e/A^3 and UnitAU e/Bohr^3.
const (
	UnitEV       = "eV"
	UnitAU       = "a.u."
	UnitAngstrom = "Angstrom"
)

//Uniter is implemented by all the data holders of the package.
type Uniter interface {
	//Unit returns the current unit of the object
	Unit() string

	//CheckUnit returns the canonical form of unit, or an InvalidUnit
	//error if the object doesn't know about the unit. It doesn't
	//change the object.
	CheckUnit(unit string) (string, error)
}

//canonical returns the canonical version of unit, in the set of
//recognized units given by known, which maps lower-case aliases
//to canonical names.
func canonical(unit string, known map[string]string) (string, error) {
	c, ok := known[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return "", newError(InvalidUnit, fmt.Sprintf("unit %q not recognized", unit))
	}
	return c, nil
}

var energyUnits = map[string]string{
	"ev":           UnitEV,
	"ev-angstrom":  UnitEV,
	"a.u.":         UnitAU,
	"hartree-bohr": UnitAU,
}

var densityUnits = map[string]string{
	"angstrom": UnitAngstrom,
	"a.u.":     UnitAU,
	"bohr":     UnitAU,
}
