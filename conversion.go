/*
 * conversion.go, part of gocrys.
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

import "gonum.org/v1/gonum/floats"

//Conversion factors. These are the CODATA 2018 values, and the only ones used
//in the library.
const (
	H2eV   = 27.211386245988 //Hartree to eV
	EV2H   = 1 / H2eV
	Bohr2A = 0.529177210903 //Bohr to Angstrom
	A2Bohr = 1 / Bohr2A
)

//HartreeToEv converts an energy in Hartree to eV.
func HartreeToEv(x float64) float64 {
	return x * H2eV
}

//EvToHartree converts an energy in eV to Hartree.
func EvToHartree(x float64) float64 {
	return x / H2eV
}

//BohrToAngstrom converts a length in Bohr to Angstrom.
func BohrToAngstrom(x float64) float64 {
	return x * Bohr2A
}

//AngstromToBohr converts a length in Angstrom to Bohr.
func AngstromToBohr(x float64) float64 {
	return x / Bohr2A
}

//The slice versions below work element-wise on the flat, row-major
//data of an array of any shape. If dst is nil a new slice is allocated,
//otherwise dst must have the length of src. dst and src can be the same slice.

//HartreeToEvs converts the energies in src from Hartree to eV, placing them in dst.
func HartreeToEvs(dst, src []float64) []float64 {
	return scaleTo(dst, H2eV, src)
}

//EvToHartrees converts the energies in src from eV to Hartree, placing them in dst.
func EvToHartrees(dst, src []float64) []float64 {
	dst = prepDst(dst, src)
	for i, v := range src {
		dst[i] = v / H2eV
	}
	return dst
}

//BohrToAngstroms converts the lengths in src from Bohr to Angstrom, placing them in dst.
func BohrToAngstroms(dst, src []float64) []float64 {
	return scaleTo(dst, Bohr2A, src)
}

//AngstromToBohrs converts the lengths in src from Angstrom to Bohr, placing them in dst.
func AngstromToBohrs(dst, src []float64) []float64 {
	dst = prepDst(dst, src)
	for i, v := range src {
		dst[i] = v / Bohr2A
	}
	return dst
}

func prepDst(dst, src []float64) []float64 {
	if dst == nil {
		return make([]float64, len(src))
	}
	if len(dst) != len(src) {
		panic(ErrShape)
	}
	return dst
}

func scaleTo(dst []float64, c float64, src []float64) []float64 {
	dst = prepDst(dst, src)
	return floats.ScaleTo(dst, c, src)
}
