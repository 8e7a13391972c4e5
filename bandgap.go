/*
 * bandgap.go, part of gocrys.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Gap contains the band gap information for each spin channel. All slices have
//one element per channel, so a closed-shell system gives 1-element slices and
//an open-shell one gives 2 elements, alpha first.
type Gap struct {
	Gap []float64    //Band gap, 0 for metals.
	VBM []float64    //Valence band maximum, relative to the Fermi level.
	CBM []float64    //Conduction band minimum, relative to the Fermi level.
	Pos [][2]float64 //k-path coordinates of the VBM (first) and CBM (second).
	NVB []int        //Index of the valence band.
	NCB []int        //Index of the conduction band.
}

//Copy returns a deep copy of the Gap.
func (G *Gap) Copy() *Gap {
	ret := &Gap{
		Gap: append([]float64(nil), G.Gap...),
		VBM: append([]float64(nil), G.VBM...),
		CBM: append([]float64(nil), G.CBM...),
		Pos: append([][2]float64(nil), G.Pos...),
		NVB: append([]int(nil), G.NVB...),
		NCB: append([]int(nil), G.NCB...),
	}
	return ret
}

//Metallic returns true if the channel spin has no gap.
func (G *Gap) Metallic(spin int) bool {
	return G.Gap[spin] == 0
}

//scale applies e to the energies and l to the positions of G, in place.
func (G *Gap) scale(e, l func(dst, src []float64) []float64) {
	e(G.Gap, G.Gap)
	e(G.VBM, G.VBM)
	e(G.CBM, G.CBM)
	for i := range G.Pos {
		l(G.Pos[i][:], G.Pos[i][:])
	}
}

//ExtractGap obtains the band gap from bands, which contains one nBands x nKpoints
//matrix per spin channel, with energies referred to a Fermi level of 0. kPath
//contains the 1D coordinates of each k-point.
//For each channel, the conduction band is the first band with a positive energy
//at the first k-point, and the valence band the one immediately below it. It is
//a precondition that such a crossing exists: if all bands are above, or all
//are below, the Fermi level at the first k-point, a PreconditionViolation
//error is returned.
//VBM and CBM are rounded to 6 decimal places. If the valence band goes above the
//Fermi level, or the conduction band below, the gap is 0.
func ExtractGap(bands []*mat.Dense, kPath []float64) (*Gap, error) {
	if len(bands) == 0 {
		return nil, newError(InvalidInput, "ExtractGap: no spin channels given")
	}
	nspin := len(bands)
	G := &Gap{
		Gap: make([]float64, nspin),
		VBM: make([]float64, nspin),
		CBM: make([]float64, nspin),
		Pos: make([][2]float64, nspin),
		NVB: make([]int, nspin),
		NCB: make([]int, nspin),
	}
	for s, ch := range bands {
		nb, nk := ch.Dims()
		if nk != len(kPath) {
			return nil, newError(InvalidInput, fmt.Sprintf("ExtractGap: channel %d has %d k-points, the k-path has %d", s, nk, len(kPath)))
		}
		ncb := -1
		for n := 0; n < nb; n++ {
			if ch.At(n, 0) > 0 {
				ncb = n
				break
			}
		}
		if ncb < 0 {
			return nil, newError(PreconditionViolation, fmt.Sprintf("ExtractGap: no band above the Fermi level in channel %d", s))
		}
		if ncb == 0 {
			return nil, newError(PreconditionViolation, fmt.Sprintf("ExtractGap: no band below the Fermi level in channel %d", s))
		}
		nvb := ncb - 1
		vb := mat.Row(nil, nvb, ch)
		cb := mat.Row(nil, ncb, ch)
		iv := floats.MaxIdx(vb)
		ic := floats.MinIdx(cb)
		vbm := round6(vb[iv])
		cbm := round6(cb[ic])
		gap := 0.0
		if vbm <= 0 && cbm >= 0 {
			gap = cbm - vbm
		}
		G.Gap[s] = gap
		G.VBM[s] = vbm
		G.CBM[s] = cbm
		G.Pos[s] = [2]float64{kPath[iv], kPath[ic]}
		G.NVB[s] = nvb
		G.NCB[s] = ncb
	}
	return G, nil
}

//round6 rounds x to 6 decimal places, with ties going to the even neighbour.
func round6(x float64) float64 {
	return math.RoundToEven(x*1e6) / 1e6
}
