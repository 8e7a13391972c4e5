/*
 * band.go, part of gocrys.
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

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

//GridTol is the absolute tolerance used to compare coordinates, such as
//tick positions against the k-path, or the grid vectors of charge density maps.
const GridTol = 1e-4

//Band is an electronic band structure along a 1D k-path. Energies are
//referred to the Fermi level, which is set to 0.
//A Band is not safe for concurrent use: SetUnit changes several fields,
//so callers that share a Band between goroutines need their own locking.
type Band struct {
	spin       int
	tickPos    []float64
	tickLabels []string
	efermi     float64
	bands      []*mat.Dense //one nBands x nKpoints matrix per spin channel
	kPath      []float64
	unit       string

	//optional 3D information
	recLatt   *mat.Dense
	tickPos3D *mat.Dense
	kPath3D   *mat.Dense

	//cache, nil until Gap is called
	gap *Gap
}

//NewBand returns a band structure for the given data. spin is 1 for closed shell and
//2 for open shell systems. bands is indexed as bands[band][kpoint][spin], and the energies
//are relative to the Fermi level, efermi. kPath holds the 1D coordinate of each k-point
//and tickPos the coordinates of the high symmetry points, which must be points of the path.
//tickLabels can be nil. unit is either UnitEV (eV and Angstrom) or UnitAU (Hartree and Bohr).
//The data is copied.
func NewBand(spin int, tickPos []float64, tickLabels []string, efermi float64, bands [][][]float64, kPath []float64, unit string) (*Band, error) {
	u, err := canonical(unit, energyUnits)
	if err != nil {
		return nil, errDecorate(err, "NewBand")
	}
	if spin != 1 && spin != 2 {
		return nil, newError(InvalidInput, fmt.Sprintf("NewBand: spin must be 1 or 2, not %d", spin))
	}
	if len(kPath) == 0 {
		return nil, newError(InvalidInput, "NewBand: empty k-path")
	}
	if !sort.Float64sAreSorted(kPath) {
		return nil, newError(InvalidInput, "NewBand: k-path coordinates must be non-decreasing")
	}
	if tickLabels != nil && len(tickLabels) != len(tickPos) {
		return nil, newError(InvalidInput, fmt.Sprintf("NewBand: %d tick labels for %d ticks", len(tickLabels), len(tickPos)))
	}
	for i, t := range tickPos {
		if !onPath(t, kPath) {
			return nil, newError(InvalidInput, fmt.Sprintf("NewBand: tick %d (%g) is not a point of the k-path", i, t))
		}
	}
	channels, err := channelsFrom(bands, len(kPath), spin)
	if err != nil {
		return nil, errDecorate(err, "NewBand")
	}
	B := &Band{
		spin:       spin,
		tickPos:    append([]float64(nil), tickPos...),
		tickLabels: append([]string(nil), tickLabels...),
		efermi:     efermi,
		bands:      channels,
		kPath:      append([]float64(nil), kPath...),
		unit:       u,
	}
	return B, nil
}

//channelsFrom builds one len(data) x nk matrix per spin channel from data,
//indexed as data[row][k][spin].
func channelsFrom(data [][][]float64, nk, spin int) ([]*mat.Dense, error) {
	if len(data) == 0 {
		return nil, newError(InvalidInput, "no data given")
	}
	nr := len(data)
	raw := make([][]float64, spin)
	for s := range raw {
		raw[s] = make([]float64, nr*nk)
	}
	for r, row := range data {
		if len(row) != nk {
			return nil, newError(InvalidInput, fmt.Sprintf("row %d has %d points, expected %d", r, len(row), nk))
		}
		for k, v := range row {
			if len(v) != spin {
				return nil, newError(InvalidInput, fmt.Sprintf("point %d of row %d has %d spin channels, expected %d", k, r, len(v), spin))
			}
			for s := 0; s < spin; s++ {
				raw[s][r*nk+k] = v[s]
			}
		}
	}
	ret := make([]*mat.Dense, spin)
	for s := range ret {
		ret[s] = mat.NewDense(nr, nk, raw[s])
	}
	return ret, nil
}

//onPath returns true if t is within GridTol of one of the values in path.
func onPath(t float64, path []float64) bool {
	for _, k := range path {
		if scalar.EqualWithinAbs(t, k, GridTol) {
			return true
		}
	}
	return false
}

//Set3D sets the optional 3D information of the band structure: the 3x3 reciprocal lattice
//matrix, in the current length unit, and the fractional coordinates of the ticks and k-points
//(one 3-element row each). Any of them can be nil, in which case the value
//already set, if any, is kept.
func (B *Band) Set3D(reciprocal *mat.Dense, tickPos3D, kPath3D [][]float64) error {
	if reciprocal != nil {
		if r, c := reciprocal.Dims(); r != 3 || c != 3 {
			return newError(InvalidInput, fmt.Sprintf("Band.Set3D: reciprocal lattice is %dx%d, not 3x3", r, c))
		}
	}
	t3d, err := rows3(tickPos3D, len(B.tickPos))
	if err != nil {
		return errDecorate(err, "Band.Set3D: ticks")
	}
	k3d, err := rows3(kPath3D, len(B.kPath))
	if err != nil {
		return errDecorate(err, "Band.Set3D: k-path")
	}
	if reciprocal != nil {
		B.recLatt = mat.DenseCopyOf(reciprocal)
	}
	if t3d != nil {
		B.tickPos3D = t3d
	}
	if k3d != nil {
		B.kPath3D = k3d
	}
	return nil
}

func rows3(data [][]float64, n int) (*mat.Dense, error) {
	if data == nil {
		return nil, nil
	}
	if len(data) != n {
		return nil, newError(InvalidInput, fmt.Sprintf("%d rows, expected %d", len(data), n))
	}
	ret := mat.NewDense(n, 3, nil)
	for i, v := range data {
		if len(v) != 3 {
			return nil, newError(InvalidInput, fmt.Sprintf("row %d has %d elements, expected 3", i, len(v)))
		}
		ret.SetRow(i, v)
	}
	return ret, nil
}

//SetBands replaces the band energies. The new data must have the same shape as the old.
//The cached band gap, if any, is discarded.
func (B *Band) SetBands(bands [][][]float64) error {
	nb, _ := B.bands[0].Dims()
	if len(bands) != nb {
		return newError(InvalidInput, fmt.Sprintf("Band.SetBands: %d bands given, expected %d", len(bands), nb))
	}
	channels, err := channelsFrom(bands, len(B.kPath), B.spin)
	if err != nil {
		return errDecorate(err, "Band.SetBands")
	}
	B.bands = channels
	B.gap = nil
	return nil
}

//Spin returns 1 for closed shell and 2 for open shell systems.
func (B *Band) Spin() int { return B.spin }

//NBands returns the number of bands.
func (B *Band) NBands() int {
	r, _ := B.bands[0].Dims()
	return r
}

//NKpoints returns the number of k-points along the path.
func (B *Band) NKpoints() int { return len(B.kPath) }

//NTick returns the number of high symmetry points.
func (B *Band) NTick() int { return len(B.tickPos) }

//Unit returns the current unit of the band structure.
func (B *Band) Unit() string { return B.unit }

//EFermi returns the Fermi energy.
func (B *Band) EFermi() float64 { return B.efermi }

//KPath returns a copy of the k-path coordinates.
func (B *Band) KPath() []float64 { return append([]float64(nil), B.kPath...) }

//TickPos returns a copy of the tick coordinates.
func (B *Band) TickPos() []float64 { return append([]float64(nil), B.tickPos...) }

//TickLabels returns a copy of the tick labels.
func (B *Band) TickLabels() []string { return append([]string(nil), B.tickLabels...) }

//Energy returns the energy of band n at k-point k, for the spin channel s.
func (B *Band) Energy(n, k, s int) float64 {
	if s < 0 || s >= B.spin {
		panic(ErrIndexOutOfRange)
	}
	return B.bands[s].At(n, k)
}

//Channel returns a copy of the nBands x nKpoints energy matrix for the spin channel s.
func (B *Band) Channel(s int) *mat.Dense {
	if s < 0 || s >= B.spin {
		panic(ErrIndexOutOfRange)
	}
	return mat.DenseCopyOf(B.bands[s])
}

//Reciprocal returns a copy of the reciprocal lattice matrix, or nil if not set.
func (B *Band) Reciprocal() *mat.Dense {
	if B.recLatt == nil {
		return nil
	}
	return mat.DenseCopyOf(B.recLatt)
}

//TickPos3D returns a copy of the fractional coordinates of the ticks, or nil.
func (B *Band) TickPos3D() *mat.Dense {
	if B.tickPos3D == nil {
		return nil
	}
	return mat.DenseCopyOf(B.tickPos3D)
}

//KPath3D returns a copy of the fractional coordinates of the k-points, or nil.
func (B *Band) KPath3D() *mat.Dense {
	if B.kPath3D == nil {
		return nil
	}
	return mat.DenseCopyOf(B.kPath3D)
}

//Gap returns the band gap information, calculating it the first time it is called.
//See ExtractGap. The returned value is a copy, changing it doesn't affect B.
func (B *Band) Gap() (*Gap, error) {
	if B.gap == nil {
		g, err := ExtractGap(B.bands, B.kPath)
		if err != nil {
			return nil, errDecorate(err, "Band.Gap")
		}
		B.gap = g
	}
	return B.gap.Copy(), nil
}

//BandGap is a shortcut that returns only the gap, one value per spin channel.
func (B *Band) BandGap() ([]float64, error) {
	g, err := B.Gap()
	if err != nil {
		return nil, errDecorate(err, "Band.BandGap")
	}
	return g.Gap, nil
}

//CheckUnit returns the canonical form of unit or an InvalidUnit error.
func (B *Band) CheckUnit(unit string) (string, error) {
	return canonical(unit, energyUnits)
}

//SetUnit converts all the energies and lengths of B, including an already calculated
//band gap, to unit, and returns B. If unit is the current unit nothing is done.
//If unit is not valid, an InvalidUnit error is returned and B is not changed.
func (B *Band) SetUnit(unit string) (*Band, error) {
	u, err := B.CheckUnit(unit)
	if err != nil {
		return nil, errDecorate(err, "Band.SetUnit")
	}
	if u == B.unit {
		return B, nil
	}
	e, l := energyLengthTo(u)
	for _, ch := range B.bands {
		denseApply(ch, e)
	}
	B.efermi = e([]float64{B.efermi}, []float64{B.efermi})[0]
	l(B.tickPos, B.tickPos)
	l(B.kPath, B.kPath)
	if B.recLatt != nil {
		denseApply(B.recLatt, l)
	}
	//Optional derived fields. Add here any new one.
	if B.gap != nil {
		B.gap.scale(e, l)
	}
	B.unit = u
	return B, nil
}

//energyLengthTo returns the energy and length conversion functions that take
//data to the canonical unit u.
func energyLengthTo(u string) (e, l func(dst, src []float64) []float64) {
	if u == UnitEV {
		return HartreeToEvs, BohrToAngstroms
	}
	return EvToHartrees, AngstromToBohrs
}

//denseApply applies f to all the elements of m, in place. m must be
//contiguous, which is always the case for the matrices created in this package.
func denseApply(m *mat.Dense, f func(dst, src []float64) []float64) {
	raw := m.RawMatrix()
	if raw.Stride != raw.Cols {
		panic(ErrShape)
	}
	f(raw.Data, raw.Data)
}
