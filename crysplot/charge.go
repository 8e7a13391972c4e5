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

package crysplot

import (
	"fmt"
	"math"

	crys "github.com/cryspost/gocrys"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

//mapGrid implements plotter.GridXYZ for a 2D density map. Rows of the map go
//along the first grid vector (Y axis) and columns along the second (X axis).
//The angle between the vectors is only used to scale the Y axis, the grid
//itself is drawn as rectangular.
type mapGrid struct {
	m      *crys.Map
	rows   int
	cols   int
	dx, dy float64
}

func (g mapGrid) Dims() (c, r int)   { return g.cols, g.rows }
func (g mapGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g mapGrid) X(c int) float64    { return float64(c) * g.dx }
func (g mapGrid) Y(r int) float64    { return float64(r) * g.dy }

//ChargeMap plots a 2D charge density map, or the spin density map if spin is true,
//as a heat map. If o.Unit is not empty, C is first converted to that unit.
func ChargeMap(C *crys.ChargeDensity, spin bool, o *Options) (*plot.Plot, error) {
	o, err := prepare(o)
	if err != nil {
		return nil, err
	}
	if o.Unit != "" {
		if _, err := C.SetUnit(o.Unit); err != nil {
			return nil, fmt.Errorf("gocrys/crysplot: ChargeMap: %w", err)
		}
	}
	var m *crys.Map
	if spin {
		if !C.HasSpinMap() {
			return nil, fmt.Errorf("gocrys/crysplot: ChargeMap: no spin density available")
		}
		m = C.SpinMap()
	} else {
		m = C.ChargeMap()
	}
	dims := m.Dims()
	if len(dims) != 2 {
		return nil, fmt.Errorf("gocrys/crysplot: ChargeMap: only 2D maps can be plotted, got %dD", len(dims))
	}
	gv := C.GridVectors()
	v1, v2 := gv.RawRowView(0), gv.RawRowView(1)
	l1, l2 := floats.Norm(v1, 2), floats.Norm(v2, 2)
	cos := floats.Dot(v1, v2) / (l1 * l2)
	g := mapGrid{
		m:    m,
		rows: dims[0],
		cols: dims[1],
		dx:   l2 / float64(dims[1]),
		dy:   l1 / float64(dims[0]) * math.Sqrt(1-cos*cos),
	}
	h := plotter.NewHeatMap(g, palette.Heat(o.Levels, 1))
	if len(o.ColorRange) == 2 {
		h.Min, h.Max = o.ColorRange[0], o.ColorRange[1]
	}
	p := plot.New()
	p.Title.Text = o.Title
	lu := "Å"
	if C.Unit() == crys.UnitAU {
		lu = "Bohr"
	}
	p.X.Label.Text = lu
	p.Y.Label.Text = lu
	p.Add(h)
	return p, nil
}
