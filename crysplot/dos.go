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

package crysplot

import (
	"fmt"

	crys "github.com/cryspost/gocrys"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//projections returns the indexes of the projections of D to be plotted.
func projections(D *crys.Dos, o *Options) ([]int, error) {
	if len(o.Projections) == 0 {
		ret := make([]int, D.NProj())
		for i := range ret {
			ret[i] = i
		}
		return ret, nil
	}
	for _, v := range o.Projections {
		if v >= D.NProj() {
			return nil, fmt.Errorf("gocrys/crysplot: projection %d requested, but the DOS has %d", v, D.NProj())
		}
	}
	return o.Projections, nil
}

//dosLines adds the lines of D to p. If vertical is true the energies go in
//the Y axis, as needed when the DOS is plotted next to a band structure.
func dosLines(p *plot.Plot, D *crys.Dos, o *Options, vertical bool) error {
	prj, err := projections(D, o)
	if err != nil {
		return err
	}
	energy := D.Energy()
	sign := 1.0
	if o.Beta == "down" {
		sign = -1
	}
	for s := 0; s < D.Spin(); s++ {
		ch := D.Channel(s)
		for ci, pi := range prj {
			pts := make(plotter.XYs, len(energy))
			for i, e := range energy {
				d := ch.At(pi, i)
				if s == 1 {
					d *= sign
				}
				if vertical {
					pts[i].X, pts[i].Y = d, e
				} else {
					pts[i].X, pts[i].Y = e, d
				}
			}
			l, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			l.LineStyle.Color = o.color(ci)
			l.LineStyle.Width = vg.Points(o.LineWidth)
			if s == 1 {
				l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			} else if ci < len(o.Labels) {
				p.Legend.Add(o.Labels[ci], l)
			}
			p.Add(l)
		}
	}
	return nil
}

//Doss plots the density of states D, energies in the X axis. Beta states are dashed,
//and go up or down depending on o.Beta.
func Doss(D *crys.Dos, o *Options) (*plot.Plot, error) {
	o, err := prepare(o)
	if err != nil {
		return nil, err
	}
	if o.Unit != "" {
		if _, err := D.SetUnit(o.Unit); err != nil {
			return nil, fmt.Errorf("gocrys/crysplot: Doss: %w", err)
		}
	}
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = fmt.Sprintf("E - Ef (%s)", energyUnit(D.Unit()))
	p.Y.Label.Text = "DOS"
	if err := dosLines(p, D, o, false); err != nil {
		return nil, err
	}
	if len(o.EnergyRange) == 2 {
		p.X.Min, p.X.Max = o.EnergyRange[0], o.EnergyRange[1]
	}
	fermi, err := plotter.NewLine(plotter.XYs{{X: 0, Y: p.Y.Min}, {X: 0, Y: p.Y.Max}})
	if err != nil {
		return nil, err
	}
	fermi.LineStyle.Color = parseHex(o.FermiColor)
	fermi.LineStyle.Width = vg.Points(o.FermiWidth)
	p.Add(fermi)
	return p, nil
}

//BandDos returns a band structure plot and a DOS plot sharing the energy axis, to be
//saved together with SaveRow. Both members are converted to o.Unit first, if given.
func BandDos(BD *crys.BandDos, o *Options) ([]*plot.Plot, error) {
	o, err := prepare(o)
	if err != nil {
		return nil, err
	}
	if o.Unit != "" {
		if _, err := BD.SetUnit(o.Unit); err != nil {
			return nil, fmt.Errorf("gocrys/crysplot: BandDos: %w", err)
		}
	}
	pb, err := Bands(BD.Band, o)
	if err != nil {
		return nil, err
	}
	pd := plot.New()
	pd.X.Label.Text = "DOS"
	if err := dosLines(pd, BD.Dos, o, true); err != nil {
		return nil, err
	}
	pd.Y.Min, pd.Y.Max = pb.Y.Min, pb.Y.Max
	pd.Y.Tick.Marker = plot.ConstantTicks(nil)
	fermi := plotter.NewFunction(func(float64) float64 { return 0 })
	fermi.Color = parseHex(o.FermiColor)
	fermi.Width = vg.Points(o.FermiWidth)
	pd.Add(fermi)
	return []*plot.Plot{pb, pd}, nil
}
