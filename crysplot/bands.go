/*
 * bands.go, part of gocrys.
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
	"log"
	"math"

	crys "github.com/cryspost/gocrys"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func energyUnit(unit string) string {
	if unit == crys.UnitAU {
		return "Hartree"
	}
	return "eV"
}

func lengthUnit(unit string) string {
	if unit == crys.UnitAU {
		return "Bohr"
	}
	return "Å"
}

//tickLabels returns the labels to be used for the n ticks. The labels
//in o take precedence over the defaults.
func tickLabels(o *Options, defaults []string, n int) []string {
	labels := defaults
	if len(o.TickLabels) > 0 {
		labels = o.TickLabels
		if len(labels) != n {
			log.Printf("gocrys/crysplot: %d ticks in the band structure but %d labels given. Default labels will be used for missing ones, extra ones will be ignored", n, len(labels))
		}
	}
	ret := make([]string, n)
	for i := range ret {
		switch {
		case i < len(labels):
			ret[i] = Greek(labels[i])
		case i < len(defaults):
			ret[i] = Greek(defaults[i])
		}
	}
	return ret
}

//energyRange returns the energy range of the plot, either from the options
//or from the data.
func energyRange(o *Options, data ...[]float64) (float64, float64) {
	if len(o.EnergyRange) == 2 {
		return o.EnergyRange[0], o.EnergyRange[1]
	}
	min, max := data[0][0], data[0][0]
	for _, d := range data {
		min = math.Min(min, floats.Min(d))
		max = math.Max(max, floats.Max(d))
	}
	return min, max
}

//Bands plots the band structure B. If o.Unit is not empty, B is first converted
//to that unit. Beta bands are dashed. A nil o means default options.
func Bands(B *crys.Band, o *Options) (*plot.Plot, error) {
	o, err := prepare(o)
	if err != nil {
		return nil, err
	}
	if o.Unit != "" {
		if _, err := B.SetUnit(o.Unit); err != nil {
			return nil, fmt.Errorf("gocrys/crysplot: Bands: %w", err)
		}
	}
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = fmt.Sprintf("k (1/%s)", lengthUnit(B.Unit()))
	p.Y.Label.Text = fmt.Sprintf("E - Ef (%s)", energyUnit(B.Unit()))
	k := B.KPath()
	raw := make([][]float64, 0, B.Spin())
	for s := 0; s < B.Spin(); s++ {
		ch := B.Channel(s)
		raw = append(raw, ch.RawMatrix().Data)
		for n := 0; n < B.NBands(); n++ {
			pts := make(plotter.XYs, len(k))
			for i := range k {
				pts[i].X = k[i]
				pts[i].Y = ch.At(n, i)
			}
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			l.LineStyle.Color = o.color(s)
			l.LineStyle.Width = vg.Points(o.LineWidth)
			if s == 1 {
				l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			}
			p.Add(l)
		}
	}
	emin, emax := energyRange(o, raw...)
	p.Y.Min, p.Y.Max = emin, emax
	p.X.Min, p.X.Max = k[0], k[len(k)-1]
	ticks := B.TickPos()
	labels := tickLabels(o, B.TickLabels(), len(ticks))
	marks := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		marks[i] = plot.Tick{Value: t, Label: labels[i]}
		v, err := plotter.NewLine(plotter.XYs{{X: t, Y: emin}, {X: t, Y: emax}})
		if err != nil {
			return nil, err
		}
		v.LineStyle.Width = vg.Points(0.5)
		p.Add(v)
	}
	p.X.Tick.Marker = plot.ConstantTicks(marks)
	fermi := plotter.NewFunction(func(float64) float64 { return 0 })
	fermi.Color = parseHex(o.FermiColor)
	fermi.Width = vg.Points(o.FermiWidth)
	fermi.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(fermi)
	return p, nil
}
