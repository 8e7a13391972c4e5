/*
 * save.go, part of gocrys.
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
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Save writes p to filename, with the size given in o. The format is
//taken from the extension (png, svg, pdf, eps, jpg, tif).
func Save(p *plot.Plot, o *Options, filename string) error {
	o, err := prepare(o)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch, filename)
}

//SaveRow draws plots side by side in a single PNG file, with the total size given in o.
func SaveRow(plots []*plot.Plot, o *Options, filename string) error {
	o, err := prepare(o)
	if err != nil {
		return err
	}
	if len(plots) == 0 {
		return fmt.Errorf("gocrys/crysplot: SaveRow: nothing to save")
	}
	img := vgimg.New(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, t, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	//here I intentionally shadow err.
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
