/*
 * options.go, part of gocrys.
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
	"errors"
	"fmt"
	"image/color"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

//Options control how the plots are built and saved. The zero value of a field means
//"use the default", see DefaultOptions.
type Options struct {
	Title       string    `yaml:"title"`
	Unit        string    `yaml:"unit"`         //If not empty, the data is converted to this unit before plotting.
	EnergyRange []float64 `yaml:"energy_range"` //min, max
	Width       float64   `yaml:"width"`        //inches
	Height      float64   `yaml:"height"`       //inches
	TickLabels  []string  `yaml:"tick_labels"`  //override the labels of the high symmetry points
	Colors      []string  `yaml:"colors"`       //"#rrggbb", one per spin channel for bands, one per projection for DOS
	LineWidth   float64   `yaml:"line_width"`   //points
	FermiColor  string    `yaml:"fermi_color"`
	FermiWidth  float64   `yaml:"fermi_width"`
	Labels      []string  `yaml:"labels"`      //DOS projection labels, for the legend
	Projections []int     `yaml:"projections"` //DOS projections to plot, all if empty
	Beta        string    `yaml:"beta"`        //"up" or "down": direction of the beta DOS
	Levels      int       `yaml:"levels"`      //number of colors in density maps
	ColorRange  []float64 `yaml:"color_range"` //min, max of the density map palette
}

//DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		Width:      6,
		Height:     5,
		LineWidth:  1,
		FermiColor: "#000000",
		FermiWidth: 1,
		Beta:       "up",
		Levels:     24,
	}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func increasing(value interface{}) error {
	r, _ := value.([]float64)
	if len(r) == 2 && r[0] >= r[1] {
		return errors.New("must be given as min, max")
	}
	return nil
}

//Validate validates the options.
func (o *Options) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.EnergyRange, validation.Length(2, 2), validation.By(increasing)),
		validation.Field(&o.ColorRange, validation.Length(2, 2), validation.By(increasing)),
		validation.Field(&o.Width, validation.Min(0.0)),
		validation.Field(&o.Height, validation.Min(0.0)),
		validation.Field(&o.LineWidth, validation.Min(0.0)),
		validation.Field(&o.FermiWidth, validation.Min(0.0)),
		validation.Field(&o.Colors, validation.Each(validation.Match(hexColor))),
		validation.Field(&o.FermiColor, validation.Match(hexColor)),
		validation.Field(&o.Projections, validation.Each(validation.Min(0))),
		validation.Field(&o.Beta, validation.In("up", "down")),
		validation.Field(&o.Levels, validation.Min(0)),
	)
}

//fill replaces the zero values of o with the defaults.
func (o *Options) fill() {
	d := DefaultOptions()
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.LineWidth == 0 {
		o.LineWidth = d.LineWidth
	}
	if o.FermiColor == "" {
		o.FermiColor = d.FermiColor
	}
	if o.FermiWidth == 0 {
		o.FermiWidth = d.FermiWidth
	}
	if o.Beta == "" {
		o.Beta = d.Beta
	}
	if o.Levels == 0 {
		o.Levels = d.Levels
	}
}

//prepare returns a validated copy of o with the defaults filled in.
//A nil o gives the default options.
func prepare(o *Options) (*Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}
	c := *o
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("gocrys/crysplot: invalid options: %w", err)
	}
	c.fill()
	return &c, nil
}

//LoadOptions reads options from a YAML file. Environment variables in the file
//are expanded. Fields not in the file keep their default values.
func LoadOptions(filename string) (*Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("gocrys/crysplot: failed to read options file %s: %w", filename, err)
	}
	o := DefaultOptions()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), o); err != nil {
		return nil, fmt.Errorf("gocrys/crysplot: failed to parse options file %s: %w", filename, err)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("gocrys/crysplot: invalid options in %s: %w", filename, err)
	}
	return o, nil
}

//default colors for spin channels / projections
var palette8 = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	{R: 0xd6, G: 0x27, B: 0x28, A: 255},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	{R: 0x94, G: 0x67, B: 0xbd, A: 255},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 255},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 255},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 255},
}

//color returns the i-th color of the options, or a default one.
func (o *Options) color(i int) color.Color {
	if i < len(o.Colors) {
		return parseHex(o.Colors[i])
	}
	return palette8[i%len(palette8)]
}

//parseHex parses a validated "#rrggbb" string.
func parseHex(s string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
