/*
 * map.go, part of gocrys.
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

	"gonum.org/v1/gonum/floats"
)

//Map is an N-dimensional array of float64, stored in row-major order.
//It is used for 2D and 3D charge and spin density maps.
type Map struct {
	dims []int
	d    []float64
}

//NewMap returns a map with the given dimensions, containing a copy of data.
//If data is nil, the map is filled with zeros.
func NewMap(dims []int, data []float64) (*Map, error) {
	if len(dims) == 0 {
		return nil, newError(InvalidInput, "NewMap: no dimensions given")
	}
	n := 1
	for _, v := range dims {
		if v <= 0 {
			return nil, newError(InvalidInput, fmt.Sprintf("NewMap: invalid dimensions %v", dims))
		}
		n *= v
	}
	M := &Map{dims: append([]int(nil), dims...), d: make([]float64, n)}
	if data != nil {
		if len(data) != n {
			return nil, newError(InvalidInput, fmt.Sprintf("NewMap: %d elements for dimensions %v", len(data), dims))
		}
		copy(M.d, data)
	}
	return M, nil
}

//NewMap2D returns a 2D map from a slice of rows, which must all have the same length.
func NewMap2D(rows [][]float64) (*Map, error) {
	if len(rows) == 0 {
		return nil, newError(InvalidInput, "NewMap2D: no rows given")
	}
	nc := len(rows[0])
	data := make([]float64, 0, len(rows)*nc)
	for i, r := range rows {
		if len(r) != nc {
			return nil, newError(InvalidInput, fmt.Sprintf("NewMap2D: row %d has %d elements, expected %d", i, len(r), nc))
		}
		data = append(data, r...)
	}
	return NewMap([]int{len(rows), nc}, data)
}

//Dims returns a copy of the dimensions of the map.
func (M *Map) Dims() []int { return append([]int(nil), M.dims...) }

//Len returns the total number of elements in the map.
func (M *Map) Len() int { return len(M.d) }

func (M *Map) index(idx []int) int {
	if len(idx) != len(M.dims) {
		panic(ErrShape)
	}
	i := 0
	for k, v := range idx {
		if v < 0 || v >= M.dims[k] {
			panic(ErrIndexOutOfRange)
		}
		i = i*M.dims[k] + v
	}
	return i
}

//At returns the element at the given indexes. It panics if the number of indexes
//is not the number of dimensions, or if any is out of range.
func (M *Map) At(idx ...int) float64 { return M.d[M.index(idx)] }

//Set sets the element at the given indexes to v.
func (M *Map) Set(v float64, idx ...int) { M.d[M.index(idx)] = v }

//Data returns a copy of the row-major data of the map.
func (M *Map) Data() []float64 { return append([]float64(nil), M.d...) }

//Clone returns a deep copy of the map.
func (M *Map) Clone() *Map {
	return &Map{dims: M.Dims(), d: M.Data()}
}

//SameShape returns true if M and o have the same dimensions.
func (M *Map) SameShape(o *Map) bool {
	if len(M.dims) != len(o.dims) {
		return false
	}
	for i, v := range M.dims {
		if o.dims[i] != v {
			return false
		}
	}
	return true
}

//Sub subtracts o from M, in place. Panics if the shapes differ.
func (M *Map) Sub(o *Map) {
	if !M.SameShape(o) {
		panic(ErrShape)
	}
	floats.Sub(M.d, o.d)
}

//Scale multiplies all the elements of M by c, in place.
func (M *Map) Scale(c float64) {
	floats.Scale(c, M.d)
}
