package matern

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"

	"github.com/flywave/go-geo"
)

var epsg4326 geo.Proj

func init() {
	epsg4326 = geo.NewProj(4326)
}

type Coordinates []vec3d.T

// Grid is a square lattice of points over the unit square. The third
// component of each coordinate holds the sampled field value.
type Grid struct {
	Size        int
	Count       int
	Coordinates Coordinates
	srs         geo.Proj
}

// UnitGrid builds the Size×Size grid over [0,1]², flattened row-major
// with x varying fastest: point i sits at (ls[i%n], ls[i/n]) for the
// n evenly spaced axis values ls. The index of a point fixes its matrix
// row and column, so the ordering is part of the contract.
func UnitGrid(n int) *Grid {
	ls := linspace(n)
	coords := make(Coordinates, 0, n*n)
	for yi := 0; yi < n; yi++ {
		for xi := 0; xi < n; xi++ {
			coords = append(coords, vec3d.T{ls[xi], ls[yi], 0})
		}
	}
	return &Grid{Size: n, Count: n * n, Coordinates: coords, srs: epsg4326}
}

// Point returns the (x, y) position of point i.
func (h *Grid) Point(i int) vec2d.T {
	return vec2d.T{h.Coordinates[i][0], h.Coordinates[i][1]}
}

// SetValues stores one field value per point, in point-index order.
func (h *Grid) SetValues(values []float64) {
	for i := range values {
		h.Coordinates[i][2] = values[i]
	}
}

// Value returns the field value at a (row, column) cell, row 0 at y=0.
func (h *Grid) Value(row, column int) float64 {
	return h.Coordinates[row*h.Size+column][2]
}

func (h *Grid) Bounds() vec2d.Rect {
	return vec2d.Rect{Min: vec2d.T{0, 0}, Max: vec2d.T{1, 1}}
}

func (h *Grid) MinMax() (float64, float64) {
	min, max := h.Coordinates[0][2], h.Coordinates[0][2]
	for i := range h.Coordinates {
		v := h.Coordinates[i][2]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// TileData returns the field as a north-up raster: output row 0 holds the
// grid row with the largest y, matching a GeoTIFF with its origin at the
// upper-left corner of the unit square.
func (h *Grid) TileData() ([]float64, [2]uint32, vec2d.Rect, geo.Proj) {
	n := h.Size
	tiledata := make([]float64, h.Count)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			tiledata[row*n+col] = h.Value(n-1-row, col)
		}
	}
	return tiledata, [2]uint32{uint32(n), uint32(n)}, h.Bounds(), h.srs
}
