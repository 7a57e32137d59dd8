// Package gcell provides the integer grid-cell coordinate type and a
// sorted, duplicate-free set of cells supporting predecessor/successor
// queries used by the Steiner tree construction passes.
package gcell

import "math"

// noCoord is the sentinel coordinate used to build the "none" GCell. It
// sits outside any coordinate a real grid cell can take, so it can never
// collide with a legitimate pin location (including (0, 0)).
const noCoord = math.MinInt16

// GCell is an integer lattice point used as a routing coordinate.
type GCell struct {
	X, Y int16
}

// NoCell is the sentinel value denoting the absence of a cell (e.g. an
// unreached node's uphill parent, or a query that found nothing).
var NoCell = GCell{X: noCoord, Y: noCoord}

// IsNone reports whether c is the sentinel "none" cell.
func (c GCell) IsNone() bool {
	return c == NoCell
}

// Less reports whether c sorts strictly before other in the row-major
// order used throughout this module: primarily by Y (the row), then by X
// within the row. This makes every populated row a contiguous run of the
// sorted sequence, which PrevY/NextY rely on.
func (c GCell) Less(other GCell) bool {
	return c.Y < other.Y || (c.Y == other.Y && c.X < other.X)
}

// LessEq reports whether c sorts at or before other.
func (c GCell) LessEq(other GCell) bool {
	return c == other || c.Less(other)
}

// MDist returns the Manhattan distance between c and other.
func (c GCell) MDist(other GCell) int {
	return absInt(int(c.X)-int(other.X)) + absInt(int(c.Y)-int(other.Y))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BoundingBox is an inclusive rectangle over grid cells.
type BoundingBox struct {
	X0, Y0, X1, Y1 int16
}

// NewBoundingBox returns an empty bounding box (inverted so the first
// Extend call establishes real bounds).
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		X0: math.MaxInt16,
		Y0: math.MaxInt16,
		X1: math.MinInt16,
		Y1: math.MinInt16,
	}
}

// Extend grows the box to include c, taking min/max componentwise.
func (b *BoundingBox) Extend(c GCell) {
	if c.X < b.X0 {
		b.X0 = c.X
	}
	if c.Y < b.Y0 {
		b.Y0 = c.Y
	}
	if c.X > b.X1 {
		b.X1 = c.X
	}
	if c.Y > b.Y1 {
		b.Y1 = c.Y
	}
}

// Contains reports whether c lies within the inclusive box.
func (b BoundingBox) Contains(c GCell) bool {
	return c.X >= b.X0 && c.X <= b.X1 && c.Y >= b.Y0 && c.Y <= b.Y1
}
