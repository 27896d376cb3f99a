// SPDX-License-Identifier: MIT
// Package geometry holds the position/size records attached to diagram cells.
//
// A Geometry is either absolute (X/Y are offsets inside the parent cell) or
// relative (Relative == true). Relative vertex geometries are interpreted as
// offsets along the parent, and relative edge geometries only carry control
// points; the topology engine never scales or routes them, it only translates
// them when an edge changes parent.
package geometry

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Geometry is the geometric record of a cell.
//
// Fields:
//   - Rect: position and size (offset in the parent for absolute geometries).
//   - Relative: X/Y are relative to the parent (vertices) or unused (edges).
//   - Offset: optional label offset; not translated.
//   - SourcePoint/TargetPoint: dangling edge endpoints.
//   - Points: edge control points.
type Geometry struct {
	Rect

	Relative    bool
	Offset      *Point
	SourcePoint *Point
	TargetPoint *Point
	Points      []Point
}

// New returns an absolute geometry with the given bounds.
func New(x, y, width, height float64) *Geometry {
	return &Geometry{Rect: Rect{X: x, Y: y, Width: width, Height: height}}
}

// NewRelative returns a relative geometry, the default for edges.
func NewRelative() *Geometry {
	return &Geometry{Relative: true}
}

// Clone returns a deep copy of g. A nil receiver yields nil.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{Rect: g.Rect, Relative: g.Relative}
	out.Offset = clonePoint(g.Offset)
	out.SourcePoint = clonePoint(g.SourcePoint)
	out.TargetPoint = clonePoint(g.TargetPoint)
	if g.Points != nil {
		out.Points = make([]Point, len(g.Points))
		copy(out.Points, g.Points)
	}

	return out
}

// Translate moves the geometry by (dx, dy) in place.
//
// Relative geometries keep X/Y (they are not coordinates); the terminal and
// control points are always moved.
func (g *Geometry) Translate(dx, dy float64) {
	if g == nil {
		return
	}
	if !g.Relative {
		g.X += dx
		g.Y += dy
	}
	if g.SourcePoint != nil {
		*g.SourcePoint = g.SourcePoint.Translate(dx, dy)
	}
	if g.TargetPoint != nil {
		*g.TargetPoint = g.TargetPoint.Translate(dx, dy)
	}
	for i := range g.Points {
		g.Points[i] = g.Points[i].Translate(dx, dy)
	}
}

// Equal reports whether g and o describe the same geometry.
func (g *Geometry) Equal(o *Geometry) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Rect != o.Rect || g.Relative != o.Relative {
		return false
	}
	if !equalPoint(g.Offset, o.Offset) || !equalPoint(g.SourcePoint, o.SourcePoint) || !equalPoint(g.TargetPoint, o.TargetPoint) {
		return false
	}
	if len(g.Points) != len(o.Points) {
		return false
	}
	for i := range g.Points {
		if g.Points[i] != o.Points[i] {
			return false
		}
	}

	return true
}

func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	c := *p

	return &c
}

func equalPoint(a, b *Point) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
