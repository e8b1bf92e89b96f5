// Package core provides fundamental types and utilities for the box jump game.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Epsilon is the tolerance used by the orientation and on-segment tests.
// World coordinates are pixels, so anything below it is treated as zero.
const Epsilon = 1e-9

// Vec2 is a point or vector in world space (pixels, y grows downwards).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Near reports whether v and o are within tol on both axes.
func (v Vec2) Near(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// Bounds is a floating point axis-aligned bounding box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsOf returns the smallest Bounds containing every point.
// An empty slice yields the zero Bounds.
func BoundsOf(pts []Vec2) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Overlaps reports whether two boxes share at least one point.
// Edges are inclusive: boxes that only touch still overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.MaxX < o.MinX || o.MaxX < b.MinX {
		return false
	}
	if b.MaxY < o.MinY || o.MaxY < b.MinY {
		return false
	}
	return true
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vec2 {
	return Vec2{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Corners returns the four corners clockwise from the top-left.
func (b Bounds) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
}

// Segment is a closed line segment between A and B.
type Segment struct {
	A, B Vec2
}

// Orientation describes the turn made by an ordered triple of points.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// Orient returns the orientation of the triple (p, q, r).
func Orient(p, q, r Vec2) Orientation {
	v := q.Sub(p).Cross(r.Sub(q))
	switch {
	case math.Abs(v) <= Epsilon:
		return Collinear
	case v > 0:
		// y grows downwards, so a positive cross product turns clockwise on screen
		return Clockwise
	default:
		return CounterClockwise
	}
}

// OnSegment reports whether q lies within the bounding box of segment pr.
// Only meaningful when p, q and r are collinear.
func OnSegment(p, q, r Vec2) bool {
	return q.X <= math.Max(p.X, r.X)+Epsilon && q.X >= math.Min(p.X, r.X)-Epsilon &&
		q.Y <= math.Max(p.Y, r.Y)+Epsilon && q.Y >= math.Min(p.Y, r.Y)-Epsilon
}

// SegmentsIntersect reports whether two closed segments share a point.
// Touching endpoints and collinear overlaps count as intersections.
func SegmentsIntersect(s1, s2 Segment) bool {
	o1 := Orient(s1.A, s1.B, s2.A)
	o2 := Orient(s1.A, s1.B, s2.B)
	o3 := Orient(s2.A, s2.B, s1.A)
	o4 := Orient(s2.A, s2.B, s1.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear fallbacks
	if o1 == Collinear && OnSegment(s1.A, s2.A, s1.B) {
		return true
	}
	if o2 == Collinear && OnSegment(s1.A, s2.B, s1.B) {
		return true
	}
	if o3 == Collinear && OnSegment(s2.A, s1.A, s2.B) {
		return true
	}
	if o4 == Collinear && OnSegment(s2.A, s1.B, s2.B) {
		return true
	}
	return false
}

// Edges returns the closed polygon's edges, last vertex joined to the first.
func Edges(poly []Vec2) []Segment {
	if len(poly) < 2 {
		return nil
	}
	edges := make([]Segment, len(poly))
	for i := range poly {
		edges[i] = Segment{A: poly[i], B: poly[(i+1)%len(poly)]}
	}
	return edges
}

// RotateAround rotates every point in place by degrees around center.
// Positive angles rotate clockwise on screen.
func RotateAround(pts []Vec2, center Vec2, degrees float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	for i, p := range pts {
		d := p.Sub(center)
		pts[i] = Vec2{
			X: center.X + d.X*cos - d.Y*sin,
			Y: center.Y + d.X*sin + d.Y*cos,
		}
	}
}

// PolygonContains reports whether p is inside the convex or concave polygon
// using the even-odd rule. Points exactly on an edge may go either way.
func PolygonContains(poly []Vec2, p Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
