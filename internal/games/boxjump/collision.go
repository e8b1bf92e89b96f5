package boxjump

import (
	"github.com/vovakirdan/box-jump/internal/core"
)

// Detector tests the box against obstacles with a bounding-box broad phase
// and an edge-intersection narrow phase.
type Detector struct {
	geo Geometry

	// NarrowChecks counts narrow-phase evaluations since the last Reset.
	NarrowChecks int
}

// NewDetector creates a detector for the given obstacle geometry.
func NewDetector(geo Geometry) *Detector {
	return &Detector{geo: geo}
}

// Reset zeroes the narrow-phase counter.
func (d *Detector) Reset() {
	d.NarrowChecks = 0
}

// Collides reports whether the box hits any of the obstacles.
func (d *Detector) Collides(box *Box, obstacles []Obstacle) bool {
	bounds := box.Bounds()
	for _, o := range obstacles {
		if !d.geo.Bounds(o).Overlaps(bounds) {
			continue
		}
		if box.Airborne() {
			if d.narrowPhase(box, o) {
				return true
			}
			continue
		}
		if d.groundedHit(bounds, o) {
			return true
		}
	}
	return false
}

// groundedHit handles a resting box that the broad phase flagged. The box
// cannot pass anything without jumping, except the pillar it stands on.
func (d *Detector) groundedHit(bounds core.Bounds, o Obstacle) bool {
	if o.Kind == KindSpike {
		return true
	}
	pillar, ok := d.geo.Pillar(o)
	if !ok {
		return false
	}
	return bounds.MaxY > pillar.MinY+core.Epsilon
}

// narrowPhase tests the box edges against the spike's slanted edges and the
// outline of any pillar.
func (d *Detector) narrowPhase(box *Box, o Obstacle) bool {
	d.NarrowChecks++

	verts := box.Vertices()
	edges := core.Edges(verts[:])

	if tri, ok := d.geo.Triangle(o); ok {
		slopes := [2]core.Segment{
			{A: tri[0], B: tri[1]},
			{A: tri[1], B: tri[2]},
		}
		for _, e := range edges {
			for _, s := range slopes {
				if core.SegmentsIntersect(e, s) {
					return true
				}
			}
		}
	}

	if pillar, ok := d.geo.Pillar(o); ok {
		corners := pillar.Corners()
		for _, e := range edges {
			for _, s := range core.Edges(corners[:]) {
				if core.SegmentsIntersect(e, s) {
					return true
				}
			}
		}
		// One shape swallowed the other without crossing edges
		if core.PolygonContains(verts[:], pillar.Center()) || core.PolygonContains(corners[:], box.Center()) {
			return true
		}
	}

	return false
}

// SurfaceBelow returns the highest surface under the box's footprint that is
// not above its bottom: a platform top or the ground. Platforms touching the
// footprint edge still count as support.
func (d *Detector) SurfaceBelow(box *Box, obstacles []Obstacle) float64 {
	bounds := box.Bounds()
	surface := d.geo.GroundY
	for _, o := range obstacles {
		pillar, ok := d.geo.Pillar(o)
		if !ok || o.Kind != KindPlatform {
			continue
		}
		if bounds.MaxX < pillar.MinX || bounds.MinX > pillar.MaxX {
			continue
		}
		if pillar.MinY >= bounds.MaxY-core.Epsilon && pillar.MinY < surface {
			surface = pillar.MinY
		}
	}
	return surface
}

// LandingSurface returns the platform top a descending box crossed during its
// latest move. Only platforms the footprint overlaps by more than an edge count.
func (d *Detector) LandingSurface(box *Box, obstacles []Obstacle) (float64, bool) {
	if !box.Descending() {
		return 0, false
	}

	bounds := box.Bounds()
	prev := box.PrevBottom()
	best, found := 0.0, false
	for _, o := range obstacles {
		pillar, ok := d.geo.Pillar(o)
		if !ok || o.Kind != KindPlatform {
			continue
		}
		if bounds.MaxX <= pillar.MinX || bounds.MinX >= pillar.MaxX {
			continue
		}
		top := pillar.MinY
		if prev <= top+core.Epsilon && bounds.MaxY >= top {
			if !found || top < best {
				best, found = top, true
			}
		}
	}
	return best, found
}
