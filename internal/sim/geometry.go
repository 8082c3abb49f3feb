package sim

import "math"

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// CircleIntersectsRect reports whether a circle touches a hazard rectangle.
// Contact requires the nearest rectangle point to be strictly closer than r.
func CircleIntersectsRect(h Hazard, cx, cy, r float64) bool {
	nearX := clamp(cx, h.X, h.X+h.Width)
	nearY := clamp(cy, h.Top(), h.Y)
	dx := cx - nearX
	dy := cy - nearY
	return dx*dx+dy*dy < r*r
}

// PointInRect reports whether (px,py) lies inside a hazard rectangle, edges included.
func PointInRect(h Hazard, px, py float64) bool {
	return px >= h.X && px <= h.X+h.Width && py >= h.Top() && py <= h.Y
}

// spansX reports whether an interval [x0,x1] overlaps a platform horizontally
// (open on both ends, so touching edges do not count).
func (p Platform) spansX(x0, x1 float64) bool {
	return x1 > p.X && x0 < p.X+p.Width
}

// containsX reports whether x lies on the platform's top edge, ends included.
func (p Platform) containsX(x float64) bool {
	return x >= p.X && x <= p.X+p.Width
}
