package hunkicon

import (
	"math"

	"github.com/esimov/hunkicon/utils"
)

// Below this squared length a segment collapses to a single point.
const segmentEps = 1e-8

// roundedBoxSDF returns the signed distance from point (x, y) to the contour
// of a rounded rectangle centered at (cx, cy), having the given half extents
// and corner radius. The returned distance is negative inside the shape,
// zero on its contour and positive outside of it.
func roundedBoxSDF(x, y, cx, cy, hw, hh, r float64) float64 {
	dx := math.Abs(x-cx) - (hw - r)
	dy := math.Abs(y-cy) - (hh - r)

	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - r
}

// segmentDist returns the distance from point (x, y) to the closest point of
// the segment running from (ax, ay) to (bx, by). A degenerated segment is
// treated as a single point.
func segmentDist(x, y, ax, ay, bx, by float64) float64 {
	vx, vy := bx-ax, by-ay
	wx, wy := x-ax, y-ay

	l2 := vx*vx + vy*vy
	if l2 <= segmentEps {
		return math.Hypot(wx, wy)
	}

	t := utils.Clamp((wx*vx+wy*vy)/l2, 0, 1)
	return math.Hypot(x-(ax+t*vx), y-(ay+t*vy))
}

// smoothstep maps x into the 0-1 range with a cubic Hermite ease between the
// two edges. When the edges coincide it degrades to a hard step around them.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge1 {
			return 0
		}
		return 1
	}

	t := utils.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
