package hunkicon

import (
	"image/color"
	"math"

	"github.com/esimov/hunkicon/imop"
)

// The icon artwork is laid out on a 1024 unit reference grid and every
// distance below is normalized against it, which keeps the proportions
// identical at any rendered output size.
const refSize = 1024.0

// Geometry of the icon layers, expressed in normalized coordinates.
const (
	outerHalf   = 430.0 / refSize
	outerRadius = 180.0 / refSize

	panelHalfW  = 286.0 / refSize
	panelHalfH  = 250.0 / refSize
	panelRadius = 72.0 / refSize

	dividerHalfW = 6.0 / refSize

	rowHeight = 28.0 / refSize
	rowRound  = 10.0 / refSize

	leftColX0  = 258.0 / refSize
	leftColX1  = 501.0 / refSize
	rightColX0 = 523.0 / refSize
	rightColX1 = 766.0 / refSize

	nodeRadius = 16.0 / refSize
)

type point struct {
	x, y float64
}

var (
	// Vertical centers of the diff rows, shared by both columns.
	rowCenters = []float64{px(348), px(396), px(444), px(492), px(540), px(588), px(636)}

	// Length ratios of the row pills relative to their column width.
	leftRowLens  = []float64{0.86, 0.63, 0.78, 0.58, 0.82, 0.67, 0.74}
	rightRowLens = []float64{0.64, 0.84, 0.57, 0.79, 0.61, 0.88, 0.68}

	// Commit nodes of the branch polyline, connected in order.
	branchPts = []point{
		{px(282), px(682)},
		{px(396), px(592)},
		{px(512), px(500)},
		{px(642), px(404)},
		{px(748), px(330)},
	}
)

// px converts a distance expressed in reference grid units to the
// normalized coordinate space of the icon.
func px(n float64) float64 {
	return n / refSize
}

// rowBar is a single diff row pill, precomputed from the column extents,
// the row length ratio and the color ramp of its side.
type rowBar struct {
	cx, cy, hw float64
	color      imop.Color
}

// scene binds a theme to the precomputed row pills so the per pixel shading
// is left with evaluating distances and compositing layers only.
type scene struct {
	theme     *Theme
	leftRows  []rowBar
	rightRows []rowBar
}

func newScene(t *Theme) *scene {
	s := &scene{theme: t}
	n := len(rowCenters)

	for i, cy := range rowCenters {
		ramp := float64(i) / float64(n-1)

		lw := (leftColX1 - leftColX0) * leftRowLens[i]
		s.leftRows = append(s.leftRows, rowBar{
			cx:    leftColX0 + lw*0.5,
			cy:    cy,
			hw:    lw * 0.5,
			color: imop.Mix(t.MinusMain, t.MinusSoft, ramp),
		})

		rw := (rightColX1 - rightColX0) * rightRowLens[i]
		s.rightRows = append(s.rightRows, rowBar{
			cx:    rightColX0 + rw*0.5,
			cy:    cy,
			hw:    rw * 0.5,
			color: imop.Mix(t.PlusMain, t.PlusSoft, ramp),
		})
	}
	return s
}

// shade evaluates the full layer stack at the normalized point (fx, fy) and
// returns the final quantized pixel. Points outside the icon mask come back
// fully transparent.
func (s *scene) shade(fx, fy float64) color.NRGBA {
	t := s.theme

	// Icon mask.
	dOuter := roundedBoxSDF(fx, fy, 0.5, 0.5, outerHalf, outerHalf, outerRadius)
	if dOuter > 0 {
		return color.NRGBA{}
	}
	edgeSoft := smoothstep(0, px(2.2), -dOuter)

	// Base gradient with a subtle glow around the top left quadrant.
	col := imop.Mix(t.BgTop, t.BgBottom, fy)
	glowDist := math.Hypot(fx-px(384), fy-px(244))
	glow := 1 - smoothstep(px(56), px(460), glowDist)
	col = col.Over(t.BgGlow, glow*0.24)

	// Inner panel.
	dPanel := roundedBoxSDF(fx, fy, 0.5, 0.5, panelHalfW, panelHalfH, panelRadius)
	if dPanel <= 0 {
		col = col.Over(t.Panel, t.PanelAlpha*smoothstep(px(2.4), 0, dPanel))
	}

	// Divider between the two diff columns.
	dDiv := roundedBoxSDF(fx, fy, 0.5, 0.5, dividerHalfW, panelHalfH-px(8), px(6))
	if dDiv <= 0 {
		col = col.Over(t.Divider, t.DividerAlpha*smoothstep(px(1.7), 0, dDiv))
	}

	// Diff rows, removals on the left column and additions on the right one.
	for i := range s.leftRows {
		left, right := s.leftRows[i], s.rightRows[i]

		if d := roundedBoxSDF(fx, fy, left.cx, left.cy, left.hw, rowHeight*0.5, rowRound); d <= 0 {
			col = col.Over(left.color, 0.96*smoothstep(px(1.5), 0, d))
		}
		if d := roundedBoxSDF(fx, fy, right.cx, right.cy, right.hw, rowHeight*0.5, rowRound); d <= 0 {
			col = col.Over(right.color, 0.96*smoothstep(px(1.5), 0, d))
		}
	}

	// Branch polyline glow and stroke.
	minSeg := math.Inf(1)
	for i := 0; i < len(branchPts)-1; i++ {
		a, b := branchPts[i], branchPts[i+1]
		minSeg = math.Min(minSeg, segmentDist(fx, fy, a.x, a.y, b.x, b.y))
	}

	if glowA := 0.18 * (1 - smoothstep(px(9), px(24), minSeg)); glowA > 0 {
		col = col.Over(t.BranchGlow, glowA)
	}
	if lineA := 0.96 * (1 - smoothstep(px(3.2), px(6.4), minSeg)); lineA > 0 {
		col = col.Over(t.Branch, lineA)
	}

	// Commit nodes drawn on top of the polyline.
	for _, p := range branchPts {
		core := 1 - smoothstep(nodeRadius*0.55, nodeRadius*0.95, math.Hypot(fx-p.x, fy-p.y))
		if core > 0 {
			col = col.Over(t.Branch, core*0.96)
		}
	}

	// Icon border, fading inwards from the mask contour.
	if borderA := t.BorderAlpha * (1 - smoothstep(px(0.8), px(4.2), -dOuter)); borderA > 0 {
		col = col.Over(t.Border, borderA)
	}

	return col.NRGBA(edgeSoft)
}
