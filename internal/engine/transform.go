package engine

import "math"

// Viewport is the canvas element's rectangle in screen coordinates.
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsValid reports whether the viewport has usable dimensions.
func (v Viewport) IsValid() bool {
	return v.Width > 0 && v.Height > 0
}

// WorldToScreen maps a world point to screen coordinates: the point is
// translated so the viewport center is the origin, scaled by zoom, offset by
// pan, then translated back into viewport-relative space plus the viewport's
// screen offset.
func WorldToScreen(worldX, worldY float64, viewport Viewport, zoom, panX, panY float64) Point {
	cx := viewport.Width / 2
	cy := viewport.Height / 2
	return Point{
		X: (worldX-cx)*zoom + panX + cx + viewport.X,
		Y: (worldY-cy)*zoom + panY + cy + viewport.Y,
	}
}

// ScreenToWorld is the exact inverse of WorldToScreen for the same
// viewport/zoom/pan snapshot. An invalid viewport or non-positive zoom
// returns the origin: this runs on every pointer move and must not fail.
func ScreenToWorld(screenX, screenY float64, viewport Viewport, zoom, panX, panY float64) Point {
	if !viewport.IsValid() || zoom <= 0 {
		return Point{}
	}
	cx := viewport.Width / 2
	cy := viewport.Height / 2
	return Point{
		X: (screenX-viewport.X-cx-panX)/zoom + cx,
		Y: (screenY-viewport.Y-cy-panY)/zoom + cy,
	}
}

// NodeEdgePoint returns where the ray from a box's center toward a target
// point crosses the box boundary expanded by padding on each side. The
// result anchors relationship curves at a node's visual border rather than
// its center, independent of the node's aspect ratio.
func NodeEdgePoint(centerX, centerY, halfWidth, halfHeight, targetX, targetY, padding float64) Point {
	dx := targetX - centerX
	dy := targetY - centerY
	if dx == 0 && dy == 0 {
		return Point{X: centerX, Y: centerY}
	}

	hw := halfWidth + padding
	hh := halfHeight + padding

	// Slab intersection: for each axis with nonzero direction, the ray
	// crosses that axis's two padded bounds at two parameters. Keep the
	// positive ones and take the smallest; never extrapolate past the
	// target itself.
	t := math.Inf(1)
	if dx != 0 {
		for _, cand := range []float64{hw / dx, -hw / dx} {
			if cand > 0 && cand < t {
				t = cand
			}
		}
	}
	if dy != 0 {
		for _, cand := range []float64{hh / dy, -hh / dy} {
			if cand > 0 && cand < t {
				t = cand
			}
		}
	}
	if math.IsInf(t, 1) || t > 1 {
		t = 1
	}

	return Point{X: centerX + dx*t, Y: centerY + dy*t}
}
