package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldToScreenRoundTrip(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 800, Height: 600}
	zoom := 1.5
	panX, panY := 30.0, -40.0

	points := []Point{
		{X: 0, Y: 0},
		{X: 400, Y: 300},
		{X: -123.5, Y: 987.25},
		{X: 600, Y: 400},
	}

	for _, world := range points {
		screen := WorldToScreen(world.X, world.Y, vp, zoom, panX, panY)
		back := ScreenToWorld(screen.X, screen.Y, vp, zoom, panX, panY)
		assert.InDelta(t, world.X, back.X, 1e-9)
		assert.InDelta(t, world.Y, back.Y, 1e-9)
	}
}

func TestScreenToWorldIdentityView(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	// zoom 1, no pan, no viewport offset: screen == world
	p := ScreenToWorld(250, 125, vp, 1, 0, 0)
	assert.Equal(t, Point{X: 250, Y: 125}, p)
}

func TestScreenToWorldDegradesToOrigin(t *testing.T) {
	valid := Viewport{Width: 800, Height: 600}

	assert.Equal(t, Point{}, ScreenToWorld(100, 100, Viewport{}, 1, 0, 0))
	assert.Equal(t, Point{}, ScreenToWorld(100, 100, Viewport{Width: 800}, 1, 0, 0))
	assert.Equal(t, Point{}, ScreenToWorld(100, 100, valid, 0, 0, 0))
	assert.Equal(t, Point{}, ScreenToWorld(100, 100, valid, -2, 0, 0))
}

func TestNodeEdgePointOnBoundary(t *testing.T) {
	// Ray straight right from a 120x40 box with 2 units of padding crosses
	// the right edge at x = 62.
	p := NodeEdgePoint(0, 0, 60, 20, 200, 0, 2)
	assert.InDelta(t, 62, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Straight up: crosses the top edge at y = -22.
	p = NodeEdgePoint(0, 0, 60, 20, 0, -200, 2)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, -22, p.Y, 1e-9)
}

func TestNodeEdgePointDiagonal(t *testing.T) {
	// 45-degree ray: the vertical slab binds first on a wide box.
	p := NodeEdgePoint(0, 0, 60, 20, 300, 300, 0)
	assert.InDelta(t, 20, p.X, 1e-9)
	assert.InDelta(t, 20, p.Y, 1e-9)
}

func TestNodeEdgePointTargetInsideBox(t *testing.T) {
	// Target closer than the boundary: clamp to the target itself.
	p := NodeEdgePoint(0, 0, 60, 20, 10, 0, 2)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestNodeEdgePointDegenerate(t *testing.T) {
	p := NodeEdgePoint(50, 70, 60, 20, 50, 70, 2)
	require.Equal(t, Point{X: 50, Y: 70}, p)
}
