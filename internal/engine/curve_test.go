package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

func TestCurveBetweenStraight(t *testing.T) {
	from := Point{X: 0, Y: 0}
	to := Point{X: 300, Y: 0}

	curve := CurveBetween(from, to, document.Relationship{Curvature: 0})

	// Zero curvature: controls at the chord third-points, curve degenerates
	// to the straight segment.
	assert.InDelta(t, 100, curve.Control1.X, 1e-9)
	assert.InDelta(t, 0, curve.Control1.Y, 1e-9)
	assert.InDelta(t, 200, curve.Control2.X, 1e-9)
	assert.InDelta(t, 0, curve.Control2.Y, 1e-9)

	mid := curve.Midpoint()
	assert.InDelta(t, 150, mid.X, 1e-9)
	assert.InDelta(t, 0, mid.Y, 1e-9)
}

func TestCurveBetweenBend(t *testing.T) {
	from := Point{X: 0, Y: 0}
	to := Point{X: 300, Y: 0}

	curve := CurveBetween(from, to, document.Relationship{Curvature: 0.5})

	// Bend scales with distance: 0.5 * 300 along the left normal (0, 1).
	assert.InDelta(t, 100, curve.Control1.X, 1e-9)
	assert.InDelta(t, 150, curve.Control1.Y, 1e-9)
	assert.InDelta(t, 200, curve.Control2.X, 1e-9)
	assert.InDelta(t, 150, curve.Control2.Y, 1e-9)
}

func TestCurveBetweenExplicitControls(t *testing.T) {
	from := Point{X: 100, Y: 100}
	to := Point{X: 400, Y: 100}

	rel := document.Relationship{
		Curvature: 0.5,
		Control1:  &document.Position{X: 10, Y: 20},
		Control2:  &document.Position{X: -30, Y: 40},
	}
	curve := CurveBetween(from, to, rel)

	// Dragged handles are offsets relative to their endpoint and win over
	// the curvature-derived positions.
	assert.Equal(t, Point{X: 110, Y: 120}, curve.Control1)
	assert.Equal(t, Point{X: 370, Y: 140}, curve.Control2)
}

func TestCurveBetweenCoincidentEndpoints(t *testing.T) {
	p := Point{X: 50, Y: 50}
	curve := CurveBetween(p, p, document.Relationship{Curvature: 0.5})

	// No distance means no bend; every sample collapses to the point.
	for _, sample := range curve.Sample(4) {
		assert.Equal(t, p, sample)
	}
}

func TestCurveSample(t *testing.T) {
	curve := CurveBetween(Point{}, Point{X: 300, Y: 0}, document.Relationship{})

	samples := curve.Sample(20)
	assert.Len(t, samples, 21)
	assert.Equal(t, curve.From, samples[0])
	assert.Equal(t, curve.To, samples[20])

	// Degenerate step count still yields both endpoints.
	samples = curve.Sample(0)
	assert.Len(t, samples, 2)
}
