package engine

import (
	"math"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

// curveSamples is the number of parameter steps used when sampling a
// relationship curve for hit testing.
const curveSamples = 20

// RelationshipCurve is a cubic Bezier between two topic centers.
type RelationshipCurve struct {
	From     Point
	To       Point
	Control1 Point
	Control2 Point
}

// CurveBetween derives the cubic control points for a relationship between
// two endpoint centers. Explicit control offsets (set when the user drags a
// handle) are applied relative to their endpoint; otherwise the controls sit
// at the third points of the chord, pushed sideways by the curvature hint
// scaled with the endpoint distance.
func CurveBetween(from, to Point, rel document.Relationship) RelationshipCurve {
	curve := RelationshipCurve{From: from, To: to}

	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)

	var nx, ny float64
	if dist > 0 {
		nx = -dy / dist
		ny = dx / dist
	}
	bend := rel.Curvature * dist

	curve.Control1 = Point{X: from.X + dx/3 + nx*bend, Y: from.Y + dy/3 + ny*bend}
	curve.Control2 = Point{X: from.X + 2*dx/3 + nx*bend, Y: from.Y + 2*dy/3 + ny*bend}

	if rel.Control1 != nil {
		curve.Control1 = Point{X: from.X + rel.Control1.X, Y: from.Y + rel.Control1.Y}
	}
	if rel.Control2 != nil {
		curve.Control2 = Point{X: to.X + rel.Control2.X, Y: to.Y + rel.Control2.Y}
	}
	return curve
}

// PointAt evaluates the cubic at parameter t in [0, 1].
func (c RelationshipCurve) PointAt(t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*c.From.X + b1*c.Control1.X + b2*c.Control2.X + b3*c.To.X,
		Y: b0*c.From.Y + b1*c.Control1.Y + b2*c.Control2.Y + b3*c.To.Y,
	}
}

// Sample returns steps+1 equally spaced points along the curve, endpoints
// included.
func (c RelationshipCurve) Sample(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, c.PointAt(float64(i)/float64(steps)))
	}
	return points
}

// Midpoint returns the curve point at t = 0.5, the default label anchor.
func (c RelationshipCurve) Midpoint() Point {
	return c.PointAt(0.5)
}
