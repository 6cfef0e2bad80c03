package engine

import (
	"math"
	"unicode/utf8"
)

// Hit testing constants.
const (
	relationshipHitDistance = 10 // world units from a sampled curve point
	controlPointRadius      = 6
	controlPointTolerance   = 4
	labelCharWidth          = 7 // per-character width heuristic, not text measurement
	labelPaddingX           = 8
	labelHeight             = 20

	// labelPlaceholder stands in for an empty label on the selected
	// relationship so the add-label affordance stays clickable.
	labelPlaceholder = "Add label"
)

// ControlPointHit identifies which of a relationship's two control handles
// was hit.
type ControlPointHit struct {
	RelationshipID string
	Index          int // 1 or 2
}

// FindNodeAt returns the topmost rendered node containing the world-space
// point, or nil. Floating topics draw on top of the main tree so they are
// tested first; within each tree, later-rendered nodes win.
func (s *Scene) FindNodeAt(p Point) *RenderedNode {
	for i := len(s.Floating) - 1; i >= 0; i-- {
		if hit := hitRendered(s.Floating[i], p); hit != nil {
			return hit
		}
	}
	return hitRendered(s.Root, p)
}

// hitRendered tests children before the node itself, in reverse order, so
// overlapping boxes resolve to the one painted last.
func hitRendered(n *RenderedNode, p Point) *RenderedNode {
	if n == nil {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := hitRendered(n.Children[i], p); hit != nil {
			return hit
		}
	}
	if n.Bounds().Contains(p.X, p.Y) {
		return n
	}
	return nil
}

// FindRelationshipAt returns the id of the first relationship whose sampled
// curve passes within relationshipHitDistance of the point, or "".
// Relationships whose endpoints are missing from the current geometry are
// skipped, never fatal. Relationships are not depth-sorted: on dense overlap
// the first in iteration order wins.
func (s *Scene) FindRelationshipAt(p Point) string {
	for _, rel := range s.Relationships {
		from := s.ResolveNode(rel.FromID)
		to := s.ResolveNode(rel.ToID)
		if from == nil || to == nil {
			continue
		}

		curve := CurveBetween(
			Point{X: from.CenterX(), Y: from.CenterY()},
			Point{X: to.CenterX(), Y: to.CenterY()},
			rel,
		)
		for _, sample := range curve.Sample(curveSamples) {
			if math.Hypot(sample.X-p.X, sample.Y-p.Y) <= relationshipHitDistance {
				return rel.ID
			}
		}
	}
	return ""
}

// FindControlPointAt tests the point against the selected relationship's
// two control handles. Unselected relationships never expose handles.
func (s *Scene) FindControlPointAt(p Point) (ControlPointHit, bool) {
	if s.SelectedRelationship == "" {
		return ControlPointHit{}, false
	}

	for _, rel := range s.Relationships {
		if rel.ID != s.SelectedRelationship {
			continue
		}
		from := s.ResolveNode(rel.FromID)
		to := s.ResolveNode(rel.ToID)
		if from == nil || to == nil {
			return ControlPointHit{}, false
		}

		curve := CurveBetween(
			Point{X: from.CenterX(), Y: from.CenterY()},
			Point{X: to.CenterX(), Y: to.CenterY()},
			rel,
		)
		radius := float64(controlPointRadius + controlPointTolerance)
		if math.Hypot(curve.Control1.X-p.X, curve.Control1.Y-p.Y) <= radius {
			return ControlPointHit{RelationshipID: rel.ID, Index: 1}, true
		}
		if math.Hypot(curve.Control2.X-p.X, curve.Control2.Y-p.Y) <= radius {
			return ControlPointHit{RelationshipID: rel.ID, Index: 2}, true
		}
		return ControlPointHit{}, false
	}
	return ControlPointHit{}, false
}

// FindRelationshipLabelAt returns the id of the relationship whose label box
// contains the point, or "". Label positions come from the cache written by
// the presentation layer; relationships without a cached position (or with
// no text, unless selected) have nothing to hit.
func (s *Scene) FindRelationshipLabelAt(p Point) string {
	for _, rel := range s.Relationships {
		label := rel.Label
		if label == "" {
			if rel.ID != s.SelectedRelationship {
				continue
			}
			label = labelPlaceholder
		}

		pos, ok := s.Labels[rel.ID]
		if !ok {
			continue
		}

		width := float64(utf8.RuneCountInString(label))*labelCharWidth + labelPaddingX*2
		box := Rect{
			X:      pos.X - width/2,
			Y:      pos.Y - labelHeight/2,
			Width:  width,
			Height: labelHeight,
		}
		if box.Contains(p.X, p.Y) {
			return rel.ID
		}
	}
	return ""
}
