package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

// twoNodeScene builds a scene with node "a" centered at (0,0) and node "b"
// centered at (300,0), plus the given relationships.
func twoNodeScene(rels ...document.Relationship) *Scene {
	a := &RenderedNode{
		Node: &document.Node{ID: "a"}, X: -60, Y: -20, Width: 120, Height: 40,
	}
	b := &RenderedNode{
		Node: &document.Node{ID: "b"}, X: 240, Y: -20, Width: 120, Height: 40,
		Parent: a,
	}
	a.Children = []*RenderedNode{b}
	return &Scene{
		Root:          a,
		Relationships: rels,
		Labels:        make(map[string]Point),
	}
}

func TestFindNodeAtTopmostWins(t *testing.T) {
	cfg := DefaultConfig()
	overlap := &document.Position{X: 100, Y: 100}
	doc := &document.MindMap{
		Root: branch("root",
			&document.Node{ID: "a", Position: overlap, Children: []*document.Node{}},
			&document.Node{ID: "b", Position: overlap, Children: []*document.Node{}},
		),
		Structure: document.StructureMindMap,
	}

	scene := BuildScene(doc, cfg)

	// Both children occupy the same box; the later-rendered sibling wins.
	hit := scene.FindNodeAt(Point{X: 110, Y: 110})
	require.NotNil(t, hit)
	assert.Equal(t, "b", hit.Node.ID)
}

func TestFindNodeAtFloatingBeforeMain(t *testing.T) {
	cfg := DefaultConfig()
	doc := &document.MindMap{
		Root: branch("root"),
		FloatingTopics: []*document.Node{
			{ID: "float", Position: &document.Position{X: cfg.CenterX, Y: cfg.CenterY}, Children: []*document.Node{}},
		},
		Structure: document.StructureMindMap,
	}

	scene := BuildScene(doc, cfg)

	// The floating topic sits on the root; it draws on top so it hits first.
	hit := scene.FindNodeAt(Point{X: cfg.CenterX, Y: cfg.CenterY})
	require.NotNil(t, hit)
	assert.Equal(t, "float", hit.Node.ID)
}

func TestFindNodeAtMiss(t *testing.T) {
	cfg := DefaultConfig()
	doc := &document.MindMap{Root: branch("root"), Structure: document.StructureMindMap}

	scene := BuildScene(doc, cfg)
	assert.Nil(t, scene.FindNodeAt(Point{X: -5000, Y: -5000}))
}

func TestFindRelationshipAt(t *testing.T) {
	scene := twoNodeScene(document.Relationship{ID: "r1", FromID: "a", ToID: "b"})

	// Zero curvature: the curve is the straight segment between centers.
	assert.Equal(t, "r1", scene.FindRelationshipAt(Point{X: 150, Y: 8}))
	assert.Equal(t, "", scene.FindRelationshipAt(Point{X: 150, Y: 25}))
}

func TestFindRelationshipAtSkipsBrokenReference(t *testing.T) {
	scene := twoNodeScene(
		document.Relationship{ID: "broken", FromID: "a", ToID: "gone"},
		document.Relationship{ID: "r1", FromID: "a", ToID: "b"},
	)

	// A relationship pointing at a missing topic is skipped, not fatal, and
	// later relationships still hit.
	assert.Equal(t, "r1", scene.FindRelationshipAt(Point{X: 150, Y: 0}))
}

func TestFindControlPointAtRequiresSelection(t *testing.T) {
	scene := twoNodeScene(document.Relationship{ID: "r1", FromID: "a", ToID: "b"})

	// Control points for r1 sit at (100,0) and (200,0), but nothing is
	// selected so neither is interactive.
	_, ok := scene.FindControlPointAt(Point{X: 100, Y: 0})
	assert.False(t, ok)
}

func TestFindControlPointAtSelected(t *testing.T) {
	scene := twoNodeScene(document.Relationship{ID: "r1", FromID: "a", ToID: "b"})
	scene.SelectedRelationship = "r1"

	hit, ok := scene.FindControlPointAt(Point{X: 100, Y: 0})
	require.True(t, ok)
	assert.Equal(t, ControlPointHit{RelationshipID: "r1", Index: 1}, hit)

	// Slightly off-center but within radius + tolerance.
	hit, ok = scene.FindControlPointAt(Point{X: 205, Y: 3})
	require.True(t, ok)
	assert.Equal(t, 2, hit.Index)

	// Between the handles: no hit.
	_, ok = scene.FindControlPointAt(Point{X: 150, Y: 0})
	assert.False(t, ok)
}

func TestFindRelationshipLabelAt(t *testing.T) {
	scene := twoNodeScene(document.Relationship{ID: "r1", FromID: "a", ToID: "b", Label: "feeds into"})
	scene.Labels["r1"] = Point{X: 500, Y: 500}

	// "feeds into" is 10 runes: box is 86 wide, 20 tall, centered.
	assert.Equal(t, "r1", scene.FindRelationshipLabelAt(Point{X: 500, Y: 500}))
	assert.Equal(t, "r1", scene.FindRelationshipLabelAt(Point{X: 460, Y: 505}))
	assert.Equal(t, "", scene.FindRelationshipLabelAt(Point{X: 560, Y: 500}))
	assert.Equal(t, "", scene.FindRelationshipLabelAt(Point{X: 500, Y: 515}))
}

func TestFindRelationshipLabelAtPlaceholder(t *testing.T) {
	scene := twoNodeScene(document.Relationship{ID: "r1", FromID: "a", ToID: "b"})
	scene.Labels["r1"] = Point{X: 500, Y: 500}

	// An empty label is not hittable until the relationship is selected,
	// when the add-label placeholder becomes the target.
	assert.Equal(t, "", scene.FindRelationshipLabelAt(Point{X: 500, Y: 500}))

	scene.SelectedRelationship = "r1"
	assert.Equal(t, "r1", scene.FindRelationshipLabelAt(Point{X: 500, Y: 500}))
}

func TestFindRelationshipLabelAtNoCachedPosition(t *testing.T) {
	scene := twoNodeScene(document.Relationship{ID: "r1", FromID: "a", ToID: "b", Label: "x"})

	// No cached anchor: nothing to hit.
	assert.Equal(t, "", scene.FindRelationshipLabelAt(Point{X: 150, Y: 0}))
}
