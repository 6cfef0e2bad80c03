package collab

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

func newState(t *testing.T) *DocumentState {
	t.Helper()
	return NewDocumentState(document.NewEmptyDocument("proj_1", "Test", "root"))
}

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestApplyNodeCreateAndDelete(t *testing.T) {
	ds := newState(t)

	seq, err := ds.ApplyOperation(Operation{
		Type:     "node.create",
		ParentID: "root",
		Node:     mustJSON(t, document.Node{ID: "n1", Text: "First"}),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	doc := ds.GetDocument()
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, "First", doc.Root.Children[0].Text)

	// Insert at index 0 pushes the existing child down.
	idx := 0
	_, err = ds.ApplyOperation(Operation{
		Type:     "node.create",
		ParentID: "root",
		Index:    &idx,
		Node:     mustJSON(t, document.Node{ID: "n0", Text: "Zeroth"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "n0", doc.Root.Children[0].ID)

	seq, err = ds.ApplyOperation(Operation{Type: "node.delete", TargetID: "n1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)
	assert.Nil(t, doc.FindAnywhere("n1"))
}

func TestApplyNodeDeleteRootFails(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{Type: "node.delete", TargetID: "root"})
	assert.Error(t, err)
}

func TestApplyNodeCreateMissingParent(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{
		Type:     "node.create",
		ParentID: "nope",
		Node:     mustJSON(t, document.Node{ID: "n1"}),
	})
	assert.Error(t, err)

	// Rejected operations do not advance the sequence.
	seq, err := ds.ApplyOperation(Operation{Type: "node.text", TargetID: "root", Text: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}

func TestApplyNodeTextAndCollapse(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{Type: "node.text", TargetID: "root", Text: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", ds.GetDocument().Root.Text)

	collapsed := true
	_, err = ds.ApplyOperation(Operation{Type: "node.collapse", TargetID: "root", Collapsed: &collapsed})
	require.NoError(t, err)
	assert.True(t, ds.GetDocument().Root.Collapsed)
}

func TestApplyNodeMoveAndClear(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{
		Type:     "node.move",
		TargetID: "root",
		Position: mustJSON(t, document.Position{X: 10, Y: 20}),
	})
	require.NoError(t, err)
	require.NotNil(t, ds.GetDocument().Root.Position)
	assert.Equal(t, 10.0, ds.GetDocument().Root.Position.X)

	// A null position clears the override.
	_, err = ds.ApplyOperation(Operation{
		Type:     "node.move",
		TargetID: "root",
		Position: json.RawMessage("null"),
	})
	require.NoError(t, err)
	assert.Nil(t, ds.GetDocument().Root.Position)
}

func TestApplyFloatingTopicOps(t *testing.T) {
	ds := newState(t)

	// A floating topic without a position is rejected.
	_, err := ds.ApplyOperation(Operation{
		Type: "topic.create",
		Node: mustJSON(t, document.Node{ID: "t1", Text: "Adrift"}),
	})
	assert.Error(t, err)

	_, err = ds.ApplyOperation(Operation{
		Type: "topic.create",
		Node: mustJSON(t, document.Node{
			ID: "t1", Text: "Parking lot",
			Position: &document.Position{X: 900, Y: 100},
		}),
	})
	require.NoError(t, err)
	require.Len(t, ds.GetDocument().FloatingTopics, 1)

	_, err = ds.ApplyOperation(Operation{Type: "topic.delete", TargetID: "t1"})
	require.NoError(t, err)
	assert.Empty(t, ds.GetDocument().FloatingTopics)

	_, err = ds.ApplyOperation(Operation{Type: "topic.delete", TargetID: "t1"})
	assert.Error(t, err)
}

func TestApplyRelationshipOps(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{
		Type:         "rel.create",
		Relationship: mustJSON(t, document.Relationship{ID: "r1", FromID: "root", ToID: "root"}),
	})
	require.NoError(t, err)
	require.Len(t, ds.GetDocument().Relationships, 1)

	label := "connects"
	curvature := 0.4
	_, err = ds.ApplyOperation(Operation{
		Type:     "rel.update",
		TargetID: "r1",
		Changes: mustJSON(t, map[string]interface{}{
			"label":     label,
			"curvature": curvature,
			"control1":  document.Position{X: 5, Y: 6},
		}),
	})
	require.NoError(t, err)

	rel := ds.GetDocument().Relationships[0]
	assert.Equal(t, "connects", rel.Label)
	assert.Equal(t, 0.4, rel.Curvature)
	require.NotNil(t, rel.Control1)
	assert.Equal(t, 5.0, rel.Control1.X)

	_, err = ds.ApplyOperation(Operation{Type: "rel.delete", TargetID: "r1"})
	require.NoError(t, err)
	assert.Empty(t, ds.GetDocument().Relationships)
}

func TestApplySummaryOps(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{
		Type:    "summary.create",
		Summary: mustJSON(t, document.Summary{ID: "s1", ParentID: "root", StartIndex: 0, EndIndex: 1, Text: "Group"}),
	})
	require.NoError(t, err)
	require.Len(t, ds.GetDocument().Summaries, 1)

	// Summary over a missing parent is rejected.
	_, err = ds.ApplyOperation(Operation{
		Type:    "summary.create",
		Summary: mustJSON(t, document.Summary{ID: "s2", ParentID: "gone"}),
	})
	assert.Error(t, err)

	_, err = ds.ApplyOperation(Operation{Type: "summary.delete", TargetID: "s1"})
	require.NoError(t, err)
	assert.Empty(t, ds.GetDocument().Summaries)
}

func TestApplyStructureValidation(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{Type: "map.structure", Structure: document.StructureFishbone})
	require.NoError(t, err)
	assert.Equal(t, document.StructureFishbone, ds.GetDocument().Structure)

	_, err = ds.ApplyOperation(Operation{Type: "map.structure", Structure: "spiral"})
	assert.Error(t, err)
	assert.Equal(t, document.StructureFishbone, ds.GetDocument().Structure)
}

func TestApplyProjectRename(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{Type: "project.rename", Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", ds.GetDocument().Project.Name)
}

func TestApplyUnknownOperation(t *testing.T) {
	ds := newState(t)

	_, err := ds.ApplyOperation(Operation{Type: "node.explode"})
	assert.Error(t, err)
}

func TestDirtyTracking(t *testing.T) {
	ds := newState(t)
	assert.False(t, ds.Dirty())

	_, err := ds.ApplyOperation(Operation{Type: "node.text", TargetID: "root", Text: "x"})
	require.NoError(t, err)
	assert.True(t, ds.Dirty())

	ds.MarkSaved()
	assert.False(t, ds.Dirty())

	// A rejected operation leaves the state clean.
	_, err = ds.ApplyOperation(Operation{Type: "node.text", TargetID: "missing"})
	assert.Error(t, err)
	assert.False(t, ds.Dirty())
}
