package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

func commandsByOp(commands []DrawCommand, op string) []DrawCommand {
	var out []DrawCommand
	for _, cmd := range commands {
		if cmd.Op == op {
			out = append(out, cmd)
		}
	}
	return out
}

func TestCompileDrawCommandsOrder(t *testing.T) {
	cfg := DefaultConfig()
	doc := &document.MindMap{
		Root: branch("root", leaf("a"), leaf("b")),
		Summaries: []document.Summary{
			{ID: "s1", ParentID: "root", StartIndex: 0, EndIndex: 1, Text: "both"},
		},
		Relationships: []document.Relationship{
			{ID: "r1", FromID: "a", ToID: "b", Label: "links"},
		},
		Structure: document.StructureMindMap,
	}

	commands := CompileDrawCommands(BuildScene(doc, cfg), doc)
	require.NotEmpty(t, commands)

	// Painter's order: summaries first, relationship curves and labels last.
	assert.Equal(t, "summary", commands[0].Op)
	assert.Equal(t, "label", commands[len(commands)-1].Op)
	assert.Equal(t, "relationship", commands[len(commands)-2].Op)

	assert.Len(t, commandsByOp(commands, "node"), 3)
	assert.Len(t, commandsByOp(commands, "connector"), 2)
}

func TestCompileSummariesClampAndSkip(t *testing.T) {
	cfg := DefaultConfig()
	doc := &document.MindMap{
		Root: branch("root", leaf("a"), leaf("b")),
		Summaries: []document.Summary{
			{ID: "s1", ParentID: "root", StartIndex: -3, EndIndex: 99, Text: "clamped"},
			{ID: "s2", ParentID: "gone", StartIndex: 0, EndIndex: 0, Text: "orphan"},
			{ID: "s3", ParentID: "root", StartIndex: 1, EndIndex: 0, Text: "inverted"},
		},
		Structure: document.StructureMindMap,
	}

	scene := BuildScene(doc, cfg)
	commands := CompileDrawCommands(scene, doc)

	summaries := commandsByOp(commands, "summary")
	require.Len(t, summaries, 1)
	assert.Equal(t, "s1", summaries[0].ID)

	// The clamped range covers both children, so the bracket spans their
	// combined bounds.
	a := scene.ResolveNode("a")
	b := scene.ResolveNode("b")
	want := a.Bounds().Union(b.Bounds())
	assert.Equal(t, want.X, summaries[0].X)
	assert.Equal(t, want.Width, summaries[0].Width)
}

func TestCompileRelationshipsSkipsBroken(t *testing.T) {
	cfg := DefaultConfig()
	doc := &document.MindMap{
		Root: branch("root", leaf("a")),
		Relationships: []document.Relationship{
			{ID: "broken", FromID: "a", ToID: "missing"},
			{ID: "r1", FromID: "root", ToID: "a", Label: "ok"},
		},
		Structure: document.StructureMindMap,
	}

	commands := CompileDrawCommands(BuildScene(doc, cfg), doc)

	rels := commandsByOp(commands, "relationship")
	require.Len(t, rels, 1)
	assert.Equal(t, "r1", rels[0].ID)
}

func TestCompileRelationshipsLabelFallback(t *testing.T) {
	cfg := DefaultConfig()
	doc := &document.MindMap{
		Root: branch("root", leaf("a")),
		Relationships: []document.Relationship{
			{ID: "r1", FromID: "root", ToID: "a", Label: "named"},
			{ID: "r2", FromID: "root", ToID: "a"},
		},
		Structure: document.StructureMindMap,
	}

	scene := BuildScene(doc, cfg)
	scene.Labels["r1"] = Point{X: 42, Y: 43}

	commands := CompileDrawCommands(scene, doc)
	labels := commandsByOp(commands, "label")

	// r1 uses the cached anchor; r2 has no label and is not selected, so it
	// emits no label command at all.
	require.Len(t, labels, 1)
	assert.Equal(t, "r1", labels[0].ID)
	assert.Equal(t, 42.0, labels[0].X)

	scene.SelectedRelationship = "r2"
	labels = commandsByOp(CompileDrawCommands(scene, doc), "label")
	require.Len(t, labels, 2)
	assert.Equal(t, "Add label", labels[1].Text)
	assert.True(t, labels[1].Selected)
}

func TestCompileNodeThemeAndMarkers(t *testing.T) {
	cfg := DefaultConfig()
	doc := &document.MindMap{
		Root: branch("root",
			&document.Node{ID: "a", Markers: []string{"priority-1", "no-such-marker"}, Children: []*document.Node{}},
		),
		Structure: document.StructureMindMap,
		Theme:     "midnight",
	}

	commands := CompileDrawCommands(BuildScene(doc, cfg), doc)
	nodes := commandsByOp(commands, "node")
	require.Len(t, nodes, 2)

	theme := document.Themes["midnight"]
	assert.Equal(t, theme.Fill[0], nodes[0].Fill)
	assert.Equal(t, theme.Fill[1], nodes[1].Fill)

	// Unknown marker names are dropped, known ones resolve to badges.
	require.Len(t, nodes[1].Markers, 1)
	assert.Equal(t, document.Markers["priority-1"].Glyph, nodes[1].Markers[0].Glyph)
}

func TestCompileDrawCommandsNilScene(t *testing.T) {
	assert.Nil(t, CompileDrawCommands(nil, nil))
	assert.Nil(t, CompileDrawCommands(&Scene{}, nil))
}
