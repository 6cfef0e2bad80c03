package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineEmptyBeforeLoad(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, "[]", e.Render())
	assert.Equal(t, "", e.HitTestNode(600, 400))
	assert.Equal(t, "", e.HitTestRelationship(600, 400))
	assert.Equal(t, "null", e.HitTestControlPoint(600, 400))
	assert.Equal(t, "", e.GetStructure())
	assert.Equal(t, "{}", e.GetDocument())
}

func TestEngineLoadSampleAndRender(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_test")

	var commands []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(e.Render()), &commands))
	require.NotEmpty(t, commands)

	ops := make(map[string]int)
	for _, cmd := range commands {
		ops[cmd["op"].(string)]++
	}
	assert.Greater(t, ops["node"], 5)
	assert.Greater(t, ops["connector"], 0)
	assert.Equal(t, 1, ops["relationship"])
	assert.Equal(t, 1, ops["summary"])
}

func TestEngineHitTestRootCenter(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_test")

	var doc struct {
		Root struct {
			ID string `json:"id"`
		} `json:"root"`
	}
	require.NoError(t, json.Unmarshal([]byte(e.GetDocument()), &doc))

	// The root is laid out at the configured world center.
	cfg := DefaultConfig()
	assert.Equal(t, doc.Root.ID, e.HitTestNode(cfg.CenterX, cfg.CenterY))
	assert.Equal(t, "", e.HitTestNode(-9999, -9999))
}

func TestEngineSetStructure(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_test")

	assert.Equal(t, "mindmap", e.GetStructure())
	before := e.GetMapBounds()

	e.SetStructure("orgchart")
	assert.Equal(t, "orgchart", e.GetStructure())
	assert.NotEqual(t, before, e.GetMapBounds())
}

func TestEngineSetLayoutConfig(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_test")
	before := e.GetMapBounds()

	require.NoError(t, e.SetLayoutConfig(`{"levelSpacing": 400}`))
	assert.NotEqual(t, before, e.GetMapBounds())

	assert.Error(t, e.SetLayoutConfig(`not json`))
}

func TestEngineLoadResetsSelectionUpdatePreserves(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_test")
	docJSON := e.GetDocument()

	e.SetSelection([]string{"some-id"})
	require.NoError(t, e.UpdateDocument(docJSON))
	assert.Equal(t, `["some-id"]`, e.GetSelection())

	require.NoError(t, e.LoadDocument(docJSON))
	assert.Equal(t, "null", e.GetSelection())
}

func TestEngineLoadDocumentRejectsBadJSON(t *testing.T) {
	e := NewEngine()
	assert.Error(t, e.LoadDocument("{"))
	assert.Error(t, e.UpdateDocument("not a document"))
}

func TestEngineCoordinateQueries(t *testing.T) {
	e := NewEngine()
	e.SetViewport(0, 0, 800, 600)
	e.SetView(2, 50, -30)

	var screen Point
	require.NoError(t, json.Unmarshal([]byte(e.WorldToScreenPoint(123, 456)), &screen))
	var world Point
	require.NoError(t, json.Unmarshal([]byte(e.ScreenToWorldPoint(screen.X, screen.Y)), &world))

	assert.InDelta(t, 123, world.X, 1e-9)
	assert.InDelta(t, 456, world.Y, 1e-9)
}

func TestEngineSelectionBounds(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_test")

	assert.Equal(t, RectToJSON(Rect{}), e.GetSelectionBounds())

	var doc struct {
		Root struct {
			ID string `json:"id"`
		} `json:"root"`
	}
	require.NoError(t, json.Unmarshal([]byte(e.GetDocument()), &doc))

	e.SetSelection([]string{doc.Root.ID})
	var bounds Rect
	require.NoError(t, json.Unmarshal([]byte(e.GetSelectionBounds()), &bounds))
	assert.Greater(t, bounds.Width, 0.0)
	assert.Greater(t, bounds.Height, 0.0)
}

func TestEngineControlPointQuery(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("proj_test")

	var doc struct {
		Relationships []struct {
			ID string `json:"id"`
		} `json:"relationships"`
	}
	require.NoError(t, json.Unmarshal([]byte(e.GetDocument()), &doc))
	require.Len(t, doc.Relationships, 1)

	// Without a selected relationship no handle is hittable anywhere.
	var bounds Rect
	require.NoError(t, json.Unmarshal([]byte(e.GetMapBounds()), &bounds))
	for x := bounds.X; x <= bounds.X+bounds.Width; x += 25 {
		for y := bounds.Y; y <= bounds.Y+bounds.Height; y += 25 {
			assert.Equal(t, "null", e.HitTestControlPoint(x, y))
		}
	}

	relID := doc.Relationships[0].ID
	e.SetSelectedRelationship(relID)

	// Probe the selected curve's first control handle directly.
	scene := e.currentScene()
	rel := e.doc.Relationships[0]
	from := scene.ResolveNode(rel.FromID)
	to := scene.ResolveNode(rel.ToID)
	require.NotNil(t, from)
	require.NotNil(t, to)

	curve := CurveBetween(
		Point{X: from.CenterX(), Y: from.CenterY()},
		Point{X: to.CenterX(), Y: to.CenterY()},
		rel,
	)
	hit := e.HitTestControlPoint(curve.Control1.X, curve.Control1.Y)
	assert.Contains(t, hit, relID)
	assert.Contains(t, hit, `"index":1`)
}
