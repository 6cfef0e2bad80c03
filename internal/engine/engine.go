package engine

import (
	"encoding/json"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

// Engine owns a snapshot of the mind-map document plus the view and
// selection state, and serves layout and hit-test queries to the frontend.
// The scene is rebuilt lazily: commands flip the dirty flag, the next query
// rebuilds. Every rebuild produces a complete new rendered tree; a previous
// scene is never patched in place.
type Engine struct {
	doc *document.MindMap
	cfg Config

	scene *Scene

	// View state
	zoom     float64
	panX     float64
	panY     float64
	viewport Viewport

	// Selection state
	selection            []string
	selectedRelationship string

	// Relationship label anchors, written by the presentation layer and
	// carried across rebuilds.
	labels map[string]Point

	dirty bool
}

// NewEngine creates a new engine instance.
func NewEngine() *Engine {
	return &Engine{
		cfg:    DefaultConfig(),
		zoom:   1,
		labels: make(map[string]Point),
		dirty:  true,
	}
}

// --- Commands (frontend → backend) ---

// LoadDocument loads a document from JSON, resetting selection and labels.
func (e *Engine) LoadDocument(jsonData string) error {
	var doc document.MindMap
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return err
	}

	e.doc = &doc
	e.selection = nil
	e.selectedRelationship = ""
	e.labels = make(map[string]Point)
	e.dirty = true
	return nil
}

// UpdateDocument reloads a document from JSON while preserving selection
// and label positions. Used when the document changes during editing (e.g.
// a collaborator's operation arriving).
func (e *Engine) UpdateDocument(jsonData string) error {
	var doc document.MindMap
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return err
	}

	e.doc = &doc
	e.dirty = true
	return nil
}

// LoadSampleDocument loads the built-in sample document.
func (e *Engine) LoadSampleDocument(projectID string) {
	e.doc = document.NewSampleDocument(projectID)
	e.selection = nil
	e.selectedRelationship = ""
	e.labels = make(map[string]Point)
	e.dirty = true
}

// SetStructure switches the diagram style.
func (e *Engine) SetStructure(structure string) {
	if e.doc == nil || e.doc.Structure == structure {
		return
	}
	e.doc.Structure = structure
	e.dirty = true
}

// SetLayoutConfig applies partial layout configuration overrides.
func (e *Engine) SetLayoutConfig(jsonData string) error {
	var overrides ConfigOverrides
	if err := json.Unmarshal([]byte(jsonData), &overrides); err != nil {
		return err
	}
	e.cfg = overrides.Apply(e.cfg)
	e.dirty = true
	return nil
}

// SetView updates zoom and pan. Layout geometry is world-space so this does
// not dirty the scene.
func (e *Engine) SetView(zoom, panX, panY float64) {
	e.zoom = zoom
	e.panX = panX
	e.panY = panY
}

// SetViewport updates the canvas rectangle used by the coordinate
// transforms.
func (e *Engine) SetViewport(x, y, width, height float64) {
	e.viewport = Viewport{X: x, Y: y, Width: width, Height: height}
}

// SetSelection sets the selected topic ids.
func (e *Engine) SetSelection(ids []string) {
	e.selection = ids
}

// SetSelectedRelationship sets (or clears, with "") the selected
// relationship.
func (e *Engine) SetSelectedRelationship(id string) {
	if e.selectedRelationship == id {
		return
	}
	e.selectedRelationship = id
	e.dirty = true
}

// SetRelationshipLabelPosition records where the presentation layer drew a
// relationship's label, for label hit testing.
func (e *Engine) SetRelationshipLabelPosition(relID string, x, y float64) {
	e.labels[relID] = Point{X: x, Y: y}
}

// --- Queries (frontend ← backend) ---

func (e *Engine) currentScene() *Scene {
	if e.dirty || e.scene == nil {
		e.scene = BuildScene(e.doc, e.cfg)
		e.scene.SelectedRelationship = e.selectedRelationship
		e.scene.Labels = e.labels
		e.dirty = false
	}
	return e.scene
}

// Render lays out the document and returns draw commands as JSON.
func (e *Engine) Render() string {
	if e.doc == nil {
		return "[]"
	}
	commands := CompileDrawCommands(e.currentScene(), e.doc)
	result, _ := DrawCommandsToJSON(commands)
	return result
}

// HitTestNode returns the id of the topmost topic at a world-space point,
// or empty string.
func (e *Engine) HitTestNode(x, y float64) string {
	if e.doc == nil {
		return ""
	}
	hit := e.currentScene().FindNodeAt(Point{X: x, Y: y})
	if hit == nil {
		return ""
	}
	return hit.Node.ID
}

// HitTestRelationship returns the id of the relationship curve at a
// world-space point, or empty string.
func (e *Engine) HitTestRelationship(x, y float64) string {
	if e.doc == nil {
		return ""
	}
	return e.currentScene().FindRelationshipAt(Point{X: x, Y: y})
}

// HitTestControlPoint returns the control handle at a world-space point as
// JSON ({"relationshipId": ..., "index": 1|2}), or "null".
func (e *Engine) HitTestControlPoint(x, y float64) string {
	if e.doc == nil {
		return "null"
	}
	hit, ok := e.currentScene().FindControlPointAt(Point{X: x, Y: y})
	if !ok {
		return "null"
	}
	data, _ := json.Marshal(map[string]interface{}{
		"relationshipId": hit.RelationshipID,
		"index":          hit.Index,
	})
	return string(data)
}

// HitTestRelationshipLabel returns the id of the relationship whose label
// box contains a world-space point, or empty string.
func (e *Engine) HitTestRelationshipLabel(x, y float64) string {
	if e.doc == nil {
		return ""
	}
	return e.currentScene().FindRelationshipLabelAt(Point{X: x, Y: y})
}

// ScreenToWorldPoint converts pointer coordinates using the current view
// state and returns JSON.
func (e *Engine) ScreenToWorldPoint(screenX, screenY float64) string {
	p := ScreenToWorld(screenX, screenY, e.viewport, e.zoom, e.panX, e.panY)
	data, _ := json.Marshal(p)
	return string(data)
}

// WorldToScreenPoint converts world coordinates using the current view
// state and returns JSON.
func (e *Engine) WorldToScreenPoint(worldX, worldY float64) string {
	p := WorldToScreen(worldX, worldY, e.viewport, e.zoom, e.panX, e.panY)
	data, _ := json.Marshal(p)
	return string(data)
}

// GetMapBounds returns the bounding box of the whole map as JSON, for
// zoom-to-fit and the minimap.
func (e *Engine) GetMapBounds() string {
	if e.doc == nil {
		return RectToJSON(Rect{})
	}
	return RectToJSON(e.currentScene().Bounds())
}

// GetSelectionBounds returns the combined bounding box of the selected
// topics as JSON.
func (e *Engine) GetSelectionBounds() string {
	if e.doc == nil || len(e.selection) == 0 {
		return RectToJSON(Rect{})
	}

	scene := e.currentScene()
	var nodes []*RenderedNode
	for _, id := range e.selection {
		if n := scene.ResolveNode(id); n != nil {
			nodes = append(nodes, n)
		}
	}
	return RectToJSON(NodesBounds(nodes))
}

// GetDocument returns the full document as JSON (for debugging/sync).
func (e *Engine) GetDocument() string {
	if e.doc == nil {
		return "{}"
	}
	data, _ := json.Marshal(e.doc)
	return string(data)
}

// GetSelection returns the current selection as JSON.
func (e *Engine) GetSelection() string {
	data, _ := json.Marshal(e.selection)
	return string(data)
}

// GetStructure returns the current structure type.
func (e *Engine) GetStructure() string {
	if e.doc == nil {
		return ""
	}
	return e.doc.Structure
}
