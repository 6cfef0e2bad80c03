package engine

import (
	"encoding/json"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

// connectorPadding keeps branch connectors and relationship curves anchored
// just outside a node's border.
const connectorPadding = 2

// DrawCommand represents a single drawing operation for the frontend to
// execute on its canvas. Commands are emitted in painter's order (back to
// front): summaries, then per-tree connectors and nodes, then relationship
// curves and labels on top.
type DrawCommand struct {
	Op string `json:"op"` // "summary", "connector", "node", "relationship", "label"
	ID string `json:"id,omitempty"`

	// Box ops ("node", "summary")
	X         float64       `json:"x,omitempty"`
	Y         float64       `json:"y,omitempty"`
	Width     float64       `json:"width,omitempty"`
	Height    float64       `json:"height,omitempty"`
	Level     int           `json:"level,omitempty"`
	Collapsed bool          `json:"collapsed,omitempty"`
	Text      string        `json:"text,omitempty"`
	Fill      string        `json:"fill,omitempty"`
	Stroke    string        `json:"stroke,omitempty"`
	TextColor string        `json:"textColor,omitempty"`
	Markers   []MarkerBadge `json:"markers,omitempty"`

	// Line ops ("connector", "relationship")
	From     *Point `json:"from,omitempty"`
	To       *Point `json:"to,omitempty"`
	Control1 *Point `json:"control1,omitempty"`
	Control2 *Point `json:"control2,omitempty"`

	Selected bool `json:"selected,omitempty"`
}

// MarkerBadge is a resolved marker glyph for a node badge.
type MarkerBadge struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// CompileDrawCommands flattens a scene into a draw command buffer.
func CompileDrawCommands(scene *Scene, doc *document.MindMap) []DrawCommand {
	if scene == nil || scene.Root == nil {
		return nil
	}

	theme := document.ThemeOrDefault("")
	if doc != nil {
		theme = document.ThemeOrDefault(doc.Theme)
	}

	var commands []DrawCommand
	if doc != nil {
		compileSummaries(scene, doc.Summaries, &commands)
	}
	compileTree(scene.Root, theme, &commands)
	for _, topic := range scene.Floating {
		compileTree(topic, theme, &commands)
	}
	compileRelationships(scene, &commands)
	return commands
}

// compileTree emits a node command for every rendered node and a connector
// from each parent's border to each child's border.
func compileTree(n *RenderedNode, theme document.ThemeStyle, commands *[]DrawCommand) {
	if n == nil {
		return
	}

	styleLevel := min(n.Level, 2)
	cmd := DrawCommand{
		Op:        "node",
		ID:        n.Node.ID,
		X:         n.X,
		Y:         n.Y,
		Width:     n.Width,
		Height:    n.Height,
		Level:     n.Level,
		Collapsed: n.Collapsed,
		Text:      n.Node.Text,
		Fill:      theme.Fill[styleLevel],
		Stroke:    theme.Stroke[styleLevel],
		TextColor: theme.Text[styleLevel],
	}
	for _, marker := range n.Node.Markers {
		if display, ok := document.Markers[marker]; ok {
			cmd.Markers = append(cmd.Markers, MarkerBadge{Glyph: display.Glyph, Color: display.Color})
		}
	}
	*commands = append(*commands, cmd)

	for _, child := range n.Children {
		from := NodeEdgePoint(n.CenterX(), n.CenterY(), n.Width/2, n.Height/2, child.CenterX(), child.CenterY(), connectorPadding)
		to := NodeEdgePoint(child.CenterX(), child.CenterY(), child.Width/2, child.Height/2, n.CenterX(), n.CenterY(), connectorPadding)
		*commands = append(*commands, DrawCommand{
			Op:   "connector",
			From: &from,
			To:   &to,
		})
		compileTree(child, theme, commands)
	}
}

// compileSummaries emits a bracket box around each summary's covered child
// subtrees. Summaries referencing missing parents or empty ranges are
// skipped.
func compileSummaries(scene *Scene, summaries []document.Summary, commands *[]DrawCommand) {
	for _, sum := range summaries {
		parent := scene.ResolveNode(sum.ParentID)
		if parent == nil || len(parent.Children) == 0 {
			continue
		}

		start := max(sum.StartIndex, 0)
		end := min(sum.EndIndex, len(parent.Children)-1)
		if start > end {
			continue
		}

		var covered []*RenderedNode
		for _, child := range parent.Children[start : end+1] {
			covered = append(covered, AllNodes(child)...)
		}
		bounds := NodesBounds(covered)
		if bounds.IsEmpty() {
			continue
		}

		*commands = append(*commands, DrawCommand{
			Op:     "summary",
			ID:     sum.ID,
			X:      bounds.X,
			Y:      bounds.Y,
			Width:  bounds.Width,
			Height: bounds.Height,
			Text:   sum.Text,
		})
	}
}

// compileRelationships emits the relationship curves and their labels.
// Curve endpoints are anchored at the node border via NodeEdgePoint so the
// curve meets the box edge regardless of aspect ratio; broken references
// are silently omitted.
func compileRelationships(scene *Scene, commands *[]DrawCommand) {
	for _, rel := range scene.Relationships {
		from := scene.ResolveNode(rel.FromID)
		to := scene.ResolveNode(rel.ToID)
		if from == nil || to == nil {
			continue
		}

		fromEdge := NodeEdgePoint(from.CenterX(), from.CenterY(), from.Width/2, from.Height/2, to.CenterX(), to.CenterY(), connectorPadding)
		toEdge := NodeEdgePoint(to.CenterX(), to.CenterY(), to.Width/2, to.Height/2, from.CenterX(), from.CenterY(), connectorPadding)
		curve := CurveBetween(fromEdge, toEdge, rel)

		selected := rel.ID == scene.SelectedRelationship
		*commands = append(*commands, DrawCommand{
			Op:       "relationship",
			ID:       rel.ID,
			From:     &curve.From,
			To:       &curve.To,
			Control1: &curve.Control1,
			Control2: &curve.Control2,
			Selected: selected,
		})

		label := rel.Label
		if label == "" {
			if !selected {
				continue
			}
			label = labelPlaceholder
		}
		pos, ok := scene.Labels[rel.ID]
		if !ok {
			pos = curve.Midpoint()
		}
		*commands = append(*commands, DrawCommand{
			Op:       "label",
			ID:       rel.ID,
			X:        pos.X,
			Y:        pos.Y,
			Text:     label,
			Selected: selected,
		})
	}
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// RectToJSON serializes a Rect to JSON.
func RectToJSON(r Rect) string {
	data, _ := json.Marshal(r)
	return string(data)
}
