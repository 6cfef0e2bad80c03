package engine

import "github.com/mindloom/mindloom/backend-go/internal/document"

// Scene is the evaluated, render-ready geometry of a mind map for one
// layout pass: the main rendered tree, one rendered tree per floating
// topic, and the relationship list the hit tester reads. A scene is built
// atomically and treated as immutable by every reader; the next layout pass
// replaces it wholesale.
type Scene struct {
	Root     *RenderedNode
	Floating []*RenderedNode

	Relationships []document.Relationship

	// SelectedRelationship gates control-handle hit testing: handles are
	// only interactive while their curve is selected.
	SelectedRelationship string

	// Labels caches relationship label anchor positions. It is owned and
	// written by the presentation layer; the scene only reads it and must
	// tolerate it being empty or partially populated.
	Labels map[string]Point
}

// BuildScene lays out the whole document: the main tree with the document's
// structure style, every floating topic as its own radial tree anchored at
// its stored position.
func BuildScene(doc *document.MindMap, cfg Config) *Scene {
	scene := &Scene{
		Labels: make(map[string]Point),
	}
	if doc == nil {
		return scene
	}

	scene.Root = Layout(doc.Root, doc.Structure, cfg)
	for _, topic := range doc.FloatingTopics {
		if rendered := LayoutFloating(topic, cfg); rendered != nil {
			scene.Floating = append(scene.Floating, rendered)
		}
	}
	scene.Relationships = doc.Relationships
	return scene
}

// ResolveNode finds the rendered node for a topic id, searching the main
// tree first and then the floating trees. Returns nil when the id is not in
// the current geometry.
func (s *Scene) ResolveNode(id string) *RenderedNode {
	if found := FindNode(s.Root, id); found != nil {
		return found
	}
	for _, topic := range s.Floating {
		if found := FindNode(topic, id); found != nil {
			return found
		}
	}
	return nil
}

// Bounds returns the bounding box of everything in the scene, for
// zoom-to-fit and minimap framing.
func (s *Scene) Bounds() Rect {
	nodes := AllNodes(s.Root)
	for _, topic := range s.Floating {
		nodes = append(nodes, AllNodes(topic)...)
	}
	return NodesBounds(nodes)
}
