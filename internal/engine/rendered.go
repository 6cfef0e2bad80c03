package engine

import "github.com/mindloom/mindloom/backend-go/internal/document"

// RenderedNode is a topic's computed geometry for one layout pass. The tree
// is rebuilt wholesale on every pass; consumers re-resolve by source node id
// rather than holding onto stale pointers. Ownership flows parent → children;
// the Parent link is a non-owning back-reference for upward lookup only.
type RenderedNode struct {
	Node      *document.Node  // read-only back-reference to the source topic
	X         float64         // top-left, world coordinates
	Y         float64
	Width     float64
	Height    float64
	Collapsed bool
	Level     int // 0-based depth
	Parent    *RenderedNode
	Children  []*RenderedNode
}

// Bounds returns the node's box as a Rect.
func (rn *RenderedNode) Bounds() Rect {
	return Rect{X: rn.X, Y: rn.Y, Width: rn.Width, Height: rn.Height}
}

// CenterX returns the horizontal center of the node's box.
func (rn *RenderedNode) CenterX() float64 { return rn.X + rn.Width/2 }

// CenterY returns the vertical center of the node's box.
func (rn *RenderedNode) CenterY() float64 { return rn.Y + rn.Height/2 }

// AllNodes flattens a rendered tree into pre-order (parent before children).
func AllNodes(root *RenderedNode) []*RenderedNode {
	if root == nil {
		return nil
	}
	nodes := []*RenderedNode{root}
	for _, child := range root.Children {
		nodes = append(nodes, AllNodes(child)...)
	}
	return nodes
}

// FindNode returns the rendered node whose source node has the given id,
// searching pre-order. Ids are assumed unique, so the first match wins.
func FindNode(root *RenderedNode, id string) *RenderedNode {
	if root == nil {
		return nil
	}
	if root.Node != nil && root.Node.ID == id {
		return root
	}
	for _, child := range root.Children {
		if found := FindNode(child, id); found != nil {
			return found
		}
	}
	return nil
}

// NodesBounds returns the axis-aligned bounding box of a set of rendered
// nodes. Used for zoom-to-fit and minimap framing.
func NodesBounds(nodes []*RenderedNode) Rect {
	var result Rect
	first := true
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if first {
			result = n.Bounds()
			first = false
		} else {
			result = result.Union(n.Bounds())
		}
	}
	return result
}
