package engine

import "github.com/mindloom/mindloom/backend-go/internal/document"

// subtreeHeight returns the vertical span a node's visible subtree occupies
// in the radial and left-to-right styles. A collapsed or childless node
// takes one slot; otherwise the subtree is exactly as tall as its children
// stacked together, which is what keeps sibling subtrees from overlapping
// at any nesting depth.
func subtreeHeight(n *document.Node, cfg Config) float64 {
	if n.Collapsed || len(n.Children) == 0 {
		return cfg.NodeHeight + cfg.VerticalSpacing
	}
	total := 0.0
	for _, child := range n.Children {
		total += subtreeHeight(child, cfg)
	}
	return total
}

// buildWidthTable fills widths with the horizontal span of every subtree,
// keyed by node id, and returns the span for n. The top-down styles need a
// subtree's width before fixing its horizontal offset, so the whole table
// is built in one pass ahead of placement.
func buildWidthTable(n *document.Node, cfg Config, widths map[string]float64) float64 {
	if w, ok := widths[n.ID]; ok {
		return w
	}
	var w float64
	if n.Collapsed || len(n.Children) == 0 {
		w = cfg.NodeWidth + cfg.HorizontalSpacing
	} else {
		for _, child := range n.Children {
			w += buildWidthTable(child, cfg, widths)
		}
	}
	widths[n.ID] = w
	return w
}
