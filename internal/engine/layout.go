package engine

import "github.com/mindloom/mindloom/backend-go/internal/document"

// Per-style placement constants.
const (
	rootWidthScale   = 1.5 // radial central topic box enlargement
	rootHeightScale  = 1.2
	fishboneRibGap   = 80  // vertical distance from the spine to a rib topic
	fishboneStepX    = 40  // grandchild diagonal step, horizontal
	fishboneStepY    = 35  // grandchild diagonal step, vertical
	fishboneScale    = 0.8 // grandchild box scale
	timelineSideGap  = 60  // alternating perpendicular offset for milestones
	timelineLeafGap  = 60  // first grandchild's perpendicular distance
	timelineLeafStep = 35  // per-grandchild perpendicular increment
)

// Layout converts a topic tree into a rendered tree using the given
// structure type. It is a pure function of its inputs: the same tree,
// structure, and config always produce identical geometry, and the document
// tree is never mutated. A childless or fully collapsed root yields a single
// rendered node with no children. Unknown structure values fall back to the
// radial mind-map style.
func Layout(root *document.Node, structure string, cfg Config) *RenderedNode {
	if root == nil {
		return nil
	}
	return layoutAt(root, structure, cfg, cfg.CenterX, cfg.CenterY, 0)
}

// LayoutFloating lays out a floating topic as its own miniature tree:
// radial structure, anchored at the topic's stored position, starting at
// level 1 so the topic itself gets non-root styling.
func LayoutFloating(topic *document.Node, cfg Config) *RenderedNode {
	if topic == nil {
		return nil
	}
	anchorX, anchorY := cfg.CenterX, cfg.CenterY
	if topic.Position != nil {
		anchorX, anchorY = topic.Position.X, topic.Position.Y
	}
	return layoutAt(topic, document.StructureMindMap, cfg, anchorX, anchorY, 1)
}

func layoutAt(root *document.Node, structure string, cfg Config, anchorX, anchorY float64, baseLevel int) *RenderedNode {
	switch structure {
	case document.StructureOrgChart, document.StructureTree:
		return layoutOrgChart(root, cfg, anchorX, anchorY, baseLevel)
	case document.StructureLogic:
		return layoutLogic(root, cfg, anchorX, anchorY, baseLevel)
	case document.StructureFishbone:
		return layoutFishbone(root, cfg, anchorX, anchorY, baseLevel)
	case document.StructureTimeline:
		return layoutTimeline(root, cfg, anchorX, anchorY, baseLevel, true)
	case document.StructureTimelineVertical:
		return layoutTimeline(root, cfg, anchorX, anchorY, baseLevel, false)
	default:
		return layoutMindMap(root, cfg, anchorX, anchorY, baseLevel)
	}
}

// newRendered creates a rendered node at the computed position, applying the
// source node's manual position override verbatim when present. Children are
// still positioned by the computed flow, so a dragged node's subtree keeps
// the pre-drag algorithmic anchor unless the children carry overrides too.
func newRendered(n *document.Node, x, y, w, h float64, level int, parent *RenderedNode) *RenderedNode {
	if n.Position != nil {
		x, y = n.Position.X, n.Position.Y
	}
	return &RenderedNode{
		Node:      n,
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
		Collapsed: n.Collapsed,
		Level:     level,
		Parent:    parent,
	}
}

// --- Radial (mind-map) ---

// layoutMindMap places the root at the anchor with an enlarged box and
// bisects its children: the first ceil(n/2) go right, the rest left. Deeper
// descendants keep the direction of their depth-1 ancestor.
func layoutMindMap(root *document.Node, cfg Config, anchorX, anchorY float64, baseLevel int) *RenderedNode {
	w, h := cfg.NodeWidth, cfg.NodeHeight
	if baseLevel == 0 {
		w *= rootWidthScale
		h *= rootHeightScale
	}
	rn := newRendered(root, anchorX-w/2, anchorY-h/2, w, h, baseLevel, nil)
	if rn.Collapsed || len(root.Children) == 0 {
		return rn
	}

	rightCount := (len(root.Children) + 1) / 2
	right := root.Children[:rightCount]
	left := root.Children[rightCount:]

	rightTotal := 0.0
	for _, c := range right {
		rightTotal += subtreeHeight(c, cfg)
	}
	leftTotal := 0.0
	for _, c := range left {
		leftTotal += subtreeHeight(c, cfg)
	}

	stackRadial(rn, right, +1, anchorX, anchorY-rightTotal/2, baseLevel+1, 1, cfg)
	stackRadial(rn, left, -1, anchorX, anchorY-leftTotal/2, baseLevel+1, 1, cfg)
	return rn
}

// stackRadial stacks children into vertical slots starting at slotTop. Each
// child is centered within its own subtree's slot, offset horizontally from
// the tree origin by one levelSpacing per depth step, and its children
// recurse into the same slot with the running cursor advanced by subtree
// height.
func stackRadial(parent *RenderedNode, children []*document.Node, dir float64, originX, slotTop float64, level, depth int, cfg Config) {
	cursor := slotTop
	for _, c := range children {
		h := subtreeHeight(c, cfg)
		cx := originX + dir*cfg.LevelSpacing*float64(depth)
		cy := cursor + h/2
		child := newRendered(c, cx-cfg.NodeWidth/2, cy-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, level, parent)
		parent.Children = append(parent.Children, child)
		if !child.Collapsed {
			stackRadial(child, c.Children, dir, originX, cursor, level+1, depth+1, cfg)
		}
		cursor += h
	}
}

// --- Org chart / tree ---

// layoutOrgChart is the top-down style: subtree widths are computed
// bottom-up first, then each child is centered in its width slot below the
// parent. The tree style reuses this placement verbatim.
func layoutOrgChart(root *document.Node, cfg Config, anchorX, anchorY float64, baseLevel int) *RenderedNode {
	widths := make(map[string]float64)
	buildWidthTable(root, cfg, widths)

	rn := newRendered(root, anchorX-cfg.NodeWidth/2, anchorY-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, baseLevel, nil)
	if !rn.Collapsed {
		placeOrgChildren(rn, root.Children, widths, baseLevel+1, cfg)
	}
	return rn
}

func placeOrgChildren(parent *RenderedNode, children []*document.Node, widths map[string]float64, level int, cfg Config) {
	if len(children) == 0 {
		return
	}
	total := 0.0
	for _, c := range children {
		total += widths[c.ID]
	}

	offset := 0.0
	for _, c := range children {
		w := widths[c.ID]
		x := parent.X - total/2 + offset + (w-cfg.NodeWidth)/2
		y := parent.Y + cfg.LevelSpacing
		child := newRendered(c, x, y, cfg.NodeWidth, cfg.NodeHeight, level, parent)
		parent.Children = append(parent.Children, child)
		if !child.Collapsed {
			placeOrgChildren(child, c.Children, widths, level+1, cfg)
		}
		offset += w
	}
}

// --- Logic (left-to-right) ---

// layoutLogic places the root left of the anchor and stacks all descendants
// rightward with the same subtree-height accounting as the radial style,
// without bisecting.
func layoutLogic(root *document.Node, cfg Config, anchorX, anchorY float64, baseLevel int) *RenderedNode {
	originX := anchorX - cfg.LevelSpacing
	rn := newRendered(root, originX-cfg.NodeWidth/2, anchorY-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, baseLevel, nil)
	if rn.Collapsed || len(root.Children) == 0 {
		return rn
	}

	total := 0.0
	for _, c := range root.Children {
		total += subtreeHeight(c, cfg)
	}
	stackRadial(rn, root.Children, +1, originX, anchorY-total/2, baseLevel+1, 1, cfg)
	return rn
}

// --- Fishbone ---

// layoutFishbone draws a horizontal spine with the head on the right.
// Immediate children alternate above/below the spine and march leftward by
// index; grandchildren step diagonally away from the spine in smaller
// boxes. The style only lays out two levels below the root; deeper
// descendants are not rendered.
func layoutFishbone(root *document.Node, cfg Config, anchorX, anchorY float64, baseLevel int) *RenderedNode {
	headX := anchorX + cfg.LevelSpacing
	rn := newRendered(root, headX-cfg.NodeWidth/2, anchorY-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, baseLevel, nil)
	if rn.Collapsed {
		return rn
	}

	for i, c := range root.Children {
		side := 1.0
		if i%2 == 0 {
			side = -1
		}
		cx := headX - float64(i+1)*cfg.LevelSpacing
		cy := anchorY + side*fishboneRibGap
		child := newRendered(c, cx-cfg.NodeWidth/2, cy-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, baseLevel+1, rn)
		rn.Children = append(rn.Children, child)
		if child.Collapsed {
			continue
		}

		gw := cfg.NodeWidth * fishboneScale
		gh := cfg.NodeHeight * fishboneScale
		for j, g := range c.Children {
			gx := child.CenterX() - fishboneStepX*float64(j+1)
			gy := child.CenterY() + side*fishboneStepY*float64(j+1)
			grand := newRendered(g, gx-gw/2, gy-gh/2, gw, gh, baseLevel+2, child)
			child.Children = append(child.Children, grand)
		}
	}
	return rn
}

// --- Timeline ---

// layoutTimeline places milestones at equal levelSpacing steps along the
// primary axis. Horizontal timelines alternate milestones above and below
// the axis; grandchildren extend perpendicular to it, on the side their
// parent sits. Like fishbone, only two levels below the root are laid out.
func layoutTimeline(root *document.Node, cfg Config, anchorX, anchorY float64, baseLevel int, horizontal bool) *RenderedNode {
	originX, originY := anchorX, anchorY
	if horizontal {
		originX -= cfg.LevelSpacing
	} else {
		originY -= cfg.LevelSpacing
	}
	rn := newRendered(root, originX-cfg.NodeWidth/2, originY-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, baseLevel, nil)
	if rn.Collapsed {
		return rn
	}

	for i, c := range root.Children {
		dir := 1.0
		if i%2 == 0 {
			dir = -1
		}

		var cx, cy float64
		if horizontal {
			cx = originX + float64(i+1)*cfg.LevelSpacing
			cy = originY + dir*timelineSideGap
		} else {
			cx = originX
			cy = originY + float64(i+1)*cfg.LevelSpacing
		}
		child := newRendered(c, cx-cfg.NodeWidth/2, cy-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, baseLevel+1, rn)
		rn.Children = append(rn.Children, child)
		if child.Collapsed {
			continue
		}

		for j, g := range c.Children {
			gx := child.CenterX()
			gy := child.CenterY()
			step := timelineLeafGap + timelineLeafStep*float64(j)
			if horizontal {
				gy += dir * step
			} else {
				gx += dir * step
			}
			grand := newRendered(g, gx-cfg.NodeWidth/2, gy-cfg.NodeHeight/2, cfg.NodeWidth, cfg.NodeHeight, baseLevel+2, child)
			child.Children = append(child.Children, grand)
		}
	}
	return rn
}
