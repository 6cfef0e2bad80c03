package collab

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

// DocumentState holds the authoritative map state for a room
type DocumentState struct {
	mu        sync.RWMutex
	doc       *document.MindMap
	serverSeq int64
	dirty     bool
	opLog     []Operation // Operation history for persistence
}

// NewDocumentState creates a new document state from an initial document
func NewDocumentState(doc *document.MindMap) *DocumentState {
	return &DocumentState{
		doc:       doc,
		serverSeq: 0,
		opLog:     make([]Operation, 0),
	}
}

// GetDocument returns the current document (caller should not mutate)
func (ds *DocumentState) GetDocument() *document.MindMap {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.doc
}

// Dirty reports whether the document has changed since the last MarkSaved.
func (ds *DocumentState) Dirty() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.dirty
}

// MarkSaved clears the dirty flag after a successful snapshot write.
func (ds *DocumentState) MarkSaved() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.dirty = false
}

// ApplyOperation applies an operation to the document and returns the server sequence
func (ds *DocumentState) ApplyOperation(op Operation) (int64, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if err := ds.applyOperationLocked(op); err != nil {
		return 0, err
	}

	ds.serverSeq++
	ds.dirty = true
	ds.opLog = append(ds.opLog, op)

	return ds.serverSeq, nil
}

// applyOperationLocked applies the operation without locking (caller must hold lock)
func (ds *DocumentState) applyOperationLocked(op Operation) error {
	switch op.Type {
	case "node.create":
		return ds.applyNodeCreate(op)
	case "node.delete":
		return ds.applyNodeDelete(op)
	case "node.text":
		return ds.applyNodeText(op)
	case "node.move":
		return ds.applyNodeMove(op)
	case "node.collapse":
		return ds.applyNodeCollapse(op)
	case "node.marker":
		return ds.applyNodeMarker(op)
	case "topic.create":
		return ds.applyTopicCreate(op)
	case "topic.delete":
		return ds.applyTopicDelete(op)
	case "rel.create":
		return ds.applyRelationshipCreate(op)
	case "rel.delete":
		return ds.applyRelationshipDelete(op)
	case "rel.update":
		return ds.applyRelationshipUpdate(op)
	case "summary.create":
		return ds.applySummaryCreate(op)
	case "summary.delete":
		return ds.applySummaryDelete(op)
	case "map.structure":
		return ds.applyStructure(op)
	case "map.theme":
		return ds.applyTheme(op)
	case "project.rename":
		return ds.applyProjectRename(op)
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

func (ds *DocumentState) applyNodeCreate(op Operation) error {
	var node document.Node
	if err := json.Unmarshal(op.Node, &node); err != nil {
		return fmt.Errorf("invalid node: %w", err)
	}
	if node.Children == nil {
		node.Children = []*document.Node{}
	}

	parent := ds.doc.FindAnywhere(op.ParentID)
	if parent == nil {
		return fmt.Errorf("parent not found: %s", op.ParentID)
	}

	index := len(parent.Children)
	if op.Index != nil {
		index = *op.Index
	}
	document.InsertChild(parent, &node, index)
	return nil
}

func (ds *DocumentState) applyNodeDelete(op Operation) error {
	if op.TargetID == ds.doc.Root.ID {
		return fmt.Errorf("cannot delete root topic")
	}

	parent := ds.findParentAnywhere(op.TargetID)
	if parent == nil {
		return fmt.Errorf("node not found: %s", op.TargetID)
	}
	document.RemoveChild(parent, op.TargetID)
	return nil
}

func (ds *DocumentState) applyNodeText(op Operation) error {
	node := ds.doc.FindAnywhere(op.TargetID)
	if node == nil {
		return fmt.Errorf("node not found: %s", op.TargetID)
	}
	node.Text = op.Text
	return nil
}

func (ds *DocumentState) applyNodeMove(op Operation) error {
	node := ds.doc.FindAnywhere(op.TargetID)
	if node == nil {
		return fmt.Errorf("node not found: %s", op.TargetID)
	}

	if len(op.Position) == 0 || string(op.Position) == "null" {
		// Clearing the override returns the node to the layout flow
		node.Position = nil
		return nil
	}

	var pos document.Position
	if err := json.Unmarshal(op.Position, &pos); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	node.Position = &pos
	return nil
}

func (ds *DocumentState) applyNodeCollapse(op Operation) error {
	node := ds.doc.FindAnywhere(op.TargetID)
	if node == nil {
		return fmt.Errorf("node not found: %s", op.TargetID)
	}
	if op.Collapsed != nil {
		node.Collapsed = *op.Collapsed
	}
	return nil
}

func (ds *DocumentState) applyNodeMarker(op Operation) error {
	node := ds.doc.FindAnywhere(op.TargetID)
	if node == nil {
		return fmt.Errorf("node not found: %s", op.TargetID)
	}
	node.Markers = op.Markers
	return nil
}

func (ds *DocumentState) applyTopicCreate(op Operation) error {
	var node document.Node
	if err := json.Unmarshal(op.Node, &node); err != nil {
		return fmt.Errorf("invalid topic: %w", err)
	}
	if node.Position == nil {
		return fmt.Errorf("floating topic requires a position")
	}
	if node.Children == nil {
		node.Children = []*document.Node{}
	}
	ds.doc.FloatingTopics = append(ds.doc.FloatingTopics, &node)
	return nil
}

func (ds *DocumentState) applyTopicDelete(op Operation) error {
	for i, topic := range ds.doc.FloatingTopics {
		if topic.ID == op.TargetID {
			ds.doc.FloatingTopics = append(ds.doc.FloatingTopics[:i], ds.doc.FloatingTopics[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("floating topic not found: %s", op.TargetID)
}

func (ds *DocumentState) applyRelationshipCreate(op Operation) error {
	var rel document.Relationship
	if err := json.Unmarshal(op.Relationship, &rel); err != nil {
		return fmt.Errorf("invalid relationship: %w", err)
	}
	ds.doc.Relationships = append(ds.doc.Relationships, rel)
	return nil
}

func (ds *DocumentState) applyRelationshipDelete(op Operation) error {
	for i, rel := range ds.doc.Relationships {
		if rel.ID == op.TargetID {
			ds.doc.Relationships = append(ds.doc.Relationships[:i], ds.doc.Relationships[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("relationship not found: %s", op.TargetID)
}

func (ds *DocumentState) applyRelationshipUpdate(op Operation) error {
	var changes struct {
		Label     *string            `json:"label"`
		Curvature *float64           `json:"curvature"`
		Control1  *document.Position `json:"control1"`
		Control2  *document.Position `json:"control2"`
	}
	if err := json.Unmarshal(op.Changes, &changes); err != nil {
		return fmt.Errorf("invalid relationship changes: %w", err)
	}

	for i := range ds.doc.Relationships {
		if ds.doc.Relationships[i].ID != op.TargetID {
			continue
		}
		rel := &ds.doc.Relationships[i]
		if changes.Label != nil {
			rel.Label = *changes.Label
		}
		if changes.Curvature != nil {
			rel.Curvature = *changes.Curvature
		}
		if changes.Control1 != nil {
			rel.Control1 = changes.Control1
		}
		if changes.Control2 != nil {
			rel.Control2 = changes.Control2
		}
		return nil
	}
	return fmt.Errorf("relationship not found: %s", op.TargetID)
}

func (ds *DocumentState) applySummaryCreate(op Operation) error {
	var sum document.Summary
	if err := json.Unmarshal(op.Summary, &sum); err != nil {
		return fmt.Errorf("invalid summary: %w", err)
	}
	if ds.doc.FindAnywhere(sum.ParentID) == nil {
		return fmt.Errorf("summary parent not found: %s", sum.ParentID)
	}
	ds.doc.Summaries = append(ds.doc.Summaries, sum)
	return nil
}

func (ds *DocumentState) applySummaryDelete(op Operation) error {
	for i, sum := range ds.doc.Summaries {
		if sum.ID == op.TargetID {
			ds.doc.Summaries = append(ds.doc.Summaries[:i], ds.doc.Summaries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("summary not found: %s", op.TargetID)
}

func (ds *DocumentState) applyStructure(op Operation) error {
	switch op.Structure {
	case document.StructureMindMap, document.StructureOrgChart, document.StructureTree,
		document.StructureLogic, document.StructureFishbone,
		document.StructureTimeline, document.StructureTimelineVertical:
		ds.doc.Structure = op.Structure
		return nil
	}
	return fmt.Errorf("unknown structure: %s", op.Structure)
}

func (ds *DocumentState) applyTheme(op Operation) error {
	ds.doc.Theme = op.Theme
	return nil
}

func (ds *DocumentState) applyProjectRename(op Operation) error {
	ds.doc.Project.Name = op.Name
	return nil
}

// findParentAnywhere looks for the parent of a node in the main tree and in
// every floating topic's subtree.
func (ds *DocumentState) findParentAnywhere(id string) *document.Node {
	if parent := document.FindParent(ds.doc.Root, id); parent != nil {
		return parent
	}
	for _, topic := range ds.doc.FloatingTopics {
		if parent := document.FindParent(topic, id); parent != nil {
			return parent
		}
	}
	return nil
}

// GetServerTimestamp returns the current server timestamp
func GetServerTimestamp() int64 {
	return time.Now().UnixMilli()
}
