package document

// MindMap is the full mind-map document as exchanged with the frontend and
// stored in snapshots. The topic tree is nested JSON: each node embeds its
// children directly rather than referencing them by id.
type MindMap struct {
	Project        Project        `json:"project"`
	Root           *Node          `json:"root"`
	FloatingTopics []*Node        `json:"floatingTopics"`
	Relationships  []Relationship `json:"relationships"`
	Summaries      []Summary      `json:"summaries"`
	Structure      string         `json:"structure"`
	Theme          string         `json:"theme"`
}

type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Position is a point in world coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single topic. A nil Position means the node flows with the
// layout algorithm; a non-nil Position is a manual override (or, for a
// floating topic, its anchor). Content fields (markers, note, image) are
// opaque to the layout engine.
type Node struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Children  []*Node   `json:"children"`
	Position  *Position `json:"position,omitempty"`
	Collapsed bool      `json:"collapsed,omitempty"`
	Markers   []string  `json:"markers,omitempty"`
	Note      string    `json:"note,omitempty"`
	Image     string    `json:"image,omitempty"`
}

// Relationship is a labeled curved edge between two topic ids. It is
// independent of the tree: either endpoint may live in the main tree or in a
// floating topic's subtree.
type Relationship struct {
	ID        string    `json:"id"`
	FromID    string    `json:"fromId"`
	ToID      string    `json:"toId"`
	Label     string    `json:"label"`
	Curvature float64   `json:"curvature"`
	Control1  *Position `json:"control1,omitempty"` // offset from the source endpoint
	Control2  *Position `json:"control2,omitempty"` // offset from the target endpoint
}

// Summary is a grouping annotation spanning a contiguous range of a parent's
// children, rendered as a bracket with a caption.
type Summary struct {
	ID         string `json:"id"`
	ParentID   string `json:"parentId"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
	Text       string `json:"text"`
}

// Recognized structure type values. Unknown values fall back to mindmap.
const (
	StructureMindMap          = "mindmap"
	StructureOrgChart         = "orgchart"
	StructureTree             = "tree"
	StructureLogic            = "logic"
	StructureFishbone         = "fishbone"
	StructureTimeline         = "timeline"
	StructureTimelineVertical = "timeline-v"
)

// NewEmptyDocument creates a document with a single root topic.
func NewEmptyDocument(projectID, projectName, rootID string) *MindMap {
	return &MindMap{
		Project: Project{
			ID:        projectID,
			Name:      projectName,
			Version:   1,
			CreatedAt: "", // Will be set by caller
			UpdatedAt: "",
		},
		Root: &Node{
			ID:       rootID,
			Text:     "Central Topic",
			Children: []*Node{},
		},
		FloatingTopics: []*Node{},
		Relationships:  []Relationship{},
		Summaries:      []Summary{},
		Structure:      StructureMindMap,
		Theme:          "classic",
	}
}
