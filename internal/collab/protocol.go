package collab

import "encoding/json"

type Message struct {
	Type      string          `json:"type"`
	ProjectID string          `json:"projectId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

type PresencePayload struct {
	Cursor      *CursorPos `json:"cursor,omitempty"`
	Selection   []string   `json:"selection,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
}

type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

const (
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
	TypeError          = "error"

	// Connection
	TypeWelcome = "welcome"

	// Document sync
	TypeDocSync = "doc.sync"

	// Operation message types
	TypeOpSubmit    = "op.submit"
	TypeOpAck       = "op.ack"
	TypeOpNack      = "op.nack"
	TypeOpBroadcast = "op.broadcast"
)

// --- Operation Types ---

// Operation represents a single map mutation
type Operation struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	ClientSeq int64  `json:"clientSeq"`

	// Target node / topic / relationship / summary id
	TargetID string `json:"targetId,omitempty"`

	// For node.create / topic.create
	Node     json.RawMessage `json:"node,omitempty"`
	ParentID string          `json:"parentId,omitempty"`
	Index    *int            `json:"index,omitempty"`

	// For node.delete (undo data)
	PreviousNode  json.RawMessage `json:"previousNode,omitempty"`
	PreviousIndex *int            `json:"previousIndex,omitempty"`

	// For node.text
	Text         string `json:"text,omitempty"`
	PreviousText string `json:"previousText,omitempty"`

	// For node.move
	Position         json.RawMessage `json:"position,omitempty"`
	PreviousPosition json.RawMessage `json:"previousPosition,omitempty"`

	// For node.collapse
	Collapsed    *bool `json:"collapsed,omitempty"`
	PreviousBool *bool `json:"previousBool,omitempty"`

	// For node.marker
	Markers []string `json:"markers,omitempty"`

	// For rel.create / rel.update
	Relationship json.RawMessage `json:"relationship,omitempty"`
	Changes      json.RawMessage `json:"changes,omitempty"`

	// For summary.create
	Summary json.RawMessage `json:"summary,omitempty"`

	// For map.structure
	Structure         string `json:"structure,omitempty"`
	PreviousStructure string `json:"previousStructure,omitempty"`

	// For map.theme
	Theme string `json:"theme,omitempty"`

	// For project.rename
	Name         string `json:"name,omitempty"`
	PreviousName string `json:"previousName,omitempty"`
}

// OperationSubmitPayload is the payload for op.submit messages
type OperationSubmitPayload struct {
	Operation Operation `json:"operation"`
}

// OperationAckPayload is the payload for op.ack messages
type OperationAckPayload struct {
	OperationID     string `json:"operationId"`
	ServerSeq       int64  `json:"serverSeq"`
	ServerTimestamp int64  `json:"serverTimestamp"`
}

// OperationNackPayload is the payload for op.nack messages
type OperationNackPayload struct {
	OperationID string `json:"operationId"`
	Reason      string `json:"reason"`
}

// OperationBroadcastPayload is the payload for op.broadcast messages
type OperationBroadcastPayload struct {
	Operation Operation `json:"operation"`
	UserID    string    `json:"userId"`
	ServerSeq int64     `json:"serverSeq"`
}
