package document

import (
	"time"

	"github.com/mindloom/mindloom/backend-go/internal/typeid"
)

// NewSampleDocument builds the demo map shown in the playground: a product
// planning tree with a floating topic, a cross-tree relationship, and a
// summary bracket.
func NewSampleDocument(projectID string) *MindMap {
	now := time.Now().UTC().Format(time.RFC3339)

	rootID := typeid.NewNodeID()
	researchID := typeid.NewNodeID()
	designID := typeid.NewNodeID()
	buildID := typeid.NewNodeID()
	launchID := typeid.NewNodeID()
	interviewsID := typeid.NewNodeID()
	surveyID := typeid.NewNodeID()
	wireframesID := typeid.NewNodeID()
	prototypeID := typeid.NewNodeID()
	floatingID := typeid.NewTopicID()
	ideaID := typeid.NewNodeID()

	return &MindMap{
		Project: Project{
			ID:        projectID,
			Name:      "Product Plan",
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Root: &Node{
			ID:   rootID,
			Text: "Product Plan",
			Children: []*Node{
				{
					ID:      researchID,
					Text:    "Research",
					Markers: []string{"priority-1"},
					Children: []*Node{
						{ID: interviewsID, Text: "User interviews", Children: []*Node{}},
						{ID: surveyID, Text: "Survey", Children: []*Node{}},
					},
				},
				{
					ID:   designID,
					Text: "Design",
					Children: []*Node{
						{ID: wireframesID, Text: "Wireframes", Children: []*Node{}},
						{ID: prototypeID, Text: "Prototype", Children: []*Node{}},
					},
				},
				{
					ID:       buildID,
					Text:     "Build",
					Children: []*Node{},
				},
				{
					ID:       launchID,
					Text:     "Launch",
					Markers:  []string{"flag"},
					Children: []*Node{},
				},
			},
		},
		FloatingTopics: []*Node{
			{
				ID:       floatingID,
				Text:     "Parking lot",
				Position: &Position{X: 980, Y: 120},
				Children: []*Node{
					{ID: ideaID, Text: "Dark mode", Children: []*Node{}},
				},
			},
		},
		Relationships: []Relationship{
			{
				ID:        typeid.NewRelationshipID(),
				FromID:    prototypeID,
				ToID:      buildID,
				Label:     "feeds into",
				Curvature: 0.3,
			},
		},
		Summaries: []Summary{
			{
				ID:         typeid.NewSummaryID(),
				ParentID:   rootID,
				StartIndex: 0,
				EndIndex:   1,
				Text:       "Discovery",
			},
		},
		Structure: StructureMindMap,
		Theme:     "classic",
	}
}
