package typeid

import (
	"fmt"

	"go.jetify.com/typeid"
)

const (
	PrefixUser         = "user"
	PrefixProject      = "proj"
	PrefixSnapshot     = "snap"
	PrefixOp           = "op"
	PrefixNode         = "node"
	PrefixTopic        = "topic"
	PrefixRelationship = "rel"
	PrefixSummary      = "sum"
	PrefixAsset        = "asset"
)

func New(prefix string) string {
	id := typeid.Must(typeid.WithPrefix(prefix))
	return id.String()
}

func NewUserID() string         { return New(PrefixUser) }
func NewProjectID() string      { return New(PrefixProject) }
func NewSnapshotID() string     { return New(PrefixSnapshot) }
func NewOpID() string           { return New(PrefixOp) }
func NewNodeID() string         { return New(PrefixNode) }
func NewTopicID() string        { return New(PrefixTopic) }
func NewRelationshipID() string { return New(PrefixRelationship) }
func NewSummaryID() string      { return New(PrefixSummary) }
func NewAssetID() string        { return New(PrefixAsset) }

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.FromString(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
