package typeid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesPrefix(t *testing.T) {
	cases := map[string]func() string{
		PrefixUser:         NewUserID,
		PrefixProject:      NewProjectID,
		PrefixSnapshot:     NewSnapshotID,
		PrefixNode:         NewNodeID,
		PrefixTopic:        NewTopicID,
		PrefixRelationship: NewRelationshipID,
		PrefixSummary:      NewSummaryID,
		PrefixAsset:        NewAssetID,
	}

	for prefix, gen := range cases {
		id := gen()
		assert.True(t, strings.HasPrefix(id, prefix+"_"), "id %q should start with %q", id, prefix)
		assert.NoError(t, Validate(id, prefix))
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewNodeID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestValidateRejects(t *testing.T) {
	assert.Error(t, Validate("garbage", PrefixNode))
	assert.Error(t, Validate(NewUserID(), PrefixNode))
}
