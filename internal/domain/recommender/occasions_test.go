package recommender

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveStylesTableLookup(t *testing.T) {
	styles := resolveStyles([]string{"interview"})
	require.True(t, styles.has("formal"))
	require.True(t, styles.has("interview"))
}

func TestResolveStylesUnlistedOccasion(t *testing.T) {
	styles := resolveStyles([]string{"general"})
	require.True(t, styles.has("general"))
	require.Len(t, styles.sorted(), 1)
}

func TestResolveStylesUnion(t *testing.T) {
	styles := resolveStyles([]string{"office", "party"})
	require.True(t, styles.has("formal"))
	require.True(t, styles.has("semi-formal"))
	require.True(t, styles.has("party"))
	require.True(t, styles.has("office"))
}
