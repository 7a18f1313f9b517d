package recommender

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorDistanceIdentity(t *testing.T) {
	for name := range namedColors {
		require.Zero(t, colorDistance(name, name), name)
		require.True(t, colorsClose(name, name), name)
	}
}

func TestColorDistanceSymmetry(t *testing.T) {
	require.Equal(t, colorDistance("red", "blue"), colorDistance("blue", "red"))
	require.Equal(t, colorDistance("white", "black"), colorDistance("black", "white"))
}

func TestColorDistanceUsesLabScale(t *testing.T) {
	// White vs black spans the full lightness axis, which is delta 100 on
	// the conventional Lab scale the threshold is calibrated for.
	require.InDelta(t, 100.0, colorDistance("white", "black"), 1.0)
	require.Greater(t, colorDistance("blue", "black"), colorMatchThreshold)
}

func TestColorsCloseSeparatesDistinctHues(t *testing.T) {
	require.False(t, colorsClose("red", "blue"))
	require.False(t, colorsClose("white", "black"))
	require.False(t, colorsClose("yellow", "purple"))
}

func TestUnknownColorFallsBackToGray(t *testing.T) {
	require.Zero(t, colorDistance("taupe", "gray"))
	require.True(t, colorsClose("taupe", "chartreuse"))
	require.False(t, colorsClose("taupe", "white"))
}
