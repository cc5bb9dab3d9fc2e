package bst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, Red},
		{"end", 1, Blue},
		{"below range", -3, Red},
		{"above range", 7, Blue},
		{"half", 0.5, Color{115, 81, 148, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, LerpColor(Red, Blue, tt.t))
		})
	}
}

func TestColorWithin(t *testing.T) {
	require.True(t, Blue.Within(Color{1, 120, 242, 255}, 1))
	require.False(t, Blue.Within(Color{2, 121, 241, 255}, 1))
}

func TestFadePriority(t *testing.T) {
	tree := New(DefaultParams())
	tree.Insert(1)
	n := tree.store.get(tree.Root())

	n.InsertHighlight = true
	n.TraversalHighlight = true
	tree.updateColors(0.1)
	require.Equal(t, Red, n.Color)

	n.Found = true
	n.FoundHold = 1
	tree.updateColors(0.1)
	require.Equal(t, Green, n.Color)

	n.Found = false
	n.TraversalHighlight = false
	tree.updateColors(0.1)
	require.Equal(t, Gold, n.Color)

	n.InsertHighlight = false
	tree.updateColors(0.1)
	require.True(t, n.Fading)
	require.Equal(t, Gold, n.FadeFrom)

	// Reasserting a flag cancels the fade.
	n.InsertHighlight = true
	tree.updateColors(0.1)
	require.False(t, n.Fading)
	require.Equal(t, Gold, n.Color)
}
