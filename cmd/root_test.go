package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	tests := []struct {
		path []string
		use  string
	}{
		{path: []string{"board", "show"}, use: "show"},
		{path: []string{"board", "move"}, use: "move <item-id> [drop-target-id]"},
		{path: []string{"board", "reset"}, use: "reset"},
		{path: []string{"board", "history"}, use: "history"},
		{path: []string{"item", "show"}, use: "show <item-id>"},
		{path: []string{"workflow", "list"}, use: "list"},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			found, _, err := rootCmd.Find(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.use, found.Use)
		})
	}
}

func TestRootLaunchesTUIWithoutArgs(t *testing.T) {
	found, args, err := rootCmd.Find(nil)
	require.NoError(t, err)
	assert.Same(t, rootCmd, found)
	assert.Empty(t, args)
	assert.NotNil(t, rootCmd.RunE)
}
