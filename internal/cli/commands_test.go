// internal/cli/commands_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test command registration and flag wiring

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasAllVerbs(t *testing.T) {
	root := NewRootCmd()

	want := []string{"create", "list", "load", "show", "edit", "delete", "path", "topics", "version"}
	got := make(map[string]bool)
	for _, cmd := range root.Commands() {
		got[cmd.Name()] = true
	}

	for _, name := range want {
		assert.True(t, got[name], "missing subcommand %q", name)
	}
}

func TestRootCommandFlags(t *testing.T) {
	root := NewRootCmd()

	for _, flag := range []string{"verbose", "app", "config-dir", "no-input"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing persistent flag %q", flag)
	}
}

func TestTopicsAreEmbedded(t *testing.T) {
	names, err := topicNames()
	require.NoError(t, err)

	assert.Contains(t, names, "templates")
	assert.Contains(t, names, "profiles")
	assert.Contains(t, names, "hooks")
}

func TestLoadCommandDefaultsToTextFormat(t *testing.T) {
	root := NewRootCmd()
	load, _, err := root.Find([]string{"load"})
	require.NoError(t, err)

	flag := load.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
}
