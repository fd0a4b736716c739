// pkg/profile/resolved_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs for schema loading)
// PURPOSE: Test the ResolvedProfile mapping and schema-backed resolvers

package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/envprof/pkg/config"
	"github.com/arthur-debert/envprof/pkg/filesystem"
	"github.com/arthur-debert/envprof/pkg/profile"
	"github.com/arthur-debert/envprof/pkg/store"
)

func TestResolvedProfileOrderAndOverwrite(t *testing.T) {
	h := newHarness(t, config.Config{Template: "b=2\na=1\n"})
	h.writeProfile(t, "demo", "a=9\n")

	resolved, err := h.resolver.Load("demo")
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, resolved.Names(), "template order is preserved")
	assert.Equal(t, []string{"a", "b"}, resolved.SortedNames())
	assert.Equal(t, []string{"b=2", "a=9"}, resolved.Environ())
}

func TestResolvedProfileEqual(t *testing.T) {
	h := newHarness(t, config.Config{Template: "a=1\nb=2\n"})
	h.writeProfile(t, "demo", "")

	first, err := h.resolver.Load("demo")
	require.NoError(t, err)
	second, err := h.resolver.Load("demo")
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.True(t, second.Equal(first))

	second.Set("a", "changed")
	assert.False(t, first.Equal(second))
}

func TestResolvedProfileMapIsCopy(t *testing.T) {
	h := newHarness(t, config.Config{Template: "a=1\n"})
	h.writeProfile(t, "demo", "")

	resolved, err := h.resolver.Load("demo")
	require.NoError(t, err)

	m := resolved.Map()
	m["a"] = "mutated"

	got, _ := resolved.Get("a")
	assert.Equal(t, "1", got)
}

func TestNewWithSchemaFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.toml")
	schema := `
[[variable]]
name = "EDITOR"
default = "vim"
required = true

[[variable]]
name = "API_KEY"
required = false
`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644))

	cfg := config.Config{AppName: "myapp", SchemaFile: schemaPath}
	st := store.NewWithFS("/etc/myapp", filesystem.NewMemory())
	r, err := profile.New(&cfg, st, profile.Collaborators{})
	require.NoError(t, err)

	assert.Equal(t, []string{"EDITOR", "API_KEY"}, r.Template().Names())
	assert.Equal(t, []string{"EDITOR"}, r.Template().RequiredNames())

	// Creation writes the rendered legacy form.
	_, err = r.Create("demo", nil)
	require.NoError(t, err)

	data, err := st.Read("demo")
	require.NoError(t, err)
	assert.Contains(t, string(data), "EDITOR=vim")
	assert.Contains(t, string(data), "# API_KEY=")
}

func TestNewWithMissingSchemaFile(t *testing.T) {
	cfg := config.Config{AppName: "myapp", SchemaFile: filepath.Join(t.TempDir(), "nope.toml")}
	st := store.NewWithFS("/etc/myapp", filesystem.NewMemory())

	_, err := profile.New(&cfg, st, profile.Collaborators{})
	require.Error(t, err)
}
