// pkg/template/schema_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the structured TOML schema form of templates

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/envprof/pkg/errors"
)

const sampleSchema = `
[[variable]]
name = "EDITOR"
default = "vim"
required = true

[[variable]]
name = "API_KEY"
required = false

[[variable]]
name = "SEARCH_PATHS"
elements = ["bin", "local bin"]
required = true
`

func TestParseSchema(t *testing.T) {
	tmpl, err := ParseSchema(sampleSchema)
	require.NoError(t, err)

	assert.Equal(t, []string{"EDITOR", "API_KEY", "SEARCH_PATHS"}, tmpl.Names())
	assert.Equal(t, []string{"EDITOR", "SEARCH_PATHS"}, tmpl.RequiredNames())

	v, ok := tmpl.Lookup("SEARCH_PATHS")
	require.True(t, ok)
	assert.Equal(t, "bin local bin", v.Value)
}

func TestParseSchemaRendersLegacyForm(t *testing.T) {
	tmpl, err := ParseSchema(sampleSchema)
	require.NoError(t, err)

	want := "EDITOR=vim\n# API_KEY=\nSEARCH_PATHS=\"bin local bin\"\n"
	assert.Equal(t, want, tmpl.Render())
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"invalid toml", "[[variable]\nname=oops"},
		{"variable without name", "[[variable]]\ndefault = \"x\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchema(tt.text)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateParse))
		})
	}
}

func TestParseSchemaEmpty(t *testing.T) {
	tmpl, err := ParseSchema("")
	require.NoError(t, err)
	assert.Equal(t, 0, tmpl.Len())
}
