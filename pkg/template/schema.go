package template

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/envprof/pkg/errors"
)

// schemaDocument is the structured authoring format for templates: a
// TOML file of [[variable]] tables. It maps onto the same model the
// legacy text format parses into, so the rest of the engine never
// cares which form a template was authored in.
//
//	[[variable]]
//	name = "EDITOR"
//	default = "vim"
//	required = true
type schemaDocument struct {
	Variables []schemaVariable `toml:"variable"`
}

type schemaVariable struct {
	Name     string   `toml:"name"`
	Default  string   `toml:"default"`
	Elements []string `toml:"elements"`
	Required bool     `toml:"required"`
}

// ParseSchema reads a structured TOML schema into a Template. Unlike
// the lenient legacy parser, malformed schema documents are an error:
// the file is explicitly machine-authored, so silence would hide
// mistakes. A variable may declare either a scalar `default` or an
// `elements` array; elements join with single spaces like a legacy
// array literal.
func ParseSchema(text string) (*Template, error) {
	var doc schemaDocument
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateParse, "invalid template schema")
	}

	t := &Template{index: make(map[string]int)}
	for i, sv := range doc.Variables {
		if sv.Name == "" {
			return nil, errors.Newf(errors.ErrTemplateParse, "variable %d in template schema has no name", i+1)
		}
		value := sv.Default
		if len(sv.Elements) > 0 {
			value = strings.Join(sv.Elements, " ")
		}
		v := Variable{
			Name:     sv.Name,
			Value:    value,
			Required: sv.Required,
			Line:     i + 1,
		}
		if at, seen := t.index[v.Name]; seen {
			v.Line = t.variables[at].Line
			t.variables[at] = v
			continue
		}
		t.index[v.Name] = len(t.variables)
		t.variables = append(t.variables, v)
	}
	return t, nil
}
