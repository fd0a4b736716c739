// Package template parses default-profile templates and substitutes
// placeholders at profile creation time.
//
// A template is a block of shell-like assignment lines:
//
//	EDITOR=vim
//	PROJECT_DIR="$HOME/work"
//	# API_KEY=
//	PATHS=(bin sbin "local bin")
//
// Uncommented assignments declare required variables, commented ones
// declare optional variables. The text is never executed; parsing only
// recognizes assignment and array-literal syntax and skips everything
// else.
package template

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/envprof/pkg/logging"
)

// Variable is one declaration from a template, in the typed model the
// rest of the engine works with.
type Variable struct {
	// Name is the declared variable name.
	Name string

	// Value is the default value with quotes stripped. Array literals
	// resolve to their elements joined by single spaces.
	Value string

	// Required is true for uncommented declarations.
	Required bool

	// Line is the 1-based line of the first declaration of this name.
	Line int
}

// Template is an ordered set of variable declarations parsed from
// template text or a structured schema.
type Template struct {
	variables []Variable
	index     map[string]int
}

// assignmentPattern matches `name=value` with an optional comment
// marker in front. A line is commented only when `#` is the first
// non-whitespace character; an inline `#` inside a value is value text.
var assignmentPattern = regexp.MustCompile(`^(#\s*)?([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// Parse reads template text into the typed model. Lines that are not
// assignments (blank lines, prose comments, anything without a valid
// identifier before `=`) are skipped; they carry no variable
// information. Duplicate declarations collapse to one entry: the first
// occurrence fixes the position, the last one wins for value and
// required status.
func Parse(text string) *Template {
	logger := logging.GetLogger("template")

	t := &Template{index: make(map[string]int)}
	for i, line := range strings.Split(text, "\n") {
		m := assignmentPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		v := Variable{
			Name:     m[2],
			Value:    parseValue(m[3]),
			Required: m[1] == "",
			Line:     i + 1,
		}

		if at, seen := t.index[v.Name]; seen {
			logger.Trace().Str("name", v.Name).Int("line", v.Line).Msg("Duplicate declaration, last wins")
			v.Line = t.variables[at].Line
			t.variables[at] = v
			continue
		}
		t.index[v.Name] = len(t.variables)
		t.variables = append(t.variables, v)
	}

	logger.Trace().Int("variables", len(t.variables)).Msg("Parsed template")
	return t
}

// Names returns every declared variable name in declaration order,
// duplicates collapsed. Safe on a nil Template.
func (t *Template) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.variables))
	for _, v := range t.variables {
		names = append(names, v.Name)
	}
	return names
}

// RequiredNames returns the subset of Names declared uncommented, in
// the same order. RequiredNames is always a subset of Names.
func (t *Template) RequiredNames() []string {
	if t == nil {
		return nil
	}
	var names []string
	for _, v := range t.variables {
		if v.Required {
			names = append(names, v.Name)
		}
	}
	return names
}

// Lookup returns the declaration for name, if any.
func (t *Template) Lookup(name string) (Variable, bool) {
	if t == nil {
		return Variable{}, false
	}
	at, ok := t.index[name]
	if !ok {
		return Variable{}, false
	}
	return t.variables[at], true
}

// Variables returns the declarations in order. The returned slice is
// shared; callers must not modify it.
func (t *Template) Variables() []Variable {
	if t == nil {
		return nil
	}
	return t.variables
}

// Len returns the number of distinct declared variables.
func (t *Template) Len() int {
	if t == nil {
		return 0
	}
	return len(t.variables)
}

// Render emits the legacy text form of the template: required
// variables as `name=value`, optional ones as `# name=value`. Values
// containing whitespace are double-quoted.
func (t *Template) Render() string {
	if t == nil || len(t.variables) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range t.variables {
		if !v.Required {
			b.WriteString("# ")
		}
		b.WriteString(v.Name)
		b.WriteString("=")
		if strings.ContainsAny(v.Value, " \t") {
			b.WriteString(`"` + v.Value + `"`)
		} else {
			b.WriteString(v.Value)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// parseValue strips quoting from a raw value. Array literals resolve
// to their unquoted elements joined by single spaces, which is how the
// value ends up in an environment variable anyway.
func parseValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && raw[0] == '(' && raw[len(raw)-1] == ')' {
		return strings.Join(splitElements(raw[1:len(raw)-1]), " ")
	}
	return unquote(raw)
}

// unquote strips one level of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitElements splits array-literal contents on whitespace, keeping
// quoted elements (which may contain spaces) intact.
func splitElements(s string) []string {
	var (
		elems   []string
		current strings.Builder
		quote   rune
		inElem  bool
	)
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inElem = true
		case r == ' ' || r == '\t':
			if inElem {
				elems = append(elems, current.String())
				current.Reset()
				inElem = false
			}
		default:
			current.WriteRune(r)
			inElem = true
		}
	}
	if inElem {
		elems = append(elems, current.String())
	}
	return elems
}
