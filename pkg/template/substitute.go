package template

import (
	"regexp"
	"strings"
)

// placeholderPattern matches `{{NAME}}` tokens. Only identifier-shaped
// names are candidates for substitution; other brace pairs are plain
// text.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Substitute replaces each {{NAME}} token in text with the value bound
// to NAME in placeholders. Unbound tokens are left verbatim: an
// application may legitimately want literal braces in a profile, so a
// missing binding is not an error.
func Substitute(text string, placeholders map[string]string) string {
	if len(placeholders) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := placeholders[name]; ok {
			return value
		}
		return token
	})
}

// SqueezeBlankLines collapses every run of blank lines to a single
// blank line. Substituting away an unset optional placeholder tends to
// leave gaps; this keeps the emitted profile tidy.
func SqueezeBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
