package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProfileListing is the renderable view of a store listing.
type ProfileListing struct {
	Profiles []ProfileEntry `json:"profiles" yaml:"profiles"`
}

// ProfileEntry is one profile in a listing.
type ProfileEntry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ResolvedView is the renderable view of a resolved profile. The
// terminal format marks names in Required; the structured formats
// carry values only.
type ResolvedView struct {
	Profile   string            `json:"profile" yaml:"profile"`
	Variables map[string]string `json:"variables" yaml:"variables"`
	Order     []string          `json:"-" yaml:"-"`
	Required  map[string]bool   `json:"-" yaml:"-"`
}

// RenderProfileList writes a listing in the given format.
func RenderProfileList(w io.Writer, format Format, listing ProfileListing) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, listing)
	case FormatYAML:
		return renderYAML(w, listing)
	case FormatTerminal:
		if len(listing.Profiles) == 0 {
			fmt.Fprintln(w, MutedStyle.Render("No profiles found"))
			return nil
		}
		for _, p := range listing.Profiles {
			line := NameStyle.Render(p.Name)
			if p.Path != "" {
				line += "  " + MutedStyle.Render(p.Path)
			}
			fmt.Fprintln(w, line)
		}
		return nil
	default:
		for _, p := range listing.Profiles {
			fmt.Fprintln(w, p.Name)
		}
		return nil
	}
}

// RenderResolved writes a resolved profile in the given format. The
// text format emits shell-evalable `export K='V'` lines.
func RenderResolved(w io.Writer, format Format, view ResolvedView) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, view)
	case FormatYAML:
		return renderYAML(w, view)
	case FormatTerminal:
		fmt.Fprintln(w, TitleStyle.Render("Profile "+view.Profile))
		for _, name := range view.Order {
			label := NameStyle.Render(name)
			if view.Required[name] {
				label += RequiredStyle.Render("*")
			}
			fmt.Fprintf(w, "  %s=%s\n", label, view.Variables[name])
		}
		return nil
	default:
		for _, name := range view.Order {
			fmt.Fprintf(w, "export %s='%s'\n", name, shellEscape(view.Variables[name]))
		}
		return nil
	}
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// shellEscape makes a value safe inside single quotes.
func shellEscape(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
