package cli

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/envprof/pkg/ui"
)

//go:embed help/*.md
var helpTopics embed.FS

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: "Read long-form help on templates, profiles, and hooks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names, err := topicNames()
				if err != nil {
					return err
				}
				fmt.Println("Available topics:")
				for _, name := range names {
					fmt.Printf("  %s\n", name)
				}
				return nil
			}

			content, err := helpTopics.ReadFile("help/" + args[0] + ".md")
			if err != nil {
				return fmt.Errorf("unknown topic %q; run `envprof topics` for the list", args[0])
			}
			fmt.Print(renderMarkdown(string(content)))
			return nil
		},
	}
}

func topicNames() ([]string, error) {
	entries, err := helpTopics.ReadDir("help")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// renderMarkdown renders a topic with glamour, falling back to the
// raw markdown when the terminal cannot take styling or rendering
// fails.
func renderMarkdown(content string) string {
	if ui.DetectFormat(os.Stdout) == ui.FormatText {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
