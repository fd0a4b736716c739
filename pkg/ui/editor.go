package ui

import (
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/envprof/pkg/errors"
	"github.com/arthur-debert/envprof/pkg/logging"
	"github.com/arthur-debert/envprof/pkg/types"
)

// fallbackEditor is used when neither VISUAL nor EDITOR is set.
const fallbackEditor = "vi"

// ExecEditor implements types.Editor by running the user's preferred
// editor ($VISUAL, then $EDITOR, then vi) attached to the terminal.
type ExecEditor struct{}

// NewExecEditor creates an editor launcher.
func NewExecEditor() *ExecEditor {
	return &ExecEditor{}
}

var _ types.Editor = (*ExecEditor)(nil)

// Open runs the editor on path and blocks until it exits.
func (e *ExecEditor) Open(path string) error {
	logger := logging.GetLogger("ui.editor")

	command := editorCommand()
	logger.Debug().Str("editor", command).Str("path", path).Msg("Opening editor")

	// VISUAL/EDITOR may carry arguments ("code --wait").
	parts := strings.Fields(command)
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrEditor, "editor %q failed", command)
	}
	return nil
}

func editorCommand() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return fallbackEditor
}
