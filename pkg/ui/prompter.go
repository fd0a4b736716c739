package ui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/arthur-debert/envprof/pkg/types"
)

// TerminalPrompter implements types.Prompter with interactive terminal
// forms. Aborting a form (ctrl-c, esc) is a decline, not an error:
// Input and Select return an empty string, Confirm returns false.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a terminal-backed prompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

var _ types.Prompter = (*TerminalPrompter)(nil)

func (p *TerminalPrompter) Input(prompt, defaultValue string) (string, error) {
	value := defaultValue
	err := huh.NewInput().
		Title(prompt).
		Value(&value).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (p *TerminalPrompter) Select(prompt string, options []string) (string, error) {
	var value string
	err := huh.NewSelect[string]().
		Title(prompt).
		Options(huh.NewOptions(options...)...).
		Value(&value).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (p *TerminalPrompter) Confirm(prompt string, defaultYes bool) (bool, error) {
	value := defaultYes
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return value, nil
}
