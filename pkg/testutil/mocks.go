package testutil

import "fmt"

// ScriptedPrompter answers prompts from canned values.
type ScriptedPrompter struct {
	// InputValue is returned by Input; empty means the user declined.
	InputValue string

	// SelectValue is returned by Select. When empty, the first option
	// is returned instead.
	SelectValue string

	// ConfirmValue is returned by Confirm.
	ConfirmValue bool

	// Err, when set, is returned by every method.
	Err error

	// Prompts records every prompt text in call order.
	Prompts []string
}

func (p *ScriptedPrompter) Input(prompt, defaultValue string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)
	if p.Err != nil {
		return "", p.Err
	}
	if p.InputValue == "" {
		return defaultValue, nil
	}
	return p.InputValue, nil
}

func (p *ScriptedPrompter) Select(prompt string, options []string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)
	if p.Err != nil {
		return "", p.Err
	}
	if p.SelectValue == "" && len(options) > 0 {
		return options[0], nil
	}
	return p.SelectValue, nil
}

func (p *ScriptedPrompter) Confirm(prompt string, defaultYes bool) (bool, error) {
	p.Prompts = append(p.Prompts, prompt)
	if p.Err != nil {
		return false, p.Err
	}
	return p.ConfirmValue, nil
}

// CaptureMessenger records emitted messages for assertions.
type CaptureMessenger struct {
	Infos    []string
	Warnings []string
	Errors   []string
}

func (m *CaptureMessenger) Info(format string, args ...interface{}) {
	m.Infos = append(m.Infos, fmt.Sprintf(format, args...))
}

func (m *CaptureMessenger) Warning(format string, args ...interface{}) {
	m.Warnings = append(m.Warnings, fmt.Sprintf(format, args...))
}

func (m *CaptureMessenger) Error(format string, args ...interface{}) {
	m.Errors = append(m.Errors, fmt.Sprintf(format, args...))
}

// RecordingEditor records the paths it was asked to open.
type RecordingEditor struct {
	Opened []string
	Err    error
}

func (e *RecordingEditor) Open(path string) error {
	e.Opened = append(e.Opened, path)
	return e.Err
}
