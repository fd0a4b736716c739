package types

import "io/fs"

// FS abstracts the filesystem operations envprof performs so commands can be
// tested against an in-memory implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
}

// Prompter collects input from the user. Implementations may be interactive
// (terminal forms) or canned (tests). An empty string result with a nil error
// means the user declined to answer.
type Prompter interface {
	// Input asks for free text with an optional default.
	Input(prompt, defaultValue string) (string, error)

	// Select asks the user to pick one option from a non-empty list.
	Select(prompt string, options []string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(prompt string, defaultYes bool) (bool, error)
}

// Editor opens a file in the user's preferred text editor and blocks until
// the editor exits.
type Editor interface {
	Open(path string) error
}

// Messenger emits user-facing messages. Engine packages never print
// directly; all human-readable output flows through here so the CLI can
// style it and tests can capture it.
type Messenger interface {
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}
