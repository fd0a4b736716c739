package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/envprof/pkg/types"
)

// ConsoleMessenger emits user-facing messages to stderr, styled with
// pterm when the terminal supports it.
type ConsoleMessenger struct {
	out   io.Writer
	plain bool
}

// NewConsoleMessenger builds a messenger writing to stderr, dropping
// styling when stderr is not a capable terminal.
func NewConsoleMessenger() *ConsoleMessenger {
	return &ConsoleMessenger{
		out:   os.Stderr,
		plain: DetectFormat(os.Stderr) == FormatText,
	}
}

// NewPlainMessenger builds an unstyled messenger for an arbitrary
// writer.
func NewPlainMessenger(w io.Writer) *ConsoleMessenger {
	return &ConsoleMessenger{out: w, plain: true}
}

var _ types.Messenger = (*ConsoleMessenger)(nil)

func (m *ConsoleMessenger) Info(format string, args ...interface{}) {
	if m.plain {
		fmt.Fprintf(m.out, format+"\n", args...)
		return
	}
	pterm.Info.WithWriter(m.out).Printfln(format, args...)
}

func (m *ConsoleMessenger) Warning(format string, args ...interface{}) {
	if m.plain {
		fmt.Fprintf(m.out, "warning: "+format+"\n", args...)
		return
	}
	pterm.Warning.WithWriter(m.out).Printfln(format, args...)
}

func (m *ConsoleMessenger) Error(format string, args ...interface{}) {
	if m.plain {
		fmt.Fprintf(m.out, "error: "+format+"\n", args...)
		return
	}
	pterm.Error.WithWriter(m.out).Printfln(format, args...)
}
