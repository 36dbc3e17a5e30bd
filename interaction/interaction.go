// Package interaction reads confirmations from the user.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Prompter asks yes/no questions.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// NewPrompter returns a Prompter on stdin/stdout.
func NewPrompter() Prompter {
	return Prompter{In: os.Stdin, Out: os.Stdout}
}

// Interactive reports whether the prompter reads from a terminal.
func (p Prompter) Interactive() bool {
	f, ok := p.In.(*os.File)
	return ok && IsTerminal(f)
}

// Confirm prints message and returns true for y or yes. An empty answer or EOF is a no.
func (p Prompter) Confirm(message string) (bool, error) {
	return PromptYesNoWithIO(p.In, p.Out, message)
}

// PromptYesNoWithIO prints a confirmation prompt to out and reads the answer from in.
func PromptYesNoWithIO(in io.Reader, out io.Writer, message string) (bool, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	reader := bufio.NewReader(in)
	_, _ = fmt.Fprintf(out, "%s (y/N): ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	if errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(out)
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}
