package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ttyPath is the controlling terminal used for responses when stdin carries
// the text being paged.
const ttyPath = "/dev/tty"

// openTTY opens the controlling terminal. Replaced in tests.
//
//nolint:gochecknoglobals // Test seam for terminal access
var openTTY = func() (io.ReadCloser, error) {
	return os.Open(ttyPath)
}

// promptStyle renders the continuation prompt on a terminal.
//
//nolint:gochecknoglobals // Style is immutable after init
var promptStyle = lipgloss.NewStyle().Reverse(true)

// promptInput returns the reader prompt responses are read from, and a
// function that releases it.
//
// When the text came from a piped or redirected stdin there is nothing left
// on stdin to answer with, so responses come from the controlling terminal if
// one can be opened. Otherwise stdin is used and its end of input declines.
func promptInput(stdin io.Reader, textFromStdin bool) (io.Reader, func()) {
	if !textFromStdin || isTerminal(stdin) {
		return stdin, func() {}
	}
	if _, ok := stdin.(*os.File); !ok {
		return stdin, func() {}
	}

	tty, err := openTTY()
	if err != nil {
		logger.Debug().Err(err).Str("path", ttyPath).Msg("no terminal for responses, using stdin")
		return stdin, func() {}
	}
	return tty, func() { _ = tty.Close() }
}

// renderPrompt styles prompt for display on a terminal. Non-terminal output
// gets the prompt verbatim.
func renderPrompt(prompt string, terminal bool) string {
	if !terminal || prompt == "" {
		return prompt
	}
	return promptStyle.Render(prompt)
}
