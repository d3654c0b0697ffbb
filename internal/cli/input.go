package cli

import (
	"fmt"
	"io"
	"os"
)

// stdinName is both the source name reported for standard input and the
// file argument that selects it explicitly.
const stdinName = "-"

// Source is the text to page and where it came from.
type Source struct {
	Name      string
	Text      string
	FromStdin bool
}

// InputError reports a failure to open or read the text source.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	if e.Source == stdinName {
		return fmt.Sprintf("reading standard input: %v", e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// readInput reads the whole text source: stdin when args is empty or "-",
// otherwise the named file.
func readInput(stdin io.Reader, args []string) (Source, error) {
	if len(args) == 0 || args[0] == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Source{}, &InputError{Source: stdinName, Err: err}
		}
		return Source{Name: stdinName, Text: string(data), FromStdin: true}, nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &InputError{Source: path, Err: err}
	}
	return Source{Name: path, Text: string(data)}, nil
}
