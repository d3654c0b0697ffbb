package pager

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultPrompt is written after every chunk that is followed by more lines.
const DefaultPrompt = "More?"

// PromptResult contains the result of a continuation prompt.
type PromptResult struct {
	// Accepted is true if the user typed "y" or "Y".
	Accepted bool
	// Closed is true if the input ended before a response was read.
	Closed bool
	// Response is the response line without its line terminator.
	Response string
}

// Confirm writes prompt to writer and reads one response line from reader.
//
// The same *bufio.Reader must be reused across prompts so that buffered
// responses are not lost between chunks. End of input without a response is
// reported as Closed and is not an error. A final response without a trailing
// newline is still evaluated.
func Confirm(writer io.Writer, reader *bufio.Reader, prompt string) (PromptResult, error) {
	if _, err := io.WriteString(writer, prompt); err != nil {
		return PromptResult{}, fmt.Errorf("writing prompt: %w", err)
	}

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return PromptResult{}, fmt.Errorf("reading response: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return PromptResult{Closed: true}, nil
	}

	input := strings.TrimRight(line, "\r\n")
	return PromptResult{
		Accepted: IsAffirmative(input),
		Response: input,
	}, nil
}

// IsAffirmative reports whether response permits the next chunk.
// Only exactly "y" and "Y" are affirmative; "yes" and " y" are not.
func IsAffirmative(response string) bool {
	return strings.EqualFold(response, "y")
}
