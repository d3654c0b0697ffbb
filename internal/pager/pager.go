package pager

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DefaultPageSize is the number of lines per chunk when none is configured.
const DefaultPageSize = 15

// ErrInvalidPageSize is returned when the page size is not positive.
var ErrInvalidPageSize = errors.New("page size must be a positive integer")

// StopReason records why paging ended.
type StopReason int

const (
	// StopExhausted means every line was shown.
	StopExhausted StopReason = iota
	// StopDeclined means the user answered anything other than "y", or input ended.
	StopDeclined
)

func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopDeclined:
		return "declined"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result summarizes one call to Page.
type Result struct {
	TotalLines int
	LinesShown int
	Chunks     int
	Prompts    int
	Reason     StopReason
}

// Pager writes text in chunks and prompts between them.
type Pager struct {
	out      io.Writer
	in       io.Reader
	pageSize int
	prompt   string
}

// Option configures a Pager.
type Option func(*Pager)

// WithOutput sets where lines and prompts are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Pager) { p.out = w }
}

// WithInput sets where prompt responses are read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(p *Pager) { p.in = r }
}

// WithPageSize sets the number of lines per chunk.
func WithPageSize(n int) Option {
	return func(p *Pager) { p.pageSize = n }
}

// WithPrompt sets the continuation prompt text.
func WithPrompt(prompt string) Option {
	return func(p *Pager) { p.prompt = prompt }
}

// New creates a Pager. It returns ErrInvalidPageSize if the configured page
// size is zero or negative.
func New(opts ...Option) (*Pager, error) {
	p := &Pager{
		out:      os.Stdout,
		in:       os.Stdin,
		pageSize: DefaultPageSize,
		prompt:   DefaultPrompt,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.pageSize <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPageSize, p.pageSize)
	}
	return p, nil
}

// PageSize returns the number of lines per chunk.
func (p *Pager) PageSize() int {
	return p.pageSize
}

// Page writes text one chunk at a time. After each chunk that is followed by
// more lines it prompts and continues only on an affirmative response.
//
// The returned Result is valid even when err is non-nil and reflects what was
// written before the failure.
func (p *Pager) Page(ctx context.Context, text string) (Result, error) {
	log := zerolog.Ctx(ctx)

	lines := SplitLines(text)
	res := Result{TotalLines: len(lines)}
	reader := bufio.NewReader(p.in)

	for len(lines) > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		n := min(p.pageSize, len(lines))
		chunk := lines[:n]
		lines = lines[n:]

		for _, line := range chunk {
			if _, err := io.WriteString(p.out, line+"\n"); err != nil {
				return res, fmt.Errorf("writing line %d: %w", res.LinesShown+1, err)
			}
			res.LinesShown++
		}
		res.Chunks++
		log.Debug().
			Int("chunk", res.Chunks).
			Int("lines", n).
			Int("remaining", len(lines)).
			Msg("chunk written")

		if len(lines) == 0 {
			break
		}

		answer, err := Confirm(p.out, reader, p.prompt)
		if err != nil {
			return res, err
		}
		res.Prompts++
		log.Debug().
			Str("response", answer.Response).
			Bool("accepted", answer.Accepted).
			Bool("closed", answer.Closed).
			Msg("prompt answered")

		if !answer.Accepted {
			res.Reason = StopDeclined
			return res, nil
		}
	}

	res.Reason = StopExhausted
	return res, nil
}

// Page writes text to os.Stdout in chunks of pageSize lines, reading
// responses from os.Stdin.
func Page(ctx context.Context, text string, pageSize int) error {
	p, err := New(WithPageSize(pageSize))
	if err != nil {
		return err
	}
	_, err = p.Page(ctx, text)
	return err
}
