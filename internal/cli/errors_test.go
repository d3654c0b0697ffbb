package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/more/internal/cli"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: cli.ExitOK},
		{name: "plain error is failure", err: errors.New("boom"), want: cli.ExitFailure},
		{name: "usage exit error", err: &cli.ExitError{Code: cli.ExitUsage, Err: errors.New("bad flag")}, want: cli.ExitUsage},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("outer: %w", &cli.ExitError{Code: 7, Err: errors.New("inner")}),
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &cli.ExitError{Code: cli.ExitFailure, Err: inner}

	assert.Equal(t, "inner", err.Error())
	assert.ErrorIs(t, err, inner)
}
