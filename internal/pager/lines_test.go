package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single line no terminator", text: "a", want: []string{"a"}},
		{name: "trailing newline dropped", text: "a\nb\nc\n", want: []string{"a", "b", "c"}},
		{name: "no trailing newline", text: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "lone newline", text: "\n", want: []string{""}},
		{name: "blank lines kept", text: "a\n\nb\n\n", want: []string{"a", "", "b", ""}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "bare cr", text: "a\rb\r", want: []string{"a", "b"}},
		{name: "mixed terminators", text: "a\r\nb\rc\nd", want: []string{"a", "b", "c", "d"}},
		{name: "cr then lf pair counts once", text: "a\r\n\r\nb", want: []string{"a", "", "b"}},
		{name: "whitespace preserved", text: "  a \n\tb", want: []string{"  a ", "\tb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}
