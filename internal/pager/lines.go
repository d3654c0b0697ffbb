package pager

// SplitLines splits text on "\n", "\r\n" and "\r".
// A terminator at the very end of text does not produce an empty trailing
// line, so "a\nb\n" and "a\nb" both yield ["a", "b"]. Empty text yields nil.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
