package textutil

import "strings"

// Wrap splits text into lines of at most width characters, breaking on whitespace. A single word
// longer than width is kept on its own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var (
		lines         []string
		currentLine   []string
		currentLength int
	)
	for _, word := range words {
		if currentLength+len(word)+1 > width {
			if len(currentLine) > 0 {
				lines = append(lines, strings.Join(currentLine, " "))
				currentLine = []string{word}
				currentLength = len(word)
			} else {
				lines = append(lines, word)
			}
		} else {
			currentLine = append(currentLine, word)
			if currentLength == 0 {
				currentLength = len(word)
			} else {
				currentLength += len(word) + 1
			}
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}
	return lines
}

// Dedent removes the longest whitespace prefix shared by every non-blank line. Blank lines are
// reduced to empty lines and do not take part in computing the prefix.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")
	prefix := ""
	first := true
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = lead
			first = false
			continue
		}
		prefix = commonPrefix(prefix, lead)
	}
	if prefix == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

// Indent adds prefix to the beginning of every non-blank line.
func Indent(text, prefix string) string {
	if prefix == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
