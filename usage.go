package cli

import (
	"fmt"
	"strings"

	"github.com/cmdtree/cli/pkg/textutil"
)

// Indentation of the entries of a titled group, and of the nested lines below a command word.
const (
	entryIndent  = "  "
	nestedIndent = "    "
)

// renderTemplate renders a usage template. A single-line template is trimmed and placed at
// firstIndent. For a multi-line template the first line is placed at firstIndent and the rest is
// dedented and re-indented at restIndent, so nested listings line up with the depth of the tree.
func renderTemplate(tmpl, firstIndent, restIndent string) string {
	head, rest, multiline := strings.Cut(tmpl, "\n")
	head = firstIndent + strings.TrimSpace(head)
	if !multiline {
		return head
	}
	rest = strings.TrimRight(textutil.Dedent(rest), " \t\n")
	if rest == "" {
		return head
	}
	return head + "\n" + textutil.Indent(rest, restIndent)
}

// LongUsage renders the node's listing: every group with its title, each leaf command with its
// usage block and each nested node with its short usage. Hidden children are left out.
func (n *Node[T]) LongUsage(indent string) string {
	return strings.Join(n.longUsage(indent), "\n")
}

func (n *Node[T]) longUsage(indent string) []string {
	width := 0
	for _, w := range n.visibleWords() {
		width = max(width, len(w))
	}

	var lines []string
	for _, g := range n.groups {
		var entries []string
		prefix := indent
		if g.Title != "" {
			prefix = indent + entryIndent
		}
		for _, b := range g.Bindings {
			entries = append(entries, b.Interpreter.usageEntry(b.Word, prefix, width)...)
		}
		for len(entries) > 0 && entries[len(entries)-1] == "" {
			entries = entries[:len(entries)-1]
		}
		if len(entries) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		if g.Title != "" {
			lines = append(lines, indent+g.Title+":")
		}
		lines = append(lines, entries...)
	}
	return lines
}

// ShortUsage renders one line per group listing its visible command words:
//
//	Tasks: add,list,remove
func (n *Node[T]) ShortUsage() []string {
	var lines []string
	for _, g := range n.groups {
		var words []string
		for _, b := range g.Bindings {
			if !b.Interpreter.hidden() {
				words = append(words, b.Word)
			}
		}
		if len(words) == 0 {
			continue
		}
		line := strings.Join(words, ",")
		if g.Title != "" {
			line = g.Title + ": " + line
		}
		lines = append(lines, line)
	}
	return lines
}

func (n *Node[T]) usageEntry(word, indent string, _ int) []string {
	if n.Hidden {
		return nil
	}
	lines := []string{indent + word}
	for _, l := range n.ShortUsage() {
		lines = append(lines, indent+nestedIndent+l)
	}
	return lines
}

func (c *Command[T]) usageEntry(word, indent string, width int) []string {
	first := fmt.Sprintf("%s%-*s ", indent, width, word)
	rest := indent + strings.Repeat(" ", width+1) + entryIndent
	lines := strings.Split(renderTemplate(c.Usage, first, rest), "\n")
	lines[0] = strings.TrimRight(lines[0], " ")
	// A blank line separates a command's block from the next entry.
	return append(lines, "")
}

// Help renders the text printed for a help request on this node, for a node reached through
// path.
func (n *Node[T]) Help(path string) string {
	return n.helpText(path)
}

func (n *Node[T]) helpText(path string) string {
	var b strings.Builder
	synopsis := "<command> [args...]"
	if n.Usage != "" {
		synopsis = renderTemplate(n.Usage, "", nestedIndent)
	}
	b.WriteString("Usage: " + joinNonEmpty(path, synopsis))
	if desc := strings.TrimSpace(textutil.Dedent(n.Description)); desc != "" {
		b.WriteString("\n\n" + wrapLines(desc, helpWidth))
	}
	if lines := n.longUsage(entryIndent); len(lines) > 0 {
		b.WriteString("\n\n" + strings.Join(lines, "\n"))
	}
	return b.String()
}

// helpWidth is the column at which long description lines are wrapped.
const helpWidth = 80

// wrapLines wraps every line of text longer than width, keeping the line's indentation on the
// continuation lines.
func wrapLines(text string, width int) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= width {
			out = append(out, line)
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		for _, w := range textutil.Wrap(line, max(width-len(lead), 1)) {
			out = append(out, lead+w)
		}
	}
	return strings.Join(out, "\n")
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
