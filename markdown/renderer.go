package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mpawlowski/relay"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type ansiRenderer struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	accent    lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newRenderer(theme relay.Theme) *ansiRenderer {
	return &ansiRenderer{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		accent:    lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) render(source []byte, width int) string {
	p := goldmark.DefaultParser()
	doc := p.Parse(text.NewReader(source))

	var buf bytes.Buffer
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, &buf)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *ansiRenderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph:
		r.writeWrapped(buf, r.collectInline(n, source), width)
		blockGap(n, buf)

	case *ast.Heading:
		r.writeWrapped(buf, r.accent.Render(r.collectInline(n, source)), width)
		blockGap(n, buf)

	case *ast.FencedCodeBlock:
		if lang := string(n.Language(source)); lang != "" {
			buf.WriteString(r.muted.Render(lang))
			buf.WriteString("\n")
		}
		r.writeCodeLines(buf, n.Lines(), source)
		blockGap(n, buf)

	case *ast.CodeBlock:
		r.writeCodeLines(buf, n.Lines(), source)
		blockGap(n, buf)

	case *ast.List:
		r.renderList(n, source, width, buf, 0)
		blockGap(n, buf)

	case *ast.ThematicBreak:
		buf.WriteString("---\n")
		blockGap(n, buf)

	default:
		// Blockquotes and other unrecognized blocks: recurse into children.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderBlock(c, source, width, buf)
		}
	}
}

// blockGap writes the blank line between sibling blocks.
func blockGap(n ast.Node, buf *bytes.Buffer) {
	if n.NextSibling() != nil {
		buf.WriteString("\n")
	}
}

func (r *ansiRenderer) writeWrapped(buf *bytes.Buffer, content string, width int) {
	buf.WriteString(lipgloss.NewStyle().Width(width).Render(content))
	buf.WriteString("\n")
}

// writeCodeLines renders code block lines with a gutter, without reflow.
func (r *ansiRenderer) writeCodeLines(buf *bytes.Buffer, lines *text.Segments, source []byte) {
	gutter := r.muted.Render("│") + " "
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.WriteString(gutter + strings.TrimRight(string(line.Value(source)), "\n"))
		buf.WriteString("\n")
	}
}

func (r *ansiRenderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	ordered := node.IsOrdered()
	itemNum := 0

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		var marker string
		if ordered {
			itemNum++
			marker = fmt.Sprintf("%d. ", node.Start+itemNum-1)
		} else {
			marker = "- "
		}

		var itemBuf bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				itemBuf.WriteString(r.collectInline(in, source))
			case *ast.List:
				if itemBuf.Len() > 0 {
					r.writeListItem(buf, indent, marker, itemBuf.String(), width)
					itemBuf.Reset()
				}
				r.renderList(in, source, width, buf, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.renderBlock(ic, source, width, &itemBuf)
			}
		}

		if itemBuf.Len() > 0 {
			r.writeListItem(buf, indent, marker, itemBuf.String(), width)
		}
	}
}

// writeListItem writes a list item with continuation-line indentation.
func (r *ansiRenderer) writeListItem(buf *bytes.Buffer, indent, marker, content string, width int) {
	prefix := indent + marker
	itemWidth := width - len(prefix)
	if itemWidth < 10 {
		itemWidth = 10
	}
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	continuation := strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
		} else {
			buf.WriteString(continuation + line + "\n")
		}
	}
}

// collectInline recursively collects styled inline text from a node's children.
func (r *ansiRenderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *ansiRenderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.collectInline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		buf.WriteString(r.bold.Render(r.collectInline(n, source)))

	case *ast.Link:
		buf.WriteString(r.underline.Render(r.collectInline(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}
