package extract

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// markdownText strips Markdown syntax by walking the goldmark AST and
// keeping only the rendered text: headings, paragraphs, list items, and
// code block contents. Formatting markers and link targets are dropped.
func markdownText(data []byte) (string, error) {
	root := goldmark.DefaultParser().Parse(gtext.NewReader(data))

	var sb strings.Builder
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.(type) {
			case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
				sb.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(data))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteString("\n")
			}
		case *ast.FencedCodeBlock:
			writeLines(&sb, t.Lines(), data)
		case *ast.CodeBlock:
			writeLines(&sb, t.Lines(), data)
		case *ast.AutoLink:
			sb.Write(t.URL(data))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

func writeLines(sb *strings.Builder, lines *gtext.Segments, data []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(data))
	}
	sb.WriteString("\n")
}
