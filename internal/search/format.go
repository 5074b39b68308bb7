package search

import (
	"fmt"
	"strings"
)

// FormatGroups renders a response as readable text for the CLI and the
// MCP search tool.
func FormatGroups(resp *Response) string {
	if resp.TotalResults == 0 {
		return fmt.Sprintf("No results for %q.\n", resp.Query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching chunks across %d files for %q:\n\n",
		resp.TotalResults, resp.TotalFiles, resp.Query)

	for _, f := range resp.Files {
		fmt.Fprintf(&b, "%s (best match %.2f%%)", f.FileName, f.BestSimilarity)
		var tags []string
		if f.Topic != nil {
			tags = append(tags, "topic: "+*f.Topic)
		}
		if f.Project != nil {
			tags = append(tags, "project: "+*f.Project)
		}
		if len(tags) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(tags, ", "))
		}
		b.WriteString("\n")

		for _, c := range f.Chunks {
			fmt.Fprintf(&b, "  %.2f%%  %s\n", c.Similarity, snippet(c.Content, 160))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func snippet(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
