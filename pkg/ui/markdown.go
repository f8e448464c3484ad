package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/textfilter/pkg/records"
	"github.com/charmbracelet/glamour"
)

// ruleMarkdown describes one rule as a markdown document
func ruleMarkdown(rec records.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", rec.Name)
	fmt.Fprintf(&b, "| field | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| flags | `%s` |\n", orDash(rec.Flags))
	fmt.Fprintf(&b, "| active | %t |\n", rec.Active)
	fmt.Fprintf(&b, "| filter links | %t |\n\n", rec.FilterLinks)
	fmt.Fprintf(&b, "## Pattern\n\n```\n%s\n```\n\n", rec.Source)
	fmt.Fprintf(&b, "## Replacement\n\n```\n%s\n```\n", rec.Replace)
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// renderMarkdown renders content for the terminal, falling back to the raw
// markdown if glamour fails
func renderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
