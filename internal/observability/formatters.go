// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxParagraphsToShow is the number of paragraphs previewed in verbose mode
	maxParagraphsToShow = 3
)

// Summary collects the facts of one completed scrape for display.
type Summary struct {
	Source       string // URL or file path the text came from
	Kind         string // Source kind (sec-remote, sec-local, pdf, website)
	DocumentName string
	DocumentType string
	Issuer       string
	Paragraphs   int
	Words        int
	OutputPath   string
	MetaPath     string // Empty when no sidecar was written
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScrapeSummary outputs a human-readable summary of a completed scrape.
func (p *Printer) PrintScrapeSummary(sum *Summary) {
	if sum == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:    %s\n", sum.Source))
	sb.WriteString(fmt.Sprintf("Kind:      %s\n", sum.Kind))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Document:  %s\n", sum.DocumentName))
	if sum.DocumentType != "" {
		sb.WriteString(fmt.Sprintf("Type:      %s\n", sum.DocumentType))
	}
	if sum.Issuer != "" {
		sb.WriteString(fmt.Sprintf("Issuer:    %s\n", sum.Issuer))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Paragraphs: %d\n", sum.Paragraphs))
	sb.WriteString(fmt.Sprintf("Words:      %d\n", sum.Words))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Output:    %s", sum.OutputPath))
	if sum.MetaPath != "" {
		sb.WriteString(fmt.Sprintf("\nMetadata:  %s", sum.MetaPath))
	}

	p.printBox("SCRAPE SUMMARY", sb.String())
}

// PrintParagraphPreview outputs the first few extracted paragraphs so a
// verbose run shows what the document actually contains.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintParagraphPreview(paragraphs []string) {
	if len(paragraphs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ NO PARAGRAPHS EXTRACTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d paragraphs:\n\n", len(paragraphs)))

	count := min(len(paragraphs), maxParagraphsToShow)
	for i := 0; i < count; i++ {
		text := paragraphs[i]
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(paragraphs) > maxParagraphsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more paragraphs", len(paragraphs)-maxParagraphsToShow))
	}

	p.printBox("EXTRACTED PARAGRAPHS", sb.String())
}
