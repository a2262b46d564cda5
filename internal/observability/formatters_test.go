package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintScrapeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sum := &Summary{
		Source:       "https://www.sec.gov/Archives/aapl-10k.htm",
		Kind:         "sec-remote",
		DocumentName: "Apple 10-K",
		DocumentType: "Raw Financials",
		Issuer:       "Apple Inc.",
		Paragraphs:   42,
		Words:        1234,
		OutputPath:   "Apple_10-K.json",
	}

	p.PrintScrapeSummary(sum)
	output := buf.String()

	assert.Contains(t, output, "SCRAPE SUMMARY")
	assert.Contains(t, output, "sec-remote")
	assert.Contains(t, output, "Apple 10-K")
	assert.Contains(t, output, "Raw Financials")
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "Apple_10-K.json")
	assert.NotContains(t, output, "Metadata:")
}

func TestPrintScrapeSummary_WithMetadata(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sum := &Summary{
		Source:       "/reports/annual.pdf",
		Kind:         "pdf",
		DocumentName: "annual",
		Paragraphs:   3,
		Words:        100,
		OutputPath:   "annual.json",
		MetaPath:     "annual.meta.json",
	}

	p.PrintScrapeSummary(sum)
	output := buf.String()

	assert.Contains(t, output, "Metadata:")
	assert.Contains(t, output, "annual.meta.json")
}

func TestPrintScrapeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScrapeSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintParagraphPreview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParagraphPreview([]string{
		"Revenue increased ten percent year over year.",
		"Operating margin held steady at thirty percent.",
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PARAGRAPHS")
	assert.Contains(t, output, "Extracted 2 paragraphs")
	assert.Contains(t, output, "Revenue increased")
	assert.Contains(t, output, "Operating margin")
}

func TestPrintParagraphPreview_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	paras := []string{"one", "two", "three", "four", "five"}
	p.PrintParagraphPreview(paras)
	output := buf.String()

	assert.Contains(t, output, "... and 2 more paragraphs")
	assert.NotContains(t, output, "five")
}

func TestPrintParagraphPreview_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParagraphPreview(nil)
	output := buf.String()

	assert.Contains(t, output, "NO PARAGRAPHS EXTRACTED")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sum := &Summary{
		Source:       "https://www.sec.gov/Archives/edgar/data/320193/000032019324000123/aapl-20240928.htm",
		Kind:         "sec-remote",
		DocumentName: "A Very Long Document Name That Should Be Truncated To Fit The Box",
		OutputPath:   "out.json",
	}

	p.PrintScrapeSummary(sum)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
	assert.Contains(t, output, "...")
}
