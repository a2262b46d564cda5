// Package pipeline provides the high-level orchestration for a scraping run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kbyung/stagMVP/internal/config"
	"github.com/kbyung/stagMVP/internal/document"
	"github.com/kbyung/stagMVP/internal/observability"
	"github.com/kbyung/stagMVP/internal/report"
	"github.com/kbyung/stagMVP/internal/source"
)

// Outcome summarizes a completed run for the caller.
type Outcome struct {
	OutputPath    string
	MetaPath      string        // Empty unless a metadata sidecar was written
	Paragraphs    int
	Words         int
	EmbeddedError *source.Error // Set when a read failure was stored as document content
}

// Run executes one scrape end to end: validate the request, read the
// source, build the document record, write the JSON output.
//
// A failed read does not always fail the run. HTML sources store the error
// text as the document content so a batch of scrapes still produces a file
// per document; PDF sources and strict mode abort instead.
func Run(ctx context.Context, req *config.Request) (*Outcome, error) {
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Step 1/4: Validating request...\n")
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	desc := req.Descriptor()

	fmt.Printf("Step 2/4: Reading source: %s...\n", desc.Location())
	res, rerr := source.Read(ctx, desc, req.ReadOptions())

	var text string
	var links []string
	var embedded *source.Error
	switch {
	case rerr == nil:
		text = res.Text
		links = res.Links
	case req.Strict:
		return nil, fmt.Errorf("reading source failed: %w", rerr)
	case desc.IsHTML():
		fmt.Printf("Warning: %v\n", rerr)
		fmt.Printf("Continuing with the error text as document content...\n")
		text = fmt.Sprintf("Error: %v", rerr)
		embedded = rerr
	default:
		// A PDF that cannot be read leaves nothing worth writing.
		return nil, fmt.Errorf("reading source failed: %w", rerr)
	}

	fmt.Printf("Step 3/4: Building document record...\n")
	rec := document.BuildRecord(document.Meta{
		Name:     req.DocumentName,
		Type:     req.DocumentType,
		Link:     req.Link(),
		Issuer:   req.Issuer,
		Resource: req.ResourceName,
	}, text)
	env := document.NewEnvelope(req.Issuer, rec)

	if req.Verbose {
		printer.PrintParagraphPreview(rec.Content.Paragraphs())
	}

	fmt.Printf("Step 4/4: Writing output JSON...\n")
	outPath, err := report.WriteEnvelope(req.OutDir, env)
	if err != nil {
		return nil, fmt.Errorf("writing output failed: %w", err)
	}

	outcome := &Outcome{
		OutputPath:    outPath,
		Paragraphs:    rec.Content.Len(),
		Words:         len(strings.Fields(text)),
		EmbeddedError: embedded,
	}

	if req.WithMetadata {
		meta := report.NewMetadata(text, desc.Location(), string(desc.Kind))
		meta.ExtractedLinks = links
		metaPath, merr := report.WriteMetadata(req.OutDir, req.DocumentName, meta)
		if merr != nil {
			fmt.Printf("Warning: Failed to write metadata sidecar: %v\n", merr)
		} else {
			outcome.MetaPath = metaPath
		}
	}

	if req.Verbose {
		printer.PrintScrapeSummary(&observability.Summary{
			Source:       desc.Location(),
			Kind:         string(desc.Kind),
			DocumentName: req.DocumentName,
			DocumentType: req.DocumentType,
			Issuer:       req.Issuer,
			Paragraphs:   outcome.Paragraphs,
			Words:        outcome.Words,
			OutputPath:   outcome.OutputPath,
			MetaPath:     outcome.MetaPath,
		})
	}

	return outcome, nil
}
