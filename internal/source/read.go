package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/kbyung/stagMVP/internal/extract"
	"github.com/kbyung/stagMVP/internal/fetch"
	"github.com/kbyung/stagMVP/internal/pdf"
)

// Options configures a read. Zero values fall back to the per-site fetch
// defaults.
type Options struct {
	UserAgent    string // generic website fetches
	SECUserAgent string // SEC fetches; empty sends no User-Agent header
	Timeout      time.Duration
	UseBrowser   bool // re-render thin website content in a headless browser
	Verbose      bool
}

// Result carries everything a successful read produced.
type Result struct {
	Text  string   // Joined paragraph text, paragraphs separated by blank lines
	Links []string // Same-site links, populated for URL-backed HTML sources
}

// Read dispatches to the strategy for the descriptor's kind and returns the
// raw document text. Empty text with a nil error is a valid outcome for an
// HTML source with no paragraph tags.
func Read(ctx context.Context, desc Descriptor, opts *Options) (*Result, *Error) {
	if opts == nil {
		opts = &Options{}
	}

	switch desc.Kind {
	case KindSECRemote:
		return readSECRemote(ctx, desc.URL, opts)
	case KindSECLocal:
		return readSECLocal(desc.Path, opts)
	case KindPDF:
		return readPDF(desc.Path, opts)
	case KindWebsite:
		return readWebsite(ctx, desc.URL, opts)
	default:
		return nil, &Error{
			Kind:    ErrParse,
			Source:  desc.Location(),
			Message: fmt.Sprintf("unsupported source kind %q", desc.Kind),
		}
	}
}

// readSECRemote fetches a filing page. SEC fetches send no User-Agent
// unless one was configured.
func readSECRemote(ctx context.Context, urlStr string, opts *Options) (*Result, *Error) {
	fopts := fetch.SiteOptions(fetch.SiteSEC)
	fopts.UserAgent = opts.SECUserAgent
	if opts.Timeout > 0 {
		fopts.Timeout = opts.Timeout
	}

	if opts.Verbose {
		log.Printf("[VERBOSE] Fetching SEC filing: %s", urlStr)
	}

	result, err := fetch.URL(ctx, urlStr, fopts)
	if err != nil {
		return nil, &Error{Kind: ErrFetch, Source: urlStr, Message: "failed to fetch filing", Cause: err}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	paras, perr := extract.Paragraphs(result.HTML)
	if perr != nil {
		return nil, &Error{Kind: ErrParse, Source: urlStr, Message: "failed to extract paragraphs", Cause: perr}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted %d paragraphs", len(paras))
	}

	// Link extraction is best effort; a page without usable links still reads fine.
	links, _ := extract.Links(result.HTML, urlStr)

	return &Result{Text: extract.Join(paras), Links: links}, nil
}

// readSECLocal extracts paragraphs from a saved filing page, with the
// script/style and table attribute cleanup applied first.
func readSECLocal(path string, opts *Options) (*Result, *Error) {
	content, err := os.ReadFile(path)
	if err != nil {
		msg := "failed to read file"
		if os.IsNotExist(err) {
			msg = "file not found"
		}
		return nil, &Error{Kind: ErrFile, Source: path, Message: msg, Cause: err}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Read %d bytes from %s", len(content), path)
	}

	paras, perr := extract.CleanedParagraphs(string(content))
	if perr != nil {
		return nil, &Error{Kind: ErrParse, Source: path, Message: "failed to extract paragraphs", Cause: perr}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted %d paragraphs", len(paras))
	}

	return &Result{Text: extract.Join(paras)}, nil
}

// readPDF extracts page text from a local PDF.
func readPDF(path string, opts *Options) (*Result, *Error) {
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracting PDF text: %s", path)
	}

	text, err := pdf.ExtractText(path)
	if err != nil {
		kind := ErrParse
		msg := "failed to extract text"
		if errors.Is(err, fs.ErrNotExist) {
			kind = ErrFile
			msg = "file not found"
		}
		return nil, &Error{Kind: kind, Source: path, Message: msg, Cause: err}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	return &Result{Text: text}, nil
}

// readWebsite fetches a generic page with a browser-like User-Agent and an
// optional headless browser fallback for JavaScript-rendered sites.
func readWebsite(ctx context.Context, urlStr string, opts *Options) (*Result, *Error) {
	fopts := fetch.SiteOptions(fetch.SiteGeneric)
	if opts.UserAgent != "" {
		fopts.UserAgent = opts.UserAgent
	}
	if opts.Timeout > 0 {
		fopts.Timeout = opts.Timeout
	}

	if opts.Verbose {
		log.Printf("[VERBOSE] Fetching website: %s", urlStr)
	}

	result, err := fetch.URL(ctx, urlStr, fopts)
	if err != nil {
		return nil, &Error{Kind: ErrFetch, Source: urlStr, Message: "failed to fetch page", Cause: err}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	paras, perr := extract.Paragraphs(result.HTML)
	if perr != nil {
		return nil, &Error{Kind: ErrParse, Source: urlStr, Message: "failed to extract paragraphs", Cause: perr}
	}

	text := extract.Join(paras)
	html := result.HTML

	if opts.UseBrowser && fetch.ShouldRender(text) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(text), fetch.MinContentLength)
		}

		rendered, rerr := fetch.RenderSimple(ctx, urlStr, opts.Verbose)
		if rerr != nil {
			if opts.Verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", rerr)
			}
		} else if rparas, rperr := extract.Paragraphs(rendered); rperr == nil && len(rparas) > 0 {
			text = extract.Join(rparas)
			html = rendered
			if opts.Verbose {
				log.Printf("[VERBOSE] Browser extracted %d paragraphs", len(rparas))
			}
		}
	}

	// Links come from whichever HTML produced the text.
	links, _ := extract.Links(html, urlStr)

	return &Result{Text: text, Links: links}, nil
}
