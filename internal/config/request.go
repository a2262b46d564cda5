package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbyung/stagMVP/internal/source"
)

// Metadata defaults applied per source kind, matching the interactive
// prompt flow.
const (
	TypeRawFinancials = "Raw Financials"
	TypeMarket        = "Market"
	ResourceSEC       = "SEC"
	LinkNotAvailable  = "N/A"
)

// Request describes one scraping run, fully resolved and validated before
// any extraction starts. Interactive prompts and command-line flags both
// produce this same struct, so the pipeline never touches stdin.
type Request struct {
	Kind source.Kind `json:"kind" validate:"required"`

	URL      string `json:"url,omitempty" validate:"omitempty,http_url"`
	FilePath string `json:"file_path,omitempty"`

	DocumentName string `json:"document_name,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	ResourceName string `json:"resource_name,omitempty"`

	OutDir       string `json:"out_dir,omitempty"`
	WithMetadata bool   `json:"with_metadata,omitempty"`
	UseBrowser   bool   `json:"use_browser,omitempty"`
	Strict       bool   `json:"strict,omitempty"`
	Verbose      bool   `json:"verbose,omitempty"`

	UserAgent    string        `json:"user_agent,omitempty"`
	SECUserAgent string        `json:"sec_user_agent,omitempty"`
	Timeout      time.Duration `json:"-"`
}

// ApplyDefaults fills unset metadata fields with the per-kind defaults.
// Local sources derive the document name from the file basename without
// its extension.
func (r *Request) ApplyDefaults() {
	switch r.Kind {
	case source.KindSECRemote:
		if r.DocumentType == "" {
			r.DocumentType = TypeRawFinancials
		}
		if r.ResourceName == "" {
			r.ResourceName = ResourceSEC
		}
	case source.KindSECLocal:
		if r.DocumentName == "" && r.FilePath != "" {
			r.DocumentName = baseName(r.FilePath)
		}
		if r.DocumentType == "" {
			r.DocumentType = TypeRawFinancials
		}
		if r.ResourceName == "" {
			r.ResourceName = ResourceSEC
		}
	case source.KindPDF:
		if r.DocumentName == "" && r.FilePath != "" {
			r.DocumentName = baseName(r.FilePath)
		}
	case source.KindWebsite:
		if r.DocumentType == "" {
			r.DocumentType = TypeMarket
		}
	}

	if r.OutDir == "" {
		r.OutDir = "."
	}
}

// Validate checks the request before any extraction runs. URL-backed kinds
// need a well-formed http(s) URL, file-backed kinds an existing regular
// file, and every kind a document name since it names the output file.
func (r *Request) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	switch r.Kind {
	case source.KindSECRemote, source.KindWebsite:
		if r.URL == "" {
			return fmt.Errorf("config error: a URL is required for %s sources", r.Kind)
		}
		if r.FilePath != "" {
			return fmt.Errorf("config error: 'url' and 'file_path' are mutually exclusive")
		}
	case source.KindSECLocal, source.KindPDF:
		if r.FilePath == "" {
			return fmt.Errorf("config error: a file path is required for %s sources", r.Kind)
		}
		if r.URL != "" {
			return fmt.Errorf("config error: 'url' and 'file_path' are mutually exclusive")
		}
		info, err := os.Stat(r.FilePath)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", r.FilePath)
		}
		if err != nil {
			return fmt.Errorf("config error: cannot stat %s: %w", r.FilePath, err)
		}
		if info.IsDir() {
			return fmt.Errorf("config error: %s is a directory", r.FilePath)
		}
	default:
		return fmt.Errorf("config error: unknown source kind %q", r.Kind)
	}

	if r.DocumentName == "" {
		return fmt.Errorf("config error: document name is required (it names the output file)")
	}
	if r.Timeout < 0 {
		return fmt.Errorf("config error: timeout must be non-negative")
	}

	return nil
}

// Descriptor converts the request into the source descriptor it names.
func (r *Request) Descriptor() source.Descriptor {
	switch r.Kind {
	case source.KindSECRemote:
		return source.SECRemote(r.URL)
	case source.KindSECLocal:
		return source.SECLocal(r.FilePath)
	case source.KindPDF:
		return source.PDF(r.FilePath)
	default:
		return source.Website(r.URL)
	}
}

// Link returns the document_link value: URL-backed kinds link to their
// URL, file-backed kinds serialize "N/A".
func (r *Request) Link() string {
	if r.URL != "" {
		return r.URL
	}
	return LinkNotAvailable
}

// ReadOptions translates the request's fetch knobs into source options.
func (r *Request) ReadOptions() *source.Options {
	return &source.Options{
		UserAgent:    r.UserAgent,
		SECUserAgent: r.SECUserAgent,
		Timeout:      r.Timeout,
		UseBrowser:   r.UseBrowser,
		Verbose:      r.Verbose,
	}
}

// baseName strips the directory and extension from a path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
