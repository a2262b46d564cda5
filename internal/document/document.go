// Package document defines the JSON document model produced by the scraper.
package document

import (
	"github.com/kbyung/stagMVP/internal/segment"
)

// Meta carries the descriptive fields of a document, everything except the
// scraped text itself. Empty values are serialized as empty strings, not
// rejected; upstream validation decides what is required.
type Meta struct {
	Name     string
	Type     string
	Link     string
	Issuer   string
	Resource string
}

// Record represents a single scraped document in its serialized form.
type Record struct {
	DocumentName   string       `json:"document_name"`
	DocumentType   string       `json:"document_type"`
	DocumentLink   string       `json:"document_link"`
	Issuer         string       `json:"issuer"`
	ResourceName   string       `json:"resource_name"`
	SectionContent string       `json:"section_content"`
	Content        ParagraphMap `json:"content"`
}

// Envelope is the top-level output shape: one company and its documents.
type Envelope struct {
	Company   string   `json:"company"`
	Documents []Record `json:"documents"`
}

// BuildRecord assembles a Record from metadata and raw text. The raw text
// is stored verbatim as section_content; its blank-line segments become the
// numbered content paragraphs, so content always re-derives from
// section_content.
func BuildRecord(meta Meta, rawText string) Record {
	return Record{
		DocumentName:   meta.Name,
		DocumentType:   meta.Type,
		DocumentLink:   meta.Link,
		Issuer:         meta.Issuer,
		ResourceName:   meta.Resource,
		SectionContent: rawText,
		Content:        NewParagraphMap(segment.Split(rawText)),
	}
}

// NewEnvelope wraps a single record in the company envelope. The issuer
// doubles as the company name, matching the output contract.
func NewEnvelope(issuer string, rec Record) Envelope {
	return Envelope{
		Company:   issuer,
		Documents: []Record{rec},
	}
}
