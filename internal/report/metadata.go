package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbyung/stagMVP/internal/segment"
)

// Metadata describes one scrape for the optional sidecar file. It records
// where the text came from and enough of a fingerprint to tell two scrapes
// of the same document apart.
type Metadata struct {
	ScrapeID       string   `json:"scrape_id"`                 // Unique ID for this scrape
	Source         string   `json:"source"`                    // URL or file path the text came from
	Kind           string   `json:"kind"`                      // Source kind (sec-remote, sec-local, pdf, website)
	Timestamp      string   `json:"timestamp"`                 // RFC3339 format
	Hash           string   `json:"hash"`                      // SHA256 hex digest of the extracted text
	Paragraphs     int      `json:"paragraphs"`                // Blank-line separated paragraph count
	Words          int      `json:"words"`                     // Whitespace separated word count
	ExtractedLinks []string `json:"extracted_links,omitempty"` // Same-site links found in the page
}

// NewMetadata creates a Metadata for the extracted text with the current
// timestamp and a fresh scrape ID.
func NewMetadata(content, source, kind string) *Metadata {
	return &Metadata{
		ScrapeID:   uuid.New().String(),
		Source:     source,
		Kind:       kind,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Paragraphs: len(segment.Split(content)),
		Words:      len(strings.Fields(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
