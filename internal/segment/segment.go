// Package segment splits raw document text into paragraphs.
package segment

import "strings"

// Split divides raw text into paragraphs on blank lines. Each segment is
// trimmed and empty segments are dropped, so the result never contains
// empty strings and runs of three or more newlines cannot produce phantom
// paragraphs. CRLF line endings are normalized first so Windows-sourced
// text segments the same way.
func Split(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	parts := strings.Split(raw, "\n\n")
	paras := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		paras = append(paras, part)
	}
	return paras
}
