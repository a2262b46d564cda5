package pdf

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageSeparator joins the text of consecutive pages, so each page reads as
// its own paragraph downstream.
const PageSeparator = "\n\n"

// ExtractText returns the text content of a PDF file, page by page in page
// order. Pages with no text are skipped. A document that yields no text at
// all is an error: the caller cannot distinguish an image-only scan from a
// broken file, and neither produces a usable document.
func ExtractText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{
			Path:    path,
			Message: "failed to open file",
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", &Error{
			Path:    path,
			Message: "failed to parse PDF",
			Cause:   err,
		}
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		text := pageText(ctx, pageNr)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return "", &Error{
			Path:    path,
			Message: "no text content found in PDF",
		}
	}

	return strings.Join(pages, PageSeparator), nil
}

// pageText extracts the text shown by one page's content stream.
func pageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// stringLiteral matches PDF string literals in parentheses: (text here)
var stringLiteral = regexp.MustCompile(`\(([^)]*)\)`)

// textFromStream walks content stream operators and collects shown text.
// Tj, TJ and ' carry string payloads; Td, TD and T* only position the
// cursor and turn into separators.
func textFromStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			appendLiterals(&sb, line, "")
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			appendLiterals(&sb, line, "\n")
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return normalize(sb.String())
}

// appendLiterals decodes every string literal on the line and writes it,
// preceded by sep.
func appendLiterals(sb *strings.Builder, line []byte, sep string) {
	for _, m := range stringLiteral.FindAllSubmatch(line, -1) {
		text := decodeString(m[1])
		if text == "" {
			continue
		}
		sb.WriteString(sep)
		sb.WriteString(text)
	}
}

// decodeString resolves PDF string escape sequences, including octal codes.
func decodeString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for d := 0; d < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; d++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// normalize collapses whitespace runs to single spaces and drops
// non-printable glyphs left over from font encoding quirks.
func normalize(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
