package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Paragraphs returns the visible text of every paragraph tag in document
// order. Whitespace runs inside a tag collapse to single spaces; tags with
// no visible text are dropped.
func Paragraphs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	return paragraphsFrom(doc), nil
}

// CleanedParagraphs extracts paragraphs after a cleanup pass used for saved
// filing pages: script and style subtrees are removed entirely, and the
// presentational attributes border, cellspacing, cellpadding and width are
// stripped from table elements.
func CleanedParagraphs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	doc.Find("script, style").Remove()

	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range []string{"border", "cellspacing", "cellpadding", "width"} {
			s.RemoveAttr(attr)
		}
	})

	return paragraphsFrom(doc), nil
}

// paragraphsFrom walks every <p> element and collects its collapsed text.
func paragraphsFrom(doc *goquery.Document) []string {
	var paras []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := CollapseWhitespace(s.Text())
		if text == "" {
			return
		}
		paras = append(paras, text)
	})
	return paras
}

// CollapseWhitespace reduces every whitespace run to a single space and
// trims the ends. strings.Fields splits on unicode space, so non-breaking
// spaces from &nbsp; entities collapse too.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Join merges paragraphs into the canonical raw text form, one blank line
// between consecutive paragraphs.
func Join(paras []string) string {
	return strings.Join(paras, "\n\n")
}
