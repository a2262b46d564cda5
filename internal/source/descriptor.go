// Package source reads raw document text from each supported source kind.
package source

// Kind identifies a document source strategy.
type Kind string

const (
	// KindSECRemote is an SEC filing fetched from EDGAR by URL
	KindSECRemote Kind = "sec-remote"
	// KindSECLocal is an SEC filing saved as a local HTML file
	KindSECLocal Kind = "sec-local"
	// KindPDF is a local PDF file
	KindPDF Kind = "pdf"
	// KindWebsite is a generic web page fetched by URL
	KindWebsite Kind = "website"
)

// Descriptor names one document source: a kind plus its URL or file path.
// Build one through the constructors and treat it as immutable.
type Descriptor struct {
	Kind Kind
	URL  string
	Path string
}

// SECRemote describes an SEC filing to fetch from a URL.
func SECRemote(url string) Descriptor {
	return Descriptor{Kind: KindSECRemote, URL: url}
}

// SECLocal describes an SEC filing saved as a local HTML file.
func SECLocal(path string) Descriptor {
	return Descriptor{Kind: KindSECLocal, Path: path}
}

// PDF describes a local PDF file.
func PDF(path string) Descriptor {
	return Descriptor{Kind: KindPDF, Path: path}
}

// Website describes a generic web page to fetch from a URL.
func Website(url string) Descriptor {
	return Descriptor{Kind: KindWebsite, URL: url}
}

// Location returns the URL or path the descriptor points at, whichever is
// set.
func (d Descriptor) Location() string {
	if d.URL != "" {
		return d.URL
	}
	return d.Path
}

// IsHTML reports whether the descriptor names an HTML-family source. The
// driver embeds read failures as document content for these, while PDF
// failures abort the run.
func (d Descriptor) IsHTML() bool {
	return d.Kind == KindSECRemote || d.Kind == KindSECLocal || d.Kind == KindWebsite
}
