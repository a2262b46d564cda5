package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbyung/stagMVP/internal/config"
	"github.com/kbyung/stagMVP/internal/document"
	"github.com/kbyung/stagMVP/internal/report"
	"github.com/kbyung/stagMVP/internal/source"
)

func readEnvelope(t *testing.T, path string) document.Envelope {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var env document.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestRun_SECRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Item 1. Business</p><p>Item 1A. Risk Factors</p></body></html>`))
	}))
	defer server.Close()

	dir := t.TempDir()
	req := &config.Request{
		Kind:         source.KindSECRemote,
		URL:          server.URL,
		DocumentName: "Apple 10-K",
		Issuer:       "Apple Inc.",
		OutDir:       dir,
	}

	outcome, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, filepath.Join(dir, "Apple_10-K.json"), outcome.OutputPath)
	assert.Equal(t, 2, outcome.Paragraphs)
	assert.Nil(t, outcome.EmbeddedError)
	assert.Empty(t, outcome.MetaPath)

	env := readEnvelope(t, outcome.OutputPath)
	assert.Equal(t, "Apple Inc.", env.Company)
	require.Len(t, env.Documents, 1)
	rec := env.Documents[0]
	assert.Equal(t, "Apple 10-K", rec.DocumentName)
	assert.Equal(t, "Raw Financials", rec.DocumentType)
	assert.Equal(t, "SEC", rec.ResourceName)
	assert.Equal(t, server.URL, rec.DocumentLink)
	assert.Equal(t, "Item 1. Business\n\nItem 1A. Risk Factors", rec.SectionContent)
	assert.Equal(t, []string{"Item 1. Business", "Item 1A. Risk Factors"}, rec.Content.Paragraphs())
}

func TestRun_WebsiteDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<p>Market commentary.</p>`))
	}))
	defer server.Close()

	dir := t.TempDir()
	req := &config.Request{
		Kind:         source.KindWebsite,
		URL:          server.URL,
		DocumentName: "Market Overview",
		Issuer:       "Example Corp",
		ResourceName: "Example News",
		OutDir:       dir,
	}

	outcome, err := Run(context.Background(), req)
	require.NoError(t, err)

	env := readEnvelope(t, outcome.OutputPath)
	rec := env.Documents[0]
	assert.Equal(t, "Market", rec.DocumentType)
	assert.Equal(t, "Example News", rec.ResourceName)
	assert.Equal(t, server.URL, rec.DocumentLink)
}

func TestRun_SECLocal_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msft 10-Q.html")
	html := `<html><body><p>Quarterly revenue.</p><p>Quarterly costs.</p></body></html>`
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))

	req := &config.Request{
		Kind:     source.KindSECLocal,
		FilePath: path,
		Issuer:   "Microsoft Corporation",
		OutDir:   dir,
	}

	outcome, err := Run(context.Background(), req)
	require.NoError(t, err)

	// Document name derives from the file basename without extension
	assert.Equal(t, filepath.Join(dir, "msft_10-Q.json"), outcome.OutputPath)

	env := readEnvelope(t, outcome.OutputPath)
	rec := env.Documents[0]
	assert.Equal(t, "msft 10-Q", rec.DocumentName)
	assert.Equal(t, "N/A", rec.DocumentLink)
	assert.Equal(t, "Quarterly revenue.\n\nQuarterly costs.", rec.SectionContent)
}

func TestRun_FetchErrorEmbedded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dir := t.TempDir()
	req := &config.Request{
		Kind:         source.KindSECRemote,
		URL:          server.URL,
		DocumentName: "Missing Filing",
		Issuer:       "Apple Inc.",
		OutDir:       dir,
	}

	outcome, err := Run(context.Background(), req)
	require.NoError(t, err, "HTML read failures become content, not run failures")
	require.NotNil(t, outcome.EmbeddedError)
	assert.Equal(t, source.ErrFetch, outcome.EmbeddedError.Kind)

	env := readEnvelope(t, outcome.OutputPath)
	rec := env.Documents[0]
	assert.Contains(t, rec.SectionContent, "Error: ")
	assert.Contains(t, rec.SectionContent, "404")
	assert.Equal(t, []string{rec.SectionContent}, rec.Content.Paragraphs())
}

func TestRun_FetchErrorStrict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	dir := t.TempDir()
	req := &config.Request{
		Kind:         source.KindSECRemote,
		URL:          server.URL,
		DocumentName: "Forbidden Filing",
		Issuer:       "Apple Inc.",
		OutDir:       dir,
		Strict:       true,
	}

	_, err := Run(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading source failed")
	assert.NoFileExists(t, filepath.Join(dir, "Forbidden_Filing.json"))
}

func TestRun_PDFErrorAborts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

	req := &config.Request{
		Kind:     source.KindPDF,
		FilePath: path,
		Issuer:   "Example Corp",
		OutDir:   dir,
	}

	_, err := Run(context.Background(), req)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "broken.json"))
}

func TestRun_InvalidRequest(t *testing.T) {
	req := &config.Request{
		Kind: source.KindWebsite,
		// URL deliberately missing
		DocumentName: "Doc",
		OutDir:       t.TempDir(),
	}

	_, err := Run(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL is required")
}

func TestRun_WithMetadataSidecar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<p>Market commentary for the quarter.</p>
			<a href="/archive">Archive</a>
		</body></html>`))
	}))
	defer server.Close()

	dir := t.TempDir()
	req := &config.Request{
		Kind:         source.KindWebsite,
		URL:          server.URL,
		DocumentName: "Market Overview",
		Issuer:       "Example Corp",
		OutDir:       dir,
		WithMetadata: true,
	}

	outcome, err := Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Market_Overview.meta.json"), outcome.MetaPath)

	data, err := os.ReadFile(outcome.MetaPath)
	require.NoError(t, err)
	var meta report.Metadata
	require.NoError(t, json.Unmarshal(data, &meta))

	assert.Equal(t, "website", meta.Kind)
	assert.Equal(t, server.URL, meta.Source)
	assert.Equal(t, 1, meta.Paragraphs)
	assert.Contains(t, meta.ExtractedLinks, server.URL+"/archive")
	assert.Len(t, meta.Hash, 64)
}
