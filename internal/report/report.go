package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbyung/stagMVP/internal/document"
	"github.com/kbyung/stagMVP/internal/schemas"
)

// OutputFileName returns the JSON file name for a document: spaces in the
// document name become underscores.
func OutputFileName(documentName string) string {
	return strings.ReplaceAll(documentName, " ", "_") + ".json"
}

// MetadataFileName returns the sidecar file name for a document.
func MetadataFileName(documentName string) string {
	return strings.ReplaceAll(documentName, " ", "_") + ".meta.json"
}

// WriteEnvelope serializes the envelope to <dir>/<name>.json with 4-space
// indentation and returns the written path. The file is named after the
// first document and replaced without confirmation if it already exists.
//
// The serialized bytes are checked against the embedded envelope schema
// before they reach disk. A document that fails validation aborts the
// write; problems running the validation itself only warn, so a broken
// schema never blocks output.
func WriteEnvelope(dir string, env document.Envelope) (string, error) {
	if dir == "" {
		dir = "."
	}
	if len(env.Documents) == 0 {
		return "", &Error{Path: dir, Message: "envelope has no documents"}
	}

	path := filepath.Join(dir, OutputFileName(env.Documents[0].DocumentName))

	data, err := json.MarshalIndent(env, "", "    ")
	if err != nil {
		return "", &Error{Path: path, Message: "failed to marshal document JSON", Cause: err}
	}

	if err := schemas.ValidateEnvelope(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return "", &Error{Path: path, Message: "output does not match the envelope schema", Cause: err}
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &Error{Path: dir, Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &Error{Path: path, Message: "failed to write output file", Cause: err}
	}

	return path, nil
}

// WriteMetadata writes the sidecar next to the document JSON and returns
// the written path.
func WriteMetadata(dir, documentName string, meta *Metadata) (string, error) {
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, MetadataFileName(documentName))

	data, err := meta.ToJSON()
	if err != nil {
		return "", &Error{Path: path, Message: "failed to marshal metadata", Cause: err}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &Error{Path: dir, Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &Error{Path: path, Message: "failed to write metadata file", Cause: err}
	}

	return path, nil
}
