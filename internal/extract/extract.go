// Package extract pulls plain text out of uploaded email documents. Parsing
// is a collaborator of the triage pipeline: whatever comes out feeds the same
// classification path as raw text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat marks uploads that are neither .txt nor .pdf. This is
// caller input error, reported as a rejection rather than classified.
var ErrUnsupportedFormat = errors.New("unsupported file format, use .txt or .pdf")

// FromUpload extracts the text content of an uploaded file, dispatching on
// the filename extension.
func FromUpload(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return strings.ToValidUTF8(string(data), ""), nil
	case ".pdf":
		return fromPDF(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, content); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return b.String(), nil
}
