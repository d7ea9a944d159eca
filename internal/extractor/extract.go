// Package extractor turns statement files into plain text before the
// parsing core runs. It is a collaborator of the core, never the other
// way around: parsers only ever see the text produced here.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType rejects inputs the extractor cannot read; it is
// returned before the core is ever invoked.
var ErrUnsupportedType = errors.New("unsupported file type")

// FromFile dispatches on the file extension and returns the raw text
// for the parsing pipeline.
func FromFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		pages, err := ExtractText(path)
		if err != nil {
			return "", err
		}
		return strings.Join(pages, "\n"), nil
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading text file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w %q (supported: .pdf, .txt)", ErrUnsupportedType, filepath.Ext(path))
	}
}

// extractWithPdftotext shells out to poppler-utils as a fallback for
// PDFs the Go library cannot decode.
func extractWithPdftotext(filePath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %v", err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return strings.Split(text, "\f"), nil
}
