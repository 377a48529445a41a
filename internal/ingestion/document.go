package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies a supported document encoding.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
)

// UnsupportedFormatError is returned when a document cannot be decoded
// because its extension does not map to a supported format.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q for %s (want .txt, .pdf or .docx)", e.Extension, e.Filename)
}

// DecodeError is returned when a document claims a supported format but its
// bytes cannot be decoded.
type DecodeError struct {
	Filename string
	Format   Format
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document %s: %v", e.Format, e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DetectFormat maps a filename to its document format by extension.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text", ".md":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	default:
		return "", &UnsupportedFormatError{Filename: filename, Extension: ext}
	}
}

// ExtractDocumentText decodes raw document bytes into plain text based on the
// filename's extension. The returned text is not yet cleaned; callers pass it
// through CleanText before extraction.
func ExtractDocumentText(filename string, data []byte) (string, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatText:
		return string(data), nil
	case FormatPDF:
		text, err := extractPDFText(data)
		if err != nil {
			return "", &DecodeError{Filename: filename, Format: FormatPDF, Err: err}
		}
		return text, nil
	case FormatDocx:
		text, err := extractDocxText(data)
		if err != nil {
			return "", &DecodeError{Filename: filename, Format: FormatDocx, Err: err}
		}
		return text, nil
	}
	return "", &UnsupportedFormatError{Filename: filename}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// IngestFile reads a document from disk, decodes it to text, cleans it and
// returns the cleaned text with ingestion metadata.
func IngestFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	raw, err := ExtractDocumentText(path, data)
	if err != nil {
		return "", nil, err
	}

	cleaned := CleanText(raw)
	meta := NewMetadata(cleaned, path)
	return cleaned, meta, nil
}
