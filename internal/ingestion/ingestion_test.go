package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTextNormalizesLineEndingsAndSpaces(t *testing.T) {
	input := "Jane  Smith\r\nSoftware   Engineer\rSan Francisco"

	got := CleanText(input)

	assert.Equal(t, "Jane Smith\nSoftware Engineer\nSan Francisco", got, "CRLF and CR should become LF and space runs should collapse")
}

func TestCleanTextCollapsesBlankLineRuns(t *testing.T) {
	input := "SKILLS\n\n\n\nPython, Go\n\n\nEXPERIENCE"

	got := CleanText(input)

	assert.Equal(t, "SKILLS\n\nPython, Go\n\nEXPERIENCE", got, "runs of blank lines should collapse to a single blank line")
}

func TestCleanTextPreservesBulletsAndIndentation(t *testing.T) {
	input := "Responsibilities:\n  - Build   APIs\n  • Review  code"

	got := CleanText(input)

	assert.Equal(t, "Responsibilities:\n  - Build APIs\n  • Review code", got, "bullet markers and indentation should survive cleaning")
}

func TestCleanTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""), "empty input should stay empty")
	assert.Equal(t, "", CleanText("  \n\t\n  "), "whitespace-only input should clean to empty")
}

func TestDetectFormatByExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     Format
	}{
		{"resume.txt", FormatText},
		{"resume.md", FormatText},
		{"Resume.PDF", FormatPDF},
		{"resume.docx", FormatDocx},
	}

	for _, tc := range cases {
		got, err := DetectFormat(tc.filename)
		require.NoError(t, err, "format should be detected for %s", tc.filename)
		assert.Equal(t, tc.want, got, "wrong format for %s", tc.filename)
	}
}

func TestDetectFormatRejectsUnknownExtension(t *testing.T) {
	_, err := DetectFormat("resume.odt")

	require.Error(t, err, "unknown extension should be rejected")
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported, "error should be an UnsupportedFormatError")
	assert.Equal(t, ".odt", unsupported.Extension, "error should carry the offending extension")
}

func TestExtractDocumentTextPlainTextPassthrough(t *testing.T) {
	got, err := ExtractDocumentText("resume.txt", []byte("Jane Smith\nEngineer"))

	require.NoError(t, err, "plain text extraction should not fail")
	assert.Equal(t, "Jane Smith\nEngineer", got, "text bytes should pass through unchanged")
}

func TestExtractDocumentTextCorruptPDF(t *testing.T) {
	_, err := ExtractDocumentText("resume.pdf", []byte("not a pdf"))

	require.Error(t, err, "corrupt pdf bytes should fail decoding")
	var decode *DecodeError
	require.ErrorAs(t, err, &decode, "error should be a DecodeError")
	assert.Equal(t, FormatPDF, decode.Format, "decode error should name the pdf format")
	assert.NotNil(t, errors.Unwrap(decode), "decode error should wrap the underlying cause")
}

func TestIngestFileReadsAndCleansText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane  Smith\r\n\r\n\r\nEngineer\r\n"), 0o644))

	text, meta, err := IngestFile(path)

	require.NoError(t, err, "ingesting a text file should succeed")
	assert.Equal(t, "Jane Smith\n\nEngineer", text, "text should be cleaned on ingest")
	require.NotNil(t, meta, "metadata should accompany the text")
	assert.Equal(t, path, meta.Source, "metadata should record the source path")
	assert.Equal(t, 3, meta.WordCount, "metadata should count words in the cleaned text")
	assert.Len(t, meta.Hash, 64, "hash should be a sha256 hex digest")
}

func TestIngestFileMissingFile(t *testing.T) {
	_, _, err := IngestFile(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err, "missing file should return an error")
	assert.Contains(t, err.Error(), "file not found", "error should say the file was not found")
}

func TestMetadataHashIsDeterministic(t *testing.T) {
	a := NewMetadata("same content", "a.txt")
	b := NewMetadata("same content", "b.txt")

	assert.Equal(t, a.Hash, b.Hash, "hash should depend only on content")

	jsonBytes, err := a.ToJSON()
	require.NoError(t, err, "metadata should marshal to JSON")
	assert.Contains(t, string(jsonBytes), a.Hash, "serialized metadata should include the hash")
}
