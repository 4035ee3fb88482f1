package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainTextByMime(t *testing.T) {
	content, category := Extract([]byte("hello world"), "text/plain", "notes.txt")
	assert.Equal(t, "hello world", content)
	assert.Equal(t, CategoryDocuments, category)
}

func TestExtract_CodeByExtension(t *testing.T) {
	src := "package main\n\nfunc main() {}\n"
	content, category := Extract([]byte(src), "", "main.go")
	assert.Equal(t, src, content)
	assert.Equal(t, CategoryCode, category)
}

func TestExtract_UnknownDefaultsToText(t *testing.T) {
	content, category := Extract([]byte("mystery bytes"), "application/x-whatever", "blob.xyz")
	assert.Equal(t, "mystery bytes", content)
	assert.Equal(t, CategoryDocuments, category)
}

func TestExtract_InvalidUTF8Repaired(t *testing.T) {
	content, _ := Extract([]byte{0x68, 0x69, 0xff, 0xfe}, "text/plain", "x.txt")
	assert.Contains(t, content, "hi")
	assert.True(t, len(content) > 2)
}

func TestExtract_PdfAndImagePlaceholders(t *testing.T) {
	content, category := Extract([]byte("%PDF-1.4"), "application/pdf", "doc.pdf")
	assert.Contains(t, content, "PDF text extraction is not available")
	assert.Equal(t, CategoryDocuments, category)

	content, category = Extract([]byte{0x89, 0x50}, "image/png", "pic.png")
	assert.Contains(t, content, "Image OCR is not available")
	assert.Equal(t, CategoryImages, category)
}

func TestExtract_AudioPointsToVoiceEndpoint(t *testing.T) {
	content, category := Extract([]byte("RIFF"), "audio/wav", "clip.wav")
	assert.Contains(t, content, "voice transcription endpoint")
	assert.Equal(t, CategoryAudio, category)
}

func TestExtract_Docx(t *testing.T) {
	docx := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	content, category := Extract(docx, "", "report.docx")
	assert.Equal(t, CategoryDocuments, category)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", content)
}

func TestExtract_CorruptDocx(t *testing.T) {
	content, category := Extract([]byte("not a zip at all"), "", "broken.docx")
	assert.Contains(t, content, "Error extracting DOCX text")
	assert.Equal(t, CategoryDocuments, category)
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
