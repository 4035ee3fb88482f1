// Package extract turns uploaded files into prompt context text. Extraction
// never fails: anything unreadable degrades to a bracketed placeholder so
// the chat pipeline can keep going with whatever text is available.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// File categories.
const (
	CategoryDocuments = "documents"
	CategoryCode      = "code"
	CategoryImages    = "images"
	CategoryAudio     = "audio"
)

type fileKind struct {
	category string
	specific string
}

var mimeTypes = map[string]fileKind{
	"application/pdf": {CategoryDocuments, "pdf"},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {CategoryDocuments, "docx"},
	"application/msword": {CategoryDocuments, "doc"},
	"text/plain":         {CategoryDocuments, "txt"},
	"text/markdown":      {CategoryDocuments, "md"},

	"text/x-python":          {CategoryCode, "python"},
	"application/javascript": {CategoryCode, "javascript"},
	"text/javascript":        {CategoryCode, "javascript"},
	"application/typescript": {CategoryCode, "typescript"},
	"text/x-java":            {CategoryCode, "java"},
	"text/x-c":               {CategoryCode, "c"},
	"text/x-c++":             {CategoryCode, "cpp"},
	"text/css":               {CategoryCode, "css"},
	"text/html":              {CategoryCode, "html"},
	"application/json":       {CategoryCode, "json"},
	"application/xml":        {CategoryCode, "xml"},
	"text/xml":               {CategoryCode, "xml"},

	"image/png":  {CategoryImages, "png"},
	"image/jpeg": {CategoryImages, "jpg"},
	"image/jpg":  {CategoryImages, "jpg"},
	"image/gif":  {CategoryImages, "gif"},
	"image/webp": {CategoryImages, "webp"},

	"audio/wav":   {CategoryAudio, "wav"},
	"audio/wave":  {CategoryAudio, "wav"},
	"audio/x-wav": {CategoryAudio, "wav"},
	"audio/mpeg":  {CategoryAudio, "mp3"},
	"audio/mp3":   {CategoryAudio, "mp3"},
}

var extensions = map[string]fileKind{
	".pdf":  {CategoryDocuments, "pdf"},
	".docx": {CategoryDocuments, "docx"},
	".doc":  {CategoryDocuments, "doc"},
	".txt":  {CategoryDocuments, "txt"},
	".md":   {CategoryDocuments, "md"},
	".py":   {CategoryCode, "python"},
	".js":   {CategoryCode, "javascript"},
	".ts":   {CategoryCode, "typescript"},
	".tsx":  {CategoryCode, "typescript"},
	".jsx":  {CategoryCode, "javascript"},
	".java": {CategoryCode, "java"},
	".c":    {CategoryCode, "c"},
	".cpp":  {CategoryCode, "cpp"},
	".h":    {CategoryCode, "c"},
	".hpp":  {CategoryCode, "cpp"},
	".css":  {CategoryCode, "css"},
	".html": {CategoryCode, "html"},
	".json": {CategoryCode, "json"},
	".xml":  {CategoryCode, "xml"},
	".sql":  {CategoryCode, "sql"},
	".sh":   {CategoryCode, "shell"},
	".go":   {CategoryCode, "go"},
	".yaml": {CategoryCode, "yaml"},
	".yml":  {CategoryCode, "yaml"},
	".png":  {CategoryImages, "png"},
	".jpg":  {CategoryImages, "jpg"},
	".jpeg": {CategoryImages, "jpg"},
	".gif":  {CategoryImages, "gif"},
	".webp": {CategoryImages, "webp"},
	".wav":  {CategoryAudio, "wav"},
	".mp3":  {CategoryAudio, "mp3"},
}

// Extract converts an uploaded file into context text and its category.
// contentType and filename may each be empty; unknown files are treated as
// plain text documents.
func Extract(data []byte, contentType, filename string) (string, string) {
	kind, ok := mimeTypes[contentType]
	if !ok {
		ext := strings.ToLower(filepath.Ext(filename))
		if kind, ok = extensions[ext]; !ok {
			kind = fileKind{CategoryDocuments, "txt"}
		}
	}

	switch {
	case kind.specific == "pdf":
		return "[PDF text extraction is not available - paste the relevant text instead]", kind.category
	case kind.specific == "docx":
		return extractDocx(data), kind.category
	case kind.category == CategoryImages:
		return "[Image OCR is not available - describe the image or paste its text]", kind.category
	case kind.category == CategoryAudio:
		return "[Audio file - use voice transcription endpoint]", kind.category
	default:
		return decodeText(data), kind.category
	}
}

// decodeText returns the bytes as UTF-8, repairing invalid sequences so the
// result is always safe to embed in JSON.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "�")
}

// docx stores its text in word/document.xml inside a zip container. Pulling
// the character data out of every <w:t> element recovers the paragraphs
// without needing a full OOXML implementation.
func extractDocx(data []byte) string {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "[Error extracting DOCX text: not a valid docx archive]"
	}

	var document io.ReadCloser
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			if document, err = file.Open(); err != nil {
				return "[Error extracting DOCX text: " + err.Error() + "]"
			}
			break
		}
	}
	if document == nil {
		return "[Error extracting DOCX text: document.xml missing]"
	}
	defer document.Close()

	decoder := xml.NewDecoder(document)
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "[Error extracting DOCX text: " + err.Error() + "]"
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if text := strings.TrimSpace(current.String()); text != "" {
		paragraphs = append(paragraphs, text)
	}
	return strings.Join(paragraphs, "\n")
}
