package resume

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxFileSize is the upload size ceiling for résumé documents.
const MaxFileSize = 10 * 1024 * 1024 // 10 MiB

// supportedExtensions lists the document types the decoder accepts.
var supportedExtensions = []string{".pdf", ".docx", ".doc"}

// FileExtension returns the lowercased extension of a filename.
func FileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// ValidateUpload gates an uploaded document on extension and size before any
// decoding work happens.
func ValidateUpload(filename string, size int64) error {
	ext := FileExtension(filename)
	supported := false
	for _, candidate := range supportedExtensions {
		if ext == candidate {
			supported = true
			break
		}
	}
	if !supported {
		return &UnsupportedFormatError{Extension: ext}
	}

	if size > MaxFileSize {
		return &FileTooLargeError{Size: size, Limit: MaxFileSize}
	}

	return nil
}

// ExtractText decodes a résumé document into plain text based on its
// extension. PDF and Word documents are supported.
func ExtractText(filename string, data []byte) (string, error) {
	switch ext := FileExtension(filename); ext {
	case ".pdf":
		return extractPDFText(data)
	case ".docx", ".doc":
		return extractWordText(data)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to render; best-effort extraction
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractWordText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "Word", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
