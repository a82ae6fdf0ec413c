package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedMime = errors.New("unsupported file type")

// Extraction is raw text pulled from an uploaded document plus the count of
// regions the parser could not read (images, malformed streams). The region
// count feeds the ATS compliance check.
type Extraction struct {
	Text            string
	UnparsedRegions int
}

// TextExtractor is the upstream collaborator that turns an uploaded
// document into raw text.
type TextExtractor interface {
	Extract(mime string, data []byte) (Extraction, error)
}

const (
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// Local parses PDF and DOCX uploads in-process.
type Local struct{}

func NewLocal() Local {
	return Local{}
}

func (Local) Extract(mime string, data []byte) (Extraction, error) {
	switch mime {
	case MimePlain:
		return Extraction{Text: string(data)}, nil
	case MimePDF:
		return extractPDF(data)
	case MimeDocx:
		return extractDocx(data)
	default:
		return Extraction{}, fmt.Errorf("%w: %s", ErrUnsupportedMime, mime)
	}
}

func extractPDF(data []byte) (Extraction, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to read pdf: %w", err)
	}

	var out Extraction
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			out.UnparsedRegions++
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(pageText) == "" {
			out.UnparsedRegions++
			continue
		}
		textBuilder.WriteString(pageText)
		textBuilder.WriteByte('\n')
	}
	out.Text = normalizeNewlines(textBuilder.String())
	return out, nil
}

func extractDocx(data []byte) (Extraction, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return Extraction{Text: normalizeNewlines(stripTags(content))}, nil
}

var (
	reTag       = regexp.MustCompile(`<[^>]+>`)
	reParaClose = regexp.MustCompile(`</w:p>`)
)

// stripTags flattens the docx XML content into plain text, keeping
// paragraph boundaries as newlines so section headings survive.
func stripTags(content string) string {
	content = reParaClose.ReplaceAllString(content, "\n")
	return reTag.ReplaceAllString(content, "")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
