package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
	"github.com/sriraghavi22/career-catalyst-project/internal/extract"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/extractor"
	"github.com/sriraghavi22/career-catalyst-project/internal/matching"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// ResumeInput carries either an uploaded file or raw text. FileData wins
// when both are set.
type ResumeInput struct {
	StudentID uuid.UUID
	RawText   string
	FileData  []byte
	FileMime  string
}

// buildResume turns an input into an extracted document. Extraction and
// normalization failures surface as ErrResumeEmpty or ErrUnsupportedFileType
// so handlers can map them to client errors.
func buildResume(in ResumeInput, ext extractor.TextExtractor, eng *matching.Engine, now time.Time) (resume.Document, error) {
	raw := in.RawText
	unparsed := 0

	if len(in.FileData) > 0 {
		res, err := ext.Extract(in.FileMime, in.FileData)
		if err != nil {
			if errors.Is(err, extractor.ErrUnsupportedMime) {
				return resume.Document{}, ErrUnsupportedFileType
			}
			return resume.Document{}, ErrResumeEmpty
		}
		raw = res.Text
		unparsed = res.UnparsedRegions
	}

	doc, err := extract.BuildResume(in.StudentID, raw, unparsed, eng.Taxonomy(), now)
	if err != nil {
		if errors.Is(err, text.ErrExtractionEmpty) {
			return resume.Document{}, ErrResumeEmpty
		}
		return resume.Document{}, ErrInternal
	}
	return doc, nil
}
