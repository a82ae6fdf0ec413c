package text

import (
	"strings"
)

// Section is one of the fixed resume sections the platform understands.
type Section string

const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionUncategorized  Section = "uncategorized"
)

// KnownSections lists every named section in a stable order, uncategorized last.
var KnownSections = []Section{
	SectionContact,
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionCertifications,
	SectionProjects,
	SectionUncategorized,
}

var sectionHeadings = map[string]Section{
	"contact":                 SectionContact,
	"contact info":            SectionContact,
	"contact information":     SectionContact,
	"summary":                 SectionSummary,
	"professional summary":    SectionSummary,
	"objective":               SectionSummary,
	"about":                   SectionSummary,
	"skills":                  SectionSkills,
	"technical skills":        SectionSkills,
	"core competencies":       SectionSkills,
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"work history":            SectionExperience,
	"professional experience": SectionExperience,
	"employment":              SectionExperience,
	"education":               SectionEducation,
	"academic background":     SectionEducation,
	"certifications":          SectionCertifications,
	"certificates":            SectionCertifications,
	"licenses":                SectionCertifications,
	"projects":                SectionProjects,
	"personal projects":       SectionProjects,
}

// SplitSections walks the raw (pre-normalization) text line by line and maps
// heading-looking lines onto the fixed section set. Text before the first
// recognized heading, and text under unknown headings, lands in the
// uncategorized bucket rather than being dropped.
func SplitSections(raw string) map[Section]string {
	out := make(map[Section]string, len(KnownSections))
	current := SectionUncategorized

	var bufs = map[Section]*strings.Builder{}
	buf := func(s Section) *strings.Builder {
		b, ok := bufs[s]
		if !ok {
			b = &strings.Builder{}
			bufs[s] = b
		}
		return b
	}

	for _, line := range strings.Split(raw, "\n") {
		if sec, ok := matchHeading(line); ok {
			current = sec
			continue
		}
		if looksLikeHeading(line) {
			// unknown heading: bucket its content instead of dropping it
			current = SectionUncategorized
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		b := buf(current)
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(trimmed)
	}

	for sec, b := range bufs {
		out[sec] = b.String()
	}
	return out
}

// matchHeading decides whether a line is a section heading. Headings are
// short lines whose text (minus trailing colon) is a known heading name.
func matchHeading(line string) (Section, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}
	key := strings.ToLower(strings.TrimSuffix(trimmed, ":"))
	key = strings.Join(strings.Fields(key), " ")
	sec, ok := sectionHeadings[key]
	return sec, ok
}

// looksLikeHeading flags short colon-terminated lines that were not
// recognized as a known section name.
func looksLikeHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return false
	}
	return strings.HasSuffix(trimmed, ":") && len(strings.Fields(trimmed)) <= 4
}
