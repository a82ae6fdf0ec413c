package extract

import (
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/job"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
	"github.com/sriraghavi22/career-catalyst-project/internal/taxonomy"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// BuildResume turns raw resume text into an immutable document: normalized
// text, section map, canonical skill set, experience and education entries.
// unparsedRegions is the count of regions the upstream text extractor could
// not parse (tables, images); it only feeds the ATS checker.
func BuildResume(id uuid.UUID, raw string, unparsedRegions int, tax *taxonomy.Taxonomy, now time.Time) (resume.Document, error) {
	normalized, err := text.Normalize(raw)
	if err != nil {
		return resume.Document{}, err
	}

	split := text.SplitSections(raw)
	sections := make(map[string]string, len(split))
	for sec, body := range split {
		sections[string(sec)] = body
	}

	expSource := sections[string(text.SectionExperience)]
	if expSource == "" {
		expSource = raw
	}
	eduSource := sections[string(text.SectionEducation)]
	if eduSource == "" {
		eduSource = raw
	}

	skills, unclassified := Skills(raw, normalized, tax)

	return resume.Document{
		ID:              id,
		RawText:         raw,
		NormalizedText:  normalized,
		Skills:          skills,
		Unclassified:    unclassified,
		Experience:      Experience(expSource, now),
		Education:       Education(eduSource),
		Sections:        sections,
		UnparsedRegions: unparsedRegions,
	}, nil
}

// BuildPosting turns a job title and description into a posting the engine
// can score against. When the caller supplies no explicit requirement list,
// requirements are derived from the description through the same taxonomy
// used for resumes.
func BuildPosting(id uuid.UUID, title, description string, explicitSkills []string, tax *taxonomy.Taxonomy) (job.Posting, error) {
	normalized, err := text.Normalize(description)
	if err != nil {
		return job.Posting{}, err
	}

	var required []string
	if len(explicitSkills) > 0 {
		required = canonicalize(explicitSkills, tax)
	} else {
		required, _ = Skills(description, normalized, tax)
	}

	return job.Posting{
		ID:             id,
		Title:          title,
		RawDescription: description,
		NormalizedText: normalized,
		RequiredSkills: required,
		Seniority:      Seniority(title, description),
	}, nil
}

func canonicalize(skills []string, tax *taxonomy.Taxonomy) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		canon, ok := tax.Canonical(s)
		if !ok {
			canon = text.Clean(s)
		}
		if canon == "" {
			continue
		}
		if _, dup := seen[canon]; dup {
			continue
		}
		seen[canon] = struct{}{}
		out = append(out, canon)
	}
	return out
}
