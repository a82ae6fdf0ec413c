package matching

import (
	"regexp"
	"strings"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// ATSReport is the rule-by-rule outcome of the compliance check. The total
// is resume-intrinsic: no rule ever consults the job posting.
type ATSReport struct {
	Score  float64
	Passed []string
	Failed []string
}

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone = regexp.MustCompile(`(?:\+?\d[\d\s\-().]{8,}\d)`)
)

const (
	atsPointsContact      = 15
	atsPointsExperience   = 15
	atsPointsEducation    = 10
	atsPointsSkillsSec    = 15
	atsPointsParseable    = 15
	atsPointsLength       = 15
	atsPointsDensity      = 15
	atsUnparsedPenalty    = 5
	atsMinWords           = 120
	atsMaxWords           = 1000
	atsSoftMinWords       = 60
	atsSoftMaxWords       = 1500
	atsDensityGoodPerMile = 12.0
	atsDensityOkPerMile   = 5.0
)

// ATSScore applies the fixed-weight structural rules: standard sections
// present, contact info findable, no unparsed regions reported upstream,
// length inside the expected band, and skill-keyword density above generic
// filler level. Total is clipped to [0,100].
func ATSScore(doc resume.Document) ATSReport {
	var rep ATSReport
	add := func(name string, pts float64, max float64) {
		rep.Score += pts
		if pts >= max {
			rep.Passed = append(rep.Passed, name)
		} else {
			rep.Failed = append(rep.Failed, name)
		}
	}

	if reEmail.MatchString(doc.RawText) || rePhone.MatchString(doc.RawText) {
		add("contact information", atsPointsContact, atsPointsContact)
	} else {
		add("contact information", 0, atsPointsContact)
	}

	if hasSection(doc, text.SectionExperience) || len(doc.Experience) > 0 {
		add("experience section", atsPointsExperience, atsPointsExperience)
	} else {
		add("experience section", 0, atsPointsExperience)
	}

	if hasSection(doc, text.SectionEducation) || len(doc.Education) > 0 {
		add("education section", atsPointsEducation, atsPointsEducation)
	} else {
		add("education section", 0, atsPointsEducation)
	}

	if hasSection(doc, text.SectionSkills) || len(doc.Skills) > 0 {
		add("skills section", atsPointsSkillsSec, atsPointsSkillsSec)
	} else {
		add("skills section", 0, atsPointsSkillsSec)
	}

	parseable := float64(atsPointsParseable) - float64(doc.UnparsedRegions)*atsUnparsedPenalty
	if parseable < 0 {
		parseable = 0
	}
	add("parseable layout", parseable, atsPointsParseable)

	add("length", lengthPoints(doc.NormalizedText), atsPointsLength)
	add("keyword density", densityPoints(doc), atsPointsDensity)

	if rep.Score > 100 {
		rep.Score = 100
	}
	if rep.Score < 0 {
		rep.Score = 0
	}
	return rep
}

func hasSection(doc resume.Document, sec text.Section) bool {
	return strings.TrimSpace(doc.Sections[string(sec)]) != ""
}

func lengthPoints(normalized string) float64 {
	words := len(text.Tokens(normalized))
	switch {
	case words >= atsMinWords && words <= atsMaxWords:
		return atsPointsLength
	case words >= atsSoftMinWords && words <= atsSoftMaxWords:
		return atsPointsLength / 3
	default:
		return 0
	}
}

// densityPoints scores recognized skill mentions per thousand words: filler
// text mentions nothing the taxonomy knows.
func densityPoints(doc resume.Document) float64 {
	words := len(text.Tokens(doc.NormalizedText))
	if words == 0 {
		return 0
	}
	perMille := float64(len(doc.Skills)+len(doc.Unclassified)) / float64(words) * 1000
	switch {
	case perMille >= atsDensityGoodPerMile:
		return atsPointsDensity
	case perMille >= atsDensityOkPerMile:
		return atsPointsDensity * 2 / 3
	case perMille > 0:
		return atsPointsDensity / 3
	default:
		return 0
	}
}
