package job

import (
	"github.com/google/uuid"
)

// Seniority is the target level derived from the posting's title and
// description heuristics.
type Seniority int

const (
	SeniorityUnknown Seniority = iota
	SeniorityIntern
	SeniorityJunior
	SeniorityMid
	SenioritySenior
	SeniorityLead
)

func (s Seniority) String() string {
	switch s {
	case SeniorityIntern:
		return "intern"
	case SeniorityJunior:
		return "junior"
	case SeniorityMid:
		return "mid"
	case SenioritySenior:
		return "senior"
	case SeniorityLead:
		return "lead"
	default:
		return "unknown"
	}
}

// MinYears is the rough experience floor implied by the seniority level.
func (s Seniority) MinYears() float64 {
	switch s {
	case SeniorityIntern:
		return 0
	case SeniorityJunior:
		return 1
	case SeniorityMid:
		return 3
	case SenioritySenior:
		return 5
	case SeniorityLead:
		return 8
	default:
		return 0
	}
}

// Posting is a job posting as the engine sees it: normalized description
// plus the derived requirement set. Target years/departments used by the
// CRUD filter layer are opaque to scoring and not modeled here.
type Posting struct {
	ID             uuid.UUID
	Title          string
	RawDescription string
	NormalizedText string
	RequiredSkills []string
	Seniority      Seniority
}
