package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/job"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
)

type rankCacheKeyInput struct {
	JobText   string   `json:"job_text"`
	JobSkills []string `json:"job_skills"`
	Resumes   []string `json:"resumes"`
}

// RankRunCacheKey identifies one ranking run by its scoring inputs. Keys are
// scoped under the job id, and the hash covers the normalized texts so
// editing a resume or the description naturally misses the cache.
func RankRunCacheKey(posting job.Posting, docs []resume.Document) string {
	resumes := make([]string, 0, len(docs))
	for _, d := range docs {
		sum := sha256.Sum256([]byte(d.ID.String() + "|" + d.NormalizedText))
		resumes = append(resumes, hex.EncodeToString(sum[:8]))
	}
	sort.Strings(resumes)

	in := rankCacheKeyInput{
		JobText:   posting.NormalizedText,
		JobSkills: posting.RequiredSkills,
		Resumes:   resumes,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "rank:" + posting.ID.String() + ":" + hex.EncodeToString(sum[:16])
}
