package matching

// MatchScore combines the three sub-scores with the deployment weights.
// A pure function: identical sub-scores always yield the identical
// aggregate, so ranking ties are broken elsewhere, deterministically.
func MatchScore(w Weights, similarity, keyword, experience float64) float64 {
	return clampScore(w.Similarity*similarity + w.Keyword*keyword + w.Experience*experience)
}

// ResumeScore is the student-facing, job-agnostic aggregate: ATS structure,
// weighted experience and skill breadth, with no job-specific similarity
// term anywhere.
func ResumeScore(cfg Config, ats, experience float64, skillBreadth int) float64 {
	return clampScore(cfg.ResumeATSWeight*ats +
		cfg.ResumeExperienceWeight*experience +
		cfg.ResumeBreadthWeight*breadthScore(cfg, skillBreadth))
}

func breadthScore(cfg Config, breadth int) float64 {
	if breadth <= 0 {
		return 0
	}
	score := 100 * float64(breadth) / float64(cfg.BreadthSaturation)
	if score > 100 {
		score = 100
	}
	return score
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
