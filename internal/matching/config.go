package matching

import (
	"fmt"
	"math"
)

// Weights are the match-score aggregation coefficients. They are fixed per
// deployment, never per request, so rankings stay comparable across a job's
// candidate pool.
type Weights struct {
	Similarity float64
	Keyword    float64
	Experience float64
}

func DefaultWeights() Weights {
	return Weights{Similarity: 0.40, Keyword: 0.40, Experience: 0.20}
}

func (w Weights) Validate() error {
	if w.Similarity < 0 || w.Keyword < 0 || w.Experience < 0 {
		return fmt.Errorf("match weights must be non-negative: %+v", w)
	}
	sum := w.Similarity + w.Keyword + w.Experience
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("match weights must sum to 1, got %.6f", sum)
	}
	return nil
}

// Config carries every engine tunable. Load it once at startup and share it
// read-only.
type Config struct {
	Weights Weights

	// FullScoreYears is the weighted-experience total that maps to an
	// experience score of 100; anything past it saturates.
	FullScoreYears float64

	// RecencyHalfLifeYears halves a role's weight for every this many years
	// since the role ended.
	RecencyHalfLifeYears float64

	// Resume-score blend (job-agnostic aggregate).
	ResumeATSWeight        float64
	ResumeExperienceWeight float64
	ResumeBreadthWeight    float64

	// BreadthSaturation is the distinct canonical skill count that maps to
	// full breadth.
	BreadthSaturation int
}

func DefaultConfig() Config {
	return Config{
		Weights:                DefaultWeights(),
		FullScoreYears:         8,
		RecencyHalfLifeYears:   4,
		ResumeATSWeight:        0.5,
		ResumeExperienceWeight: 0.3,
		ResumeBreadthWeight:    0.2,
		BreadthSaturation:      12,
	}
}

func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.FullScoreYears <= 0 {
		return fmt.Errorf("full score years must be positive, got %.2f", c.FullScoreYears)
	}
	if c.RecencyHalfLifeYears <= 0 {
		return fmt.Errorf("recency half life must be positive, got %.2f", c.RecencyHalfLifeYears)
	}
	sum := c.ResumeATSWeight + c.ResumeExperienceWeight + c.ResumeBreadthWeight
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("resume score weights must sum to 1, got %.6f", sum)
	}
	if c.BreadthSaturation <= 0 {
		return fmt.Errorf("breadth saturation must be positive, got %d", c.BreadthSaturation)
	}
	return nil
}
