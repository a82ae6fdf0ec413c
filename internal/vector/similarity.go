package vector

import (
	"errors"
	"math"
)

// ErrVocabularyMismatch means the two vectors were built from different term
// spaces. That is a configuration bug in the caller, never a low score.
var ErrVocabularyMismatch = errors.New("vectors built from incompatible vocabularies")

// Cosine computes the cosine similarity of two vectors from the same
// vocabulary. TF-IDF weights are non-negative, so the result is in [0,1].
// An all-zero vector yields 0, not an error and not NaN.
func Cosine(a, b Vector) (float64, error) {
	if a.vocab != b.vocab || len(a.weights) != len(b.weights) {
		return 0, ErrVocabularyMismatch
	}

	var dot, normA, normB float64
	for i := range a.weights {
		dot += a.weights[i] * b.weights[i]
		normA += a.weights[i] * a.weights[i]
		normB += b.weights[i] * b.weights[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// SimilarityScore maps cosine similarity onto the platform's [0,100] scale.
func SimilarityScore(a, b Vector) (float64, error) {
	cos, err := Cosine(a, b)
	if err != nil {
		return 0, err
	}
	score := cos * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}
