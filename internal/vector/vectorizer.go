package vector

import (
	"math"
	"sort"

	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// Vocabulary is the shared term space a resume and a job posting are
// projected into. It is built from the union of the documents being
// compared; vectors are only comparable within the vocabulary that produced
// them.
type Vocabulary struct {
	index map[string]int
	terms []string
	idf   []float64
}

const (
	ngramMin = 1
	ngramMax = 2
)

// TermCounts is a document's raw n-gram frequency profile. Profiles are
// what the job-vector cache stores: they are independent of any particular
// pair vocabulary, unlike finished vectors.
type TermCounts map[string]int

// CountTerms tokenizes a normalized document into its n-gram frequencies.
func CountTerms(doc string) TermCounts {
	grams := text.NGrams(text.Tokens(doc), ngramMin, ngramMax)
	tc := make(TermCounts, len(grams))
	for _, g := range grams {
		tc[g]++
	}
	return tc
}

// NewVocabulary builds a term index over the given normalized documents,
// with smoothed inverse document frequencies. Term order is sorted, so the
// same inputs always produce the same vocabulary.
func NewVocabulary(docs ...string) *Vocabulary {
	counts := make([]TermCounts, 0, len(docs))
	for _, doc := range docs {
		counts = append(counts, CountTerms(doc))
	}
	return NewVocabularyFromCounts(counts...)
}

// NewVocabularyFromCounts builds the shared term space from precomputed
// frequency profiles.
func NewVocabularyFromCounts(docs ...TermCounts) *Vocabulary {
	df := make(map[string]int)
	for _, tc := range docs {
		for g := range tc {
			df[g]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	v := &Vocabulary{
		index: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, t := range terms {
		v.index[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v
}

// Size reports the number of terms in the vocabulary.
func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Vector is a document projected into one vocabulary's term space.
type Vector struct {
	weights []float64
	vocab   *Vocabulary
}

// Vectorize computes the TF-IDF weights of a normalized document over this
// vocabulary. It is a pure function of the text and the vocabulary: the same
// inputs always yield the same vector.
func (v *Vocabulary) Vectorize(doc string) Vector {
	return v.FromCounts(CountTerms(doc))
}

// FromCounts projects a precomputed frequency profile into this vocabulary.
func (v *Vocabulary) FromCounts(tc TermCounts) Vector {
	weights := make([]float64, v.Size())
	if v == nil || len(weights) == 0 {
		return Vector{weights: weights, vocab: v}
	}

	for g, n := range tc {
		if i, ok := v.index[g]; ok {
			weights[i] = float64(n) * v.idf[i]
		}
	}
	return Vector{weights: weights, vocab: v}
}

// IsZero reports whether the vector has no weight at all, which happens when
// the document shares no vocabulary with the term space.
func (vec Vector) IsZero() bool {
	for _, w := range vec.weights {
		if w != 0 {
			return false
		}
	}
	return true
}
