package textutil

import (
	"errors"
	"fmt"
	"math"
)

// NotComputable is returned by Similarity when either text is empty. It lies
// outside the range of valid scores.
const NotComputable = -1.0

// ErrZeroMagnitude reports a non-empty vector whose components are all zero.
var ErrZeroMagnitude = errors.New("vector has zero magnitude")

// Vector maps a term to its weight.
type Vector map[string]float64

// Extend returns a copy of target that also holds every term of source
// missing from target, with a count of zero. Existing counts are kept.
func Extend(target, source TermFreq) TermFreq {
	extended := make(TermFreq, len(target)+len(source))
	for term := range source {
		extended[term] = 0
	}
	for term, count := range target {
		extended[term] = count
	}
	return extended
}

// Align extends a and b onto the union of their vocabularies. Both results
// have identical key sets.
func Align(a, b TermFreq) (TermFreq, TermFreq) {
	return Extend(a, b), Extend(b, a)
}

// Magnitude returns the L2 norm of the counts in tf.
func Magnitude(tf TermFreq) float64 {
	var sum float64
	for _, term := range sortedKeys(tf) {
		v := float64(tf[term])
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Normalize divides every count by the L2 norm of tf. An empty map yields an
// empty vector; a non-empty map of zeros returns ErrZeroMagnitude.
func Normalize(tf TermFreq) (Vector, error) {
	normalized := make(Vector, len(tf))
	if len(tf) == 0 {
		return normalized, nil
	}
	norm := Magnitude(tf)
	if norm == 0 {
		return nil, fmt.Errorf("normalize %d terms: %w", len(tf), ErrZeroMagnitude)
	}
	for term, count := range tf {
		normalized[term] = float64(count) / norm
	}
	return normalized, nil
}

// Dot sums a[k]*b[k] over the keys of a. Terms are visited in sorted order
// so the result does not depend on map iteration.
func Dot(a, b Vector) float64 {
	var dot float64
	for _, term := range sortedKeys(a) {
		dot += a[term] * b[term]
	}
	return dot
}

// SimilarityOf returns the cosine similarity of two term-frequency maps.
func SimilarityOf(a, b TermFreq) (float64, error) {
	alignedA, alignedB := Align(a, b)
	normA, err := Normalize(alignedA)
	if err != nil {
		return 0, err
	}
	normB, err := Normalize(alignedB)
	if err != nil {
		return 0, err
	}
	return Dot(normA, normB), nil
}

// Similarity returns the cosine similarity of the term-frequency vectors of
// text1 and text2, or NotComputable if either text is empty.
func Similarity(text1, text2 string) (float64, error) {
	if text1 == "" || text2 == "" {
		return NotComputable, nil
	}
	return SimilarityOf(Vectorize(text1), Vectorize(text2))
}
