// Package textutil turns raw text into term-frequency vectors and scores
// pairs of texts with cosine similarity.
//
// The pipeline has four steps:
//   - Vectorize lowercases the text, extracts word/apostrophe runs, expands
//     English contractions and counts the resulting terms
//   - Align extends two frequency maps onto their shared vocabulary
//   - Normalize scales a frequency map to unit L2 length
//   - Dot sums the pairwise products of two aligned unit vectors
//
// Similarity runs the whole pipeline for two strings. Every function is pure
// and safe for concurrent use; returned maps are owned by the caller.
package textutil
