package retrieval

import (
	"math"

	"github.com/nexflow/campaign-engine/internal/vectorstore"
)

// selectMMR narrows a relevance-ranked candidate pool to k results using
// maximal marginal relevance. lambda weights query relevance against novelty
// relative to the documents already selected: 1.0 is pure top-k similarity,
// 0.0 is pure diversity.
func selectMMR(candidates []vectorstore.Candidate, k int, lambda float64) []vectorstore.Candidate {
	if k >= len(candidates) {
		return candidates
	}

	selected := make([]vectorstore.Candidate, 0, k)
	remaining := make([]vectorstore.Candidate, len(candidates))
	copy(remaining, candidates)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := 0
		bestScore := math.Inf(-1)
		for i, c := range remaining {
			redundancy := 0.0
			for _, s := range selected {
				if sim := cosineSimilarity(c.Embedding, s.Embedding); sim > redundancy {
					redundancy = sim
				}
			}
			score := lambda*c.Similarity - (1-lambda)*redundancy
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

// cosineSimilarity computes the cosine similarity of two embedding vectors.
// Mismatched or zero-norm vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
