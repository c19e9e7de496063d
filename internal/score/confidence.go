package score

import (
	"math"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/source"
)

// Blend weights for intelligence-mode source confidence.
const (
	relevanceShare = 0.65
	trustShare     = 0.35
)

// SourceConfidence blends a hit's relevance with its source type's trust
// weight (intelligence mode).
func SourceConfidence(relevance float64, sourceType model.SourceType) float64 {
	trust := source.TrustWeight(sourceType)
	return Round3(math.Min(1.0, relevanceShare*relevance+trustShare*trust))
}

// WeightedSourceConfidence multiplies an attribute-match score by the source
// type's weight (attribute mode).
func WeightedSourceConfidence(attributeMatch float64, sourceType model.SourceType) float64 {
	return Round3(attributeMatch * source.SourceWeight(sourceType))
}

// MeanTopConfidence averages the n highest values of a descending-sorted
// confidence slice. The slice must already be sorted; callers keep sources
// ranked at all times.
func MeanTopConfidence(sorted []float64, n int) float64 {
	if len(sorted) == 0 || n <= 0 {
		return 0.0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	sum := 0.0
	for _, v := range sorted[:n] {
		sum += v
	}
	return Round3(sum / float64(n))
}
