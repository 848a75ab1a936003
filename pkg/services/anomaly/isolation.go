package anomaly

import (
	"math"
	"math/rand"
)

// isolationForest scores points by how few random axis-aligned splits are
// needed to isolate them. Outliers sit alone quickly; inliers take longer.
type isolationForest struct {
	trees      []*isoNode
	sampleSize int
}

type isoNode struct {
	feature   int
	threshold float64
	left      *isoNode
	right     *isoNode
	size      int
	external  bool
}

func fitIsolationForest(data [][]float64, trees, sampleSize int, rng *rand.Rand) *isolationForest {
	if sampleSize > len(data) {
		sampleSize = len(data)
	}

	maxHeight := int(math.Ceil(math.Log2(float64(sampleSize))))
	forest := &isolationForest{sampleSize: sampleSize}

	for t := 0; t < trees; t++ {
		sample := subsample(data, sampleSize, rng)
		forest.trees = append(forest.trees, buildIsoTree(sample, 0, maxHeight, rng))
	}
	return forest
}

// subsample draws without replacement.
func subsample(data [][]float64, size int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(len(data))
	sample := make([][]float64, size)
	for i := 0; i < size; i++ {
		sample[i] = data[perm[i]]
	}
	return sample
}

func buildIsoTree(data [][]float64, height, maxHeight int, rng *rand.Rand) *isoNode {
	if height >= maxHeight || len(data) <= 1 {
		return &isoNode{external: true, size: len(data)}
	}

	feature := rng.Intn(len(data[0]))
	lo, hi := featureRange(data, feature)
	if lo == hi {
		return &isoNode{external: true, size: len(data)}
	}

	threshold := lo + rng.Float64()*(hi-lo)
	var left, right [][]float64
	for _, p := range data {
		if p[feature] < threshold {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	return &isoNode{
		feature:   feature,
		threshold: threshold,
		left:      buildIsoTree(left, height+1, maxHeight, rng),
		right:     buildIsoTree(right, height+1, maxHeight, rng),
	}
}

func featureRange(data [][]float64, feature int) (lo, hi float64) {
	lo, hi = data[0][feature], data[0][feature]
	for _, p := range data[1:] {
		v := p[feature]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// score returns the anomaly score in (0, 1]: 2^(-E[h(x)]/c(ψ)).
// Scores near 1 indicate outliers; near 0.5 and below, inliers.
func (f *isolationForest) score(point []float64) float64 {
	total := 0.0
	for _, t := range f.trees {
		total += pathLength(t, point, 0)
	}
	avgPath := total / float64(len(f.trees))
	return math.Pow(2, -avgPath/avgPathLength(f.sampleSize))
}

func pathLength(n *isoNode, point []float64, depth float64) float64 {
	if n.external {
		return depth + avgPathLength(n.size)
	}
	if point[n.feature] < n.threshold {
		return pathLength(n.left, point, depth+1)
	}
	return pathLength(n.right, point, depth+1)
}

// avgPathLength is c(n), the expected path length of an unsuccessful BST
// search over n points; it normalizes truncated trees.
func avgPathLength(n int) float64 {
	if n <= 1 {
		return 0
	}
	h := math.Log(float64(n-1)) + 0.5772156649 // Euler–Mascheroni
	return 2*h - 2*float64(n-1)/float64(n)
}
