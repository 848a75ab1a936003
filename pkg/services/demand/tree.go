package demand

import "math/rand"

// treeNode is one node of a CART regression tree. Leaves carry the mean
// target of the samples that reached them.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
	leaf      bool
}

func (n *treeNode) predict(sample []float64) float64 {
	if n.leaf {
		return n.value
	}
	if sample[n.feature] <= n.threshold {
		return n.left.predict(sample)
	}
	return n.right.predict(sample)
}

// buildTree grows a regression tree greedily, splitting on the
// (feature, threshold) pair with the lowest weighted squared error.
func buildTree(features [][]float64, targets []float64, depth, maxDepth, minLeaf int) *treeNode {
	if depth >= maxDepth || len(targets) <= minLeaf || uniform(targets) {
		return &treeNode{leaf: true, value: mean(targets)}
	}

	feature, threshold, ok := bestSplit(features, targets, minLeaf)
	if !ok {
		return &treeNode{leaf: true, value: mean(targets)}
	}

	var leftF, rightF [][]float64
	var leftT, rightT []float64
	for i, f := range features {
		if f[feature] <= threshold {
			leftF = append(leftF, f)
			leftT = append(leftT, targets[i])
		} else {
			rightF = append(rightF, f)
			rightT = append(rightT, targets[i])
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      buildTree(leftF, leftT, depth+1, maxDepth, minLeaf),
		right:     buildTree(rightF, rightT, depth+1, maxDepth, minLeaf),
	}
}

func bestSplit(features [][]float64, targets []float64, minLeaf int) (feature int, threshold float64, ok bool) {
	bestErr := sumSquares(targets)
	found := false

	for f := 0; f < len(features[0]); f++ {
		for i := range features {
			candidate := features[i][f]
			var leftT, rightT []float64
			for j := range features {
				if features[j][f] <= candidate {
					leftT = append(leftT, targets[j])
				} else {
					rightT = append(rightT, targets[j])
				}
			}
			if len(leftT) == 0 || len(rightT) == 0 {
				continue
			}
			errSum := sumSquares(leftT) + sumSquares(rightT)
			if errSum < bestErr {
				bestErr = errSum
				feature = f
				threshold = candidate
				found = true
			}
		}
	}

	return feature, threshold, found
}

// bootstrap draws n indices with replacement.
func bootstrap(n int, rng *rand.Rand) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = rng.Intn(n)
	}
	return indices
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// sumSquares is the squared deviation from the mean, the split criterion.
func sumSquares(values []float64) float64 {
	m := mean(values)
	total := 0.0
	for _, v := range values {
		d := v - m
		total += d * d
	}
	return total
}

func uniform(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
