package common

import "math"

// L2Norm returns the euclidean norm of v.
func L2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// L2Normalize scales v in place to unit length. A zero vector is left untouched.
func L2Normalize(v []float64) {
	norm := L2Norm(v)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}

// Softmax converts raw margins into a probability distribution.
// The maximum margin is subtracted first so large margins do not overflow.
func Softmax(margins []float64) []float64 {
	if len(margins) == 0 {
		return nil
	}

	maxMargin := margins[0]
	for _, m := range margins[1:] {
		if m > maxMargin {
			maxMargin = m
		}
	}

	out := make([]float64, len(margins))
	var sum float64
	for i, m := range margins {
		out[i] = math.Exp(m - maxMargin)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// Sigmoid is the logistic function.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Logit is the inverse of Sigmoid. p is clamped to the open interval (0, 1).
func Logit(p float64) float64 {
	const eps = 1e-15
	p = math.Min(math.Max(p, eps), 1-eps)
	return math.Log(p / (1 - p))
}
