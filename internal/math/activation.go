package math

import "math"

// Step returns 1 for non-negative input and 0 otherwise.
func Step(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}

// Sigmoid is the logistic function.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// ReLU clips negative input to zero.
func ReLU(x float64) float64 {
	return math.Max(0, x)
}

func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// Linear is the identity activation.
func Linear(x float64) float64 {
	return x
}

// Softmax exponentiates each element and normalizes by the sum.
// NOTE : large inputs overflow, there is no max-shift
func Softmax(xx []float64) []float64 {
	exps := make([]float64, len(xx))
	var total float64
	for i, x := range xx {
		exps[i] = math.Exp(x)
		total += exps[i]
	}
	for i := range exps {
		exps[i] = exps[i] / total
	}
	return exps
}
