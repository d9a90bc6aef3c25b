package logic

import (
	"github.com/drakos74/free-perceptron/internal/math/ml"
)

var inputs = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

func gate(y ...float64) ml.Dataset {
	ds, err := ml.NewDataset(inputs, y)
	if err != nil {
		panic(err)
	}
	return ds
}

// AND returns the truth table of the AND gate.
func AND() ml.Dataset {
	return gate(0, 0, 0, 1)
}

// OR returns the truth table of the OR gate.
func OR() ml.Dataset {
	return gate(0, 1, 1, 1)
}

// Case is a labelled input outside of the training set.
type Case struct {
	Input    []float64
	Expected int
}

// ExtendedAND contains the truth table, noisy versions of it and some borderline inputs.
func ExtendedAND() []Case {
	return []Case{
		{Input: []float64{0, 0}, Expected: 0},
		{Input: []float64{0, 1}, Expected: 0},
		{Input: []float64{1, 0}, Expected: 0},
		{Input: []float64{1, 1}, Expected: 1},
		// noisy
		{Input: []float64{0.1, 0.1}, Expected: 0},
		{Input: []float64{0.9, 0.9}, Expected: 1},
		{Input: []float64{0.8, 0.2}, Expected: 0},
		{Input: []float64{0.1, 0.8}, Expected: 0},
		// borderline
		{Input: []float64{0.6, 0.6}, Expected: 0},
		{Input: []float64{0.4, 0.4}, Expected: 0},
	}
}

// Scenario is a real world decision behaving like a gate.
type Scenario struct {
	Name     string
	Features [2]string
	// Labels holds the negative and positive outcome.
	Labels [2]string
	Cases  []Case
}

// Label returns the outcome name for the given output.
func (s Scenario) Label(output int) string {
	if output == 1 {
		return s.Labels[1]
	}
	return s.Labels[0]
}

// SecuritySystem is active only if the door is closed and the alarm armed.
func SecuritySystem() Scenario {
	return Scenario{
		Name:     "security system",
		Features: [2]string{"door", "alarm"},
		Labels:   [2]string{"INACTIVE", "ACTIVE"},
		Cases: []Case{
			{Input: []float64{1, 1}, Expected: 1},
			{Input: []float64{1, 0}, Expected: 0},
			{Input: []float64{0, 1}, Expected: 0},
			{Input: []float64{0, 0}, Expected: 0},
		},
	}
}

// LoanApproval requires both a good history and sufficient income.
func LoanApproval() Scenario {
	return Scenario{
		Name:     "loan approval",
		Features: [2]string{"history", "income"},
		Labels:   [2]string{"REJECTED", "APPROVED"},
		Cases: []Case{
			{Input: []float64{1, 1}, Expected: 1},
			{Input: []float64{1, 0}, Expected: 0},
			{Input: []float64{0, 1}, Expected: 0},
		},
	}
}
