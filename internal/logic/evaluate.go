package logic

// Classifier produces a binary label for every input row.
type Classifier interface {
	Predict(x [][]float64) []int
}

// Single adapts a single input classifier.
type Single func(x []float64) int

func (s Single) Predict(x [][]float64) []int {
	yy := make([]int, len(x))
	for i, row := range x {
		yy[i] = s(row)
	}
	return yy
}

// Result is the outcome of a single case.
type Result struct {
	Case
	Predicted int
}

// OK checks if the prediction matches the expected output.
func (r Result) OK() bool {
	return r.Predicted == r.Expected
}

// Evaluation holds the results for a set of cases.
type Evaluation struct {
	Results  []Result
	Correct  int
	Accuracy float64
}

// Evaluate runs the classifier on every case, one at a time.
func Evaluate(classifier Classifier, cases []Case) Evaluation {
	evaluation := Evaluation{
		Results: make([]Result, len(cases)),
	}
	for i, c := range cases {
		predicted := classifier.Predict([][]float64{c.Input})[0]
		evaluation.Results[i] = Result{
			Case:      c,
			Predicted: predicted,
		}
		if predicted == c.Expected {
			evaluation.Correct++
		}
	}
	if len(cases) > 0 {
		evaluation.Accuracy = float64(evaluation.Correct) / float64(len(cases)) * 100
	}
	return evaluation
}

// Cases converts a dataset with binary targets into cases.
func Cases(x [][]float64, y []float64) []Case {
	cases := make([]Case, len(x))
	for i := range x {
		cases[i] = Case{
			Input:    x[i],
			Expected: int(y[i]),
		}
	}
	return cases
}
