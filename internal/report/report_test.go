package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/drakos74/free-perceptron/internal/emoji"
	"github.com/drakos74/free-perceptron/internal/logic"
	"github.com/stretchr/testify/assert"
)

func TestTruthTable(t *testing.T) {
	buf := new(bytes.Buffer)
	TruthTable(buf, logic.AND())

	out := buf.String()
	assert.Contains(t, out, "X0")
	assert.Contains(t, out, "X1")
	assert.Contains(t, out, "| Y |")
}

func TestComparison(t *testing.T) {
	evaluation := logic.Evaluate(logic.Single(func(x []float64) int { return 0 }), logic.ExtendedAND())

	buf := new(bytes.Buffer)
	Comparison(buf, evaluation)

	out := buf.String()
	assert.Contains(t, out, "[0.9 0.9]")
	assert.Contains(t, out, "[1 1]")
	// [1 1] and [0.9 0.9] are the only positive cases
	assert.Contains(t, out, "80.0%")
	assert.Equal(t, 8, strings.Count(out, emoji.Correct))
	assert.Equal(t, 2, strings.Count(out, emoji.Wrong))
}

func TestScenario(t *testing.T) {
	scenario := logic.SecuritySystem()
	evaluation := logic.Evaluate(logic.Single(func(x []float64) int { return 1 }), scenario.Cases)

	buf := new(bytes.Buffer)
	Scenario(buf, scenario, evaluation)

	out := buf.String()
	assert.Contains(t, out, "INACTIVE")
	assert.Equal(t, 3, strings.Count(out, emoji.Warning))
}

func TestCurve(t *testing.T) {
	assert.Empty(t, Curve(nil, "empty"))
	assert.Empty(t, Curve([]float64{1}, "single"))
	assert.Empty(t, Curve([]float64{2, 2, 2}, "flat"))

	plot := Curve([]float64{2, 3, 3, 0, 0}, "loss")
	assert.NotEmpty(t, plot)
	assert.Contains(t, plot, "loss")
}
