package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/drakos74/free-perceptron/internal/emoji"
	"github.com/drakos74/free-perceptron/internal/logic"
	fpmath "github.com/drakos74/free-perceptron/internal/math"
	"github.com/drakos74/free-perceptron/internal/math/ml"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

const curveHeight = 8

// TruthTable renders the dataset as a gate truth table.
func TruthTable(w io.Writer, ds ml.Dataset) {
	table := newTable(w)
	header := make([]string, 0, ds.Features()+1)
	for i := 0; i < ds.Features(); i++ {
		header = append(header, fmt.Sprintf("X%d", i))
	}
	table.SetHeader(append(header, "Y"))
	for _, s := range ds {
		row := make([]string, 0, len(s.Input)+1)
		for _, x := range s.Input {
			row = append(row, fpmath.Format(x, 0))
		}
		table.Append(append(row, fpmath.Format(s.Target, 0)))
	}
	table.Render()
}

// Comparison renders the evaluation results, inputs are shown as given and rounded.
func Comparison(w io.Writer, evaluation logic.Evaluation) {
	table := newTable(w)
	table.SetHeader([]string{"Input", "Gate", "Expected", "Predicted", "OK"})
	for _, r := range evaluation.Results {
		table.Append([]string{
			vector(r.Input),
			fmt.Sprintf("%v", fpmath.Round(r.Input)),
			fmt.Sprintf("%d", r.Expected),
			fmt.Sprintf("%d", r.Predicted),
			emoji.MapBool(r.OK()),
		})
	}
	table.SetFooter([]string{"", "", "", "accuracy", fmt.Sprintf("%s%%", fpmath.Format(evaluation.Accuracy, 1))})
	table.Render()
}

// Scenario renders the outcome of a real world scenario.
func Scenario(w io.Writer, scenario logic.Scenario, evaluation logic.Evaluation) {
	table := newTable(w)
	table.SetHeader([]string{scenario.Features[0], scenario.Features[1], "Outcome", "Expected", ""})
	for _, r := range evaluation.Results {
		table.Append([]string{
			fpmath.Format(r.Input[0], 0),
			fpmath.Format(r.Input[1], 0),
			scenario.Label(r.Predicted),
			scenario.Label(r.Expected),
			emoji.MapMatch(r.Expected, r.Predicted),
		})
	}
	table.Render()
}

// Curve plots the loss per epoch.
// It returns an empty string when there is nothing to plot.
func Curve(loss []float64, caption string) string {
	if len(loss) < 2 || flat(loss) {
		return ""
	}
	return asciigraph.Plot(loss,
		asciigraph.Height(curveHeight),
		asciigraph.Caption(caption))
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	return table
}

func flat(ff []float64) bool {
	for _, f := range ff[1:] {
		if f != ff[0] {
			return false
		}
	}
	return true
}

func vector(ff []float64) string {
	ss := make([]string, len(ff))
	for i, f := range ff {
		ss[i] = fpmath.Format(f, 1)
	}
	return "[" + strings.Join(ss, " ") + "]"
}
