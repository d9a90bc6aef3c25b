package main

import (
	"fmt"
	"os"

	"github.com/drakos74/free-perceptron/infra/config"
	"github.com/drakos74/free-perceptron/internal/emoji"
	"github.com/drakos74/free-perceptron/internal/logic"
	fpmath "github.com/drakos74/free-perceptron/internal/math"
	"github.com/drakos74/free-perceptron/internal/math/ml"
	"github.com/drakos74/free-perceptron/internal/metrics"
	"github.com/drakos74/free-perceptron/internal/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type settings struct {
	Seed    uint64    `json:"seed"`
	Metrics bool      `json:"metrics"`
	Epochs  int       `json:"epochs"`
	Model   ml.Config `json:"model"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	var s settings
	config.MustLoad("or", &s)

	ds := logic.OR()

	fmt.Printf("%s OR gate - %s activation\n", emoji.Chart, s.Model.Activation)
	report.TruthTable(os.Stdout, ds)

	p := ml.NewPerceptron(ds.Features(), s.Model, fpmath.Source(s.Seed)).WithObserver(metrics.Observer)
	metadata := p.Train(ds, s.Epochs)
	if curve := report.Curve(metadata.Loss, "total error per epoch"); curve != "" {
		fmt.Println(curve)
	}

	fmt.Printf("\n%s predictions\n", emoji.Target)
	for _, sample := range ds {
		fmt.Printf("input: %v expected: %s predicted: %s\n",
			sample.Input, fpmath.Format(sample.Target, 0), fpmath.Format(p.Predict(sample.Input), 3))
	}
	evaluation := logic.Evaluate(logic.Single(p.Classify), logic.Cases(ds.X(), ds.Y()))
	report.Comparison(os.Stdout, evaluation)

	weights, bias := p.Weights()
	log.Info().
		Str("id", metadata.ID).
		Str("activation", p.Activation().String()).
		Floats64("weights", weights).
		Float64("bias", bias).
		Float64("trend", metadata.Trend).
		Float64("accuracy", evaluation.Accuracy).
		Msg("trained")

	if s.Metrics {
		if err := metrics.Dump(os.Stdout, prometheus.DefaultGatherer); err != nil {
			log.Error().Err(err).Msg("could not dump metrics")
		}
	}
}
