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
	Seed    uint64        `json:"seed"`
	Metrics bool          `json:"metrics"`
	Model   ml.StepConfig `json:"model"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	var s settings
	config.MustLoad("and", &s)

	ds := logic.AND()

	fmt.Printf("%s AND gate - step activation\n", emoji.Chart)
	report.TruthTable(os.Stdout, ds)

	p := ml.NewStepPerceptron(s.Model, fpmath.Source(s.Seed)).WithObserver(metrics.Observer)
	cfg := p.Config()
	fmt.Printf("\n%s rate=%s epochs=%d noise=%s\n",
		emoji.Tool, fpmath.Format(cfg.Rate, 2), cfg.Epochs, fpmath.Format(cfg.Noise, 2))

	metadata := p.Fit(ds)
	if metadata.EarlyStop {
		metrics.Observer.Stop(ml.StepKey)
		fmt.Printf("%s early stop after %d epochs\n", emoji.Flash, metadata.Epochs)
	}
	if curve := report.Curve(metadata.Loss, "loss per epoch"); curve != "" {
		fmt.Println(curve)
	}

	fmt.Printf("\n%s final results\n", emoji.Target)
	linear := p.Linear(ds.X())
	fmt.Printf("linear outputs: %v %s\n", linear, emoji.Signs(linear))
	final := logic.Evaluate(p, logic.Cases(ds.X(), ds.Y()))
	report.Comparison(os.Stdout, final)
	fmt.Printf("%s final accuracy: %s%%\n", emoji.Up, fpmath.Format(final.Accuracy, 1))

	fmt.Printf("\n%s extended cases\n", emoji.Test)
	report.Comparison(os.Stdout, logic.Evaluate(p, logic.ExtendedAND()))

	fmt.Printf("\n%s real world cases\n", emoji.Globe)
	scenarios := []struct {
		icon     string
		scenario logic.Scenario
	}{
		{icon: emoji.Lock, scenario: logic.SecuritySystem()},
		{icon: emoji.Money, scenario: logic.LoanApproval()},
	}
	for _, sc := range scenarios {
		fmt.Printf("%s %s\n", sc.icon, sc.scenario.Name)
		report.Scenario(os.Stdout, sc.scenario, logic.Evaluate(p, sc.scenario.Cases))
	}
	fmt.Printf("\n%s binary output, suited for linearly separable gates\n", emoji.Idea)

	weights, bias := p.Weights()
	log.Info().
		Str("id", metadata.ID).
		Floats64("weights", weights).
		Float64("bias", bias).
		Float64("trend", metadata.Trend).
		Float64("accuracy", final.Accuracy).
		Msg("trained")

	if s.Metrics {
		if err := metrics.Dump(os.Stdout, prometheus.DefaultGatherer); err != nil {
			log.Error().Err(err).Msg("could not dump metrics")
		}
	}
}
