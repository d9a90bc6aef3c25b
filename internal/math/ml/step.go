package ml

import (
	"math"

	fpmath "github.com/drakos74/free-perceptron/internal/math"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

const StepKey = "step"

// StepConfig holds the hyper-parameters of a StepPerceptron.
type StepConfig struct {
	Rate   float64 `json:"rate"`
	Epochs int     `json:"epochs"`
	// Init is the half width of the range for the initial weights and bias.
	Init float64 `json:"init"`
	// Noise is the half width of the perturbation added to every weight and bias update.
	Noise float64 `json:"noise"`
	// Patience is the number of trailing epochs where early stopping may kick in.
	Patience int `json:"patience"`
	// Accuracy is the percentage an epoch must exceed for early stopping.
	Accuracy float64 `json:"accuracy"`
	LogEvery int     `json:"log_every"`
}

// DefaultStepConfig returns the config of the AND gate demo, without noise.
func DefaultStepConfig() StepConfig {
	return StepConfig{
		Rate:     0.1,
		Epochs:   15,
		Init:     0.3,
		Noise:    0,
		Patience: 4,
		Accuracy: 85,
		LogEvery: 3,
	}
}

// StepPerceptron is a perceptron with a step activation and early stopping.
type StepPerceptron struct {
	cfg      StepConfig
	weights  xmath.Vector
	bias     float64
	initial  fpmath.Uniform
	noise    fpmath.Uniform
	observer Observer
}

// NewStepPerceptron creates a new step perceptron. Weights are drawn when fitting.
func NewStepPerceptron(cfg StepConfig, src rand.Source) *StepPerceptron {
	if src == nil {
		src = fpmath.Source(0)
	}
	return &StepPerceptron{
		cfg:      cfg,
		initial:  fpmath.NewUniform(cfg.Init, src),
		noise:    fpmath.NewUniform(cfg.Noise, src),
		observer: void{},
	}
}

// WithObserver registers an observer for the training epochs.
func (p *StepPerceptron) WithObserver(observer Observer) *StepPerceptron {
	if observer != nil {
		p.observer = observer
	}
	return p
}

// Fit trains the perceptron on the dataset.
// It stops early once an epoch within the last Patience epochs exceeds the accuracy threshold.
func (p *StepPerceptron) Fit(ds Dataset) Metadata {
	features := ds.Features()
	p.weights = p.initial.Vector(features)
	p.bias = p.initial.Rand()

	log.Info().
		Str("model", StepKey).
		Float64("rate", p.cfg.Rate).
		Int("epochs", p.cfg.Epochs).
		Float64("init", p.initial.Amplitude()).
		Float64("noise", p.noise.Amplitude()).
		Int("features", features).
		Int("samples", len(ds)).
		Msg("fit")

	metadata := NewMetadata(len(ds))
	earlyStop := p.cfg.Epochs - p.cfg.Patience

	for epoch := 0; epoch < p.cfg.Epochs; epoch++ {
		var loss float64
		var correct int
		for _, sample := range ds {
			prediction := fpmath.Step(p.weights.Dot(sample.Input) + p.bias)
			e := sample.Target - prediction
			loss += math.Abs(e)
			if prediction == sample.Target {
				correct++
			}
			for i := range p.weights {
				p.weights[i] += p.cfg.Rate*e*sample.Input[i] + p.noise.Rand()
			}
			p.bias += p.cfg.Rate*e + p.noise.Rand()
		}

		acc := accuracy(correct, len(ds))
		metadata.Loss = append(metadata.Loss, loss)
		metadata.Accuracy = acc
		p.observer.Observe(StepKey, epoch, loss, acc)

		if (p.cfg.LogEvery > 0 && epoch%p.cfg.LogEvery == 0) || epoch == p.cfg.Epochs-1 {
			log.Info().
				Str("model", StepKey).
				Int("epoch", epoch).
				Float64("loss", loss).
				Float64("accuracy", acc).
				Floats64("linear", p.Linear(ds.X())).
				Msg("epoch")
		}

		if epoch >= earlyStop && acc > p.cfg.Accuracy {
			log.Info().
				Str("model", StepKey).
				Int("epoch", epoch).
				Float64("accuracy", acc).
				Msg("early stop")
			metadata.EarlyStop = true
			break
		}
	}
	return finish(StepKey, metadata)
}

// Linear returns the weighted sum plus bias for every row of x.
func (p *StepPerceptron) Linear(x [][]float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	cols := len(p.weights)
	data := make([]float64, 0, len(x)*cols)
	for _, row := range x {
		xmath.MustHaveSize(row, cols)
		data = append(data, row...)
	}

	var out mat.VecDense
	out.MulVec(mat.NewDense(len(x), cols, data), mat.NewVecDense(cols, p.weights))

	linear := make([]float64, len(x))
	for i := range linear {
		linear[i] = out.AtVec(i) + p.bias
	}
	return linear
}

// Predict returns the binary output for every row of x.
func (p *StepPerceptron) Predict(x [][]float64) []int {
	linear := p.Linear(x)
	predictions := make([]float64, len(linear))
	for i, l := range linear {
		predictions[i] = fpmath.Step(l)
	}
	log.Debug().
		Str("model", StepKey).
		Floats64("linear", linear).
		Floats64("predictions", predictions).
		Msg("predict")
	return fpmath.ToInt(predictions)
}

// Weights returns a copy of the current weights and the bias.
func (p *StepPerceptron) Weights() ([]float64, float64) {
	return p.weights.Copy(), p.bias
}

// Config returns the hyper-parameters.
func (p *StepPerceptron) Config() StepConfig {
	return p.cfg
}
