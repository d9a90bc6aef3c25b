package ml

import (
	"math"

	fpmath "github.com/drakos74/free-perceptron/internal/math"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const PerceptronKey = "perceptron"

// Config holds the hyper-parameters of a Perceptron.
type Config struct {
	Rate       float64    `json:"rate"`
	Activation Activation `json:"activation"`
	// Init is the half width of the range for the initial weights and bias.
	Init float64 `json:"init"`
}

// DefaultConfig returns the config of the OR gate demo.
func DefaultConfig() Config {
	return Config{
		Rate:       0.1,
		Activation: Step,
		Init:       1,
	}
}

// Perceptron is a single neuron with a configurable activation, trained with the delta rule.
// NOTE : the update is rate * error * input for every activation,
// which is only the textbook rule for step and sigmoid.
type Perceptron struct {
	weights    xmath.Vector
	bias       float64
	rate       float64
	activation Activation
	activate   func(float64) float64
	observer   Observer
}

// NewPerceptron creates a perceptron for the given input size with random weights drawn from src.
func NewPerceptron(size int, cfg Config, src rand.Source) *Perceptron {
	initial := fpmath.NewUniform(cfg.Init, src)
	return &Perceptron{
		weights:    initial.Vector(size),
		bias:       initial.Rand(),
		rate:       cfg.Rate,
		activation: cfg.Activation,
		activate:   cfg.Activation.Func(),
		observer:   void{},
	}
}

// WithWeights overrides the initial weights and bias.
func (p *Perceptron) WithWeights(weights []float64, bias float64) *Perceptron {
	p.weights = xmath.Vec(len(weights)).With(weights...)
	p.bias = bias
	return p
}

// WithObserver registers an observer for the training epochs.
func (p *Perceptron) WithObserver(observer Observer) *Perceptron {
	if observer != nil {
		p.observer = observer
	}
	return p
}

// Predict applies the activation on the weighted sum of the inputs.
func (p *Perceptron) Predict(inputs []float64) float64 {
	return p.activate(p.weights.Dot(inputs) + p.bias)
}

// Classify maps the prediction to a binary label.
func (p *Perceptron) Classify(inputs []float64) int {
	return classify(p.Predict(inputs))
}

// Train runs the delta rule for the given number of epochs, one update per sample.
func (p *Perceptron) Train(data Dataset, epochs int) Metadata {
	metadata := NewMetadata(len(data))
	for epoch := 0; epoch < epochs; epoch++ {
		var loss float64
		var correct int
		for _, sample := range data {
			prediction := p.Predict(sample.Input)
			e := sample.Target - prediction
			loss += math.Abs(e)
			if float64(classify(prediction)) == sample.Target {
				correct++
			}
			for i := range p.weights {
				p.weights[i] += p.rate * e * sample.Input[i]
			}
			p.bias += p.rate * e
		}
		acc := accuracy(correct, len(data))
		metadata.Loss = append(metadata.Loss, loss)
		metadata.Accuracy = acc
		p.observer.Observe(PerceptronKey, epoch, loss, acc)
		log.Info().
			Str("model", PerceptronKey).
			Str("activation", p.activation.String()).
			Int("epoch", epoch+1).
			Float64("loss", loss).
			Float64("accuracy", acc).
			Msg("epoch")
	}
	return finish(PerceptronKey, metadata)
}

// Weights returns a copy of the current weights and the bias.
func (p *Perceptron) Weights() ([]float64, float64) {
	return p.weights.Copy(), p.bias
}

// Activation returns the activation the perceptron was built with.
func (p *Perceptron) Activation() Activation {
	return p.activation
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
