package ml

import (
	fpmath "github.com/drakos74/free-perceptron/internal/math"
	"github.com/rs/zerolog/log"
)

// Observer receives the stats of every training epoch.
type Observer interface {
	Observe(model string, epoch int, loss, accuracy float64)
}

type void struct{}

func (void) Observe(model string, epoch int, loss, accuracy float64) {}

// classify applies the threshold used for accuracy on continuous outputs.
func classify(output float64) int {
	if output > 0.5 {
		return 1
	}
	return 0
}

// finish fills in the loss trend for the run.
func finish(model string, metadata Metadata) Metadata {
	metadata.Epochs = len(metadata.Loss)
	if len(metadata.Loss) > 1 {
		if trend, err := fpmath.Trend(metadata.Loss); err == nil {
			metadata.Trend = trend
		} else {
			log.Error().
				Err(err).
				Str("model", model).
				Str("id", metadata.ID).
				Floats64("loss", metadata.Loss).
				Msg("could not fit loss trend")
		}
	}
	return metadata
}
