package ml

import (
	"fmt"

	"github.com/google/uuid"
)

// Sample is a single training example.
type Sample struct {
	Input  []float64
	Target float64
}

// Dataset is an ordered set of samples.
type Dataset []Sample

// NewDataset pairs the given inputs with their targets.
func NewDataset(x [][]float64, y []float64) (Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("inputs and targets must have the same size: %d vs %d", len(x), len(y))
	}
	ds := make(Dataset, len(x))
	for i := range x {
		ds[i] = Sample{
			Input:  x[i],
			Target: y[i],
		}
	}
	return ds, nil
}

// X returns the inputs.
func (ds Dataset) X() [][]float64 {
	xx := make([][]float64, len(ds))
	for i, s := range ds {
		xx[i] = s.Input
	}
	return xx
}

// Y returns the targets.
func (ds Dataset) Y() []float64 {
	yy := make([]float64, len(ds))
	for i, s := range ds {
		yy[i] = s.Target
	}
	return yy
}

// Features returns the input size of the dataset.
func (ds Dataset) Features() int {
	if len(ds) == 0 {
		return 0
	}
	return len(ds[0].Input)
}

// Metadata summarises a training run.
type Metadata struct {
	ID        string
	Samples   int
	Epochs    int
	Accuracy  float64
	Loss      []float64
	Trend     float64
	EarlyStop bool
}

func NewMetadata(samples int) Metadata {
	return Metadata{
		ID:      uuid.New().String(),
		Samples: samples,
		Loss:    make([]float64, 0),
	}
}

// LastLoss returns the loss of the last epoch.
func (m Metadata) LastLoss() float64 {
	if len(m.Loss) == 0 {
		return 0
	}
	return m.Loss[len(m.Loss)-1]
}
