package ml

import (
	"fmt"
	"strings"

	fpmath "github.com/drakos74/free-perceptron/internal/math"
)

// Activation enumerates the supported activation functions.
type Activation int

const (
	Step Activation = iota
	Sigmoid
	ReLU
	TanH
	Linear
)

var activationNames = map[Activation]string{
	Step:    "step",
	Sigmoid: "sigmoid",
	ReLU:    "relu",
	TanH:    "tanh",
	Linear:  "linear",
}

// Func returns the activation function.
func (a Activation) Func() func(float64) float64 {
	switch a {
	case Sigmoid:
		return fpmath.Sigmoid
	case ReLU:
		return fpmath.ReLU
	case TanH:
		return fpmath.Tanh
	case Linear:
		return fpmath.Linear
	case Step:
		return fpmath.Step
	}
	panic(fmt.Sprintf("unknown activation: %d", int(a)))
}

func (a Activation) String() string {
	if name, ok := activationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("activation(%d)", int(a))
}

// ParseActivation parses the activation name.
func ParseActivation(s string) (Activation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range activationNames {
		if n == name {
			return a, nil
		}
	}
	return Step, fmt.Errorf("unknown activation '%s'", s)
}

func (a Activation) MarshalText() ([]byte, error) {
	if _, ok := activationNames[a]; !ok {
		return nil, fmt.Errorf("unknown activation: %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Activation) UnmarshalText(text []byte) error {
	activation, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = activation
	return nil
}
