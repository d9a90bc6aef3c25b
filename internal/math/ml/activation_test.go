package ml

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivation(t *testing.T) {

	type test struct {
		input      string
		activation Activation
		err        bool
	}

	tests := map[string]test{
		"step":    {input: "step", activation: Step},
		"sigmoid": {input: "Sigmoid", activation: Sigmoid},
		"relu":    {input: " relu ", activation: ReLU},
		"tanh":    {input: "tanh", activation: TanH},
		"linear":  {input: "linear", activation: Linear},
		"unknown": {input: "softplus", err: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := ParseActivation(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.activation, a)
		})
	}
}

func TestActivation_JSON(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{"rate":0.2,"activation":"tanh","init":0.5}`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, Config{Rate: 0.2, Activation: TanH, Init: 0.5}, cfg)

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rate":0.2,"activation":"tanh","init":0.5}`, string(b))

	err = json.Unmarshal([]byte(`{"activation":"cosine"}`), &cfg)
	assert.Error(t, err)
}

func TestActivation_Func(t *testing.T) {
	assert.Equal(t, 1.0, Step.Func()(0))
	assert.Equal(t, 0.5, Sigmoid.Func()(0))
	assert.Equal(t, 0.0, ReLU.Func()(-1))
	assert.Equal(t, 0.0, TanH.Func()(0))
	assert.Equal(t, -1.0, Linear.Func()(-1))
	assert.Panics(t, func() {
		Activation(42).Func()
	})
	assert.Equal(t, "activation(42)", Activation(42).String())
}
