package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0.00",
		},
		"-1": {
			input:  -1,
			output: "-1.00",
		},
		"+1": {
			input:  1,
			output: "1.00",
		},
		"5": {
			input:  1.5555,
			output: "1.56",
		},
		"4": {
			input:  1.4444,
			output: "1.44",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Format(tt.input, 2)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestConversions(t *testing.T) {
	assert.Equal(t, []int{0, 1, 1}, ToInt([]float64{0, 1, 1}))
	assert.Equal(t, []int{0, 1, 1, 0}, Round([]float64{0.1, 0.9, 0.6, 0.4}))
}
