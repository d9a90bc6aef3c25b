package math

import (
	"math"
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// ToInt converts the given binary outputs to ints.
func ToInt(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(f)
	}
	return ii
}

// Round rounds the values to the nearest integer, useful for displaying noisy inputs as gate inputs.
func Round(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(math.Round(f))
	}
	return ii
}
