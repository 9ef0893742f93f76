package grid

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidTiming = errors.New("invalid timing value")

// Quantize maps a beat offset or duration onto the grid of the given unit,
// rounding half to even. Non-finite or negative values are rejected.
func Quantize(value float64, unit float64) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTiming, value)
	}
	return int(math.RoundToEven(value / unit)), nil
}
