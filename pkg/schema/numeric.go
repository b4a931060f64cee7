package schema

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned for numeric bounds that cannot describe an
/// interval: min greater than max, or a non-finite endpoint.
var ErrInvalidRange = errors.New("schema: invalid numeric range")

// NumericRange bounds the values a numeric field accepts, inclusive on both
// ends. Min == Max pins the field to a single value.
type NumericRange struct {
	Min float64
	Max float64
}

// NewNumericRange validates the bounds at declaration time.
func NewNumericRange(min, max float64) (NumericRange, error) {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return NumericRange{}, fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidRange, min, max)
	}
	if min > max {
		return NumericRange{}, fmt.Errorf("%w: min %v exceeds max %v", ErrInvalidRange, min, max)
	}
	return NumericRange{Min: min, Max: max}, nil
}

// Contains reports whether value falls inside the range.
func (r NumericRange) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}
