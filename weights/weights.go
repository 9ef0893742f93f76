package weights

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var ErrInvalidWeightData = errors.New("invalid weight data")

// Layer is the capability every exportable layer must provide: its trainable
// parameters as ordered, already row-major-flattened groups (e.g. kernel
// before bias, in framework declaration order).
type Layer interface {
	ParameterGroups() [][]float64
}

// StaticLayer holds parameter groups loaded from a training dump.
type StaticLayer struct {
	Groups [][]float64
}

func (l StaticLayer) ParameterGroups() [][]float64 {
	return l.Groups
}

// Pack concatenates every weight of every layer, in layer then group order,
// into one buffer of little-endian float32 values. No shape or boundary
// metadata goes into the buffer; cutting it back into tensors requires the
// layer config plus knowledge of each kind's parameter shapes.
func Pack(layers []Layer) ([]byte, error) {
	buf := new(bytes.Buffer)
	for i, layer := range layers {
		for _, group := range layer.ParameterGroups() {
			for _, value := range group {
				if math.IsNaN(value) || math.IsInf(value, 0) {
					return nil, fmt.Errorf("%w: layer %v holds non-finite value %v", ErrInvalidWeightData, i, value)
				}
				if err := binary.Write(buf, binary.LittleEndian, float32(value)); err != nil {
					return nil, err
				}
			}
		}
	}
	return buf.Bytes(), nil
}

// Flatten walks arbitrarily nested numeric arrays, as decoded from JSON, in
// row-major order and returns one flat slice.
func Flatten(value any) ([]float64, error) {
	var out []float64
	if err := flattenInto(value, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(value any, out *[]float64) error {
	switch v := value.(type) {
	case float64:
		*out = append(*out, v)
	case []any:
		for _, element := range v {
			if err := flattenInto(element, out); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unexpected element of type %T", ErrInvalidWeightData, value)
	}
	return nil
}
