package units

import (
	"fmt"

	"github.com/born-ml/represent/internal/tensor"
)

// Quantity is an array of values in a unit.
type Quantity struct {
	Value *tensor.Array
	Unit  Unit
}

// New pairs an array with a unit. The array is not copied.
func New(value *tensor.Array, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// Of builds a quantity of the given shape from values, copying them.
func Of(values []float64, shape tensor.Shape, unit Unit) (Quantity, error) {
	a, err := tensor.FromSlice(values, shape)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: a, Unit: unit}, nil
}

// ScalarOf returns a 0-d quantity.
func ScalarOf(v float64, unit Unit) Quantity {
	return Quantity{Value: tensor.Scalar(v), Unit: unit}
}

// Shape returns the shape of the value array.
func (q Quantity) Shape() tensor.Shape {
	return q.Value.Shape()
}

// To converts the quantity to another unit. When the scale is unchanged the
// result shares q's array; otherwise the values are copied and rescaled.
func (q Quantity) To(unit Unit) (Quantity, error) {
	f, err := q.Unit.ConversionFactor(unit)
	if err != nil {
		return Quantity{}, err
	}
	if f == 1 {
		return Quantity{Value: q.Value, Unit: unit}, nil
	}
	return Quantity{Value: q.Value.Scale(f), Unit: unit}, nil
}

// ValuesIn returns the row-major values converted to unit.
func (q Quantity) ValuesIn(unit Unit) ([]float64, error) {
	c, err := q.To(unit)
	if err != nil {
		return nil, err
	}
	return c.Value.Values(), nil
}

// Apply returns the quantity with fn applied to its array; the unit is kept.
func (q Quantity) Apply(fn func(*tensor.Array) (*tensor.Array, error)) (Quantity, error) {
	v, err := fn(q.Value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: q.Unit}, nil
}

// Equal reports whether both quantities hold the same values once expressed
// in the same unit. Quantities of different dimensions are never equal.
func (q Quantity) Equal(other Quantity) bool {
	if !q.Unit.SameDimension(other.Unit) {
		return false
	}
	c, err := other.To(q.Unit)
	if err != nil {
		return false
	}
	return tensor.AllClose(q.Value, c.Value, 1e-12, 0)
}

// String returns a short description such as "Quantity(6, 7) kpc".
func (q Quantity) String() string {
	return fmt.Sprintf("Quantity%v %s", q.Value.Shape(), q.Unit)
}
