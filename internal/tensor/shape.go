package tensor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Shape lists the length of each axis. An empty shape is a scalar.
type Shape []int

// NumElements returns the product of the axis lengths; 1 for a scalar.
func (s Shape) NumElements() int {
	n := 1
	for _, length := range s {
		n *= length
	}
	return n
}

// Validate rejects negative axis lengths.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(length int) bool { return length < 0 }); i >= 0 {
		return fmt.Errorf("%w: axis %d has length %d", ErrInvalidShape, i, s[i])
	}
	return nil
}

// Equal reports whether both shapes have the same axes.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy that does not alias s. A nil shape clones to an
// empty one.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// String formats the shape as a tuple, e.g. (6, 7) or (42,).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, length := range s {
		parts[i] = strconv.Itoa(length)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ComputeStrides returns C-order element strides. Zero-length axes count
// as length 1 so strides stay positive.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= max(s[i], 1)
	}
	return strides
}

// Resolve replaces a single -1 entry with the dimension that keeps the
// element count equal to n. Other negative entries are rejected.
func (s Shape) Resolve(n int) (Shape, error) {
	out := s.Clone()
	unknown := -1
	known := 1
	for i, dim := range out {
		switch {
		case dim == -1 && unknown < 0:
			unknown = i
		case dim < 0:
			return nil, fmt.Errorf("%w: %v", ErrInvalidShape, s)
		default:
			known *= dim
		}
	}
	if unknown >= 0 {
		if known == 0 || n%known != 0 {
			return nil, fmt.Errorf("%w: cannot reshape %d elements into %v", ErrSizeMismatch, n, s)
		}
		out[unknown] = n / known
	}
	if out.NumElements() != n {
		return nil, fmt.Errorf("%w: cannot reshape %d elements into %v", ErrSizeMismatch, n, out)
	}
	return out, nil
}

// BroadcastShapes returns the shape every input broadcasts to. Shapes are
// aligned on their trailing axes; a missing or length-1 axis stretches to
// match the others.
//
//	(6, 1) and (7,)    -> (6, 7)
//	(3, 1, 7) and (2, 1) -> (3, 2, 7)
//	(3, 4) and (3, 5)  -> ErrIncompatibleShape
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	ndim := 0
	for _, s := range shapes {
		ndim = max(ndim, len(s))
	}
	out := make(Shape, ndim)
	for i := range out {
		out[i] = 1
	}
	for _, s := range shapes {
		pad := ndim - len(s)
		for i, length := range s {
			switch cur := out[pad+i]; {
			case length == cur || length == 1:
			case cur == 1:
				out[pad+i] = length
			default:
				return nil, fmt.Errorf("%w: cannot broadcast %v against %v", ErrIncompatibleShape, s, shapes)
			}
		}
	}
	return out, nil
}

// normalizeAxis maps a possibly negative axis onto [0, ndim).
func normalizeAxis(axis, ndim int) (int, error) {
	if axis < -ndim || axis >= ndim {
		return 0, fmt.Errorf("%w: axis %d for array of dimension %d", ErrAxisOutOfRange, axis, ndim)
	}
	if axis < 0 {
		axis += ndim
	}
	return axis, nil
}
