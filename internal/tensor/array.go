// Package tensor provides the strided float64 array engine underneath
// coordinate representations.
package tensor

import (
	"fmt"
	"math"
)

// storage is the flat buffer shared by an array and all of its views.
type storage struct {
	data []float64
}

// Array is a strided view onto shared storage.
//
// Axes created by broadcasting are marked virtual: they have stride 0 and no
// storage of their own, so materializing them always needs a copy. Views made
// by broadcasting are read-only, as is every view derived from them.
type Array struct {
	buf      *storage
	shape    Shape
	stride   []int // Element strides (row-major for fresh arrays, may be negative)
	virtual  []bool
	offset   int
	readOnly bool
}

// newContiguous allocates a zeroed, C-contiguous array.
func newContiguous(shape Shape) *Array {
	return &Array{
		buf:     &storage{data: make([]float64, shape.NumElements())},
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
		virtual: make([]bool, len(shape)),
	}
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's storage.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	a, err := Wrap(append([]float64(nil), data...), shape)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Wrap creates an array that uses data as its storage without copying.
//
// WARNING: later writes to data are visible through the array and its views.
func Wrap(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrSizeMismatch, shape, shape.NumElements(), len(data))
	}
	return &Array{
		buf:     &storage{data: data},
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
		virtual: make([]bool, len(shape)),
	}, nil
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Array {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newContiguous(shape)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return Full(shape, 1)
}

// Full creates an array filled with a specific value.
func Full(shape Shape, value float64) *Array {
	a := Zeros(shape)
	for i := range a.buf.data {
		a.buf.data[i] = value
	}
	return a
}

// Scalar creates a 0-d array holding v.
func Scalar(v float64) *Array {
	a := newContiguous(Shape{})
	a.buf.data[0] = v
	return a
}

// Arange returns evenly spaced values in [start, stop) as a 1-d array.
func Arange(start, stop, step float64) *Array {
	if step == 0 {
		panic("arange: step must be non-zero")
	}
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	a := newContiguous(Shape{n})
	for i := range a.buf.data {
		a.buf.data[i] = start + float64(i)*step
	}
	return a
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns the array's element strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.stride...)
}

// Virtual reports, per axis, whether the axis was produced by broadcasting.
func (a *Array) Virtual() []bool {
	return append([]bool(nil), a.virtual...)
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// IsReadOnly reports whether writes through this array are rejected.
func (a *Array) IsReadOnly() bool {
	return a.readOnly
}

// HasVirtualAxes reports whether any axis has no storage behind it.
func (a *Array) HasVirtualAxes() bool {
	for i, v := range a.virtual {
		if v && a.shape[i] > 1 {
			return true
		}
	}
	return false
}

// IsContiguous reports whether the elements are laid out in row-major order
// without gaps. Length-1 axes are ignored.
func (a *Array) IsContiguous() bool {
	if a.Size() == 0 {
		return true
	}
	expected := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.virtual[i] || a.stride[i] != expected {
			return false
		}
		expected *= a.shape[i]
	}
	return true
}

// view builds an array sharing a's storage. The read-only flag is inherited.
func (a *Array) view(shape Shape, stride []int, virtual []bool, offset int) *Array {
	return &Array{
		buf:      a.buf,
		shape:    shape,
		stride:   stride,
		virtual:  virtual,
		offset:   offset,
		readOnly: a.readOnly,
	}
}

// flatOffset converts indices to a storage offset.
// Panics if indices are out of bounds.
func (a *Array) flatOffset(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	offset := a.offset
	for i, idx := range indices {
		if idx < 0 {
			idx += a.shape[i]
		}
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", indices[i], i, a.shape[i]))
		}
		offset += idx * a.stride[i]
	}
	return offset
}

// At returns the element at the given indices. Negative indices count from
// the end of their axis.
// Panics if indices are out of bounds.
//
// Example:
//
//	a := tensor.Zeros(tensor.Shape{3, 4})
//	value := a.At(1, 2) // Row 1, column 2
func (a *Array) At(indices ...int) float64 {
	return a.buf.data[a.flatOffset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds or the array is read-only.
func (a *Array) Set(value float64, indices ...int) {
	if a.readOnly {
		panic("assignment destination is read-only")
	}
	a.buf.data[a.flatOffset(indices)] = value
}

// Item returns the value of a single-element array.
// Panics if the array holds more than one element.
func (a *Array) Item() float64 {
	if a.Size() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element arrays, got shape %v", a.shape))
	}
	return a.buf.data[a.offset]
}

// each calls fn for every element in row-major order with the element's
// position and storage offset.
func (a *Array) each(fn func(i, off int)) {
	n := a.Size()
	if n == 0 {
		return
	}
	nd := len(a.shape)
	idx := make([]int, nd)
	off := a.offset
	for i := 0; i < n; i++ {
		fn(i, off)
		for d := nd - 1; d >= 0; d-- {
			idx[d]++
			off += a.stride[d]
			if idx[d] < a.shape[d] {
				break
			}
			off -= idx[d] * a.stride[d]
			idx[d] = 0
		}
	}
}

// Values returns the elements in row-major order as a new slice.
func (a *Array) Values() []float64 {
	out := make([]float64, a.Size())
	a.each(func(i, off int) {
		out[i] = a.buf.data[off]
	})
	return out
}

// extent returns the inclusive range of storage offsets the array can touch.
// ok is false for empty arrays.
func (a *Array) extent() (lo, hi int, ok bool) {
	lo, hi = a.offset, a.offset
	for i, dim := range a.shape {
		if dim == 0 {
			return 0, 0, false
		}
		span := (dim - 1) * a.stride[i]
		if span < 0 {
			lo += span
		} else {
			hi += span
		}
	}
	return lo, hi, true
}

// MayShareMemory reports whether a and b could refer to the same elements:
// they share storage and their offset ranges overlap.
func MayShareMemory(a, b *Array) bool {
	if a == nil || b == nil || a.buf != b.buf {
		return false
	}
	aLo, aHi, aOK := a.extent()
	bLo, bHi, bOK := b.extent()
	if !aOK || !bOK {
		return false
	}
	return aLo <= bHi && bLo <= aHi
}

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *Array) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	av, bv := a.Values(), b.Values()
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|.
func AllClose(a, b *Array, rtol, atol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	av, bv := a.Values(), b.Values()
	for i := range av {
		if math.Abs(av[i]-bv[i]) > atol+rtol*math.Abs(bv[i]) {
			return false
		}
	}
	return true
}

// String returns a short human-readable description of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array%v strides=%v", a.shape, a.stride)
}
