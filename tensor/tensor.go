// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/represent/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// ShapeError reports a failed shape change and unwraps to one of the
// sentinel errors below.
type ShapeError = tensor.ShapeError

// Index is one element of a basic-indexing expression.
type Index = tensor.Index

// Errors returned by shape operations.
var (
	ErrSizeMismatch      = tensor.ErrSizeMismatch
	ErrNotRepresentable  = tensor.ErrNotRepresentable
	ErrIndexOutOfRange   = tensor.ErrIndexOutOfRange
	ErrAxisOutOfRange    = tensor.ErrAxisOutOfRange
	ErrIncompatibleShape = tensor.ErrIncompatibleShape
	ErrInvalidShape      = tensor.ErrInvalidShape
)

// Index values.
var (
	All      = tensor.All
	NewAxis  = tensor.NewAxis
	Ellipsis = tensor.Ellipsis
)

// None leaves a Span bound at its default.
const None = tensor.None

// Int selects one position and removes the axis.
func Int(i int) Index {
	return tensor.Int(i)
}

// Span selects start:stop:step. Use None for an omitted bound.
//
// Example:
//
//	a.Index(tensor.Span(tensor.None, tensor.None, -1)) // a[::-1]
func Span(start, stop, step int) Index {
	return tensor.Span(start, stop, step)
}

// Creation functions

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Array {
	return tensor.Zeros(shape)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return tensor.Ones(shape)
}

// Full creates an array filled with a specific value.
func Full(shape Shape, value float64) *Array {
	return tensor.Full(shape, value)
}

// Scalar creates a 0-d array.
func Scalar(v float64) *Array {
	return tensor.Scalar(v)
}

// Arange creates a 1D array with values from start to stop (exclusive).
//
// Example:
//
//	lat := tensor.Arange(-90, 91, 30)  // [-90, -60, ..., 90]
func Arange(start, stop, step float64) *Array {
	return tensor.Arange(start, stop, step)
}

// FromSlice creates an array from a copy of data.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Wrap creates an array over data without copying; writes through the
// array are visible in data.
func Wrap(data []float64, shape Shape) (*Array, error) {
	return tensor.Wrap(data, shape)
}

// Elementwise functions

// Map applies fn elementwise over the broadcast of arrays.
func Map(fn func(vals ...float64) float64, arrays ...*Array) (*Array, error) {
	return tensor.Map(fn, arrays...)
}

// Mul multiplies two arrays elementwise with broadcasting.
func Mul(a, b *Array) (*Array, error) {
	return tensor.Mul(a, b)
}

// Utility functions

// BroadcastShapes computes the shape all inputs broadcast to following NumPy broadcasting rules.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return tensor.BroadcastShapes(shapes...)
}

// BroadcastArrays broadcasts arrays against each other.
func BroadcastArrays(arrays ...*Array) ([]*Array, error) {
	return tensor.BroadcastArrays(arrays...)
}

// MayShareMemory reports whether a and b may refer to the same elements.
func MayShareMemory(a, b *Array) bool {
	return tensor.MayShareMemory(a, b)
}

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *Array) bool {
	return tensor.Equal(a, b)
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|.
func AllClose(a, b *Array, rtol, atol float64) bool {
	return tensor.AllClose(a, b, rtol, atol)
}
