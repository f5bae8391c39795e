// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package represent

import (
	"go.uber.org/zap"

	"github.com/born-ml/represent/internal/representation"
	"github.com/born-ml/represent/tensor"
)

// Representation is a set of co-shaped, unit-carrying components with
// attached differentials.
type Representation = representation.Representation

// Kind describes the components of a family of representations.
type Kind = representation.Kind

// Component describes one named component of a Kind.
type Component = representation.Component

// Option configures New.
type Option = representation.Option

// Built-in kinds.
var (
	Spherical             = representation.Spherical
	Cartesian             = representation.Cartesian
	SphericalDifferential = representation.SphericalDifferential
	CartesianDifferential = representation.CartesianDifferential
)

// Errors returned by construction and differential attachment.
var (
	ErrComponentCount    = representation.ErrComponentCount
	ErrPhysicalType      = representation.ErrPhysicalType
	ErrLatitudeRange     = representation.ErrLatitudeRange
	ErrDifferentialShape = representation.ErrDifferentialShape
	ErrDifferentialKind  = representation.ErrDifferentialKind
	ErrKindMismatch      = representation.ErrKindMismatch
)

// New builds a representation of the given kind.
//
// Example:
//
//	s, err := represent.New(represent.Spherical, comps, represent.NoCopy())
func New(kind *Kind, comps []Quantity, opts ...Option) (*Representation, error) {
	return representation.New(kind, comps, opts...)
}

// NoCopy makes New use the given arrays directly instead of copying them.
func NoCopy() Option {
	return representation.NoCopy()
}

// WithDifferentials attaches differentials at construction.
func WithDifferentials(diffs ...*Representation) Option {
	return representation.WithDifferentials(diffs...)
}

// SetLogger installs the logger used to report shape-assignment rollbacks.
func SetLogger(l *zap.Logger) {
	representation.SetLogger(l)
}

// Equal reports whether a and b hold the same coordinates and differentials.
func Equal(a, b *Representation) bool {
	return representation.Equal(a, b)
}

// Array-style functions

// Shape returns r's shape.
func Shape(r *Representation) tensor.Shape { return representation.Shape(r) }

// NDim returns r's number of axes.
func NDim(r *Representation) int { return representation.NDim(r) }

// Size returns the number of coordinates in r.
func Size(r *Representation) int { return representation.Size(r) }

// Ravel returns a 1-d representation, viewing contiguous components.
func Ravel(r *Representation) *Representation { return representation.Ravel(r) }

// Copy returns a deep copy of r.
func Copy(r *Representation) *Representation { return representation.Copy(r) }

// SwapAxes exchanges two axes.
func SwapAxes(r *Representation, axis1, axis2 int) (*Representation, error) {
	return representation.SwapAxes(r, axis1, axis2)
}

// Take gathers coordinates by position.
func Take(r *Representation, indices []int, axis ...int) (*Representation, error) {
	return representation.Take(r, indices, axis...)
}

// BroadcastTo returns a read-only view with the given shape.
func BroadcastTo(r *Representation, shape tensor.Shape) (*Representation, error) {
	return representation.BroadcastTo(r, shape)
}

// MoveAxis moves axis src to position dst.
func MoveAxis(r *Representation, src, dst int) (*Representation, error) {
	return representation.MoveAxis(r, src, dst)
}

// RollAxis rolls axis backwards until it lies before start.
func RollAxis(r *Representation, axis, start int) (*Representation, error) {
	return representation.RollAxis(r, axis, start)
}

// FlipLR reverses the second axis.
func FlipLR(r *Representation) (*Representation, error) { return representation.FlipLR(r) }

// FlipUD reverses the first axis.
func FlipUD(r *Representation) (*Representation, error) { return representation.FlipUD(r) }

// Rot90 rotates by 90 degrees k times in the plane of the first two axes.
func Rot90(r *Representation, k int) (*Representation, error) {
	return representation.Rot90(r, k)
}

// Roll shifts coordinates cyclically.
func Roll(r *Representation, shift int, axis ...int) (*Representation, error) {
	return representation.Roll(r, shift, axis...)
}

// Delete removes positions along axis.
func Delete(r *Representation, indices []int, axis int) (*Representation, error) {
	return representation.Delete(r, indices, axis)
}

// AtLeast1D views each representation as at least one-dimensional.
func AtLeast1D(rs ...*Representation) []*Representation { return representation.AtLeast1D(rs...) }

// AtLeast2D views each representation as at least two-dimensional.
func AtLeast2D(rs ...*Representation) []*Representation { return representation.AtLeast2D(rs...) }

// AtLeast3D views each representation as at least three-dimensional.
func AtLeast3D(rs ...*Representation) []*Representation { return representation.AtLeast3D(rs...) }
