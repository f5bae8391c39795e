package representation

import (
	"fmt"

	"github.com/born-ml/represent/internal/tensor"
)

// The functions below mirror the array-level free functions so callers can
// treat a representation like any other array.

// Shape returns r's shape.
func Shape(r *Representation) tensor.Shape { return r.Shape() }

// NDim returns r's number of axes.
func NDim(r *Representation) int { return r.NDim() }

// Size returns the number of coordinates in r.
func Size(r *Representation) int { return r.Size() }

// Ravel is r.Ravel().
func Ravel(r *Representation) *Representation { return r.Ravel() }

// Copy is r.Copy().
func Copy(r *Representation) *Representation { return r.Copy() }

// SwapAxes is r.SwapAxes(axis1, axis2).
func SwapAxes(r *Representation, axis1, axis2 int) (*Representation, error) {
	return r.SwapAxes(axis1, axis2)
}

// Take is r.Take(indices, axis...).
func Take(r *Representation, indices []int, axis ...int) (*Representation, error) {
	return r.Take(indices, axis...)
}

// BroadcastTo is r.BroadcastTo(shape).
func BroadcastTo(r *Representation, shape tensor.Shape) (*Representation, error) {
	return r.BroadcastTo(shape)
}

// MoveAxis is r.MoveAxis(src, dst).
func MoveAxis(r *Representation, src, dst int) (*Representation, error) {
	return r.MoveAxis(src, dst)
}

// RollAxis is r.RollAxis(axis, start).
func RollAxis(r *Representation, axis, start int) (*Representation, error) {
	return r.RollAxis(axis, start)
}

// FlipLR reverses the second axis.
func FlipLR(r *Representation) (*Representation, error) {
	if r.NDim() < 2 {
		return nil, fmt.Errorf("%w: fliplr needs at least 2 dimensions, got %d", tensor.ErrAxisOutOfRange, r.NDim())
	}
	return r.Flip(1)
}

// FlipUD reverses the first axis.
func FlipUD(r *Representation) (*Representation, error) {
	if r.NDim() < 1 {
		return nil, fmt.Errorf("%w: flipud needs at least 1 dimension", tensor.ErrAxisOutOfRange)
	}
	return r.Flip(0)
}

// Rot90 is r.Rot90(k).
func Rot90(r *Representation, k int) (*Representation, error) {
	return r.Rot90(k)
}

// Roll is r.Roll(shift, axis...).
func Roll(r *Representation, shift int, axis ...int) (*Representation, error) {
	return r.Roll(shift, axis...)
}

// Delete is r.Delete(indices, axis).
func Delete(r *Representation, indices []int, axis int) (*Representation, error) {
	return r.Delete(indices, axis)
}

// AtLeast1D views each representation as at least one-dimensional; a 0-d
// representation becomes shape (1,). Results share storage with the inputs.
func AtLeast1D(rs ...*Representation) []*Representation {
	return atLeast(rs, (*tensor.Array).AtLeast1D)
}

// AtLeast2D views each representation as at least two-dimensional.
func AtLeast2D(rs ...*Representation) []*Representation {
	return atLeast(rs, (*tensor.Array).AtLeast2D)
}

// AtLeast3D views each representation as at least three-dimensional; a 2-d
// (M, N) representation becomes (M, N, 1).
func AtLeast3D(rs ...*Representation) []*Representation {
	return atLeast(rs, (*tensor.Array).AtLeast3D)
}

func atLeast(rs []*Representation, fn func(*tensor.Array) *tensor.Array) []*Representation {
	out := make([]*Representation, len(rs))
	for i, r := range rs {
		out[i] = r.applyView(fn)
	}
	return out
}
