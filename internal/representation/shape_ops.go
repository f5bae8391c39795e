package representation

import (
	"github.com/born-ml/represent/internal/tensor"
)

// Ravel returns a 1-d representation. Components that are already contiguous
// are viewed; the rest, including every broadcast component, are copied.
func (r *Representation) Ravel() *Representation {
	return r.applyView((*tensor.Array).Ravel)
}

// Flatten returns a 1-d copy. It never shares storage with r.
func (r *Representation) Flatten() *Representation {
	return r.applyView((*tensor.Array).Flatten)
}

// Copy returns a deep copy of r and all its differentials.
func (r *Representation) Copy() *Representation {
	return r.applyView((*tensor.Array).Copy)
}

// T returns the view with axes reversed.
func (r *Representation) T() *Representation {
	return r.applyView((*tensor.Array).T)
}

// Transpose permutes the axes; without arguments the order is reversed.
// The result is a view.
func (r *Representation) Transpose(axes ...int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Transpose(axes...) })
}

// SwapAxes exchanges two axes. The result is a view.
func (r *Representation) SwapAxes(axis1, axis2 int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.SwapAxes(axis1, axis2) })
}

// MoveAxis moves axis src to position dst. The result is a view.
func (r *Representation) MoveAxis(src, dst int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.MoveAxis(src, dst) })
}

// RollAxis rolls axis backwards until it lies before start. The result is a view.
func (r *Representation) RollAxis(axis, start int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.RollAxis(axis, start) })
}

// Diagonal returns the view of the diagonal in the plane of axis1 and axis2.
func (r *Representation) Diagonal(offset, axis1, axis2 int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Diagonal(offset, axis1, axis2) })
}

// Reshape returns a representation with the given shape. Each component is
// viewed when its layout allows it and copied otherwise, so within one call
// broadcast components may be copied while others stay shared.
func (r *Representation) Reshape(shape ...int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Reshape(shape...) })
}

// Squeeze removes length-1 axes (all, or only the given ones). The result is a view.
func (r *Representation) Squeeze(axes ...int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Squeeze(axes...) })
}

// ExpandDims inserts a length-1 axis at axis. The result is a view.
func (r *Representation) ExpandDims(axis int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.ExpandDims(axis) })
}

// Index applies a basic-indexing expression to every component and
// differential. The result is a view.
//
// Example:
//
//	r.Index(tensor.All, tensor.NewAxis, tensor.All) // (6, 7) -> (6, 1, 7)
func (r *Representation) Index(idx ...tensor.Index) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Index(idx...) })
}

// Take gathers coordinates by position and always copies. Without an axis,
// positions index the flattened representation.
func (r *Representation) Take(indices []int, axis ...int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Take(indices, axis...) })
}

// BroadcastTo returns a read-only view with the given shape.
func (r *Representation) BroadcastTo(shape tensor.Shape) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.BroadcastTo(shape) })
}

// Flip reverses the order of coordinates along axis. The result is a view.
func (r *Representation) Flip(axis int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Flip(axis) })
}

// Rot90 rotates by 90 degrees k times in the plane of the first two axes.
// The result is a view.
func (r *Representation) Rot90(k int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Rot90(k) })
}

// Roll shifts coordinates cyclically along axis, or over the flattened
// representation when no axis is given. Always copies.
func (r *Representation) Roll(shift int, axis ...int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Roll(shift, axis...) })
}

// Delete removes the given positions along axis. Always copies.
func (r *Representation) Delete(indices []int, axis int) (*Representation, error) {
	return r.apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Delete(indices, axis) })
}
