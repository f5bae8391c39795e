package tensor

import (
	"fmt"

	"github.com/born-ml/represent/internal/parallel"
)

// Copy creates a deep copy of the array. The copy is C-contiguous, writable
// and has no virtual axes, even when a was broadcast.
func (a *Array) Copy() *Array {
	out := newContiguous(a.shape)
	a.each(func(i, off int) {
		out.buf.data[i] = a.buf.data[off]
	})
	return out
}

// Flatten returns a 1-d copy of the array. It always copies.
func (a *Array) Flatten() *Array {
	out := a.Copy()
	out.shape = Shape{out.Size()}
	out.stride = []int{1}
	out.virtual = []bool{false}
	return out
}

// Scale returns a copy with every element multiplied by f.
func (a *Array) Scale(f float64) *Array {
	out := a.Copy()
	for i := range out.buf.data {
		out.buf.data[i] *= f
	}
	return out
}

func resolveIndex(i, n, axis int) (int, error) {
	pos := i
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return 0, fmt.Errorf("%w: index %d is out of bounds for axis %d with size %d", ErrIndexOutOfRange, i, axis, n)
	}
	return pos, nil
}

// Take gathers elements by position and always copies. Without an axis the
// array is treated as flattened and the result has shape (len(indices),);
// with an axis, that axis is replaced by the gathered positions.
//
// Example:
//
//	a.Take([]int{5, 2})    // Elements 5 and 2 of a.Ravel()
//	a.Take([]int{0, 0}, 1) // Column 0 twice
func (a *Array) Take(indices []int, axis ...int) (*Array, error) {
	if len(axis) == 0 {
		flat := a.Values()
		out := newContiguous(Shape{len(indices)})
		for i, idx := range indices {
			pos, err := resolveIndex(idx, len(flat), 0)
			if err != nil {
				return nil, err
			}
			out.buf.data[i] = flat[pos]
		}
		return out, nil
	}
	ax, err := normalizeAxis(axis[0], a.NDim())
	if err != nil {
		return nil, err
	}
	positions := make([]int, len(indices))
	for i, idx := range indices {
		if positions[i], err = resolveIndex(idx, a.shape[ax], ax); err != nil {
			return nil, err
		}
	}
	return a.gather(ax, positions), nil
}

// gather builds a contiguous copy whose axis ax holds a's positions in order.
func (a *Array) gather(ax int, positions []int) *Array {
	shape := a.Shape()
	shape[ax] = len(positions)
	out := newContiguous(shape)
	idx := make([]int, len(shape))
	src := make([]int, len(shape))
	for i := range out.buf.data {
		rem := i
		for d := len(shape) - 1; d >= 0; d-- {
			if shape[d] > 0 {
				idx[d] = rem % shape[d]
				rem /= shape[d]
			}
		}
		copy(src, idx)
		src[ax] = positions[idx[ax]]
		out.buf.data[i] = a.At(src...)
	}
	return out
}

// Roll shifts elements cyclically along axis; elements pushed past the end
// reappear at the start. Without an axis the flattened array is rolled and
// the original shape restored. Always copies.
func (a *Array) Roll(shift int, axis ...int) (*Array, error) {
	if len(axis) == 0 {
		flat := a.Flatten()
		rolled, err := flat.Roll(shift, 0)
		if err != nil {
			return nil, err
		}
		return rolled.ReshapeView(a.shape...)
	}
	ax, err := normalizeAxis(axis[0], a.NDim())
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	if n == 0 {
		return a.Copy(), nil
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = (((i - shift) % n) + n) % n
	}
	return a.gather(ax, positions), nil
}

// Delete removes the given positions along axis. Always copies.
func (a *Array) Delete(indices []int, axis int) (*Array, error) {
	ax, err := normalizeAxis(axis, a.NDim())
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		pos, err := resolveIndex(idx, n, ax)
		if err != nil {
			return nil, err
		}
		drop[pos] = true
	}
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return a.gather(ax, keep), nil
}

var kernelConfig = parallel.DefaultConfig()

// Map applies fn elementwise over the broadcast of arrays and returns a new
// contiguous array. fn receives one value per input array. Large arrays are
// split across goroutines, so fn must be safe for concurrent use.
func Map(fn func(vals ...float64) float64, arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("%w: map needs at least one array", ErrInvalidShape)
	}
	views, err := BroadcastArrays(arrays...)
	if err != nil {
		return nil, err
	}
	cols := make([][]float64, len(views))
	for i, v := range views {
		cols[i] = v.Values()
	}
	out := newContiguous(views[0].shape)
	parallel.For(len(out.buf.data), kernelConfig, func(lo, hi int) {
		args := make([]float64, len(cols))
		for i := lo; i < hi; i++ {
			for j := range cols {
				args[j] = cols[j][i]
			}
			out.buf.data[i] = fn(args...)
		}
	})
	return out, nil
}

// Mul multiplies two arrays elementwise with broadcasting.
func Mul(a, b *Array) (*Array, error) {
	return Map(func(v ...float64) float64 { return v[0] * v[1] }, a, b)
}
