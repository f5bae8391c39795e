package tensor

import (
	"errors"
	"fmt"
)

// reshapeStrides tries to express newShape as a view of a without moving data.
//
// Old and new axes are grouped so that each group covers the same number of
// elements. A group of old axes can be merged when all of them are virtual
// (every element aliases one value) or none of them are and their strides
// chain in row-major order. New axes inherit the group's virtual flag.
// Length-1 old axes are dropped first since their stride is irrelevant.
func (a *Array) reshapeStrides(newShape Shape) (stride []int, virtual []bool, ok bool) {
	var oldDims, oldStrides []int
	var oldVirtual []bool
	for i, dim := range a.shape {
		if dim != 1 {
			oldDims = append(oldDims, dim)
			oldStrides = append(oldStrides, a.stride[i])
			oldVirtual = append(oldVirtual, a.virtual[i])
		}
	}

	stride = make([]int, len(newShape))
	virtual = make([]bool, len(newShape))

	if a.Size() == 0 {
		copy(stride, newShape.ComputeStrides())
		return stride, virtual, true
	}

	oi, oj := 0, 1
	ni, nj := 0, 1
	for ni < len(newShape) && oi < len(oldDims) {
		np, op := newShape[ni], oldDims[oi]
		for np != op {
			if np < op {
				np *= newShape[nj]
				nj++
			} else {
				op *= oldDims[oj]
				oj++
			}
		}

		groupVirtual := oldVirtual[oi]
		for k := oi; k < oj-1; k++ {
			if oldVirtual[k+1] != groupVirtual {
				return nil, nil, false
			}
			if !groupVirtual && oldDims[k+1]*oldStrides[k+1] != oldStrides[k] {
				return nil, nil, false
			}
		}

		stride[nj-1] = oldStrides[oj-1]
		for nk := nj - 1; nk > ni; nk-- {
			stride[nk-1] = stride[nk] * newShape[nk]
		}
		for nk := ni; nk < nj; nk++ {
			virtual[nk] = groupVirtual && newShape[nk] != 1
		}

		ni = nj
		nj++
		oi = oj
		oj++
	}

	// Trailing length-1 axes.
	last := 1
	if ni > 0 {
		last = stride[ni-1]
	}
	for nk := ni; nk < len(newShape); nk++ {
		stride[nk] = last
	}
	return stride, virtual, true
}

// resolveShape validates a requested shape against a's element count.
func (a *Array) resolveShape(op string, shape Shape) (Shape, error) {
	resolved, err := shape.Resolve(a.Size())
	if err != nil {
		return nil, &ShapeError{Op: op, From: a.Shape(), To: shape.Clone(), Err: unwrapSentinel(err)}
	}
	return resolved, nil
}

// ReshapeView returns a view of a with the given shape, or ErrNotRepresentable
// if the shape cannot be expressed over a's storage without copying.
// One dimension may be -1 and is inferred.
func (a *Array) ReshapeView(shape ...int) (*Array, error) {
	newShape, err := a.resolveShape("reshape", shape)
	if err != nil {
		return nil, err
	}
	stride, virtual, ok := a.reshapeStrides(newShape)
	if !ok {
		return nil, &ShapeError{Op: "reshape", From: a.Shape(), To: newShape, Err: ErrNotRepresentable}
	}
	return a.view(newShape, stride, virtual, a.offset), nil
}

// Reshape returns an array with the given shape. The result is a view when
// the layout allows it and a copy otherwise; a broadcast axis that has to be
// materialized always forces a copy.
// One dimension may be -1 and is inferred.
//
// Example:
//
//	a := tensor.Arange(0, 42, 1)
//	b, _ := a.Reshape(6, 7) // View of a
func (a *Array) Reshape(shape ...int) (*Array, error) {
	v, err := a.ReshapeView(shape...)
	if err == nil {
		return v, nil
	}
	if !isNotRepresentable(err) {
		return nil, err
	}
	return a.Copy().ReshapeView(shape...)
}

// SetShape changes a's shape in place. It never copies: when the new shape
// cannot be expressed over the current storage, a is left unchanged and an
// error wrapping ErrNotRepresentable is returned.
func (a *Array) SetShape(shape ...int) error {
	v, err := a.ReshapeView(shape...)
	if err != nil {
		var se *ShapeError
		if errors.As(err, &se) {
			se.Op = "set_shape"
		}
		return err
	}
	a.shape, a.stride, a.virtual = v.shape, v.stride, v.virtual
	return nil
}

// Ravel returns a 1-d array with all elements. It is a view when a is already
// contiguous and a copy otherwise.
func (a *Array) Ravel() *Array {
	if a.IsContiguous() {
		v, err := a.ReshapeView(a.Size())
		if err == nil {
			return v
		}
	}
	return a.Flatten()
}

// Transpose permutes the axes. Without arguments the axis order is reversed.
// The result is a view.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	nd := a.NDim()
	if len(axes) == 0 {
		axes = make([]int, nd)
		for i := range axes {
			axes[i] = nd - 1 - i
		}
	}
	if len(axes) != nd {
		return nil, fmt.Errorf("%w: transpose needs %d axes, got %d", ErrAxisOutOfRange, nd, len(axes))
	}
	seen := make([]bool, nd)
	shape := make(Shape, nd)
	stride := make([]int, nd)
	virtual := make([]bool, nd)
	for i, ax := range axes {
		ax, err := normalizeAxis(ax, nd)
		if err != nil {
			return nil, err
		}
		if seen[ax] {
			return nil, fmt.Errorf("%w: repeated axis %d in transpose", ErrAxisOutOfRange, ax)
		}
		seen[ax] = true
		shape[i], stride[i], virtual[i] = a.shape[ax], a.stride[ax], a.virtual[ax]
	}
	return a.view(shape, stride, virtual, a.offset), nil
}

// T returns the view with axes reversed.
func (a *Array) T() *Array {
	t, err := a.Transpose()
	if err != nil {
		panic(err) // Reversal is always a valid permutation
	}
	return t
}

// SwapAxes exchanges two axes. The result is a view.
func (a *Array) SwapAxes(axis1, axis2 int) (*Array, error) {
	nd := a.NDim()
	a1, err := normalizeAxis(axis1, nd)
	if err != nil {
		return nil, err
	}
	a2, err := normalizeAxis(axis2, nd)
	if err != nil {
		return nil, err
	}
	perm := identityPerm(nd)
	perm[a1], perm[a2] = perm[a2], perm[a1]
	return a.Transpose(perm...)
}

// MoveAxis moves axis src to position dst, keeping the order of the others.
func (a *Array) MoveAxis(src, dst int) (*Array, error) {
	nd := a.NDim()
	s, err := normalizeAxis(src, nd)
	if err != nil {
		return nil, err
	}
	d, err := normalizeAxis(dst, nd)
	if err != nil {
		return nil, err
	}
	perm := make([]int, 0, nd)
	for i := 0; i < nd; i++ {
		if i != s {
			perm = append(perm, i)
		}
	}
	perm = append(perm[:d], append([]int{s}, perm[d:]...)...)
	return a.Transpose(perm...)
}

// RollAxis rolls axis backwards until it lies before position start.
// start may equal NDim to roll the axis to the end.
func (a *Array) RollAxis(axis, start int) (*Array, error) {
	nd := a.NDim()
	ax, err := normalizeAxis(axis, nd)
	if err != nil {
		return nil, err
	}
	if start < -nd || start > nd {
		return nil, fmt.Errorf("%w: start %d for array of dimension %d", ErrAxisOutOfRange, start, nd)
	}
	if start < 0 {
		start += nd
	}
	if ax < start {
		start--
	}
	if ax == start {
		return a.view(a.Shape(), a.Strides(), a.Virtual(), a.offset), nil
	}
	perm := make([]int, 0, nd)
	for i := 0; i < nd; i++ {
		if i != ax {
			perm = append(perm, i)
		}
	}
	perm = append(perm[:start], append([]int{ax}, perm[start:]...)...)
	return a.Transpose(perm...)
}

// Diagonal returns a view of the diagonal of the plane spanned by axis1 and
// axis2. The two axes are removed and the diagonal is appended as the last
// axis. A positive offset selects a diagonal above the main one.
func (a *Array) Diagonal(offset, axis1, axis2 int) (*Array, error) {
	nd := a.NDim()
	if nd < 2 {
		return nil, fmt.Errorf("%w: diagonal requires an array of at least two dimensions", ErrAxisOutOfRange)
	}
	a1, err := normalizeAxis(axis1, nd)
	if err != nil {
		return nil, err
	}
	a2, err := normalizeAxis(axis2, nd)
	if err != nil {
		return nil, err
	}
	if a1 == a2 {
		return nil, fmt.Errorf("%w: axis1 and axis2 cannot be the same", ErrAxisOutOfRange)
	}

	n1, n2 := a.shape[a1], a.shape[a2]
	start := a.offset
	if offset >= 0 {
		n2 -= offset
		start += offset * a.stride[a2]
	} else {
		n1 += offset
		start -= offset * a.stride[a1]
	}
	length := max(min(n1, n2), 0)
	if length == 0 {
		start = a.offset
	}

	shape := make(Shape, 0, nd-1)
	stride := make([]int, 0, nd-1)
	virtual := make([]bool, 0, nd-1)
	for i := 0; i < nd; i++ {
		if i == a1 || i == a2 {
			continue
		}
		shape = append(shape, a.shape[i])
		stride = append(stride, a.stride[i])
		virtual = append(virtual, a.virtual[i])
	}
	shape = append(shape, length)
	stride = append(stride, a.stride[a1]+a.stride[a2])
	virtual = append(virtual, a.virtual[a1] && a.virtual[a2] && length > 1)
	return a.view(shape, stride, virtual, start), nil
}

// Squeeze removes length-1 axes. Without arguments every length-1 axis is
// removed; otherwise only the given ones, which must have length 1.
func (a *Array) Squeeze(axes ...int) (*Array, error) {
	nd := a.NDim()
	drop := make([]bool, nd)
	if len(axes) == 0 {
		for i, dim := range a.shape {
			drop[i] = dim == 1
		}
	}
	for _, ax := range axes {
		n, err := normalizeAxis(ax, nd)
		if err != nil {
			return nil, err
		}
		if a.shape[n] != 1 {
			return nil, fmt.Errorf("%w: cannot select an axis to squeeze out which has size not equal to one (axis %d, size %d)",
				ErrIncompatibleShape, n, a.shape[n])
		}
		drop[n] = true
	}
	shape := make(Shape, 0, nd)
	stride := make([]int, 0, nd)
	virtual := make([]bool, 0, nd)
	for i := 0; i < nd; i++ {
		if drop[i] {
			continue
		}
		shape = append(shape, a.shape[i])
		stride = append(stride, a.stride[i])
		virtual = append(virtual, a.virtual[i])
	}
	return a.view(shape, stride, virtual, a.offset), nil
}

// ExpandDims inserts a length-1 axis at the given position.
// This is a view operation (no data copy).
func (a *Array) ExpandDims(axis int) (*Array, error) {
	pos, err := normalizeAxis(axis, a.NDim()+1)
	if err != nil {
		return nil, err
	}
	return a.insertAxes(pos), nil
}

// insertAxes inserts length-1 axes before each of the given positions of a.
// Positions refer to a's axes; NDim appends.
func (a *Array) insertAxes(positions ...int) *Array {
	nd := a.NDim()
	shape := make(Shape, 0, nd+len(positions))
	stride := make([]int, 0, nd+len(positions))
	virtual := make([]bool, 0, nd+len(positions))
	for i := 0; i <= nd; i++ {
		for _, p := range positions {
			if p == i {
				shape = append(shape, 1)
				stride = append(stride, 0)
				virtual = append(virtual, false)
			}
		}
		if i < nd {
			shape = append(shape, a.shape[i])
			stride = append(stride, a.stride[i])
			virtual = append(virtual, a.virtual[i])
		}
	}
	return a.view(shape, stride, virtual, a.offset)
}

// AtLeast1D views a 0-d array as shape (1,). Higher-dimensional arrays are
// returned as views of themselves.
func (a *Array) AtLeast1D() *Array {
	if a.NDim() == 0 {
		return a.insertAxes(0)
	}
	return a.insertAxes()
}

// AtLeast2D views a as at least two-dimensional: () becomes (1, 1) and (N,)
// becomes (1, N).
func (a *Array) AtLeast2D() *Array {
	switch a.NDim() {
	case 0:
		return a.insertAxes(0, 0)
	case 1:
		return a.insertAxes(0)
	default:
		return a.insertAxes()
	}
}

// AtLeast3D views a as at least three-dimensional: () becomes (1, 1, 1),
// (N,) becomes (1, N, 1) and (M, N) becomes (M, N, 1).
func (a *Array) AtLeast3D() *Array {
	switch a.NDim() {
	case 0:
		return a.insertAxes(0, 0, 0)
	case 1:
		return a.insertAxes(0, 1)
	case 2:
		return a.insertAxes(2)
	default:
		return a.insertAxes()
	}
}

// Flip reverses the order of elements along axis. The result is a view with
// a negative stride.
func (a *Array) Flip(axis int) (*Array, error) {
	ax, err := normalizeAxis(axis, a.NDim())
	if err != nil {
		return nil, err
	}
	stride := a.Strides()
	offset := a.offset
	if a.shape[ax] > 0 {
		offset += (a.shape[ax] - 1) * stride[ax]
	}
	stride[ax] = -stride[ax]
	return a.view(a.Shape(), stride, a.Virtual(), offset), nil
}

// Rot90 rotates the array by 90 degrees k times in the plane of the first two
// axes, from the first towards the second. The result is a view.
func (a *Array) Rot90(k int) (*Array, error) {
	if a.NDim() < 2 {
		return nil, fmt.Errorf("%w: rot90 requires an array of at least two dimensions", ErrAxisOutOfRange)
	}
	k = ((k % 4) + 4) % 4
	switch k {
	case 0:
		return a.view(a.Shape(), a.Strides(), a.Virtual(), a.offset), nil
	case 2:
		f, err := a.Flip(0)
		if err != nil {
			return nil, err
		}
		return f.Flip(1)
	case 1:
		f, err := a.Flip(1)
		if err != nil {
			return nil, err
		}
		return f.SwapAxes(0, 1)
	default:
		t, err := a.SwapAxes(0, 1)
		if err != nil {
			return nil, err
		}
		return t.Flip(1)
	}
}

// BroadcastTo returns a read-only view of a with the given shape. Axes that
// are stretched from length 1, or prepended, become virtual with stride 0.
//
// Writes to a remain visible through the broadcast view.
func (a *Array) BroadcastTo(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	nd := a.NDim()
	if len(shape) < nd {
		return nil, &ShapeError{Op: "broadcast_to", From: a.Shape(), To: shape.Clone(), Err: ErrIncompatibleShape}
	}
	lead := len(shape) - nd
	stride := make([]int, len(shape))
	virtual := make([]bool, len(shape))
	for i := range shape {
		if i < lead {
			virtual[i] = shape[i] != 1
			continue
		}
		src := i - lead
		switch {
		case a.shape[src] == shape[i]:
			stride[i] = a.stride[src]
			virtual[i] = a.virtual[src]
		case a.shape[src] == 1:
			virtual[i] = true
		default:
			return nil, &ShapeError{Op: "broadcast_to", From: a.Shape(), To: shape.Clone(), Err: ErrIncompatibleShape}
		}
	}
	v := a.view(shape.Clone(), stride, virtual, a.offset)
	v.readOnly = true
	return v, nil
}

// BroadcastArrays broadcasts every array against the others. Arrays already
// at the common shape are returned unchanged; the rest become read-only
// broadcast views.
func BroadcastArrays(arrays ...*Array) ([]*Array, error) {
	shapes := make([]Shape, len(arrays))
	for i, a := range arrays {
		shapes[i] = a.shape
	}
	common, err := BroadcastShapes(shapes...)
	if err != nil {
		return nil, err
	}
	out := make([]*Array, len(arrays))
	for i, a := range arrays {
		if a.shape.Equal(common) {
			out[i] = a
			continue
		}
		out[i], err = a.BroadcastTo(common)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

func isNotRepresentable(err error) bool {
	return errors.Is(err, ErrNotRepresentable)
}

// unwrapSentinel strips the formatted context from a Resolve error so the
// ShapeError carries the bare sentinel.
func unwrapSentinel(err error) error {
	for _, s := range []error{ErrSizeMismatch, ErrInvalidShape} {
		if errors.Is(err, s) {
			return s
		}
	}
	return err
}
