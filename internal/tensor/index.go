package tensor

import (
	"fmt"
	"math"
)

// None marks an omitted bound in Span, like an empty slot in a[::-1].
const None = math.MinInt

type indexKind int

const (
	intIndex indexKind = iota
	spanIndex
	newAxisIndex
	ellipsisIndex
)

// Index is one entry of a basic-indexing expression.
type Index struct {
	kind              indexKind
	pos               int
	start, stop, step int
}

// Basic-indexing entries that take no arguments.
var (
	// All selects a whole axis, like ":".
	All = Index{kind: spanIndex, start: None, stop: None, step: 1}
	// NewAxis inserts a length-1 axis.
	NewAxis = Index{kind: newAxisIndex}
	// Ellipsis expands to as many All entries as needed.
	Ellipsis = Index{kind: ellipsisIndex}
)

// Int selects a single position along an axis and removes the axis.
// Negative positions count from the end.
func Int(i int) Index {
	return Index{kind: intIndex, pos: i}
}

// Span selects start:stop:step along an axis. Use None for an omitted bound.
func Span(start, stop, step int) Index {
	return Index{kind: spanIndex, start: start, stop: stop, step: step}
}

// String formats the entry the way it would be written in a subscript.
func (ix Index) String() string {
	switch ix.kind {
	case intIndex:
		return fmt.Sprint(ix.pos)
	case newAxisIndex:
		return "newaxis"
	case ellipsisIndex:
		return "..."
	}
	bound := func(v int) string {
		if v == None {
			return ""
		}
		return fmt.Sprint(v)
	}
	if ix.step == 1 {
		return bound(ix.start) + ":" + bound(ix.stop)
	}
	return bound(ix.start) + ":" + bound(ix.stop) + ":" + fmt.Sprint(ix.step)
}

// indices resolves a span against an axis of length n, following Python
// slice semantics. It returns the first position, the step and the length.
func (ix Index) indices(n int) (start, step, length int, err error) {
	step = ix.step
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero", ErrIndexOutOfRange)
	}
	clamp := func(v, lower, upper int) int {
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	var stop int
	if step > 0 {
		start, stop = 0, n
		if ix.start != None {
			start = clamp(ix.start, 0, n)
		}
		if ix.stop != None {
			stop = clamp(ix.stop, 0, n)
		}
		if stop > start {
			length = (stop - start + step - 1) / step
		}
	} else {
		start, stop = n-1, -1
		if ix.start != None {
			start = clamp(ix.start, -1, n-1)
		}
		if ix.stop != None {
			stop = clamp(ix.stop, -1, n-1)
		}
		if start > stop {
			length = (start - stop - step - 1) / -step
		}
	}
	return start, step, length, nil
}

// Index applies a basic-indexing expression. The result is always a view.
//
// Example:
//
//	a.Index(tensor.All, tensor.NewAxis, tensor.All) // a[:, np.newaxis, :]
//	a.Index(tensor.All, tensor.Span(tensor.None, tensor.None, -1)) // a[:, ::-1]
func (a *Array) Index(idx ...Index) (*Array, error) {
	nd := a.NDim()
	consumed := 0
	ellipses := 0
	for _, ix := range idx {
		switch ix.kind {
		case intIndex, spanIndex:
			consumed++
		case ellipsisIndex:
			ellipses++
		}
	}
	if ellipses > 1 {
		return nil, fmt.Errorf("%w: an index can only have a single ellipsis", ErrIndexOutOfRange)
	}
	if consumed > nd {
		return nil, fmt.Errorf("%w: too many indices for array: array is %d-dimensional, but %d were indexed",
			ErrIndexOutOfRange, nd, consumed)
	}

	expanded := make([]Index, 0, len(idx)+nd)
	for _, ix := range idx {
		if ix.kind == ellipsisIndex {
			for i := 0; i < nd-consumed; i++ {
				expanded = append(expanded, All)
			}
			continue
		}
		expanded = append(expanded, ix)
	}
	if ellipses == 0 {
		for i := consumed; i < nd; i++ {
			expanded = append(expanded, All)
		}
	}

	shape := make(Shape, 0, len(expanded))
	stride := make([]int, 0, len(expanded))
	virtual := make([]bool, 0, len(expanded))
	offset := a.offset
	axis := 0
	for _, ix := range expanded {
		switch ix.kind {
		case newAxisIndex:
			shape = append(shape, 1)
			stride = append(stride, 0)
			virtual = append(virtual, false)
		case intIndex:
			n := a.shape[axis]
			pos := ix.pos
			if pos < 0 {
				pos += n
			}
			if pos < 0 || pos >= n {
				return nil, fmt.Errorf("%w: index %d is out of bounds for axis %d with size %d",
					ErrIndexOutOfRange, ix.pos, axis, n)
			}
			offset += pos * a.stride[axis]
			axis++
		case spanIndex:
			start, step, length, err := ix.indices(a.shape[axis])
			if err != nil {
				return nil, err
			}
			if length > 0 {
				offset += start * a.stride[axis]
			}
			shape = append(shape, length)
			stride = append(stride, a.stride[axis]*step)
			virtual = append(virtual, a.virtual[axis] && length > 1)
			axis++
		}
	}
	return a.view(shape, stride, virtual, offset), nil
}
