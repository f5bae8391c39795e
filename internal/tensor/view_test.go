package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// broadcastFixture returns lon-like (6,7) with strides (1, 0), lat-like (6,7)
// with strides (0, 1) and a fully broadcast scalar.
func broadcastFixture(t *testing.T) (lon, lat, dist *Array) {
	t.Helper()
	col, err := Arange(0, 24, 4).Index(All, NewAxis)
	require.NoError(t, err)
	views, err := BroadcastArrays(col, Arange(-90, 91, 30), Scalar(1))
	require.NoError(t, err)
	return views[0], views[1], views[2]
}

func TestReshapeView(t *testing.T) {
	a := arange(t, 6, 7)

	tests := []struct {
		name  string
		shape []int
	}{
		{"split leading axis", []int{2, 3, 7}},
		{"merge all", []int{42}},
		{"inferred", []int{3, -1}},
		{"length-1 axes", []int{3, 1, 2, 1, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := a.Reshape(tt.shape...)
			require.NoError(t, err)
			assert.Equal(t, a.Size(), r.Size())
			assert.True(t, MayShareMemory(a, r))
			assert.Equal(t, a.Values(), r.Values())
		})
	}
}

func TestReshapeSizeMismatch(t *testing.T) {
	a := arange(t, 6, 7)
	_, err := a.Reshape(5, 8)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "reshape", se.Op)
	assert.Equal(t, Shape{6, 7}, se.From)
}

func TestReshapeBroadcastPerComponent(t *testing.T) {
	lon, lat, dist := broadcastFixture(t)

	t.Run("(3, 2, 7) keeps every view", func(t *testing.T) {
		for _, a := range []*Array{lon, lat, dist} {
			r, err := a.Reshape(3, 2, 7)
			require.NoError(t, err)
			assert.True(t, MayShareMemory(a, r))
			assert.Equal(t, a.Values(), r.Values())
		}
	})

	t.Run("(3, 14) copies only where a broadcast axis is merged", func(t *testing.T) {
		r, err := lon.Reshape(3, 14)
		require.NoError(t, err)
		assert.False(t, MayShareMemory(lon, r))
		assert.Equal(t, lon.Values(), r.Values())

		r, err = lat.Reshape(3, 14)
		require.NoError(t, err)
		assert.False(t, MayShareMemory(lat, r))
		assert.Equal(t, lat.Values(), r.Values())

		r, err = dist.Reshape(3, 14)
		require.NoError(t, err)
		assert.True(t, MayShareMemory(dist, r))
		assert.Equal(t, []int{0, 0}, r.Strides())
		assert.Equal(t, []bool{true, true}, r.Virtual())
	})
}

func TestRavel(t *testing.T) {
	a := arange(t, 6, 7)
	r := a.Ravel()
	assert.Equal(t, Shape{42}, r.Shape())
	assert.True(t, MayShareMemory(a, r))

	_, lat, dist := broadcastFixture(t)
	r = lat.Ravel()
	assert.False(t, MayShareMemory(lat, r))
	assert.Equal(t, lat.Values(), r.Values())
	assert.False(t, MayShareMemory(dist, dist.Ravel()), "broadcast arrays are never raveled in place")

	tr := a.T().Ravel()
	assert.False(t, MayShareMemory(a, tr))
	assert.Equal(t, a.T().Values(), tr.Values())
}

func TestFlattenAlwaysCopies(t *testing.T) {
	a := arange(t, 6, 7)
	f := a.Flatten()
	assert.Equal(t, Shape{42}, f.Shape())
	assert.False(t, MayShareMemory(a, f))
	assert.Equal(t, a.Values(), f.Values())
}

func TestSetShape(t *testing.T) {
	t.Run("view-compatible", func(t *testing.T) {
		a := arange(t, 6, 7)
		require.NoError(t, a.SetShape(2, 3, 7))
		assert.Equal(t, Shape{2, 3, 7}, a.Shape())
	})

	t.Run("broadcast stays zero-stride", func(t *testing.T) {
		_, _, dist := broadcastFixture(t)
		require.NoError(t, dist.SetShape(2, 3, 7))
		assert.Equal(t, []int{0, 0, 0}, dist.Strides())
	})

	t.Run("size mismatch", func(t *testing.T) {
		a := arange(t, 6, 7)
		err := a.SetShape(1)
		assert.ErrorIs(t, err, ErrSizeMismatch)
		assert.Equal(t, Shape{6, 7}, a.Shape())
	})

	t.Run("not representable", func(t *testing.T) {
		lon, _, _ := broadcastFixture(t)
		err := lon.SetShape(42)
		assert.ErrorIs(t, err, ErrNotRepresentable)
		var se *ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "set_shape", se.Op)
		assert.Equal(t, Shape{6, 7}, lon.Shape())
		assert.Equal(t, []int{1, 0}, lon.Strides())
	})
}

func TestTransposeFamily(t *testing.T) {
	a := arange(t, 6, 7)

	tr := a.T()
	assert.Equal(t, Shape{7, 6}, tr.Shape())
	assert.True(t, MayShareMemory(a, tr))
	assert.Equal(t, a.At(2, 5), tr.At(5, 2))

	sw, err := a.SwapAxes(0, 1)
	require.NoError(t, err)
	assert.True(t, Equal(tr, sw))

	mv, err := a.MoveAxis(1, 0)
	require.NoError(t, err)
	assert.True(t, Equal(tr, mv))

	rl, err := a.RollAxis(1, 0)
	require.NoError(t, err)
	assert.True(t, Equal(tr, rl))

	b := arange(t, 2, 3, 4)
	mv, err = b.MoveAxis(0, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4, 2}, mv.Shape())

	rl, err = b.RollAxis(2, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2, 3}, rl.Shape())

	rl, err = b.RollAxis(0, 3)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4, 2}, rl.Shape())

	_, err = a.Transpose(0, 0)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
	_, err = a.SwapAxes(0, 2)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestDiagonal(t *testing.T) {
	a := arange(t, 6, 7)

	d, err := a.Diagonal(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{6}, d.Shape())
	assert.Equal(t, []float64{0, 8, 16, 24, 32, 40}, d.Values())
	assert.True(t, MayShareMemory(a, d))

	d, err = a.Diagonal(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 9, 17, 25, 33, 41}, d.Values())

	d, err = a.Diagonal(-4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{28, 36}, d.Values())

	_, err = arange(t, 6).Diagonal(0, 0, 1)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestSqueezeAndExpandDims(t *testing.T) {
	a := arange(t, 6, 7)
	r, err := a.Reshape(3, 1, 2, 1, 7)
	require.NoError(t, err)

	s, err := r.Squeeze()
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2, 7}, s.Shape())
	assert.True(t, MayShareMemory(a, s))

	s, err = r.Squeeze(1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2, 1, 7}, s.Shape())

	_, err = r.Squeeze(0)
	assert.ErrorIs(t, err, ErrIncompatibleShape)

	e, err := a.ExpandDims(1)
	require.NoError(t, err)
	assert.Equal(t, Shape{6, 1, 7}, e.Shape())
	assert.True(t, MayShareMemory(a, e))

	e, err = a.ExpandDims(-1)
	require.NoError(t, err)
	assert.Equal(t, Shape{6, 7, 1}, e.Shape())
}

func TestAtLeastND(t *testing.T) {
	s := Scalar(3)
	tests := []struct {
		name string
		in   *Array
		fn   func(*Array) *Array
		want Shape
	}{
		{"1d of scalar", s, (*Array).AtLeast1D, Shape{1}},
		{"2d of scalar", s, (*Array).AtLeast2D, Shape{1, 1}},
		{"3d of scalar", s, (*Array).AtLeast3D, Shape{1, 1, 1}},
		{"2d of vector", arange(t, 5), (*Array).AtLeast2D, Shape{1, 5}},
		{"3d of vector", arange(t, 5), (*Array).AtLeast3D, Shape{1, 5, 1}},
		{"3d of matrix", arange(t, 6, 7), (*Array).AtLeast3D, Shape{6, 7, 1}},
		{"1d of matrix", arange(t, 6, 7), (*Array).AtLeast1D, Shape{6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.in)
			assert.Equal(t, tt.want, got.Shape())
			assert.True(t, MayShareMemory(tt.in, got))
			assert.Equal(t, tt.in.Values(), got.Values())
		})
	}
}

func TestFlipAndRot90(t *testing.T) {
	a := arange(t, 2, 3)

	lr, err := a.Flip(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0, 5, 4, 3}, lr.Values())
	assert.True(t, MayShareMemory(a, lr))

	ud, err := a.Flip(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5, 0, 1, 2}, ud.Values())

	r1, err := a.Rot90(1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, r1.Shape())
	assert.Equal(t, []float64{2, 5, 1, 4, 0, 3}, r1.Values())

	r2, err := a.Rot90(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 3, 2, 1, 0}, r2.Values())

	r3, err := a.Rot90(3)
	require.NoError(t, err)
	want, err := a.T().Flip(1)
	require.NoError(t, err)
	assert.True(t, Equal(want, r3))
	assert.True(t, MayShareMemory(a, r3))

	r4, err := a.Rot90(-1)
	require.NoError(t, err)
	assert.True(t, Equal(r3, r4))
}

func TestBroadcastTo(t *testing.T) {
	a := arange(t, 6, 7)
	b, err := a.BroadcastTo(Shape{3, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 6, 7}, b.Shape())
	assert.True(t, MayShareMemory(a, b))
	assert.True(t, b.IsReadOnly())
	assert.Equal(t, []bool{true, false, false}, b.Virtual())

	// Writes through the source show up in every broadcast copy.
	a.Set(22, 0, 0)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 22.0, b.At(i, 0, 0))
	}
	assert.Panics(t, func() { b.Set(1, 0, 0, 0) })

	// Views of a read-only array stay read-only.
	v, err := b.Index(Int(0))
	require.NoError(t, err)
	assert.True(t, v.IsReadOnly())

	_, err = a.BroadcastTo(Shape{6, 8})
	assert.ErrorIs(t, err, ErrIncompatibleShape)
	_, err = a.BroadcastTo(Shape{7})
	assert.ErrorIs(t, err, ErrIncompatibleShape)
}
