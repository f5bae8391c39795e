package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	a := arange(t, 6, 7)
	rev := Span(None, None, -1)

	tests := []struct {
		name      string
		idx       []Index
		wantShape Shape
		wantFirst float64
	}{
		{"row", []Index{Int(2)}, Shape{7}, 14},
		{"last row", []Index{Int(-1)}, Shape{7}, 35},
		{"element", []Index{Int(1), Int(3)}, Shape{}, 10},
		{"new axis", []Index{All, NewAxis, All}, Shape{6, 1, 7}, 0},
		{"reversed columns", []Index{All, rev}, Shape{6, 7}, 6},
		{"tail rows", []Index{Span(1, None, 1)}, Shape{5, 7}, 7},
		{"head rows", []Index{Span(None, -1, 1)}, Shape{5, 7}, 0},
		{"stepped", []Index{Span(None, None, 2), Span(1, 6, 2)}, Shape{3, 3}, 1},
		{"ellipsis", []Index{Ellipsis, Int(0)}, Shape{6}, 0},
		{"ellipsis then new axis", []Index{Ellipsis, NewAxis}, Shape{6, 7, 1}, 0},
		{"empty span", []Index{Span(4, 2, 1)}, Shape{0, 7}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Index(tt.idx...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, got.Shape())
			if got.Size() > 0 {
				assert.Equal(t, tt.wantFirst, got.Values()[0])
				assert.True(t, MayShareMemory(a, got))
			}
		})
	}
}

func TestIndexReverseValues(t *testing.T) {
	a := arange(t, 5)
	got, err := a.Index(Span(None, None, -1))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3, 2, 1, 0}, got.Values())

	got, err = a.Index(Span(3, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1}, got.Values())

	got, err = a.Index(Span(-2, None, -2))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, got.Values())

	got, err = a.Index(Span(10, -10, -1))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3, 2, 1, 0}, got.Values())
}

func TestIndexErrors(t *testing.T) {
	a := arange(t, 6, 7)

	_, err := a.Index(Int(6))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = a.Index(Int(0), Int(0), Int(0))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = a.Index(Ellipsis, Ellipsis)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = a.Index(Span(0, 3, 0))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestIndexScalarLift(t *testing.T) {
	a := arange(t, 6, 7)
	s, err := a.Ravel().Index(Int(0))
	require.NoError(t, err)
	assert.Equal(t, 0, s.NDim())

	lifted, err := s.Index(NewAxis)
	require.NoError(t, err)
	assert.Equal(t, Shape{1}, lifted.Shape())
	assert.True(t, Equal(lifted, s.AtLeast1D()))
	assert.True(t, MayShareMemory(s, lifted))
}

func TestIndexString(t *testing.T) {
	assert.Equal(t, ":", All.String())
	assert.Equal(t, "::-1", Span(None, None, -1).String())
	assert.Equal(t, "1:", Span(1, None, 1).String())
	assert.Equal(t, "-2", Int(-2).String())
	assert.Equal(t, "newaxis", NewAxis.String())
	assert.Equal(t, "...", Ellipsis.String())
}
