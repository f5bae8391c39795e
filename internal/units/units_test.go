package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/represent/internal/tensor"
)

func TestConversionFactor(t *testing.T) {
	tests := []struct {
		from, to Unit
		want     float64
	}{
		{HourAngle, Degree, 15},
		{Degree, Radian, math.Pi / 180},
		{Kiloparsec, Parsec, 1000},
		{Kilometer, Meter, 1000},
		{Milliarcsecond.Div(Year), Milliarcsecond.Div(Year), 1},
	}
	for _, tt := range tests {
		got, err := tt.from.ConversionFactor(tt.to)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9*math.Abs(tt.want), "%s -> %s", tt.from, tt.to)
	}

	_, err := Degree.ConversionFactor(Kiloparsec)
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestPhysicalType(t *testing.T) {
	assert.Equal(t, PhysicalAngle, HourAngle.PhysicalType())
	assert.Equal(t, PhysicalLength, Kiloparsec.PhysicalType())
	assert.Equal(t, PhysicalAngularSpeed, Milliarcsecond.Div(Year).PhysicalType())
	assert.Equal(t, PhysicalSpeed, Kilometer.Div(Second).PhysicalType())
	assert.Equal(t, PhysicalFrequency, Milliarcsecond.Div(Year).Div(Degree).PhysicalType())
	assert.Equal(t, PhysicalDimensionless, Degree.Div(Radian).PhysicalType())
	assert.Equal(t, PhysicalUnknown, Kilogram.Mul(Meter).PhysicalType())
}

func TestPow(t *testing.T) {
	perYear, err := Year.Pow(-1)
	require.NoError(t, err)
	assert.Equal(t, PhysicalFrequency, perYear.PhysicalType())
	assert.Equal(t, "yr-1", perYear.Name)
	assert.InDelta(t, 1/(365.25*86400), perYear.Scale, 1e-20)
	assert.Equal(t, PhysicalAngularSpeed, Milliarcsecond.Mul(perYear).PhysicalType())

	u, err := Meter.Pow(0)
	require.NoError(t, err)
	assert.Equal(t, Dimensionless, u)
	u, err = Meter.Pow(1)
	require.NoError(t, err)
	assert.Equal(t, Meter, u)

	u, err = Meter.Pow(127)
	require.NoError(t, err)
	assert.Equal(t, int8(127), u.Dim[dimLength])
	u, err = Meter.Pow(-128)
	require.NoError(t, err)
	assert.Equal(t, int8(-128), u.Dim[dimLength])

	for _, n := range []int{128, -129, 1 << 40} {
		_, err = Meter.Pow(n)
		assert.ErrorIs(t, err, ErrExponentRange, "n=%d", n)
	}
	_, err = Meter.Mul(Meter).Pow(64)
	assert.ErrorIs(t, err, ErrExponentRange, "m2 to the 64th")
	_, err = Dimensionless.Pow(1 << 40)
	assert.NoError(t, err)
}

func TestParse(t *testing.T) {
	u, err := Parse("mas/yr")
	require.NoError(t, err)
	assert.Equal(t, PhysicalAngularSpeed, u.PhysicalType())
	assert.Equal(t, "mas / yr", u.Name)

	u, err = Parse("kpc")
	require.NoError(t, err)
	assert.Equal(t, Kiloparsec, u)

	u, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, PhysicalDimensionless, u.PhysicalType())

	_, err = Parse("furlong")
	assert.Error(t, err)
}

func TestQuantityTo(t *testing.T) {
	q, err := Of([]float64{0, 4, 8}, tensor.Shape{3}, HourAngle)
	require.NoError(t, err)

	same, err := q.To(HourAngle)
	require.NoError(t, err)
	assert.True(t, tensor.MayShareMemory(q.Value, same.Value), "same unit keeps the array")

	deg, err := q.To(Degree)
	require.NoError(t, err)
	assert.False(t, tensor.MayShareMemory(q.Value, deg.Value))
	assert.InDeltaSlice(t, []float64{0, 60, 120}, deg.Value.Values(), 1e-9)

	_, err = q.To(Kiloparsec)
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestQuantityEqual(t *testing.T) {
	a, err := Of([]float64{1, 2}, tensor.Shape{2}, Kiloparsec)
	require.NoError(t, err)
	b, err := Of([]float64{1000, 2000}, tensor.Shape{2}, Parsec)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(ScalarOf(1, Degree)))
	assert.Equal(t, "Quantity(2,) kpc", a.String())
}

func TestQuantityApply(t *testing.T) {
	q := New(tensor.Ones(tensor.Shape{6, 7}), Kiloparsec)
	r, err := q.Apply(func(a *tensor.Array) (*tensor.Array, error) { return a.Reshape(42) })
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{42}, r.Shape())
	assert.Equal(t, Kiloparsec, r.Unit)
	assert.True(t, tensor.MayShareMemory(q.Value, r.Value))
}
