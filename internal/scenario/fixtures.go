package scenario

import (
	"fmt"

	"github.com/born-ml/represent/internal/config"
	"github.com/born-ml/represent/internal/representation"
	"github.com/born-ml/represent/internal/tensor"
	"github.com/born-ml/represent/internal/units"
)

// Fixture names.
const (
	Dense     = "dense"
	Broadcast = "broadcast"
)

// FixtureNames lists the fixtures every scenario runs against.
var FixtureNames = []string{Dense, Broadcast}

// BuildFixture builds a fresh spherical representation on the grid. The
// dense fixture holds full (lon, lat) arrays; the broadcast one is built from
// a longitude column, a latitude row and a scalar distance, so its components
// are read-only zero-stride views. Both carry their own differential of
// ones in mas/yr, mas/yr and km/s.
func BuildFixture(name string, grid config.GridConfig) (*representation.Representation, error) {
	lon := tensor.Arange(grid.LonStart, grid.LonStop, grid.LonStep)
	lat := tensor.Arange(grid.LatStart, grid.LatStop, grid.LatStep)
	shape := tensor.Shape{lon.Size(), lat.Size()}
	col, err := lon.Index(tensor.All, tensor.NewAxis)
	if err != nil {
		return nil, err
	}

	angular := units.Milliarcsecond.Div(units.Year)
	diff, err := representation.New(representation.SphericalDifferential, []units.Quantity{
		units.New(tensor.Ones(shape), angular),
		units.New(tensor.Ones(shape), angular),
		units.New(tensor.Ones(shape), units.Kilometer.Div(units.Second)),
	}, representation.NoCopy())
	if err != nil {
		return nil, err
	}

	var comps []units.Quantity
	switch name {
	case Dense:
		lonGrid, err := tensor.Mul(col, tensor.Ones(tensor.Shape{lat.Size()}))
		if err != nil {
			return nil, err
		}
		latGrid, err := tensor.Mul(lat, tensor.Ones(tensor.Shape{lon.Size(), 1}))
		if err != nil {
			return nil, err
		}
		comps = []units.Quantity{
			units.New(lonGrid, units.HourAngle),
			units.New(latGrid, units.Degree),
			units.New(tensor.Full(shape, grid.Distance), units.Kiloparsec),
		}
	case Broadcast:
		comps = []units.Quantity{
			units.New(col, units.HourAngle),
			units.New(lat, units.Degree),
			units.ScalarOf(grid.Distance, units.Kiloparsec),
		}
	default:
		return nil, fmt.Errorf("scenario: unknown fixture %q", name)
	}
	return representation.New(representation.Spherical, comps,
		representation.NoCopy(), representation.WithDifferentials(diff))
}
