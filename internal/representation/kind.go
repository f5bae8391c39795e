package representation

import (
	"fmt"

	"github.com/born-ml/represent/internal/tensor"
	"github.com/born-ml/represent/internal/units"
)

// Component describes one named component of a representation.
type Component struct {
	Name string
	Type units.PhysicalType
}

// Kind describes a family of representations: its ordered components and,
// for differentials, the kind they differentiate.
type Kind struct {
	Name       string
	Components []Component
	// Base is the representation kind a differential kind belongs to.
	// Nil for non-differential kinds.
	Base  *Kind
	check func(comps []units.Quantity) error
}

// Built-in kinds.
var (
	Spherical = &Kind{
		Name: "SphericalRepresentation",
		Components: []Component{
			{Name: "lon", Type: units.PhysicalAngle},
			{Name: "lat", Type: units.PhysicalAngle},
			{Name: "distance", Type: units.PhysicalLength},
		},
		check: checkLatitude,
	}

	Cartesian = &Kind{
		Name: "CartesianRepresentation",
		Components: []Component{
			{Name: "x", Type: units.PhysicalLength},
			{Name: "y", Type: units.PhysicalLength},
			{Name: "z", Type: units.PhysicalLength},
		},
	}

	SphericalDifferential = &Kind{
		Name: "SphericalDifferential",
		Components: []Component{
			{Name: "d_lon", Type: units.PhysicalAngularSpeed},
			{Name: "d_lat", Type: units.PhysicalAngularSpeed},
			{Name: "d_distance", Type: units.PhysicalSpeed},
		},
		Base: Spherical,
	}

	CartesianDifferential = &Kind{
		Name: "CartesianDifferential",
		Components: []Component{
			{Name: "d_x", Type: units.PhysicalSpeed},
			{Name: "d_y", Type: units.PhysicalSpeed},
			{Name: "d_z", Type: units.PhysicalSpeed},
		},
		Base: Cartesian,
	}
)

// IsDifferential reports whether the kind describes derivatives of another kind.
func (k *Kind) IsDifferential() bool {
	return k.Base != nil
}

// ComponentNames returns the component names in order.
func (k *Kind) ComponentNames() []string {
	names := make([]string, len(k.Components))
	for i, c := range k.Components {
		names[i] = c.Name
	}
	return names
}

func (k *Kind) index(name string) int {
	for i, c := range k.Components {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// String returns the kind's name.
func (k *Kind) String() string {
	return k.Name
}

// checkLatitude rejects latitudes outside [-90, 90] degrees.
func checkLatitude(comps []units.Quantity) error {
	deg, err := comps[1].ValuesIn(units.Degree)
	if err != nil {
		return err
	}
	for _, v := range deg {
		if v < -90 || v > 90 {
			return fmt.Errorf("%w: got %v deg", ErrLatitudeRange, v)
		}
	}
	return nil
}

// derivativeKey names the variable a differential is taken with respect to.
// Every differential component must be its base component's unit divided by
// a time unit; the key is then "s".
func derivativeKey(base, diff []units.Quantity) (string, error) {
	for i := range diff {
		ratio := diff[i].Unit.Div(base[i].Unit)
		if ratio.PhysicalType() != units.PhysicalFrequency {
			return "", fmt.Errorf("%w: %s per %s is not a time derivative",
				ErrDifferentialKind, diff[i].Unit, base[i].Unit)
		}
	}
	return units.Second.Name, nil
}

// shapeOf returns the common shape of already broadcast components.
func shapeOf(comps []units.Quantity) tensor.Shape {
	if len(comps) == 0 {
		return tensor.Shape{}
	}
	return comps[0].Value.Shape()
}
