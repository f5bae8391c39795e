package representation

import (
	"fmt"
	"math"

	"github.com/born-ml/represent/internal/tensor"
	"github.com/born-ml/represent/internal/units"
)

// ToCartesian converts a spherical representation to x, y, z in the unit of
// its distance. Differentials are not carried over.
func (r *Representation) ToCartesian() (*Representation, error) {
	if r.kind != Spherical {
		return nil, fmt.Errorf("%w: ToCartesian needs %s, got %s", ErrKindMismatch, Spherical, r.kind)
	}
	lon, err := r.comps[0].To(units.Radian)
	if err != nil {
		return nil, err
	}
	lat, err := r.comps[1].To(units.Radian)
	if err != nil {
		return nil, err
	}
	dist := r.comps[2]

	fns := []func(v ...float64) float64{
		func(v ...float64) float64 { return v[2] * math.Cos(v[1]) * math.Cos(v[0]) },
		func(v ...float64) float64 { return v[2] * math.Cos(v[1]) * math.Sin(v[0]) },
		func(v ...float64) float64 { return v[2] * math.Sin(v[1]) },
	}
	comps := make([]units.Quantity, len(fns))
	for i, fn := range fns {
		a, err := tensor.Map(fn, lon.Value, lat.Value, dist.Value)
		if err != nil {
			return nil, err
		}
		comps[i] = units.New(a, dist.Unit)
	}
	return New(Cartesian, comps, NoCopy())
}

// ToSpherical converts a cartesian representation to longitude in [0, 2π),
// latitude and distance. Angles are in radians and the distance keeps the
// unit of x. Differentials are not carried over.
func (r *Representation) ToSpherical() (*Representation, error) {
	if r.kind != Cartesian {
		return nil, fmt.Errorf("%w: ToSpherical needs %s, got %s", ErrKindMismatch, Cartesian, r.kind)
	}
	unit := r.comps[0].Unit
	xyz := make([]*tensor.Array, 3)
	for i, c := range r.comps {
		q, err := c.To(unit)
		if err != nil {
			return nil, err
		}
		xyz[i] = q.Value
	}

	lon, err := tensor.Map(func(v ...float64) float64 {
		phi := math.Atan2(v[1], v[0])
		if phi < 0 {
			phi += 2 * math.Pi
		}
		return phi
	}, xyz...)
	if err != nil {
		return nil, err
	}
	lat, err := tensor.Map(func(v ...float64) float64 {
		return math.Atan2(v[2], math.Hypot(v[0], v[1]))
	}, xyz...)
	if err != nil {
		return nil, err
	}
	dist, err := tensor.Map(func(v ...float64) float64 {
		return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	}, xyz...)
	if err != nil {
		return nil, err
	}
	return New(Spherical, []units.Quantity{
		units.New(lon, units.Radian),
		units.New(lat, units.Radian),
		units.New(dist, unit),
	}, NoCopy())
}

// Equal reports whether a and b have the same kind and shape, equal
// components once expressed in common units, and equal differentials under
// the same keys.
func Equal(a, b *Representation) bool {
	if a.kind != b.kind || !a.Shape().Equal(b.Shape()) {
		return false
	}
	for i := range a.comps {
		if !a.comps[i].Equal(b.comps[i]) {
			return false
		}
	}
	if len(a.diffs) != len(b.diffs) {
		return false
	}
	for key, da := range a.diffs {
		db, ok := b.diffs[key]
		if !ok || !Equal(da, db) {
			return false
		}
	}
	return true
}
