// Package units provides physical units and unit-carrying arrays.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrIncompatibleUnits is returned when converting between units of
// different physical dimensions.
var ErrIncompatibleUnits = errors.New("units: incompatible units")

// ErrExponentRange is returned when a derived unit's dimension exponent does
// not fit in Dim.
var ErrExponentRange = errors.New("units: dimension exponent out of range")

// Base dimensions tracked by Dim.
const (
	dimLength = iota
	dimTime
	dimAngle
	dimMass
	numDims
)

// Dim holds the exponent of each base dimension.
type Dim [numDims]int8

// Unit is a named scale over a physical dimension. Scale converts one of
// this unit to the SI-coherent unit of the same dimension (meter, second,
// radian, kilogram).
type Unit struct {
	Name  string
	Scale float64
	Dim   Dim
}

// Predefined units.
var (
	Dimensionless  = Unit{Name: "", Scale: 1}
	Radian         = Unit{Name: "rad", Scale: 1, Dim: Dim{dimAngle: 1}}
	Degree         = Unit{Name: "deg", Scale: math.Pi / 180, Dim: Dim{dimAngle: 1}}
	HourAngle      = Unit{Name: "hourangle", Scale: 15 * math.Pi / 180, Dim: Dim{dimAngle: 1}}
	Milliarcsecond = Unit{Name: "mas", Scale: math.Pi / 180 / 3600 / 1000, Dim: Dim{dimAngle: 1}}
	Second         = Unit{Name: "s", Scale: 1, Dim: Dim{dimTime: 1}}
	Year           = Unit{Name: "yr", Scale: 365.25 * 86400, Dim: Dim{dimTime: 1}}
	Meter          = Unit{Name: "m", Scale: 1, Dim: Dim{dimLength: 1}}
	Kilometer      = Unit{Name: "km", Scale: 1e3, Dim: Dim{dimLength: 1}}
	Parsec         = Unit{Name: "pc", Scale: 3.0856775814913673e16, Dim: Dim{dimLength: 1}}
	Kiloparsec     = Unit{Name: "kpc", Scale: 3.0856775814913673e19, Dim: Dim{dimLength: 1}}
	Kilogram       = Unit{Name: "kg", Scale: 1, Dim: Dim{dimMass: 1}}
)

var byName = map[string]Unit{}

func init() {
	for _, u := range []Unit{Radian, Degree, HourAngle, Milliarcsecond, Second, Year,
		Meter, Kilometer, Parsec, Kiloparsec, Kilogram} {
		byName[u.Name] = u
	}
}

// Parse looks up a unit by name. Quotients of two known units are accepted,
// e.g. "mas/yr" or "km/s".
func Parse(name string) (Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Dimensionless, nil
	}
	if num, den, ok := strings.Cut(name, "/"); ok {
		n, err := Parse(num)
		if err != nil {
			return Unit{}, err
		}
		d, err := Parse(den)
		if err != nil {
			return Unit{}, err
		}
		return n.Div(d), nil
	}
	u, ok := byName[name]
	if !ok {
		return Unit{}, fmt.Errorf("units: unknown unit %q", name)
	}
	return u, nil
}

// Mul returns the product unit.
func (u Unit) Mul(v Unit) Unit {
	var d Dim
	for i := range d {
		d[i] = u.Dim[i] + v.Dim[i]
	}
	return Unit{Name: joinName(u.Name, " ", v.Name), Scale: u.Scale * v.Scale, Dim: d}
}

// Div returns the quotient unit.
func (u Unit) Div(v Unit) Unit {
	var d Dim
	for i := range d {
		d[i] = u.Dim[i] - v.Dim[i]
	}
	return Unit{Name: joinName(u.Name, " / ", v.Name), Scale: u.Scale / v.Scale, Dim: d}
}

// Pow returns u raised to an integer power. Exponents outside the int8
// range of Dim fail with ErrExponentRange.
func (u Unit) Pow(n int) (Unit, error) {
	switch n {
	case 0:
		return Dimensionless, nil
	case 1:
		return u, nil
	}
	var d Dim
	for i := range d {
		e := int64(u.Dim[i]) * int64(n)
		if e < math.MinInt8 || e > math.MaxInt8 {
			return Unit{}, fmt.Errorf("%w: %s to the power %d", ErrExponentRange, u.Name, n)
		}
		d[i] = int8(e)
	}
	return Unit{Name: fmt.Sprintf("%s%d", u.Name, n), Scale: math.Pow(u.Scale, float64(n)), Dim: d}, nil
}

func joinName(a, sep, b string) string {
	switch {
	case a == "" && b == "":
		return ""
	case b == "":
		return a
	case a == "":
		a = "1"
	}
	return a + sep + b
}

// SameDimension reports whether u and v measure the same physical quantity.
func (u Unit) SameDimension(v Unit) bool {
	return u.Dim == v.Dim
}

// ConversionFactor returns the factor that converts values in u to values in to.
func (u Unit) ConversionFactor(to Unit) (float64, error) {
	if !u.SameDimension(to) {
		return 0, fmt.Errorf("%w: %q (%s) and %q (%s)", ErrIncompatibleUnits,
			u.Name, u.PhysicalType(), to.Name, to.PhysicalType())
	}
	return u.Scale / to.Scale, nil
}

// String returns the unit's name.
func (u Unit) String() string {
	return u.Name
}

// PhysicalType classifies a unit by its dimension.
type PhysicalType string

// Physical types recognized by representations.
const (
	PhysicalDimensionless PhysicalType = "dimensionless"
	PhysicalAngle         PhysicalType = "angle"
	PhysicalLength        PhysicalType = "length"
	PhysicalTime          PhysicalType = "time"
	PhysicalAngularSpeed  PhysicalType = "angular speed"
	PhysicalSpeed         PhysicalType = "speed"
	PhysicalFrequency     PhysicalType = "frequency"
	PhysicalUnknown       PhysicalType = "unknown"
)

var physicalTypes = map[Dim]PhysicalType{
	{}:                          PhysicalDimensionless,
	{dimAngle: 1}:               PhysicalAngle,
	{dimLength: 1}:              PhysicalLength,
	{dimTime: 1}:                PhysicalTime,
	{dimAngle: 1, dimTime: -1}:  PhysicalAngularSpeed,
	{dimLength: 1, dimTime: -1}: PhysicalSpeed,
	{dimTime: -1}:               PhysicalFrequency,
}

// PhysicalType returns the classification of u.
func (u Unit) PhysicalType() PhysicalType {
	if pt, ok := physicalTypes[u.Dim]; ok {
		return pt
	}
	return PhysicalUnknown
}
