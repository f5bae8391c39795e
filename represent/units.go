// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package represent

import (
	"github.com/born-ml/represent/internal/units"
	"github.com/born-ml/represent/tensor"
)

// Unit is a named scale over a physical dimension.
type Unit = units.Unit

// Quantity is an array of values in a unit.
type Quantity = units.Quantity

// PhysicalType classifies a unit by its dimension.
type PhysicalType = units.PhysicalType

// ErrIncompatibleUnits is returned when converting between different dimensions.
var ErrIncompatibleUnits = units.ErrIncompatibleUnits

// ErrExponentRange is returned by Unit.Pow when an exponent overflows.
var ErrExponentRange = units.ErrExponentRange

// Predefined units.
var (
	Dimensionless  = units.Dimensionless
	Radian         = units.Radian
	Degree         = units.Degree
	HourAngle      = units.HourAngle
	Milliarcsecond = units.Milliarcsecond
	Second         = units.Second
	Year           = units.Year
	Meter          = units.Meter
	Kilometer      = units.Kilometer
	Parsec         = units.Parsec
	Kiloparsec     = units.Kiloparsec
)

// ParseUnit parses a unit name such as "kpc" or "mas/yr".
func ParseUnit(name string) (Unit, error) {
	return units.Parse(name)
}

// NewQuantity pairs an array with a unit without copying it.
func NewQuantity(value *tensor.Array, unit Unit) Quantity {
	return units.New(value, unit)
}

// ScalarOf returns a 0-d quantity.
func ScalarOf(v float64, unit Unit) Quantity {
	return units.ScalarOf(v, unit)
}
