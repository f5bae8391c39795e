// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package represent provides coordinate representations that behave like arrays.
//
// # Overview
//
// A Representation groups co-shaped component arrays that each carry a unit,
// for example longitude, latitude and distance. Differentials such as proper
// motions are attached under a key ("s" for time derivatives) and always have
// the same shape as the representation. Every shape operation applies to
// components and differentials alike:
//   - Views: Transpose, T, SwapAxes, MoveAxis, RollAxis, Diagonal, Squeeze,
//     ExpandDims, Index, Flip, Rot90, BroadcastTo, AtLeast1D/2D/3D
//   - View when possible: Ravel, Reshape
//   - Copies: Copy, Flatten, Take, Roll, Delete
//   - In place: SetShape, which never copies and changes nothing on failure
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/represent/represent"
//	    "github.com/born-ml/represent/tensor"
//	)
//
//	func main() {
//	    lon, _ := tensor.Arange(0, 24, 4).Index(tensor.All, tensor.NewAxis)
//	    lat := tensor.Arange(-90, 91, 30)
//	    s, _ := represent.New(represent.Spherical, []represent.Quantity{
//	        represent.NewQuantity(lon, represent.HourAngle),
//	        represent.NewQuantity(lat, represent.Degree),
//	        represent.ScalarOf(1, represent.Kiloparsec),
//	    }, represent.NoCopy())
//
//	    r, _ := s.Reshape(3, 14) // lon and lat are copied, distance stays a view
//	    err := s.SetShape(42)    // fails: lon cannot be reshaped in place
//	}
//
// # Broadcasting
//
// Components are broadcast against each other at construction. Broadcast
// components are read-only views with zero strides, so a (6, 1) longitude
// column and a (7,) latitude row hold only 13 values for 42 coordinates.
package represent
