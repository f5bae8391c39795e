// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided float64 arrays with NumPy view semantics.
//
// # Overview
//
// Arrays are the storage layer under coordinate representations. This package provides:
//   - Shared storage with per-view shape, strides and offset
//   - NumPy-style broadcasting through zero-stride virtual axes
//   - Views wherever the layout allows, copies only where it does not
//   - In-place shape assignment that never copies
//
// # Basic Usage
//
//	import "github.com/born-ml/represent/tensor"
//
//	func main() {
//	    a := tensor.Arange(0, 42, 1)
//	    b, _ := a.Reshape(6, 7)        // view
//	    c := b.T()                     // view, shape (7, 6)
//	    d := c.Ravel()                 // copy: c is not C-contiguous
//	    fmt.Println(tensor.MayShareMemory(a, b), tensor.MayShareMemory(a, d)) // true false
//	}
//
// # Broadcasting
//
// Broadcast views are read-only and keep a zero stride on every stretched axis:
//
//	col, _ := tensor.Arange(0, 6, 1).Index(tensor.All, tensor.NewAxis) // (6, 1)
//	b, _ := col.BroadcastTo(tensor.Shape{6, 7})                        // strides (1, 0)
//
// Reshaping a broadcast view stays a view only when no broadcast axis is
// merged with a real one; otherwise Reshape copies and SetShape fails with
// ErrNotRepresentable.
//
// # Indexing
//
// Index takes basic indices only: Int, Span, All, NewAxis and Ellipsis. The
// result is always a view. Take, Roll and Delete gather and always copy.
package tensor
