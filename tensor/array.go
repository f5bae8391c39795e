// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/represent/internal/tensor"
)

// Array is a strided view over shared float64 storage.
//
// Array provides:
//   - Shape and layout information via Shape(), Strides(), Virtual()
//   - Element access via At(), Set(), Values()
//   - View operations: Reshape, Transpose, Diagonal, Index, BroadcastTo, ...
//   - Copy operations: Copy, Flatten, Take, Roll, Delete
//
// Example:
//
//	a := tensor.Arange(0, 6, 1)
//	b, _ := a.Reshape(2, 3)  // Shares storage with a
//	b.Set(42, 0, 0)          // a.At(0) == 42
type Array = tensor.Array
