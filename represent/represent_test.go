// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package represent_test

import (
	"errors"
	"testing"

	"github.com/born-ml/represent/represent"
	"github.com/born-ml/represent/tensor"
)

func broadcastSpherical(t *testing.T) *represent.Representation {
	t.Helper()
	lon, err := tensor.Arange(0, 24, 4).Index(tensor.All, tensor.NewAxis)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	s, err := represent.New(represent.Spherical, []represent.Quantity{
		represent.NewQuantity(lon, represent.HourAngle),
		represent.NewQuantity(tensor.Arange(-90, 91, 30), represent.Degree),
		represent.ScalarOf(1, represent.Kiloparsec),
	}, represent.NoCopy())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

// TestReshapeCopiesPerComponent verifies the documented (3, 14) example.
func TestReshapeCopiesPerComponent(t *testing.T) {
	s := broadcastSpherical(t)
	r, err := s.Reshape(3, 14)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	for name, wantShared := range map[string]bool{"lon": false, "lat": false, "distance": true} {
		got := tensor.MayShareMemory(s.Component(name).Value, r.Component(name).Value)
		if got != wantShared {
			t.Errorf("%s shares memory = %v, want %v", name, got, wantShared)
		}
	}

	if err := s.SetShape(42); !errors.Is(err, tensor.ErrNotRepresentable) {
		t.Errorf("SetShape(42) error = %v, want ErrNotRepresentable", err)
	}
	if !represent.Shape(s).Equal(tensor.Shape{6, 7}) {
		t.Errorf("shape after failed SetShape = %v, want (6, 7)", represent.Shape(s))
	}
}

// TestDifferentials verifies differential attachment through the facade.
func TestDifferentials(t *testing.T) {
	s := broadcastSpherical(t)
	masyr, err := represent.ParseUnit("mas/yr")
	if err != nil {
		t.Fatalf("ParseUnit failed: %v", err)
	}
	kms, err := represent.ParseUnit("km/s")
	if err != nil {
		t.Fatalf("ParseUnit failed: %v", err)
	}
	ones := tensor.Ones(tensor.Shape{6, 7})
	d, err := represent.New(represent.SphericalDifferential, []represent.Quantity{
		represent.NewQuantity(ones, masyr),
		represent.NewQuantity(ones, masyr),
		represent.NewQuantity(ones, kms),
	})
	if err != nil {
		t.Fatalf("New differential failed: %v", err)
	}

	withD, err := s.WithDifferentials(d)
	if err != nil {
		t.Fatalf("WithDifferentials failed: %v", err)
	}
	tr := withD.T()
	got, ok := tr.Differential("s")
	if !ok {
		t.Fatal("transpose dropped the differential")
	}
	if !got.Shape().Equal(tensor.Shape{7, 6}) {
		t.Errorf("differential shape = %v, want (7, 6)", got.Shape())
	}

	short, _ := d.Reshape(42)
	if _, err := s.WithDifferentials(short); !errors.Is(err, represent.ErrDifferentialShape) {
		t.Errorf("error = %v, want ErrDifferentialShape", err)
	}
}

// TestFunctions verifies the array-style functions match the methods.
func TestFunctions(t *testing.T) {
	s := broadcastSpherical(t)
	if represent.NDim(s) != 2 || represent.Size(s) != 42 {
		t.Errorf("NDim, Size = %d, %d, want 2, 42", represent.NDim(s), represent.Size(s))
	}
	lr, err := represent.FlipLR(s)
	if err != nil {
		t.Fatalf("FlipLR failed: %v", err)
	}
	if lat := lr.Component("lat").Value.At(0, 0); lat != 90 {
		t.Errorf("fliplr lat[0, 0] = %v, want 90", lat)
	}
	rs := represent.AtLeast3D(s)
	if !rs[0].Shape().Equal(tensor.Shape{6, 7, 1}) {
		t.Errorf("AtLeast3D shape = %v, want (6, 7, 1)", rs[0].Shape())
	}
	if !represent.Equal(s, represent.Copy(s)) {
		t.Error("copy should equal its source")
	}
}
