package vectors_test

import (
	"math"
	"testing"

	"github.com/EdwinChan/celestial-sphere/vectors"
)

const tol = 1e-12

var probeAngles = []float64{
	0, 0.1, math.Pi / 6, math.Pi / 2, 1.0, math.Pi - 0.01, math.Pi,
	-0.3, -math.Pi / 2, 2.5, -2.9,
}

var probeVectors = []vectors.Vec3{
	{X: 1},
	{Y: 1},
	{Z: 1},
	{X: 0.3, Y: -0.4, Z: 0.5},
	{X: -1.2, Y: 2.5, Z: -0.7},
}

func vecClose(a, b vectors.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps &&
		math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps
}

func TestRotateRoundTrip(t *testing.T) {
	axes := []vectors.Axis{vectors.AxisX, vectors.AxisY, vectors.AxisZ}
	for _, axis := range axes {
		for _, angle := range probeAngles {
			for _, v := range probeVectors {
				got := v.Rotate(axis, angle).Rotate(axis, -angle)
				if !vecClose(got, v, tol) {
					t.Errorf("Rotate(%v, %v) round trip: got %+v, want %+v",
						axis, angle, got, v)
				}
			}
		}
	}
}

func TestRotatePreservesNorm(t *testing.T) {
	axes := []vectors.Axis{vectors.AxisX, vectors.AxisY, vectors.AxisZ}
	for _, axis := range axes {
		for _, angle := range probeAngles {
			for _, v := range probeVectors {
				got := v.Rotate(axis, angle).Norm()
				if math.Abs(got-v.Norm()) > tol {
					t.Errorf("Rotate(%v, %v, %+v): norm %v, want %v",
						axis, angle, v, got, v.Norm())
				}
			}
		}
	}
}

func TestRotateQuarterTurns(t *testing.T) {
	tests := []struct {
		name string
		got  vectors.Vec3
		want vectors.Vec3
	}{
		{"z quarter turn of x", vectors.Vec3{X: 1}.RotateZ(math.Pi / 2), vectors.Vec3{Y: 1}},
		{"z quarter turn of y", vectors.Vec3{Y: 1}.RotateZ(math.Pi / 2), vectors.Vec3{X: -1}},
		{"x quarter turn of y", vectors.Vec3{Y: 1}.RotateX(math.Pi / 2), vectors.Vec3{Z: 1}},
		{"y quarter turn of z", vectors.Vec3{Z: 1}.RotateY(math.Pi / 2), vectors.Vec3{X: 1}},
		{"y quarter turn of x", vectors.Vec3{X: 1}.RotateY(math.Pi / 2), vectors.Vec3{Z: -1}},
	}
	for _, tt := range tests {
		if !vecClose(tt.got, tt.want, tol) {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRotateDispatchMatchesAxisMethods(t *testing.T) {
	v := vectors.Vec3{X: 0.2, Y: -0.5, Z: 0.8}
	const angle = 1.234
	if got := v.Rotate(vectors.AxisX, angle); got != v.RotateX(angle) {
		t.Errorf("Rotate(AxisX): got %+v", got)
	}
	if got := v.Rotate(vectors.AxisY, angle); got != v.RotateY(angle) {
		t.Errorf("Rotate(AxisY): got %+v", got)
	}
	if got := v.Rotate(vectors.AxisZ, angle); got != v.RotateZ(angle) {
		t.Errorf("Rotate(AxisZ): got %+v", got)
	}
}

func TestBatchRotateMatchesElementwise(t *testing.T) {
	b := vectors.NewBatch(len(probeVectors))
	for i, v := range probeVectors {
		b.Set(i, v)
	}

	axes := []vectors.Axis{vectors.AxisX, vectors.AxisY, vectors.AxisZ}
	for _, axis := range axes {
		for _, angle := range probeAngles {
			rotated := b.Rotate(axis, angle)
			if rotated.Len() != b.Len() {
				t.Fatalf("Rotate(%v, %v): length %d, want %d",
					axis, angle, rotated.Len(), b.Len())
			}
			for i, v := range probeVectors {
				want := v.Rotate(axis, angle)
				if !vecClose(rotated.At(i), want, tol) {
					t.Errorf("batch Rotate(%v, %v) point %d: got %+v, want %+v",
						axis, angle, i, rotated.At(i), want)
				}
			}
		}
	}
}

func TestBatchRotateLeavesInputUnchanged(t *testing.T) {
	b := vectors.NewBatch(2)
	b.Set(0, vectors.Vec3{X: 1})
	b.Set(1, vectors.Vec3{Y: 1})

	_ = b.RotateZ(1.0)

	if b.At(0) != (vectors.Vec3{X: 1}) || b.At(1) != (vectors.Vec3{Y: 1}) {
		t.Errorf("RotateZ mutated its input: %+v", b)
	}
}
