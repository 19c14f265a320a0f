package vectors

import "math"

// Batch holds a polyline of 3D points as three parallel component
// slices of equal length. Rotations apply the single-vector formula
// element-wise, so a Batch moves through the frame pipeline exactly
// like a Vec3 does.
type Batch struct {
	X, Y, Z []float64
}

// NewBatch allocates a batch of n points, all zero.
func NewBatch(n int) Batch {
	return Batch{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
}

// Len returns the number of points in the batch.
func (b Batch) Len() int {
	return len(b.X)
}

// At returns point i as a Vec3.
func (b Batch) At(i int) Vec3 {
	return Vec3{b.X[i], b.Y[i], b.Z[i]}
}

// Set stores v at index i.
func (b Batch) Set(i int, v Vec3) {
	b.X[i], b.Y[i], b.Z[i] = v.X, v.Y, v.Z
}

// RotateX returns a new batch rotated by angle about the x-axis.
func (b Batch) RotateX(angle float64) Batch {
	s, c := math.Sincos(angle)
	out := NewBatch(b.Len())
	for i := range b.X {
		out.X[i] = b.X[i]
		out.Y[i] = b.Y[i]*c - b.Z[i]*s
		out.Z[i] = b.Y[i]*s + b.Z[i]*c
	}
	return out
}

// RotateY returns a new batch rotated by angle about the y-axis.
func (b Batch) RotateY(angle float64) Batch {
	s, c := math.Sincos(angle)
	out := NewBatch(b.Len())
	for i := range b.X {
		out.X[i] = b.Z[i]*s + b.X[i]*c
		out.Y[i] = b.Y[i]
		out.Z[i] = b.Z[i]*c - b.X[i]*s
	}
	return out
}

// RotateZ returns a new batch rotated by angle about the z-axis.
func (b Batch) RotateZ(angle float64) Batch {
	s, c := math.Sincos(angle)
	out := NewBatch(b.Len())
	for i := range b.X {
		out.X[i] = b.X[i]*c - b.Y[i]*s
		out.Y[i] = b.X[i]*s + b.Y[i]*c
		out.Z[i] = b.Z[i]
	}
	return out
}

// Rotate returns a new batch rotated by angle about the given axis.
func (b Batch) Rotate(axis Axis, angle float64) Batch {
	switch axis {
	case AxisX:
		return b.RotateX(angle)
	case AxisY:
		return b.RotateY(angle)
	case AxisZ:
		return b.RotateZ(angle)
	default:
		panic("vectors: unknown rotation axis")
	}
}
