package frames

import "github.com/EdwinChan/celestial-sphere/vectors"

// rotatable lets the transform chains apply identically to a single
// Vec3 and to a whole curve Batch.
type rotatable[T any] interface {
	RotateY(float64) T
	RotateZ(float64) T
}

func observerToInertial[T rotatable[T]](p Parameters, v T) (T, error) {
	v = v.RotateY(p.Colatitude()).RotateZ(p.TimeOfDay)
	switch p.Day {
	case DaySidereal:
	case DaySolar:
		v = v.RotateZ(p.TimeOfYear)
	default:
		var zero T
		return zero, ErrInvalidDayMode
	}
	return v, nil
}

func inertialToObserver[T rotatable[T]](p Parameters, v T) (T, error) {
	switch p.Day {
	case DaySidereal:
	case DaySolar:
		v = v.RotateZ(-p.TimeOfYear)
	default:
		var zero T
		return zero, ErrInvalidDayMode
	}
	return v.RotateZ(-p.TimeOfDay).RotateY(-p.Colatitude()), nil
}

func eclipticToView[T rotatable[T]](p Parameters, v T) (T, error) {
	var zero T
	if err := p.Valid(); err != nil {
		return zero, err
	}
	if p.View == ViewEcliptic {
		return v, nil
	}
	v = v.RotateY(-p.Obliquity)
	if p.View == ViewEquator {
		return v, nil
	}
	// horizon: undo the daily rotation, then the colatitude tilt
	v = v.RotateZ(-p.TimeOfDay)
	if p.Day == DaySolar {
		v = v.RotateZ(-p.TimeOfYear)
	}
	return v.RotateY(-p.Colatitude()), nil
}

func viewToEcliptic[T rotatable[T]](p Parameters, v T) (T, error) {
	var zero T
	if err := p.Valid(); err != nil {
		return zero, err
	}
	if p.View == ViewEcliptic {
		return v, nil
	}
	if p.View == ViewHorizon {
		v = v.RotateY(p.Colatitude())
		if p.Day == DaySolar {
			v = v.RotateZ(p.TimeOfYear)
		}
		v = v.RotateZ(p.TimeOfDay)
	}
	return v.RotateY(p.Obliquity), nil
}

// ObserverToInertial tilts the observer's local frame into the
// equatorial frame: colatitude about y, then the daily rotation about
// z, plus the orbital phase when the clock is solar.
func (p Parameters) ObserverToInertial(v vectors.Vec3) (vectors.Vec3, error) {
	return observerToInertial(p, v)
}

// ObserverToInertialBatch is ObserverToInertial applied element-wise.
func (p Parameters) ObserverToInertialBatch(b vectors.Batch) (vectors.Batch, error) {
	return observerToInertial(p, b)
}

// InertialToObserver inverts ObserverToInertial.
func (p Parameters) InertialToObserver(v vectors.Vec3) (vectors.Vec3, error) {
	return inertialToObserver(p, v)
}

// InertialToObserverBatch is InertialToObserver applied element-wise.
func (p Parameters) InertialToObserverBatch(b vectors.Batch) (vectors.Batch, error) {
	return inertialToObserver(p, b)
}

// InertialToEcliptic tilts the equatorial pole toward the ecliptic pole.
func (p Parameters) InertialToEcliptic(v vectors.Vec3) vectors.Vec3 {
	return v.RotateY(p.Obliquity)
}

// InertialToEclipticBatch is InertialToEcliptic applied element-wise.
func (p Parameters) InertialToEclipticBatch(b vectors.Batch) vectors.Batch {
	return b.RotateY(p.Obliquity)
}

// EclipticToInertial inverts InertialToEcliptic.
func (p Parameters) EclipticToInertial(v vectors.Vec3) vectors.Vec3 {
	return v.RotateY(-p.Obliquity)
}

// EclipticToInertialBatch is EclipticToInertial applied element-wise.
func (p Parameters) EclipticToInertialBatch(b vectors.Batch) vectors.Batch {
	return b.RotateY(-p.Obliquity)
}

// EclipticToView maps the ecliptic frame to the selected view frame.
// The ecliptic view is the identity; the equator view undoes the
// obliquity tilt; the horizon view further undoes the daily rotation
// and the colatitude tilt. An unknown view mode is an error, never a
// silent fall-through.
func (p Parameters) EclipticToView(v vectors.Vec3) (vectors.Vec3, error) {
	return eclipticToView(p, v)
}

// EclipticToViewBatch is EclipticToView applied element-wise.
func (p Parameters) EclipticToViewBatch(b vectors.Batch) (vectors.Batch, error) {
	return eclipticToView(p, b)
}

// ViewToEcliptic inverts EclipticToView.
func (p Parameters) ViewToEcliptic(v vectors.Vec3) (vectors.Vec3, error) {
	return viewToEcliptic(p, v)
}

// ViewToEclipticBatch is ViewToEcliptic applied element-wise.
func (p Parameters) ViewToEclipticBatch(b vectors.Batch) (vectors.Batch, error) {
	return viewToEcliptic(p, b)
}
