package frames

import "github.com/EdwinChan/celestial-sphere/vectors"

// Frame names the reference frame a tagged vector is expressed in.
type Frame int

const (
	FrameObserver Frame = iota
	FrameInertial
	FrameEcliptic
	FrameView
)

func (f Frame) String() string {
	switch f {
	case FrameObserver:
		return "observer"
	case FrameInertial:
		return "inertial"
	case FrameEcliptic:
		return "ecliptic"
	case FrameView:
		return "view"
	default:
		return "invalid"
	}
}

// Vector is a Vec3 tagged with the frame it lives in, so a vector from
// one frame cannot silently enter a transform expecting another.
type Vector struct {
	Frame Frame
	Vec   vectors.Vec3
}

// In constructs a tagged vector in the given frame.
func In(f Frame, v vectors.Vec3) Vector {
	return Vector{Frame: f, Vec: v}
}

// ToInertial carries v into the inertial frame from wherever it is.
func (p Parameters) ToInertial(v Vector) (Vector, error) {
	switch v.Frame {
	case FrameInertial:
		return v, nil
	case FrameObserver:
		w, err := p.ObserverToInertial(v.Vec)
		return Vector{FrameInertial, w}, err
	case FrameEcliptic:
		return Vector{FrameInertial, p.EclipticToInertial(v.Vec)}, nil
	case FrameView:
		w, err := p.ViewToEcliptic(v.Vec)
		if err != nil {
			return Vector{}, err
		}
		return Vector{FrameInertial, p.EclipticToInertial(w)}, nil
	default:
		return Vector{}, ErrInvalidFrame
	}
}

// ToEcliptic carries v into the ecliptic frame from wherever it is.
func (p Parameters) ToEcliptic(v Vector) (Vector, error) {
	switch v.Frame {
	case FrameEcliptic:
		return v, nil
	case FrameObserver, FrameInertial:
		w, err := p.ToInertial(v)
		if err != nil {
			return Vector{}, err
		}
		return Vector{FrameEcliptic, p.InertialToEcliptic(w.Vec)}, nil
	case FrameView:
		w, err := p.ViewToEcliptic(v.Vec)
		return Vector{FrameEcliptic, w}, err
	default:
		return Vector{}, ErrInvalidFrame
	}
}

// ToView carries v into the view frame from wherever it is. The chain
// always runs native -> ecliptic -> view, even when a stage is the
// identity, so the composition stays uniform.
func (p Parameters) ToView(v Vector) (Vector, error) {
	w, err := p.ToEcliptic(v)
	if err != nil {
		return Vector{}, err
	}
	u, err := p.EclipticToView(w.Vec)
	return Vector{FrameView, u}, err
}

// ToObserver carries v back into the observer frame from wherever it is.
func (p Parameters) ToObserver(v Vector) (Vector, error) {
	if v.Frame == FrameObserver {
		return v, nil
	}
	w, err := p.ToInertial(v)
	if err != nil {
		return Vector{}, err
	}
	u, err := p.InertialToObserver(w.Vec)
	return Vector{FrameObserver, u}, err
}
