// internal/shape/shape.go
package shape

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
)

// Kind names a shape family.
type Kind string

const (
	Cube         Kind = "cube"
	Tetrahedron  Kind = "tetrahedron"
	Octahedron   Kind = "octahedron"
	Dodecahedron Kind = "dodecahedron"
	Icosahedron  Kind = "icosahedron"
	Torus        Kind = "torus"
	Sphere       Kind = "sphere"
	Capsule      Kind = "capsule"
)

// Face is one visual sub-part of a shape. Offset is relative to the
// entity origin, Rotation holds Euler angles in radians (X, Y, Z).
type Face struct {
	Geometry *Geometry
	Material *Material
	Offset   r3.Vector
	Rotation r3.Vector
}

// Shape is the set of faces owned by one entity.
type Shape struct {
	Kind  Kind
	Size  float64
	Faces []Face

	disposed bool
}

// Disposed reports whether Dispose already ran.
func (s *Shape) Disposed() bool { return s.disposed }

// Dispose releases every material once and every distinct geometry once,
// so faces sharing one solid release it a single time.
func (s *Shape) Dispose() error {
	if s.disposed {
		return fmt.Errorf("%w: %s shape", ErrAlreadyDisposed, s.Kind)
	}
	s.disposed = true

	var errs []error
	seen := make(map[*Geometry]struct{}, 1)
	for _, f := range s.Faces {
		if f.Material != nil {
			if err := f.Material.release(); err != nil {
				errs = append(errs, err)
			}
		}
		if f.Geometry == nil {
			continue
		}
		if _, ok := seen[f.Geometry]; ok {
			continue
		}
		seen[f.Geometry] = struct{}{}
		if err := f.Geometry.release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Geometries returns the distinct geometries referenced by the faces, in face order.
func (s *Shape) Geometries() []*Geometry {
	var out []*Geometry
	seen := make(map[*Geometry]struct{}, 1)
	for _, f := range s.Faces {
		if _, ok := seen[f.Geometry]; ok || f.Geometry == nil {
			continue
		}
		seen[f.Geometry] = struct{}{}
		out = append(out, f.Geometry)
	}
	return out
}
