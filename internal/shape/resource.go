// internal/shape/resource.go
package shape

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrAlreadyDisposed signals a second release of the same resource.
var ErrAlreadyDisposed = errors.New("resource already disposed")

// GeometryKind selects the solid a renderer builds for a geometry handle.
type GeometryKind int

const (
	GeometryPlane GeometryKind = iota
	GeometryTetrahedron
	GeometryOctahedron
	GeometryDodecahedron
	GeometryIcosahedron
	GeometryTorus
	GeometrySphere
	GeometryCapsule
)

func (k GeometryKind) String() string {
	switch k {
	case GeometryPlane:
		return "plane"
	case GeometryTetrahedron:
		return "tetrahedron"
	case GeometryOctahedron:
		return "octahedron"
	case GeometryDodecahedron:
		return "dodecahedron"
	case GeometryIcosahedron:
		return "icosahedron"
	case GeometryTorus:
		return "torus"
	case GeometrySphere:
		return "sphere"
	case GeometryCapsule:
		return "capsule"
	}
	return fmt.Sprintf("GeometryKind(%d)", int(k))
}

// Geometry is a disposable solid description. Width/Height are used by
// planes, Radius by polyhedra and round kinds, Tube by the torus and
// Length by the capsule.
type Geometry struct {
	ID       uint64
	Kind     GeometryKind
	Width    float64
	Height   float64
	Radius   float64
	Tube     float64
	Length   float64
	Segments [2]int

	tracker  *Tracker
	released bool
}

// Released reports whether the handle was disposed.
func (g *Geometry) Released() bool { return g.released }

func (g *Geometry) release() error {
	if g.released {
		return fmt.Errorf("%w: geometry %d (%s)", ErrAlreadyDisposed, g.ID, g.Kind)
	}
	g.released = true
	g.tracker.geometries--
	return nil
}

// Material carries the face colour.
type Material struct {
	ID    uint64
	Color color.RGBA

	tracker  *Tracker
	released bool
}

// Released reports whether the handle was disposed.
func (m *Material) Released() bool { return m.released }

func (m *Material) release() error {
	if m.released {
		return fmt.Errorf("%w: material %d", ErrAlreadyDisposed, m.ID)
	}
	m.released = true
	m.tracker.materials--
	return nil
}

// Tracker hands out resource IDs and counts what is still alive.
// It is owned by the tick goroutine like the rest of the engine.
type Tracker struct {
	nextID     uint64
	geometries int
	materials  int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// LiveGeometries is the number of allocated, not yet released geometries.
func (t *Tracker) LiveGeometries() int { return t.geometries }

// LiveMaterials is the number of allocated, not yet released materials.
func (t *Tracker) LiveMaterials() int { return t.materials }

func (t *Tracker) newGeometry(g Geometry) *Geometry {
	t.nextID++
	t.geometries++
	g.ID = t.nextID
	g.tracker = t
	return &g
}

func (t *Tracker) newMaterial(c color.RGBA) *Material {
	t.nextID++
	t.materials++
	return &Material{ID: t.nextID, Color: c, tracker: t}
}
