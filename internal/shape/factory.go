// internal/shape/factory.go
package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/golang/geo/r3"
	colorful "github.com/lucasb-eyer/go-colorful"

	"go-cube-train/internal/utils"
)

// ErrUnknownKind is returned for shape kinds without a builder.
var ErrUnknownKind = errors.New("unknown shape kind")

const (
	polyhedronScale  = 0.7
	torusRadiusScale = 0.5
	torusTubeScale   = 0.2
	sphereScale      = 0.5
	capsuleRadius    = 0.3
	capsuleLength    = 0.6
)

// Цвета граней куба: право, лево, верх, низ, фронт, тыл.
var cubeColors = [6]color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
}

type builder func(f *Factory, size float64) []Face

// builders - таблица стратегий: один вид формы, одна функция построения.
var builders = map[Kind]builder{
	Cube:         buildCube,
	Tetrahedron:  sharedSolid(4, polyhedron(GeometryTetrahedron)),
	Octahedron:   sharedSolid(8, polyhedron(GeometryOctahedron)),
	Dodecahedron: sharedSolid(12, polyhedron(GeometryDodecahedron)),
	Icosahedron:  sharedSolid(20, polyhedron(GeometryIcosahedron)),
	Torus:        sharedSolid(6, torus),
	Sphere:       sharedSolid(6, sphere),
	Capsule:      sharedSolid(6, capsule),
}

func polyhedron(kind GeometryKind) func(size float64) Geometry {
	return func(size float64) Geometry {
		return Geometry{Kind: kind, Radius: size * polyhedronScale}
	}
}

func torus(size float64) Geometry {
	return Geometry{
		Kind:     GeometryTorus,
		Radius:   size * torusRadiusScale,
		Tube:     size * torusTubeScale,
		Segments: [2]int{16, 32},
	}
}

func sphere(size float64) Geometry {
	return Geometry{Kind: GeometrySphere, Radius: size * sphereScale, Segments: [2]int{32, 32}}
}

func capsule(size float64) Geometry {
	return Geometry{
		Kind:     GeometryCapsule,
		Radius:   size * capsuleRadius,
		Length:   size * capsuleLength,
		Segments: [2]int{4, 8},
	}
}

var kindOrder = []Kind{Cube, Tetrahedron, Octahedron, Dodecahedron, Icosahedron, Torus, Sphere, Capsule}

// Factory builds shapes and registers their resources with a Tracker.
type Factory struct {
	rng     *utils.PRNGService
	tracker *Tracker
}

func NewFactory(rng *utils.PRNGService, tracker *Tracker) *Factory {
	return &Factory{rng: rng, tracker: tracker}
}

// Tracker returns the resource tracker shared by every built shape.
func (f *Factory) Tracker() *Tracker {
	return f.tracker
}

// Validate reports whether kind has a builder.
func Validate(kind string) error {
	if _, ok := builders[Kind(kind)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

// Build creates the faces for one entity.
func (f *Factory) Build(kind string, size float64) (*Shape, error) {
	b, ok := builders[Kind(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return &Shape{Kind: Kind(kind), Size: size, Faces: b(f, size)}, nil
}

// Names lists shape kinds in display order.
func Names() []string {
	out := make([]string, len(kindOrder))
	for i, k := range kindOrder {
		out[i] = string(k)
	}
	return out
}

// Next returns the kind after current, wrapping around.
func Next(current string) string {
	for i, k := range kindOrder {
		if string(k) == current {
			return string(kindOrder[(i+1)%len(kindOrder)])
		}
	}
	return string(kindOrder[0])
}

func buildCube(f *Factory, size float64) []Face {
	h := size / 2
	placements := [6]struct{ offset, rotation r3.Vector }{
		{r3.Vector{X: h}, r3.Vector{Y: math.Pi / 2}},
		{r3.Vector{X: -h}, r3.Vector{Y: -math.Pi / 2}},
		{r3.Vector{Y: h}, r3.Vector{X: -math.Pi / 2}},
		{r3.Vector{Y: -h}, r3.Vector{X: math.Pi / 2}},
		{r3.Vector{Z: h}, r3.Vector{}},
		{r3.Vector{Z: -h}, r3.Vector{Y: math.Pi}},
	}

	faces := make([]Face, 0, len(placements))
	for i, p := range placements {
		geom := f.tracker.newGeometry(Geometry{Kind: GeometryPlane, Width: size, Height: size})
		faces = append(faces, Face{
			Geometry: geom,
			Material: f.tracker.newMaterial(cubeColors[i]),
			Offset:   p.offset,
			Rotation: p.rotation,
		})
	}
	return faces
}

// sharedSolid builds n faces over one geometry, each turned by i·2π/n around Y.
func sharedSolid(n int, solid func(size float64) Geometry) builder {
	return func(f *Factory, size float64) []Face {
		geom := f.tracker.newGeometry(solid(size))
		faces := make([]Face, n)
		for i := range faces {
			faces[i] = Face{
				Geometry: geom,
				Material: f.tracker.newMaterial(f.randomColor()),
				Rotation: r3.Vector{Y: float64(i) * 2 * math.Pi / float64(n)},
			}
		}
		return faces
	}
}

func (f *Factory) randomColor() color.RGBA {
	c := colorful.Hsv(f.rng.Range(0, 360), f.rng.Range(0.5, 1), f.rng.Range(0.6, 1))
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
