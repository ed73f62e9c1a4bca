// internal/spawn/pattern.go
package spawn

import (
	"errors"
	"fmt"
	"math"

	"go-cube-train/internal/utils"
)

// ErrUnknownPattern is returned by Lookup for names missing from the library.
var ErrUnknownPattern = errors.New("unknown spawn pattern")

// Point is an offset on the ground plane.
type Point struct {
	X, Z float64
}

// Func maps a spawn angle in radians and a radius to a ground offset.
type Func func(angle, radius float64) Point

const (
	spiralTurns     = math.Pi * 8
	spiralMinRadius = 0.5
	flowerPetals    = 5
	starPoints      = 5
	starInnerFactor = 0.4
	heartScale      = 0.3
	infinityA       = 0.7
	infinityB       = 0.4
	squareSector    = math.Pi / 2
	triangleSector  = math.Pi * 2 / 3
	sectorEpsilon   = 1e-6
	randomMinRadius = 0.5
)

// Library holds the named spawn patterns. Only "random" draws from the PRNG.
type Library struct {
	rng      *utils.PRNGService
	patterns map[string]Func
	order    []string
	warnings int
}

// NewLibrary builds the pattern set around rng.
func NewLibrary(rng *utils.PRNGService) *Library {
	l := &Library{rng: rng}
	l.order = []string{
		"circle", "spiral", "flower", "star", "heart",
		"square", "infinity", "lemniscate", "triangle", "random",
	}
	l.patterns = map[string]Func{
		"circle":     Circle,
		"spiral":     Spiral,
		"flower":     Flower,
		"star":       Star,
		"heart":      Heart,
		"square":     l.square,
		"infinity":   Infinity,
		"lemniscate": Lemniscate,
		"triangle":   l.triangle,
		"random":     l.random,
	}
	return l
}

// Lookup returns the pattern registered under name.
func (l *Library) Lookup(name string) (Func, error) {
	f, ok := l.patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return f, nil
}

// Spawn evaluates the named pattern.
func (l *Library) Spawn(name string, angle, radius float64) (Point, error) {
	f, err := l.Lookup(name)
	if err != nil {
		return Point{}, err
	}
	return f(angle, radius), nil
}

// Names lists patterns in display order.
func (l *Library) Names() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Next returns the pattern after current, wrapping around.
func (l *Library) Next(current string) string {
	for i, n := range l.order {
		if n == current {
			return l.order[(i+1)%len(l.order)]
		}
	}
	return l.order[0]
}

// Warnings counts evaluations where a sector denominator had to be clamped.
func (l *Library) Warnings() int {
	return l.warnings
}

func polar(r, angle float64) Point {
	return Point{X: r * math.Cos(angle), Z: r * math.Sin(angle)}
}

func Circle(angle, radius float64) Point {
	return polar(radius, angle)
}

func Spiral(angle, radius float64) Point {
	r := radius * (1 - angle/spiralTurns)
	return polar(math.Max(r, spiralMinRadius), angle)
}

func Flower(angle, radius float64) Point {
	return polar(radius*math.Cos(flowerPetals*angle), angle)
}

func Star(angle, radius float64) Point {
	inner := radius * starInnerFactor
	return polar(radius+(inner-radius)*math.Cos(starPoints*angle), angle)
}

func Heart(angle, radius float64) Point {
	t := angle - math.Pi/2
	size := radius * heartScale
	s := math.Sin(t)
	return Point{
		X: size * 16 * s * s * s,
		Z: size * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)),
	}
}

func Infinity(angle, radius float64) Point {
	a := radius * infinityA
	b := radius * infinityB
	s := math.Sin(angle)
	c := math.Cos(angle)
	d := 1 + s*s
	return Point{X: a * c / d, Z: b * s * c / d}
}

func Lemniscate(angle, radius float64) Point {
	return polar(radius*math.Sqrt(math.Abs(math.Cos(2*angle))), angle)
}

func (l *Library) square(angle, radius float64) Point {
	local := utils.FloorMod(angle+squareSector/2, squareSector) - squareSector/2
	return polar(l.sectorRadius(radius, local), angle)
}

func (l *Library) triangle(angle, radius float64) Point {
	local := utils.FloorMod(angle, triangleSector) - triangleSector/2
	return polar(l.sectorRadius(radius, local), angle)
}

// sectorRadius divides by the cosine of the in-sector angle. The floored
// modulo keeps the cosine well away from zero; the clamp covers rounding.
func (l *Library) sectorRadius(radius, local float64) float64 {
	c := math.Cos(local)
	if math.Abs(c) < sectorEpsilon {
		l.warnings++
		c = math.Copysign(sectorEpsilon, c)
	}
	return radius / c
}

func (l *Library) random(_, radius float64) Point {
	r := radius * l.rng.Range(randomMinRadius, 1)
	return polar(r, l.rng.Range(0, 2*math.Pi))
}
