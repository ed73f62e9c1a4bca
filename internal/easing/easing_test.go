package easing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	for _, name := range Names() {
		f := MustLookup(name)
		assert.InDelta(t, 0, f(0), 1e-12, name)
		assert.InDelta(t, 1, f(1), 1e-12, name)
	}
}

func TestExactEndpointsForGuardedFamilies(t *testing.T) {
	for _, name := range []string{
		"easeInExpo", "easeOutExpo", "easeInOutExpo",
		"easeInElastic", "easeOutElastic", "easeInOutElastic",
	} {
		f := MustLookup(name)
		assert.Equal(t, 0.0, f(0), name)
		assert.Equal(t, 1.0, f(1), name)
	}
}

func TestFiniteOnUnitInterval(t *testing.T) {
	for _, name := range Names() {
		f := MustLookup(name)
		for i := 0; i <= 1000; i++ {
			v := f(float64(i) / 1000)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s(%v) = %v", name, float64(i)/1000, v)
		}
	}
}

func TestBounceMirror(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		assert.InDelta(t, 1-OutBounce(1-x), InBounce(x), 1e-6)
	}
}

func TestQuadIsMonotonic(t *testing.T) {
	for _, f := range []Func{InQuad, OutQuad, InOutQuad} {
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev)
			prev = v
		}
	}
	assert.InDelta(t, 0.5, InOutQuad(0.5), 1e-12)
}

func TestElasticOvershoots(t *testing.T) {
	overshoot := false
	for i := 1; i < 100; i++ {
		if OutElastic(float64(i)/100) > 1 {
			overshoot = true
			break
		}
	}
	assert.True(t, overshoot)
}

func TestCircularOutsideDomain(t *testing.T) {
	assert.False(t, math.IsNaN(InCirc(1.5)))
	assert.False(t, math.IsNaN(OutCirc(-0.5)))
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("easeSideways")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEasing))
	assert.Panics(t, func() { MustLookup("easeSideways") })
}

func TestNamesMatchRegistry(t *testing.T) {
	n := Names()
	assert.Len(t, n, len(registry))
	for _, name := range n {
		_, err := Lookup(name)
		assert.NoError(t, err)
	}

	n[0] = "mutated"
	assert.Equal(t, "linear", Names()[0])
}

func TestNextWraps(t *testing.T) {
	assert.Equal(t, "easeInQuad", Next("linear"))
	assert.Equal(t, "linear", Next("easeInOutCirc"))
	assert.Equal(t, "linear", Next("nope"))
}

// Reference formulas in float64; the float32 curves must agree closely.
func TestCurvesMatchReferenceFormulas(t *testing.T) {
	c4 := (2 * math.Pi) / 3
	ref := map[string]func(x float64) float64{
		"linear":         func(x float64) float64 { return x },
		"easeInQuad":     func(x float64) float64 { return x * x },
		"easeOutQuad":    func(x float64) float64 { return x * (2 - x) },
		"easeInOutSine":  func(x float64) float64 { return -(math.Cos(math.Pi*x) - 1) / 2 },
		"easeInExpo":     func(x float64) float64 { return math.Pow(2, 10*x-10) },
		"easeOutCirc":    func(x float64) float64 { return math.Sqrt(1 - (x-1)*(x-1)) },
		"easeInElastic":  func(x float64) float64 { return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*c4) },
		"easeOutElastic": func(x float64) float64 { return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*c4) + 1 },
		"easeOutBounce": func(x float64) float64 {
			const n1, d1 = 7.5625, 2.75
			switch {
			case x < 1/d1:
				return n1 * x * x
			case x < 2/d1:
				x -= 1.5 / d1
				return n1*x*x + 0.75
			case x < 2.5/d1:
				x -= 2.25 / d1
				return n1*x*x + 0.9375
			default:
				x -= 2.625 / d1
				return n1*x*x + 0.984375
			}
		},
	}
	for name, want := range ref {
		f := MustLookup(name)
		for i := 1; i < 100; i++ {
			x := float64(i) / 100
			assert.InDelta(t, want(x), f(x), 1e-5, "%s(%v)", name, x)
		}
	}
}

func TestInputsAreClamped(t *testing.T) {
	for _, name := range Names() {
		f := MustLookup(name)
		assert.Equal(t, 0.0, f(-0.5), name)
		assert.Equal(t, 1.0, f(1.5), name)
	}
}
