package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorMod(t *testing.T) {
	assert.InDelta(t, 1.0, FloorMod(5, 2), 1e-12)
	assert.InDelta(t, 1.0, FloorMod(-1, 2), 1e-12)
	assert.InDelta(t, 0.0, FloorMod(-4, 2), 1e-12)
	for _, x := range []float64{-100.3, -math.Pi, 0, 1e-18, 7.77, 1e6} {
		r := FloorMod(x, math.Pi/2)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.Less(t, r, math.Pi/2)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}

func TestPRNGIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	for i := 0; i < 100; i++ {
		v := a.Range(2, 3)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 3.0)
		n := a.Intn(4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)
	}
}
