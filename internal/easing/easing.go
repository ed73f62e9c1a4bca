// internal/easing/easing.go
package easing

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned by Lookup for names missing from the registry.
var ErrUnknownEasing = errors.New("unknown easing function")

// Func maps normalized time in [0, 1] to progress. Elastic and bounce
// variants may leave [0, 1] between the endpoints.
type Func func(t float64) float64

const elasticC5 = (2 * math.Pi) / 4.5

// wrap переводит кривую gween в Func: вход зажат в [0, 1], концы точные.
func wrap(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	Linear = wrap(ease.Linear)

	InQuad    = wrap(ease.InQuad)
	OutQuad   = wrap(ease.OutQuad)
	InOutQuad = wrap(ease.InOutQuad)

	InSine    = wrap(ease.InSine)
	OutSine   = wrap(ease.OutSine)
	InOutSine = wrap(ease.InOutSine)

	InBounce    = wrap(ease.InBounce)
	OutBounce   = wrap(ease.OutBounce)
	InOutBounce = wrap(ease.InOutBounce)

	InElastic  = wrap(ease.InElastic)
	OutElastic = wrap(ease.OutElastic)

	InCirc    = wrap(ease.InCirc)
	OutCirc   = wrap(ease.OutCirc)
	InOutCirc = wrap(ease.InOutCirc)
)

// Expo у gween сдвинут на 0.001 от 2^(10t-10), поэтому своя версия.
func InExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, math.Min(t, 1)*10-10)
}

func OutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*math.Max(t, 0))
}

func InOutExpo(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

// InOutElastic: у gween другой период (0.15 против 0.225).
func InOutElastic(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
	default:
		return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
	}
}

// Порядок совпадает с выпадающим списком оригинальной панели.
var names = []string{
	"linear",
	"easeInQuad", "easeOutQuad", "easeInOutQuad",
	"easeInSine", "easeOutSine", "easeInOutSine",
	"easeInExpo", "easeOutExpo", "easeInOutExpo",
	"easeInBounce", "easeOutBounce", "easeInOutBounce",
	"easeInElastic", "easeOutElastic", "easeInOutElastic",
	"easeInCirc", "easeOutCirc", "easeInOutCirc",
}

var registry = map[string]Func{
	"linear":           Linear,
	"easeInQuad":       InQuad,
	"easeOutQuad":      OutQuad,
	"easeInOutQuad":    InOutQuad,
	"easeInSine":       InSine,
	"easeOutSine":      OutSine,
	"easeInOutSine":    InOutSine,
	"easeInExpo":       InExpo,
	"easeOutExpo":      OutExpo,
	"easeInOutExpo":    InOutExpo,
	"easeInBounce":     InBounce,
	"easeOutBounce":    OutBounce,
	"easeInOutBounce":  InOutBounce,
	"easeInElastic":    InElastic,
	"easeOutElastic":   OutElastic,
	"easeInOutElastic": InOutElastic,
	"easeInCirc":       InCirc,
	"easeOutCirc":      OutCirc,
	"easeInOutCirc":    InOutCirc,
}

// Lookup returns the easing registered under name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return f, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Func {
	f, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Names lists every registered easing in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Next returns the name following current in display order, wrapping around.
// Unknown names restart from the first entry.
func Next(current string) string {
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
