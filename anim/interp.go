// Package anim is a framework for non-real-time animation: it evaluates
// time-varying drawing logic at a fixed sequence of instants and writes one
// raster image per instant.
//
// An Interpolator is a pure function from animation time to a value; a
// constant is just an Interpolator that ignores its time argument. Draw
// procedures (Proc) take a drawing Canvas and a time, and typically feed the
// results of interpolators into drawing primitives. Render drives a Proc
// across a time window at a fixed frame rate, exporting numbered PNG frames
// suitable for an external video encoder.
package anim

import (
	"math"

	"github.com/fogleman/ease"
)

// An Interpolator yields a value for any animation time. It is either a
// constant or a time function; evaluating the same Interpolator at the same
// time always yields the same value. Functions passed to TimeFunc must be
// pure for that to hold.
//
// Combinators that take animatable arguments accept constants and
// Interpolators interchangeably; see Lift for the accepted kinds. Those
// whose only possible failure is an unliftable argument panic with the
// ConfigError rather than returning it.
type Interpolator struct {
	fn func(t float64) float64
	c  float64
}

// Constant returns an Interpolator that yields v at every time.
func Constant(v float64) Interpolator {
	return Interpolator{c: v}
}

// TimeFunc lifts a plain time function into an Interpolator. This is the
// extension point for user-defined animated values.
func TimeFunc(f func(t float64) float64) Interpolator {
	return Interpolator{fn: f}
}

// At evaluates the interpolator at time t.
func (in Interpolator) At(t float64) float64 {
	if in.fn != nil {
		return in.fn(t)
	}
	return in.c
}

// IsConstant reports whether the interpolator ignores its time argument.
func (in Interpolator) IsConstant() bool {
	return in.fn == nil
}

// Lift converts a constant or an Interpolator into an Interpolator, so that
// animatable parameters can be given either form. Accepted kinds are
// Interpolator, float64, float32, the int kinds, and func(float64) float64.
func Lift(v interface{}) (Interpolator, error) {
	switch x := v.(type) {
	case Interpolator:
		return x, nil
	case float64:
		return Constant(x), nil
	case float32:
		return Constant(float64(x)), nil
	case int:
		return Constant(float64(x)), nil
	case int32:
		return Constant(float64(x)), nil
	case int64:
		return Constant(float64(x)), nil
	case func(float64) float64:
		return TimeFunc(x), nil
	case nil:
		return Interpolator{}, configErrorf("nil animatable value")
	default:
		return Interpolator{}, configErrorf("cannot animate value of type %T", v)
	}
}

func mustLift(v interface{}) Interpolator {
	in, err := Lift(v)
	if err != nil {
		panic(err)
	}
	return in
}

// Linear returns a clamped linear ramp: v0 for t <= t0, v1 for t >= t1, and
// the linear interpolation in between. t0 and t1 must differ.
func Linear(t0, t1, v0, v1 float64) (Interpolator, error) {
	if t1 == t0 {
		return Interpolator{}, configErrorf("linear ramp has zero width (t0 = t1 = %g)", t0)
	}
	return TimeFunc(func(t float64) float64 {
		x := (t - t0) / (t1 - t0)
		if x <= 0 {
			return v0
		}
		if x >= 1 {
			return v1
		}
		return v0 + x*(v1-v0)
	}), nil
}

// Eased returns a ramp from v0 to v1 over [t0, t1] whose progress is shaped
// by fn, one of the easing functions from github.com/fogleman/ease. Outside
// the window it clamps like Linear.
func Eased(t0, t1, v0, v1 float64, fn ease.Function) (Interpolator, error) {
	if t1 == t0 {
		return Interpolator{}, configErrorf("eased ramp has zero width (t0 = t1 = %g)", t0)
	}
	if fn == nil {
		return Interpolator{}, configErrorf("eased ramp needs an easing function")
	}
	return TimeFunc(func(t float64) float64 {
		x := (t - t0) / (t1 - t0)
		if x <= 0 {
			return v0
		}
		if x >= 1 {
			return v1
		}
		return v0 + fn(x)*(v1-v0)
	}), nil
}

// Loop repeats base over equal intervals of the given period, so that
// the result at t equals base at mod(t, period). period must be positive.
func Loop(base interface{}, period float64) (Interpolator, error) {
	in, err := Lift(base)
	if err != nil {
		return Interpolator{}, err
	}
	if period <= 0 {
		return Interpolator{}, configErrorf("loop period %g is not positive", period)
	}
	return TimeFunc(func(t float64) float64 {
		return in.At(fmod(t, period))
	}), nil
}

// Reverse plays base backwards across each interval of the given period:
// the result at t equals base at period - mod(t, period).
func Reverse(base interface{}, period float64) (Interpolator, error) {
	in, err := Lift(base)
	if err != nil {
		return Interpolator{}, err
	}
	if period <= 0 {
		return Interpolator{}, configErrorf("reverse period %g is not positive", period)
	}
	return TimeFunc(func(t float64) float64 {
		return in.At(period - fmod(t, period))
	}), nil
}

// Remap evaluates base on a rescaled clock: the result at t is base at
// scale*t + offset. Use it to speed up, slow down or delay an animation.
func Remap(base interface{}, scale, offset float64) Interpolator {
	in := mustLift(base)
	return TimeFunc(func(t float64) float64 {
		return in.At(scale*t + offset)
	})
}

// Add returns an interpolator yielding the sum of a and b at the same time.
func Add(a, b interface{}) Interpolator {
	ia, ib := mustLift(a), mustLift(b)
	return TimeFunc(func(t float64) float64 {
		return ia.At(t) + ib.At(t)
	})
}

// Mul returns an interpolator yielding the product of a and b at the same time.
func Mul(a, b interface{}) Interpolator {
	ia, ib := mustLift(a), mustLift(b)
	return TimeFunc(func(t float64) float64 {
		return ia.At(t) * ib.At(t)
	})
}

// Scale multiplies the output of base by k.
func Scale(base interface{}, k float64) Interpolator {
	in := mustLift(base)
	return TimeFunc(func(t float64) float64 {
		return in.At(t) * k
	})
}

// Offset adds k to the output of base.
func Offset(base interface{}, k float64) Interpolator {
	in := mustLift(base)
	return TimeFunc(func(t float64) float64 {
		return in.At(t) + k
	})
}

// Map passes the output of base through f.
func Map(base interface{}, f func(float64) float64) Interpolator {
	in := mustLift(base)
	return TimeFunc(func(t float64) float64 {
		return f(in.At(t))
	})
}

// Piecewise stitches segments together over consecutive knot intervals.
// ts must be monotonically increasing with len(ts) == len(segs)+1; segment i
// covers [ts[i], ts[i+1]] and is evaluated on that interval normalized to
// [0, 1]. Segments after the first are shifted so the overall function is
// continuous at the knots.
func Piecewise(ts []float64, segs []interface{}) (Interpolator, error) {
	if len(ts) < 2 || len(segs)+1 != len(ts) {
		return Interpolator{}, configErrorf("piecewise needs n+1 knots for n segments, got %d knots, %d segments", len(ts), len(segs))
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return Interpolator{}, configErrorf("piecewise knots are not increasing at index %d", i)
		}
	}
	ins := make([]Interpolator, len(segs))
	for i, s := range segs {
		in, err := Lift(s)
		if err != nil {
			return Interpolator{}, err
		}
		ins[i] = in
	}
	knots := append([]float64(nil), ts...)
	return TimeFunc(func(t float64) float64 {
		offset := 0.0
		i := 0
		for {
			if i >= len(ins)-1 || knots[i+1] >= t {
				return ins[i].At((t-knots[i])/(knots[i+1]-knots[i])) + offset
			}
			offset += ins[i].At(1) - ins[i+1].At(0)
			i++
		}
	}), nil
}

// Step returns a step function: vs[i] for t in [ts[i], ts[i+1]), with the
// first and last values extended outwards. len(ts) must be len(vs)+1.
func Step(ts []float64, vs []float64) (Interpolator, error) {
	if len(ts) < 2 || len(ts) != len(vs)+1 {
		return Interpolator{}, configErrorf("step needs n+1 knots for n values, got %d knots, %d values", len(ts), len(vs))
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return Interpolator{}, configErrorf("step knots are not increasing at index %d", i)
		}
	}
	knots := append([]float64(nil), ts...)
	vals := append([]float64(nil), vs...)
	return TimeFunc(func(t float64) float64 {
		i := len(vals) - 1
		for i > 0 && knots[i] > t {
			i--
		}
		return vals[i]
	}), nil
}

// fmod is a modulus that stays in [0, m) for negative arguments too.
func fmod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
