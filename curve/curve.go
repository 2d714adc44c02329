// Package curve generates draw procedures for parametric curve families:
// Lissajous figures, rose curves, Maurer roses, trochoids, spirolaterals and
// whirl patterns. Every family parameter is animatable, accepting either a
// constant or an anim.Interpolator; parameters are evaluated at each frame's
// time and the curve is sampled into a stroked path using whatever pen state
// is currently set on the canvas.
package curve

import (
	"fmt"
	"math"

	"github.com/animtools/animrend/anim"
)

// Func samples a continuous curve: it maps a position x in [0, 1) to a point.
type Func func(x float64) (px, py float64)

// DiscreteFunc samples a curve made of discrete steps: it maps a step index
// in [0, nrSteps) to a point.
type DiscreteFunc func(n int) (px, py float64)

// Trace approximates the curve f with nrSteps straight-line segments and
// strokes it with the current pen. start and end select the fraction of the
// curve to draw, both in [0, 1]; end may be less than start to wrap around
// the curve. If closed and the selection covers a whole traversal, the path
// is closed before stroking.
func Trace(c anim.Canvas, f Func, closed bool, nrSteps int, start, end float64) error {
	if nrSteps < 1 {
		return fmt.Errorf("curve: nr_steps %d is not positive", nrSteps)
	}
	c.NewPath()
	if end < start {
		end++
	}
	startStep := int(math.Round(start * float64(nrSteps)))
	endStep := int(math.Round(end * float64(nrSteps)))
	for i := startStep; i < endStep; i++ {
		px, py := f(float64(imod(i, nrSteps)) / float64(nrSteps))
		c.LineTo(px, py)
	}
	if closed && imod(startStep, nrSteps) == imod(endStep, nrSteps) {
		c.ClosePath()
	}
	c.Stroke()
	return nil
}

// TraceDiscrete strokes the discrete curve f, which has nrSteps points.
// start, end and closed behave as in Trace. subcurve, if not nil, partitions
// the steps: every time it returns a new value a fresh subpath starts (and
// the previous one is closed when closed is set).
func TraceDiscrete(c anim.Canvas, f DiscreteFunc, closed bool, nrSteps int, start, end float64, subcurve func(n int) int) error {
	if nrSteps < 1 {
		return fmt.Errorf("curve: nr_steps %d is not positive", nrSteps)
	}
	c.NewPath()
	if end < start {
		end++
	}
	nStart := int(math.Round(start * float64(nrSteps)))
	nEnd := int(math.Round(end * float64(nrSteps)))
	inSub := false
	lastSub := 0
	for i := nStart; i < nEnd; i++ {
		n := imod(i, nrSteps)
		if subcurve != nil {
			thisSub := subcurve(n)
			if inSub && thisSub != lastSub {
				if closed {
					c.ClosePath()
				}
				c.NewSubPath()
			}
			lastSub = thisSub
			inSub = true
		}
		px, py := f(n)
		c.LineTo(px, py)
	}
	if closed && imod(nStart, nrSteps) == imod(nEnd, nrSteps) {
		c.ClosePath()
	}
	c.Stroke()
	return nil
}

// rot rotates the point (x, y) about the origin by angle radians.
func rot(x, y, angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	return x*c - y*s, x*s + y*c
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// imod is a modulus that stays in [0, m) for negative arguments too.
func imod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// param lifts an animatable field, substituting def when the field was left
// unset.
func param(v interface{}, def float64) (anim.Interpolator, error) {
	if v == nil {
		return anim.Constant(def), nil
	}
	return anim.Lift(v)
}

// round converts an interpolated value to the integer parameter the curve
// equations need.
func round(x float64) int {
	return int(math.Round(x))
}
