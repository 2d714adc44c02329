package curve

import (
	"fmt"
	"math"

	"github.com/animtools/animrend/anim"
)

// TrochParams are the animatable parameters of a trochoid (spirograph)
// curve. RingRadius is the radius of the stationary ring and WheelRadius the
// radius of the moving wheel; both are rounded to integers at evaluation
// time, and enough wheel revolutions are sampled to traverse the whole
// curve. WheelFrac is the fraction of the wheel radius at which the pen
// sits, and Phase is a rotation of the whole pattern as a fraction of a
// full turn.
type TrochParams struct {
	RingRadius  interface{}
	WheelRadius interface{}
	WheelFrac   interface{}
	Phase       interface{}
	NrSteps     interface{}
	Start       interface{}
	End         interface{}
}

// Troch returns a draw procedure that strokes a trochoid with the parameter
// values current at each invocation time. Pen size and color are left to
// the caller.
func Troch(p TrochParams) (anim.Proc, error) {
	ring, err := anim.Lift(p.RingRadius)
	if err != nil {
		return nil, err
	}
	wheel, err := anim.Lift(p.WheelRadius)
	if err != nil {
		return nil, err
	}
	frac, err := anim.Lift(p.WheelFrac)
	if err != nil {
		return nil, err
	}
	phase, err := param(p.Phase, 0)
	if err != nil {
		return nil, err
	}
	nrSteps, err := anim.Lift(p.NrSteps)
	if err != nil {
		return nil, err
	}
	start, err := param(p.Start, 0)
	if err != nil {
		return nil, err
	}
	end, err := param(p.End, 1)
	if err != nil {
		return nil, err
	}
	return func(c anim.Canvas, t float64) error {
		return drawTroch(c,
			round(ring.At(t)), round(wheel.At(t)), frac.At(t),
			phase.At(t), round(nrSteps.At(t)), start.At(t), end.At(t))
	}, nil
}

func drawTroch(c anim.Canvas, ringRadius, wheelRadius int, wheelFrac, phase float64, nrSteps int, start, end float64) error {
	if ringRadius == 0 || wheelRadius == 0 {
		return fmt.Errorf("curve: trochoid radii %d/%d must be nonzero", ringRadius, wheelRadius)
	}
	// Wheel revolutions needed for one complete traversal of the curve.
	nrCycles := wheelRadius / gcd(ringRadius, wheelRadius)
	if nrCycles < 0 {
		nrCycles = -nrCycles
	}
	f := func(x float64) (float64, float64) {
		thetaRing := 2 * math.Pi * float64(nrCycles) * x
		thetaWheel := thetaRing * (float64(ringRadius)/float64(wheelRadius) + 1)
		wx, wy := rot(float64(ringRadius+wheelRadius), 0, thetaRing+phase*2*math.Pi)
		px, py := rot(float64(wheelRadius)*wheelFrac, 0, thetaWheel)
		return wx + px, wy + py
	}
	return Trace(c, f, true, nrSteps, start, end)
}
