package curve

import (
	"fmt"
	"math"

	"github.com/animtools/animrend/anim"
)

// LissaParams are the animatable parameters of a Lissajous figure. The two
// frequencies are reduced to lowest terms before sampling, so only their
// ratio matters. XFreq, YFreq and NrSteps are rounded to integers at
// evaluation time.
type LissaParams struct {
	XAmp    interface{}
	XFreq   interface{}
	XPhase  interface{}
	YAmp    interface{}
	YFreq   interface{}
	YPhase  interface{}
	NrSteps interface{}
}

// Lissa returns a draw procedure that strokes a Lissajous figure with the
// parameter values current at each invocation time.
func Lissa(p LissaParams) (anim.Proc, error) {
	xAmp, err := anim.Lift(p.XAmp)
	if err != nil {
		return nil, err
	}
	xFreq, err := anim.Lift(p.XFreq)
	if err != nil {
		return nil, err
	}
	xPhase, err := param(p.XPhase, 0)
	if err != nil {
		return nil, err
	}
	yAmp, err := anim.Lift(p.YAmp)
	if err != nil {
		return nil, err
	}
	yFreq, err := anim.Lift(p.YFreq)
	if err != nil {
		return nil, err
	}
	yPhase, err := param(p.YPhase, 0)
	if err != nil {
		return nil, err
	}
	nrSteps, err := anim.Lift(p.NrSteps)
	if err != nil {
		return nil, err
	}
	return func(c anim.Canvas, t float64) error {
		return drawLissa(c,
			xAmp.At(t), round(xFreq.At(t)), xPhase.At(t),
			yAmp.At(t), round(yFreq.At(t)), yPhase.At(t),
			round(nrSteps.At(t)))
	}, nil
}

func drawLissa(c anim.Canvas, xAmp float64, xFreq int, xPhase, yAmp float64, yFreq int, yPhase float64, nrSteps int) error {
	if xFreq == 0 || yFreq == 0 {
		return fmt.Errorf("curve: lissajous frequencies %d:%d must be nonzero", xFreq, yFreq)
	}
	// Reduce the relative frequencies to lowest terms.
	k := gcd(xFreq, yFreq)
	xf, yf := float64(xFreq/k), float64(yFreq/k)
	f := func(x float64) (float64, float64) {
		return math.Sin((x+xPhase)*2*math.Pi*xf) * xAmp,
			math.Sin((x+yPhase)*2*math.Pi*yf) * yAmp
	}
	return Trace(c, f, true, nrSteps, 0, 1)
}
