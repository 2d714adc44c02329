package curve

import (
	"fmt"
	"math"

	"github.com/animtools/animrend/anim"
)

// RoseParams are the animatable parameters of a rose curve. The petal
// frequency is the rational FreqNum/FreqDen; both parts and NrSteps are
// rounded to integers at evaluation time. Start and End select the fraction
// of the curve to draw and default to the full curve.
//
// When the frequency numerator and denominator are both odd and Offset is
// zero the curve is traced twice; a nonzero Offset separates the two halves.
type RoseParams struct {
	Amplitude interface{}
	FreqNum   interface{}
	FreqDen   interface{}
	Offset    interface{}
	Phase     interface{}
	NrSteps   interface{}
	Start     interface{}
	End       interface{}
}

// Rose returns a draw procedure that strokes a rose curve with the
// parameter values current at each invocation time.
func Rose(p RoseParams) (anim.Proc, error) {
	amplitude, err := anim.Lift(p.Amplitude)
	if err != nil {
		return nil, err
	}
	freqNum, err := anim.Lift(p.FreqNum)
	if err != nil {
		return nil, err
	}
	freqDen, err := anim.Lift(p.FreqDen)
	if err != nil {
		return nil, err
	}
	offset, err := param(p.Offset, 0)
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
		return drawRose(c,
			amplitude.At(t), round(freqNum.At(t)), round(freqDen.At(t)),
			offset.At(t), phase.At(t), round(nrSteps.At(t)),
			start.At(t), end.At(t))
	}, nil
}

func drawRose(c anim.Canvas, amplitude float64, freqNum, freqDen int, offset, phase float64, nrSteps int, start, end float64) error {
	if freqDen == 0 {
		return fmt.Errorf("curve: rose frequency denominator is zero")
	}
	f := func(x float64) (float64, float64) {
		phi := 2 * math.Pi * x * float64(freqDen)
		theta := 2 * math.Pi * (x + phase) * float64(freqNum)
		r := offset + math.Sin(theta)*amplitude
		return r * math.Cos(phi), r * math.Sin(phi)
	}
	return Trace(c, f, true, nrSteps, start, end)
}
