package curve

import (
	"fmt"
	"math"

	"github.com/animtools/animrend/anim"
)

// MaurerParams are the animatable parameters of a Maurer rose: Delta is the
// number of steps between successive curve points (the "d" parameter from
// Maurer's paper), Mod the total number of steps around the curve (the "z"
// parameter), Freq the rose frequency (the "n" parameter), Offset the
// distance of the curve from the centre and Phase a rotation of the whole
// pattern. Delta, Mod and Freq are rounded to integers at evaluation time.
type MaurerParams struct {
	Amplitude interface{}
	Delta     interface{}
	Mod       interface{}
	Freq      interface{}
	Offset    interface{}
	Phase     interface{}
	Start     interface{}
	End       interface{}
}

// Maurer returns a draw procedure that strokes a Maurer rose with the
// parameter values current at each invocation time.
func Maurer(p MaurerParams) (anim.Proc, error) {
	amplitude, err := anim.Lift(p.Amplitude)
	if err != nil {
		return nil, err
	}
	delta, err := anim.Lift(p.Delta)
	if err != nil {
		return nil, err
	}
	mod, err := anim.Lift(p.Mod)
	if err != nil {
		return nil, err
	}
	freq, err := anim.Lift(p.Freq)
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
	start, err := param(p.Start, 0)
	if err != nil {
		return nil, err
	}
	end, err := param(p.End, 1)
	if err != nil {
		return nil, err
	}
	return func(c anim.Canvas, t float64) error {
		return drawMaurer(c,
			amplitude.At(t), round(delta.At(t)), round(mod.At(t)),
			round(freq.At(t)), offset.At(t), phase.At(t),
			start.At(t), end.At(t))
	}, nil
}

func drawMaurer(c anim.Canvas, amplitude float64, delta, mod, freq int, offset, phase, start, end float64) error {
	if delta < 1 || mod < 1 {
		return fmt.Errorf("curve: maurer delta %d and mod %d must be positive", delta, mod)
	}
	k := gcd(delta, mod)
	perSub := mod / k // points per subcurve
	f := func(n int) (float64, float64) {
		sub := n / perSub
		step := n * delta % mod
		phi := 2 * math.Pi * float64(step+sub) / float64(mod)
		theta := 2 * math.Pi * (float64(step+sub)*float64(freq)/float64(mod) + phase)
		r := offset + math.Sin(theta)*amplitude
		return r * math.Cos(phi), r * math.Sin(phi)
	}
	subcurve := func(n int) int {
		return n / perSub
	}
	return TraceDiscrete(c, f, true, mod, start, end, subcurve)
}
