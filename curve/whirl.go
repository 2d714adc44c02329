package curve

import (
	"fmt"
	"math"

	"github.com/animtools/animrend/anim"
)

// WhirlParams are the animatable parameters of a whirl pattern: a sequence
// of nested polygons, each shrunk and rotated inside the previous one.
// Radius is the radius of the outermost polygon, NrSides the number of sides
// per polygon, PolyShrink the per-level shrink factor in [-1, 1], NrPolys
// how many nested polygons to draw and Phase a rotation of the whole
// pattern in radians. NrSides and NrPolys are rounded to integers at
// evaluation time.
type WhirlParams struct {
	Radius     interface{}
	NrSides    interface{}
	PolyShrink interface{}
	NrPolys    interface{}
	Phase      interface{}
	Start      interface{}
	End        interface{}
}

// Whirl returns a draw procedure that strokes a whirl pattern with the
// parameter values current at each invocation time.
func Whirl(p WhirlParams) (anim.Proc, error) {
	radius, err := anim.Lift(p.Radius)
	if err != nil {
		return nil, err
	}
	nrSides, err := anim.Lift(p.NrSides)
	if err != nil {
		return nil, err
	}
	shrink, err := anim.Lift(p.PolyShrink)
	if err != nil {
		return nil, err
	}
	nrPolys, err := anim.Lift(p.NrPolys)
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
		return drawWhirl(c,
			radius.At(t), round(nrSides.At(t)), shrink.At(t),
			round(nrPolys.At(t)), phase.At(t), start.At(t), end.At(t))
	}, nil
}

func drawWhirl(c anim.Canvas, radius float64, nrSides int, polyShrink float64, nrPolys int, phase, start, end float64) error {
	if nrSides < 3 {
		return fmt.Errorf("curve: whirl needs at least 3 sides per polygon, got %d", nrSides)
	}
	if nrPolys < 1 {
		return fmt.Errorf("curve: whirl needs at least 1 polygon, got %d", nrPolys)
	}
	// Each nested polygon is rotated by stepRotate and scaled so its
	// corners land on the sides of the polygon outside it.
	stepRotate := math.Pi / float64(nrSides) * polyShrink
	cornerAngle := (0.5 - 1/float64(nrSides)) * 2 * math.Pi
	stepScale := math.Sin(cornerAngle/2) / math.Cos(math.Pi/float64(nrSides)-math.Abs(stepRotate))
	f := func(step int) (float64, float64) {
		subIdx := step / nrSides
		sideIdx := step % nrSides
		scale := math.Pow(stepScale, float64(subIdx))
		angle := phase + stepRotate*float64(subIdx) + 2*math.Pi/float64(nrSides)*float64(sideIdx)
		return rot(radius*scale, 0, angle)
	}
	subcurve := func(step int) int {
		return step / nrSides
	}
	return TraceDiscrete(c, f, true, nrPolys*nrSides, start, end, subcurve)
}
