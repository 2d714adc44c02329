package curve

import (
	"fmt"
	"math"
	"math/big"

	"github.com/animtools/animrend/anim"
)

// SpirolatParams are the animatable parameters of a spirolateral: a path of
// line segments of increasing length 1..N unit steps, turning by a fixed
// rational fraction of a circle between segments, repeated until the figure
// closes. Step is the length of a unit step, AngleNum/AngleDen the turn
// angle as a fraction of a full circle, Reversed a set of segment lengths at
// which the turn direction flips, and Phase a rotation of the whole figure
// in radians. N, AngleNum and AngleDen are rounded to integers at
// evaluation time; Reversed is fixed at construction.
type SpirolatParams struct {
	Step     interface{}
	N        interface{}
	AngleNum interface{}
	AngleDen interface{}
	Reversed []int
	Phase    interface{}
	Start    interface{}
	End      interface{}
}

// Spirolat returns a draw procedure that strokes a spirolateral with the
// parameter values current at each invocation time.
func Spirolat(p SpirolatParams) (anim.Proc, error) {
	step, err := anim.Lift(p.Step)
	if err != nil {
		return nil, err
	}
	n, err := anim.Lift(p.N)
	if err != nil {
		return nil, err
	}
	angleNum, err := anim.Lift(p.AngleNum)
	if err != nil {
		return nil, err
	}
	angleDen, err := anim.Lift(p.AngleDen)
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
	reversed := make(map[int]bool, len(p.Reversed))
	for _, i := range p.Reversed {
		reversed[i] = true
	}
	return func(c anim.Canvas, t float64) error {
		return drawSpirolat(c,
			step.At(t), round(n.At(t)),
			round(angleNum.At(t)), round(angleDen.At(t)),
			reversed, phase.At(t), start.At(t), end.At(t))
	}, nil
}

func drawSpirolat(c anim.Canvas, step float64, n, angleNum, angleDen int, reversed map[int]bool, phase, start, end float64) error {
	if n < 1 {
		return fmt.Errorf("curve: spirolateral needs at least 1 segment, got %d", n)
	}
	if angleDen == 0 {
		return fmt.Errorf("curve: spirolateral angle denominator is zero")
	}

	// Walk one arm of the figure, accumulating the heading as an exact
	// rational fraction of a circle so the closure test below is exact.
	angle := big.NewRat(int64(angleNum), int64(angleDen))
	turn := new(big.Rat).Sub(big.NewRat(1, 2), angle)
	dirn := new(big.Rat)
	var px, py float64
	segX := make([]float64, 0, n+1)
	segY := make([]float64, 0, n+1)
	for i := 1; i <= n; i++ {
		segX = append(segX, px)
		segY = append(segY, py)
		d, _ := dirn.Float64()
		dx, dy := rot(float64(i)*step, 0, d*2*math.Pi)
		px += dx
		py += dy
		if reversed[i] {
			dirn.Sub(dirn, turn)
		} else {
			dirn.Add(dirn, turn)
		}
	}
	deltaX, deltaY := px, py

	// One arm turns through dirn of a circle, so the figure needs the
	// denominator of that fraction many arms to come around.
	segRotate := dirn
	nrArms := int(segRotate.Denom().Int64())

	px, py = 0, 0
	var origX, origY float64
	armDirn := new(big.Rat)
	for i := 0; i < nrArms; i++ {
		origX += px
		origY += py
		d, _ := armDirn.Float64()
		dx, dy := rot(deltaX, deltaY, d*2*math.Pi)
		px += dx
		py += dy
		armDirn.Add(armDirn, segRotate)
	}
	closed := math.Hypot(px, py) < 1e-7
	if !closed {
		segX = append(segX, px)
		segY = append(segY, py)
	}
	origX /= float64(nrArms)
	origY /= float64(nrArms)
	for i := range segX {
		segX[i] -= origX
		segY[i] -= origY
	}

	perArm := len(segX)
	nrSteps := nrArms * perArm
	segFrac, _ := segRotate.Float64()
	f := func(s int) (float64, float64) {
		i := s % perArm
		arm := s / perArm
		return rot(segX[i], segY[i], segFrac*float64(arm)*2*math.Pi+phase)
	}
	return TraceDiscrete(c, f, closed, nrSteps, start, end, nil)
}
