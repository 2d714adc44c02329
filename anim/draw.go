package anim

import (
	"image/color"
)

// A Proc is a draw procedure: given a Canvas and the current animation time
// it issues whatever drawing primitives it needs to render its part of the
// frame. Procs must evaluate interpolators at the time they are invoked
// with, never at construction, so that one built Proc renders differently at
// different times. Invoking the same Proc twice with the same (canvas, time)
// must emit the same primitives.
type Proc func(c Canvas, t float64) error

// NullProc draws nothing. Useful as a gap in a Sequence.
func NullProc(Canvas, float64) error {
	return nil
}

// Compose returns a Proc that invokes each of procs in order, each running
// to completion before the next starts. The first error stops the chain.
func Compose(procs ...Proc) Proc {
	ps := append([]Proc(nil), procs...)
	return func(c Canvas, t float64) error {
		for _, p := range ps {
			if err := p(c, t); err != nil {
				return err
			}
		}
		return nil
	}
}

// Overlay is Compose with the graphics state saved and restored around each
// procedure, so that one layer's pen and transform changes do not leak into
// the next.
func Overlay(procs ...Proc) Proc {
	ps := append([]Proc(nil), procs...)
	return func(c Canvas, t float64) error {
		for _, p := range ps {
			c.Push()
			err := p(c, t)
			c.Pop()
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// Sequence selects one of procs by time: procs[0] runs before ts[0],
// procs[len(ts)] runs from ts[len(ts)-1] on, and in-between procedures run
// during the corresponding knot interval. len(procs) must be len(ts)+1 and
// ts must be increasing.
func Sequence(ts []float64, procs []Proc) (Proc, error) {
	if len(procs) == 0 || len(ts)+1 != len(procs) {
		return nil, configErrorf("sequence needs n+1 procedures for n knots, got %d knots, %d procedures", len(ts), len(procs))
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return nil, configErrorf("sequence knots are not increasing at index %d", i)
		}
	}
	knots := append([]float64(nil), ts...)
	ps := append([]Proc(nil), procs...)
	return func(c Canvas, t float64) error {
		i := len(knots)
		for i > 0 && t < knots[i-1] {
			i--
		}
		return ps[i](c, t)
	}, nil
}

// Retime runs p on a transformed clock: at time t it invokes p with
// clock(t). clock is a constant or Interpolator.
func Retime(p Proc, clock interface{}) (Proc, error) {
	in, err := Lift(clock)
	if err != nil {
		return nil, err
	}
	return func(c Canvas, t float64) error {
		return p(c, in.At(t))
	}, nil
}

// op is one declared primitive invocation; its args are evaluated each time
// the built Proc runs.
type op func(c Canvas, t float64)

// List declaratively accumulates a sequence of drawing primitives, any
// argument of which may be a constant or an Interpolator. Build returns a
// Proc that replays the primitives in declared order, evaluating every
// interpolated argument at the invocation time. The first invalid argument
// is latched and reported by Build.
type List struct {
	ops []op
	err error
}

// NewList returns an empty draw list.
func NewList() *List {
	return &List{}
}

func (l *List) scalars(name string, args ...interface{}) []Interpolator {
	if l.err != nil {
		return nil
	}
	ins := make([]Interpolator, len(args))
	for i, a := range args {
		in, err := Lift(a)
		if err != nil {
			l.err = configErrorf("%s argument %d: %v", name, i, err)
			return nil
		}
		ins[i] = in
	}
	return ins
}

func (l *List) add(o op) *List {
	if l.err == nil {
		l.ops = append(l.ops, o)
	}
	return l
}

// Translate appends a translation of the canvas origin.
func (l *List) Translate(x, y interface{}) *List {
	ins := l.scalars("translate", x, y)
	if ins == nil {
		return l
	}
	return l.add(func(c Canvas, t float64) { c.Translate(ins[0].At(t), ins[1].At(t)) })
}

// Scale appends a scaling of the canvas axes.
func (l *List) Scale(x, y interface{}) *List {
	ins := l.scalars("scale", x, y)
	if ins == nil {
		return l
	}
	return l.add(func(c Canvas, t float64) { c.Scale(ins[0].At(t), ins[1].At(t)) })
}

// Rotate appends a rotation of the canvas, in radians.
func (l *List) Rotate(angle interface{}) *List {
	ins := l.scalars("rotate", angle)
	if ins == nil {
		return l
	}
	return l.add(func(c Canvas, t float64) { c.Rotate(ins[0].At(t)) })
}

// LineWidth appends a pen width change.
func (l *List) LineWidth(w interface{}) *List {
	ins := l.scalars("line width", w)
	if ins == nil {
		return l
	}
	return l.add(func(c Canvas, t float64) { c.SetLineWidth(ins[0].At(t)) })
}

// Color appends a source color change. c may be a color.Color or a
// ColorInterpolator.
func (l *List) Color(c interface{}) *List {
	if l.err != nil {
		return l
	}
	var ci ColorInterpolator
	switch x := c.(type) {
	case ColorInterpolator:
		ci = x
	case color.Color:
		ci = ConstantColor(x)
	default:
		l.err = configErrorf("color argument: cannot animate value of type %T", c)
		return l
	}
	return l.add(func(cv Canvas, t float64) { cv.SetColor(ci.At(t)) })
}

// Paint appends a flood of the whole surface with the current color.
func (l *List) Paint() *List {
	return l.add(func(c Canvas, t float64) { c.Paint() })
}

// NewPath appends a reset of the current path.
func (l *List) NewPath() *List {
	return l.add(func(c Canvas, t float64) { c.NewPath() })
}

// MoveTo appends a move of the path cursor.
func (l *List) MoveTo(x, y interface{}) *List {
	ins := l.scalars("move to", x, y)
	if ins == nil {
		return l
	}
	return l.add(func(c Canvas, t float64) { c.MoveTo(ins[0].At(t), ins[1].At(t)) })
}

// LineTo appends a line segment to the current path.
func (l *List) LineTo(x, y interface{}) *List {
	ins := l.scalars("line to", x, y)
	if ins == nil {
		return l
	}
	return l.add(func(c Canvas, t float64) { c.LineTo(ins[0].At(t), ins[1].At(t)) })
}

// ClosePath appends a close of the current subpath.
func (l *List) ClosePath() *List {
	return l.add(func(c Canvas, t float64) { c.ClosePath() })
}

// Stroke appends a stroke of the current path with the current pen.
func (l *List) Stroke() *List {
	return l.add(func(c Canvas, t float64) { c.Stroke() })
}

// Fill appends a fill of the current path with the current color.
func (l *List) Fill() *List {
	return l.add(func(c Canvas, t float64) { c.Fill() })
}

// Build returns the accumulated draw procedure, or the first argument error
// encountered while declaring it.
func (l *List) Build() (Proc, error) {
	if l.err != nil {
		return nil, l.err
	}
	ops := append([]op(nil), l.ops...)
	return func(c Canvas, t float64) error {
		for _, o := range ops {
			o(c, t)
		}
		return nil
	}, nil
}
