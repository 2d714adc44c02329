package main

import (
	"fmt"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/animtools/animrend/anim"
	"github.com/animtools/animrend/curve"
)

// Scene describes one render run: the output window, the curve family to
// draw and its parameters. Parameters are either plain numbers or ramps
// interpolated across the scene's time window.
type Scene struct {
	OutDir       string  `yaml:"out_dir"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	StartTime    float64 `yaml:"start_time"`
	EndTime      float64 `yaml:"end_time"`
	FrameRate    float64 `yaml:"frame_rate"`
	StartFrameNr int     `yaml:"start_frame_nr"`
	Background   string  `yaml:"background"`
	Pen          struct {
		Width float64 `yaml:"width"`
		Color string  `yaml:"color"`
	} `yaml:"pen"`
	Curve  string               `yaml:"curve"`
	Params map[string]ParamSpec `yaml:"params"`
}

// ParamSpec is one animatable curve parameter: a bare number, or a ramp
// with optional easing across the scene's time window.
type ParamSpec struct {
	isRamp bool
	value  float64
	from   float64
	to     float64
	easing string
}

func (p *ParamSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v float64
	if err := unmarshal(&v); err == nil {
		*p = ParamSpec{value: v}
		return nil
	}
	var ramp struct {
		From float64 `yaml:"from"`
		To   float64 `yaml:"to"`
		Ease string  `yaml:"ease"`
	}
	if err := unmarshal(&ramp); err != nil {
		return err
	}
	*p = ParamSpec{isRamp: true, from: ramp.From, to: ramp.To, easing: ramp.Ease}
	return nil
}

var easings = map[string]ease.Function{
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"in_elastic":     ease.InElastic,
	"out_elastic":    ease.OutElastic,
	"in_out_elastic": ease.InOutElastic,
}

// interp resolves a parameter into a value the curve constructors accept.
func (s *Scene) interp(p ParamSpec) (interface{}, error) {
	if !p.isRamp {
		return p.value, nil
	}
	if p.easing == "" || p.easing == "linear" {
		return anim.Linear(s.StartTime, s.EndTime, p.from, p.to)
	}
	fn, ok := easings[p.easing]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", p.easing)
	}
	return anim.Eased(s.StartTime, s.EndTime, p.from, p.to, fn)
}

// pick resolves a named parameter, or returns nil so the curve family's
// default applies.
func (s *Scene) pick(name string) (interface{}, error) {
	p, ok := s.Params[name]
	if !ok {
		return nil, nil
	}
	return s.interp(p)
}

func (s *Scene) pickAll(names ...string) ([]interface{}, error) {
	out := make([]interface{}, len(names))
	for i, name := range names {
		v, err := s.pick(name)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}

// curveProc builds the draw procedure for the configured curve family.
func (s *Scene) curveProc() (anim.Proc, error) {
	switch s.Curve {
	case "lissa":
		v, err := s.pickAll("x_amp", "x_freq", "x_phase", "y_amp", "y_freq", "y_phase", "nr_steps")
		if err != nil {
			return nil, err
		}
		return curve.Lissa(curve.LissaParams{
			XAmp: v[0], XFreq: v[1], XPhase: v[2],
			YAmp: v[3], YFreq: v[4], YPhase: v[5],
			NrSteps: v[6],
		})
	case "rose":
		v, err := s.pickAll("amplitude", "freq_num", "freq_den", "offset", "phase", "nr_steps", "start", "end")
		if err != nil {
			return nil, err
		}
		return curve.Rose(curve.RoseParams{
			Amplitude: v[0], FreqNum: v[1], FreqDen: v[2],
			Offset: v[3], Phase: v[4], NrSteps: v[5],
			Start: v[6], End: v[7],
		})
	case "maurer":
		v, err := s.pickAll("amplitude", "delta", "mod", "freq", "offset", "phase", "start", "end")
		if err != nil {
			return nil, err
		}
		return curve.Maurer(curve.MaurerParams{
			Amplitude: v[0], Delta: v[1], Mod: v[2], Freq: v[3],
			Offset: v[4], Phase: v[5], Start: v[6], End: v[7],
		})
	case "troch":
		v, err := s.pickAll("ring_radius", "wheel_radius", "wheel_frac", "phase", "nr_steps", "start", "end")
		if err != nil {
			return nil, err
		}
		return curve.Troch(curve.TrochParams{
			RingRadius: v[0], WheelRadius: v[1], WheelFrac: v[2],
			Phase: v[3], NrSteps: v[4], Start: v[5], End: v[6],
		})
	case "spirolat":
		v, err := s.pickAll("step", "n", "angle_num", "angle_den", "phase", "start", "end")
		if err != nil {
			return nil, err
		}
		return curve.Spirolat(curve.SpirolatParams{
			Step: v[0], N: v[1], AngleNum: v[2], AngleDen: v[3],
			Phase: v[4], Start: v[5], End: v[6],
		})
	case "whirl":
		v, err := s.pickAll("radius", "nr_sides", "poly_shrink", "nr_polys", "phase", "start", "end")
		if err != nil {
			return nil, err
		}
		return curve.Whirl(curve.WhirlParams{
			Radius: v[0], NrSides: v[1], PolyShrink: v[2],
			NrPolys: v[3], Phase: v[4], Start: v[5], End: v[6],
		})
	default:
		return nil, fmt.Errorf("unknown curve family %q", s.Curve)
	}
}

// Proc builds the complete per-frame draw procedure: background paint (when
// configured), then the curve, drawn about the surface centre.
func (s *Scene) Proc() (anim.Proc, error) {
	cp, err := s.curveProc()
	if err != nil {
		return nil, err
	}

	list := anim.NewList()
	if s.Background != "" {
		bg, err := colorful.Hex(s.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		list.Color(bg).Paint()
	}
	if s.Pen.Color != "" {
		pen, err := colorful.Hex(s.Pen.Color)
		if err != nil {
			return nil, fmt.Errorf("pen color: %w", err)
		}
		list.Color(pen)
	}
	if s.Pen.Width > 0 {
		list.LineWidth(s.Pen.Width)
	}
	list.Translate(float64(s.Width)/2, float64(s.Height)/2)
	setup, err := list.Build()
	if err != nil {
		return nil, err
	}
	return anim.Compose(setup, cp), nil
}

// Options builds the render options for this scene.
func (s *Scene) Options() (anim.Options, error) {
	draw, err := s.Proc()
	if err != nil {
		return anim.Options{}, err
	}
	return anim.Options{
		Width:        s.Width,
		Height:       s.Height,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		FrameRate:    s.FrameRate,
		StartFrameNr: s.StartFrameNr,
		OutDir:       s.OutDir,
		DrawFrame:    draw,
		Progress:     true,
	}, nil
}
