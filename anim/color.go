package anim

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// A ColorInterpolator yields a color for any animation time. Like
// Interpolator it is pure: same time, same color.
type ColorInterpolator struct {
	fn func(t float64) color.Color
	c  color.Color
}

// ConstantColor returns a ColorInterpolator that yields c at every time.
func ConstantColor(c color.Color) ColorInterpolator {
	return ColorInterpolator{c: c}
}

// ColorFunc lifts a time function into a ColorInterpolator.
func ColorFunc(f func(t float64) color.Color) ColorInterpolator {
	return ColorInterpolator{fn: f}
}

// At evaluates the color at time t.
func (ci ColorInterpolator) At(t float64) color.Color {
	if ci.fn != nil {
		return ci.fn(t)
	}
	return ci.c
}

// IsConstant reports whether the color ignores its time argument.
func (ci ColorInterpolator) IsConstant() bool {
	return ci.fn == nil
}

// HSVA builds a color-valued interpolator from independent hue, saturation,
// value and alpha channels, each a constant or an Interpolator. All four are
// evaluated at the same time and combined in HSV space, which usually gives
// more useful animated effects than blending raw RGB. Hue is in degrees
// [0, 360); the other channels are in [0, 1].
func HSVA(h, s, v, a interface{}) (ColorInterpolator, error) {
	var chans [4]Interpolator
	for i, arg := range []interface{}{h, s, v, a} {
		in, err := Lift(arg)
		if err != nil {
			return ColorInterpolator{}, err
		}
		chans[i] = in
	}
	return ColorFunc(func(t float64) color.Color {
		c := colorful.Hsv(fmod(chans[0].At(t), 360), chans[1].At(t), chans[2].At(t))
		alpha := clamp01(chans[3].At(t))
		r, g, b := c.Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
	}), nil
}

// GradientTable stores a look-up table of hues keyed by position in [0, 1].
// Positions must be increasing and span the range being queried.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table,
// rendered in HCL space with the given saturation and luminance.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// GradientColor sweeps the gradient table with an animatable position.
// pos is a constant or Interpolator yielding positions in [0, 1].
func GradientColor(g GradientTable, s, l float64, pos interface{}) (ColorInterpolator, error) {
	if len(g) == 0 {
		return ColorInterpolator{}, configErrorf("empty gradient table")
	}
	in, err := Lift(pos)
	if err != nil {
		return ColorInterpolator{}, err
	}
	table := append(GradientTable(nil), g...)
	return ColorFunc(func(t float64) color.Color {
		return table.GetColor(clamp01(in.At(t)), s, l).Clamped()
	}), nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
