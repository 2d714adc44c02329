package anim

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logCanvas records every primitive invocation in order.
type logCanvas struct {
	ops []string
}

func (l *logCanvas) logf(format string, args ...interface{}) {
	l.ops = append(l.ops, fmt.Sprintf(format, args...))
}

func (l *logCanvas) Translate(x, y float64) { l.logf("translate %g %g", x, y) }
func (l *logCanvas) Scale(x, y float64) { l.logf("scale %g %g", x, y) }
func (l *logCanvas) Rotate(a float64) { l.logf("rotate %g", a) }
func (l *logCanvas) SetLineWidth(w float64) { l.logf("line_width %g", w) }
func (l *logCanvas) SetColor(c color.Color) {
	r, g, b, a := c.RGBA()
	l.logf("color %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
}
func (l *logCanvas) Paint() { l.logf("paint") }
func (l *logCanvas) NewPath() { l.logf("new_path") }
func (l *logCanvas) NewSubPath() { l.logf("new_sub_path") }
func (l *logCanvas) MoveTo(x, y float64) { l.logf("move_to %g %g", x, y) }
func (l *logCanvas) LineTo(x, y float64) { l.logf("line_to %g %g", x, y) }
func (l *logCanvas) ClosePath() { l.logf("close_path") }
func (l *logCanvas) Stroke() { l.logf("stroke") }
func (l *logCanvas) Fill() { l.logf("fill") }
func (l *logCanvas) Push() { l.logf("push") }
func (l *logCanvas) Pop() { l.logf("pop") }

func tagProc(tag string) Proc {
	return func(c Canvas, t float64) error {
		c.(*logCanvas).logf("%s@%g", tag, t)
		return nil
	}
}

func TestComposeOrder(t *testing.T) {
	a := func(c Canvas, t float64) error {
		c.MoveTo(0, 0)
		c.LineTo(1, 1)
		return nil
	}
	b := func(c Canvas, t float64) error {
		c.Stroke()
		return nil
	}
	lc := &logCanvas{}
	require.NoError(t, Compose(a, b)(lc, 0))
	assert.Equal(t, []string{"move_to 0 0", "line_to 1 1", "stroke"}, lc.ops)
}

func TestComposeStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	bad := func(c Canvas, t float64) error { return boom }
	lc := &logCanvas{}
	err := Compose(tagProc("a"), bad, tagProc("c"))(lc, 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a@1"}, lc.ops)
}

func TestOverlayIsolatesState(t *testing.T) {
	lc := &logCanvas{}
	require.NoError(t, Overlay(tagProc("a"), tagProc("b"))(lc, 2))
	assert.Equal(t, []string{"push", "a@2", "pop", "push", "b@2", "pop"}, lc.ops)
}

func TestOverlayPopsOnError(t *testing.T) {
	boom := errors.New("boom")
	bad := func(c Canvas, t float64) error { return boom }
	lc := &logCanvas{}
	err := Overlay(bad)(lc, 0)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"push", "pop"}, lc.ops)
}

func TestSequence(t *testing.T) {
	p, err := Sequence([]float64{1, 2}, []Proc{tagProc("before"), tagProc("mid"), tagProc("after")})
	require.NoError(t, err)

	lc := &logCanvas{}
	require.NoError(t, p(lc, 0.5))
	require.NoError(t, p(lc, 1.5))
	require.NoError(t, p(lc, 3))
	assert.Equal(t, []string{"before@0.5", "mid@1.5", "after@3"}, lc.ops)
}

func TestSequenceValidation(t *testing.T) {
	_, err := Sequence([]float64{1, 2}, []Proc{NullProc})
	assert.Error(t, err)
	_, err = Sequence([]float64{2, 1}, []Proc{NullProc, NullProc, NullProc})
	assert.Error(t, err)
}

func TestRetime(t *testing.T) {
	var seen float64
	p := func(c Canvas, t float64) error {
		seen = t
		return nil
	}
	doubled, err := Retime(p, TimeFunc(func(t float64) float64 { return 2 * t }))
	require.NoError(t, err)
	require.NoError(t, doubled(&logCanvas{}, 3))
	assert.Equal(t, 6.0, seen)

	_, err = Retime(p, "clock")
	assert.Error(t, err)
}

func TestListDeclaredOrder(t *testing.T) {
	p, err := NewList().
		Color(color.White).
		Paint().
		LineWidth(2).
		Translate(10, 20).
		NewPath().
		MoveTo(0, 0).
		LineTo(5, 5).
		ClosePath().
		Stroke().
		Build()
	require.NoError(t, err)

	lc := &logCanvas{}
	require.NoError(t, p(lc, 0))
	assert.Equal(t, []string{
		"color 255 255 255 255",
		"paint",
		"line_width 2",
		"translate 10 20",
		"new_path",
		"move_to 0 0",
		"line_to 5 5",
		"close_path",
		"stroke",
	}, lc.ops)
}

func TestListEvaluatesAtCallTime(t *testing.T) {
	width, err := Linear(0, 1, 1, 11)
	require.NoError(t, err)
	p, err := NewList().LineWidth(width).Build()
	require.NoError(t, err)

	lc := &logCanvas{}
	require.NoError(t, p(lc, 0))
	require.NoError(t, p(lc, 1))
	assert.Equal(t, []string{"line_width 1", "line_width 11"}, lc.ops)
}

func TestListAnimatedColor(t *testing.T) {
	hue, err := Linear(0, 1, 0, 120)
	require.NoError(t, err)
	ci, err := HSVA(hue, 1, 1, 1)
	require.NoError(t, err)
	p, err := NewList().Color(ci).Build()
	require.NoError(t, err)

	lc := &logCanvas{}
	require.NoError(t, p(lc, 0))
	require.NoError(t, p(lc, 1))
	require.Len(t, lc.ops, 2)
	assert.NotEqual(t, lc.ops[0], lc.ops[1])
}

func TestListBadArgument(t *testing.T) {
	_, err := NewList().LineWidth("thick").Build()
	var cfg *ConfigError
	require.ErrorAs(t, err, &cfg)
	assert.Contains(t, err.Error(), "line width")

	_, err = NewList().Color(3).Build()
	assert.ErrorAs(t, err, &cfg)
}

func TestListLatchesFirstError(t *testing.T) {
	_, err := NewList().
		Translate("left", 0).
		LineWidth("thick").
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translate")
}

func TestListRepeatableAtSameTime(t *testing.T) {
	p, err := NewList().
		LineWidth(TimeFunc(func(t float64) float64 { return t + 1 })).
		MoveTo(0, 0).
		LineTo(TimeFunc(func(t float64) float64 { return t * 10 }), 0).
		Stroke().
		Build()
	require.NoError(t, err)

	first := &logCanvas{}
	second := &logCanvas{}
	require.NoError(t, p(first, 0.5))
	require.NoError(t, p(second, 0.5))
	assert.Equal(t, first.ops, second.ops)
}
