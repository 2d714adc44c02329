package anim

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameTimer(t *testing.T) {
	ft := FrameTimer{Start: 0, End: 1, Rate: 2, StartFrame: 1}
	assert.Equal(t, 2, ft.NumFrames())
	assert.Equal(t, 0.0, ft.FrameToTime(1))
	assert.Equal(t, 0.5, ft.FrameToTime(2))
	assert.Equal(t, 1, ft.TimeToFrame(0.25, false))
	assert.Equal(t, 2, ft.TimeToFrame(0.25, true))
	assert.Equal(t, 3, ft.TimeToFrame(1, false))
}

func TestFrameTimerPartialTrailingFrame(t *testing.T) {
	ft := FrameTimer{Start: 0, End: 1.01, Rate: 2, StartFrame: 0}
	assert.Equal(t, 3, ft.NumFrames())
	ft = FrameTimer{Start: 2, End: 2, Rate: 30, StartFrame: 0}
	assert.Equal(t, 0, ft.NumFrames())
}

func TestFrameTimerRoundTrip(t *testing.T) {
	ft := FrameTimer{Start: 3, End: 7, Rate: 24, StartFrame: 100}
	for n := 100; n < 100+ft.NumFrames(); n++ {
		assert.Equal(t, n, ft.TimeToFrame(ft.FrameToTime(n), false))
	}
}

func baseOptions(dir string, draw Proc) Options {
	return Options{
		Width:        8,
		Height:       8,
		StartTime:    0,
		EndTime:      1,
		FrameRate:    2,
		StartFrameNr: 1,
		OutDir:       dir,
		DrawFrame:    draw,
	}
}

func TestRenderFrameSequence(t *testing.T) {
	dir := t.TempDir()
	var times []float64
	draw := func(c Canvas, tt float64) error {
		times = append(times, tt)
		return nil
	}

	n, err := Render(context.Background(), baseOptions(dir, draw))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{0, 0.5}, times)

	for _, name := range []string{"0001.png", "0002.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dir, "0003.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderMissingOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	called := false
	draw := func(c Canvas, tt float64) error {
		called = true
		return nil
	}

	_, err := Render(context.Background(), baseOptions(dir, draw))
	require.Error(t, err)
	assert.False(t, called, "no frame may be rendered when the output directory is missing")
}

func TestRenderOutputNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err := Render(context.Background(), baseOptions(file, NullProc))
	assert.Error(t, err)
}

func TestRenderConfigValidation(t *testing.T) {
	dir := t.TempDir()
	var cfg *ConfigError

	o := baseOptions(dir, nil)
	_, err := Render(context.Background(), o)
	assert.ErrorAs(t, err, &cfg)

	o = baseOptions(dir, NullProc)
	o.FrameRate = 0
	_, err = Render(context.Background(), o)
	assert.ErrorAs(t, err, &cfg)

	o = baseOptions(dir, NullProc)
	o.EndTime = -1
	_, err = Render(context.Background(), o)
	assert.ErrorAs(t, err, &cfg)

	o = baseOptions(dir, NullProc)
	o.Width = 0
	_, err = Render(context.Background(), o)
	assert.ErrorAs(t, err, &cfg)
}

func TestRenderPresetupRunsOnce(t *testing.T) {
	dir := t.TempDir()
	count := 0
	o := baseOptions(dir, NullProc)
	o.Presetup = func(c Canvas) error {
		count++
		c.SetLineWidth(2)
		return nil
	}
	n, err := Render(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, count)
}

func TestRenderDrawErrorAborts(t *testing.T) {
	dir := t.TempDir()
	draw := func(c Canvas, tt float64) error {
		if tt > 0 {
			return assert.AnError
		}
		return nil
	}
	n, err := Render(context.Background(), baseOptions(dir, draw))
	assert.Equal(t, 1, n)

	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Frame)
	assert.Equal(t, 0.5, re.Time)
	assert.ErrorIs(t, err, assert.AnError)

	// The frame written before the failure stays on disk.
	_, statErr := os.Stat(filepath.Join(dir, "0001.png"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "0002.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderCancellation(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	var times []float64
	draw := func(c Canvas, tt float64) error {
		times = append(times, tt)
		cancel() // cancel after the first frame completes
		return nil
	}
	n, err := Render(ctx, baseOptions(dir, draw))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n)
	assert.Len(t, times, 1)

	// The cancelled run leaves a valid prefix behind.
	_, statErr := os.Stat(filepath.Join(dir, "0001.png"))
	assert.NoError(t, statErr)
}

func TestRenderAccumulatesBetweenFrames(t *testing.T) {
	// The driver never clears the surface: a pixel painted during frame
	// one must still be set while frame two is drawn.
	dir := t.TempDir()
	var sawInk bool
	draw := func(c Canvas, tt float64) error {
		s := c.(*Surface)
		if tt == 0 {
			s.SetColor(color.White)
			s.Paint()
			return nil
		}
		r, _, _, _ := s.Image().At(3, 3).RGBA()
		sawInk = r > 0
		return nil
	}
	_, err := Render(context.Background(), baseOptions(dir, draw))
	require.NoError(t, err)
	assert.True(t, sawInk, "paint from the previous frame must persist")
}

func TestNewSurfaceValidation(t *testing.T) {
	_, err := NewSurface(0, 10)
	var cfg *ConfigError
	assert.ErrorAs(t, err, &cfg)
	_, err = NewSurface(10, -1)
	assert.ErrorAs(t, err, &cfg)

	s, err := NewSurface(4, 6)
	require.NoError(t, err)
	w, h := s.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 6, h)
}
