package anim

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"
)

// FrameTimer converts between frame numbers and animation times for a render
// run. StartFrame is the number of the frame that starts at Start, and Rate
// is frames per unit time.
type FrameTimer struct {
	Start      float64
	End        float64
	Rate       float64
	StartFrame int
}

// TimeToFrame returns the number of the frame visible at time t, rounding up
// instead of down when roundUp is set.
func (ft FrameTimer) TimeToFrame(t float64, roundUp bool) int {
	x := (t-ft.Start)*ft.Rate + float64(ft.StartFrame)
	if roundUp {
		return int(math.Ceil(x))
	}
	return int(math.Floor(x))
}

// FrameToTime returns the start time of frame number n.
func (ft FrameTimer) FrameToTime(n int) float64 {
	return float64(n-ft.StartFrame)/ft.Rate + ft.Start
}

// NumFrames returns how many whole frames fit in [Start, End), rounding up
// so a partial trailing frame is still emitted.
func (ft FrameTimer) NumFrames() int {
	n := int(math.Ceil((ft.End - ft.Start) * ft.Rate))
	if n < 0 {
		return 0
	}
	return n
}

// Options configures one render run.
type Options struct {
	// Width and Height are the pixel dimensions of the output frames.
	Width  int
	Height int

	// The animation time window [StartTime, EndTime) and the frame rate
	// in frames per unit time.
	StartTime float64
	EndTime   float64
	FrameRate float64

	// StartFrameNr is the numeric label of the first emitted frame.
	StartFrameNr int

	// OutDir is an existing directory to write numbered PNG frames into.
	OutDir string

	// Presetup, if set, is invoked exactly once with the surface before
	// any frame is drawn. Use it for pen state that never changes.
	Presetup func(c Canvas) error

	// DrawFrame renders one frame at the given time. The surface is
	// never cleared between frames; paint accumulates by design, so a
	// procedure that wants a clean background must start by flooding
	// one (Compose a background paint step first).
	DrawFrame Proc

	// Progress enables a heartbeat on the standard logger, at most
	// every five seconds.
	Progress bool
}

const framePattern = "%04d.png"

// Render renders the animation described by o to a sequence of numbered PNG
// files and reports how many frames it wrote. Frame i of n is drawn at time
// StartTime + i/FrameRate and written as the zero-padded label
// StartFrameNr + i. One surface is shared by every frame of the run.
//
// Configuration problems and a missing output directory are reported before
// any frame is rendered. An error from DrawFrame or the PNG export aborts
// the remaining frames immediately; frames already on disk stay there. ctx
// is checked once per frame boundary, so a cancelled run also leaves a valid
// prefix of frames behind.
func Render(ctx context.Context, o Options) (int, error) {
	if o.DrawFrame == nil {
		return 0, configErrorf("no draw procedure")
	}
	if o.FrameRate <= 0 {
		return 0, configErrorf("frame rate %g is not positive", o.FrameRate)
	}
	if o.EndTime < o.StartTime {
		return 0, configErrorf("end time %g before start time %g", o.EndTime, o.StartTime)
	}

	info, err := os.Stat(o.OutDir)
	if err != nil {
		return 0, fmt.Errorf("anim: output directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("anim: output path %s is not a directory", o.OutDir)
	}

	surface, err := NewSurface(o.Width, o.Height)
	if err != nil {
		return 0, err
	}
	if o.Presetup != nil {
		if err := o.Presetup(surface); err != nil {
			return 0, fmt.Errorf("anim: presetup: %w", err)
		}
	}

	ft := FrameTimer{
		Start:      o.StartTime,
		End:        o.EndTime,
		Rate:       o.FrameRate,
		StartFrame: o.StartFrameNr,
	}
	total := ft.NumFrames()
	lastBeat := time.Now()
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		n := o.StartFrameNr + i
		t := ft.FrameToTime(n)

		surface.Push()
		err := o.DrawFrame(surface, t)
		surface.Pop()
		if err != nil {
			return i, &RenderError{Frame: n, Time: t, Err: err}
		}

		path := filepath.Join(o.OutDir, fmt.Sprintf(framePattern, n))
		if err := surface.WritePNG(path); err != nil {
			return i, &RenderError{Frame: n, Time: t, Err: err}
		}

		if o.Progress && time.Since(lastBeat) >= 5*time.Second {
			lastBeat = time.Now()
			log.Printf("rendered frame %d/%d", i+1, total)
		}
	}
	return total, nil
}
