// internal/app/loop.go
package app

import (
	"context"
	"time"

	"go-cube-train/internal/config"
)

// Clock supplies simulated time to the loop.
type Clock interface {
	// Advance moves the clock one frame forward and returns the new time.
	Advance() float64
	Now() float64
}

// FixedClock adds a constant step per frame regardless of wall time.
type FixedClock struct {
	Step float64
	now  float64
}

func NewFixedClock() *FixedClock {
	return &FixedClock{Step: config.TickStep}
}

func (c *FixedClock) Advance() float64 {
	c.now += c.Step
	return c.now
}

func (c *FixedClock) Now() float64 { return c.now }

// MeasuredClock follows wall time, capping each delta at config.MaxDeltaTime
// so a stalled frame does not jump the animation.
type MeasuredClock struct {
	now  float64
	last time.Time
	// Since is time.Since; tests replace it.
	Since func(time.Time) time.Duration
}

func NewMeasuredClock() *MeasuredClock {
	return &MeasuredClock{last: time.Now(), Since: time.Since}
}

func (c *MeasuredClock) Advance() float64 {
	dt := c.Since(c.last).Seconds()
	c.last = c.last.Add(time.Duration(dt * float64(time.Second)))
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}
	c.now += dt
	return c.now
}

func (c *MeasuredClock) Now() float64 { return c.now }

// Renderer draws a frame. Implementations must not keep the frame past
// the call.
type Renderer interface {
	Render(frame Frame)
}

// Loop ties a clock, an animator and a renderer together.
type Loop struct {
	Clock    Clock
	Animator *Animator
	Renderer Renderer
	paused   bool
}

func NewLoop(clock Clock, animator *Animator, renderer Renderer) *Loop {
	return &Loop{Clock: clock, Animator: animator, Renderer: renderer}
}

// SetPaused freezes simulated time; frames are still rendered.
func (l *Loop) SetPaused(paused bool) { l.paused = paused }

func (l *Loop) Paused() bool { return l.paused }

// Tick runs one frame: advance the clock, tick the animator, render.
func (l *Loop) Tick() error {
	if !l.paused {
		if err := l.Animator.Tick(l.Clock.Advance()); err != nil {
			return err
		}
	}
	if l.Renderer != nil {
		f := l.Animator.Snapshot()
		f.Paused = l.paused
		l.Renderer.Render(f)
	}
	return nil
}

// Run ticks once per value received on frames until ctx is done or a
// tick fails.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			if err := l.Tick(); err != nil {
				return err
			}
		}
	}
}
