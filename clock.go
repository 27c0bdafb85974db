package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// The global timer is the app's elapsed-time source. It advances once
// per tick from App.Update, so everything drawn in one frame observes
// the same pair of time uniforms, the way one draw call observes one
// set of uniform values.

var globalTimer time.Duration
var globalTimerPaused bool

// UpdateDelta is the nominal duration of one tick.
func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	if !globalTimerPaused {
		globalTimer += UpdateDelta()
	}
}

func SetGlobalTimerPaused(paused bool) {
	globalTimerPaused = paused
}

func IsGlobalTimerPaused() bool {
	return globalTimerPaused
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

func TimeSinceNow(t time.Duration) time.Duration {
	return GlobalTimerNow() - t
}

// ElapsedSeconds is the elapsed-time uniform fed to the transformers.
func ElapsedSeconds() float32 {
	return f32(globalTimer.Seconds())
}

// DeltaSeconds is the frame-delta uniform. The transformers accept it
// without reading it; it still gets supplied every frame.
func DeltaSeconds() float32 {
	if globalTimerPaused {
		return 0
	}
	return f32(UpdateDelta().Seconds())
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp() {
	t.Current += UpdateDelta()
}

func (t *Timer) TickDown() {
	t.Current -= UpdateDelta()
}

func (t *Timer) ClampCurrent() {
	t.Current = Clamp(t.Current, 0, t.Duration)
}

func (t *Timer) Normalize() float64 {
	return Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}

func (t *Timer) NormalizeUnclamped() float64 {
	return f64(t.Current) / f64(t.Duration)
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	now := time.Now()
	InfoLogger.Printf("\"%v\" took %v\n", p.Name, now.Sub(p.Start))
}
