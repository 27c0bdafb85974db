package main

import (
	"testing"
	"time"
)

func resetGlobalTimer() {
	globalTimer = 0
	globalTimerPaused = false
}

func TestGlobalTimerAdvancesPerTick(t *testing.T) {
	resetGlobalTimer()
	defer resetGlobalTimer()

	for i := 0; i < 10; i++ {
		UpdateGlobalTimer()
	}

	if got, want := GlobalTimerNow(), 10*UpdateDelta(); got != want {
		t.Errorf("after 10 ticks: %v, want %v", got, want)
	}
}

func TestGlobalTimerPause(t *testing.T) {
	resetGlobalTimer()
	defer resetGlobalTimer()

	UpdateGlobalTimer()
	before := GlobalTimerNow()

	SetGlobalTimerPaused(true)
	UpdateGlobalTimer()
	UpdateGlobalTimer()

	if GlobalTimerNow() != before {
		t.Errorf("timer advanced while paused")
	}
	if DeltaSeconds() != 0 {
		t.Errorf("delta uniform nonzero while paused")
	}

	SetGlobalTimerPaused(false)
	UpdateGlobalTimer()

	if GlobalTimerNow() == before {
		t.Errorf("timer stuck after resume")
	}
}

func TestElapsedSecondsMatchesTimer(t *testing.T) {
	resetGlobalTimer()
	defer resetGlobalTimer()

	globalTimer = 2500 * time.Millisecond

	if got := ElapsedSeconds(); got != 2.5 {
		t.Errorf("ElapsedSeconds: %v, want 2.5", got)
	}
}

func TestTimerTicks(t *testing.T) {
	timer := Timer{Duration: 10 * UpdateDelta()}

	for i := 0; i < 4; i++ {
		timer.TickUp()
	}
	timer.ClampCurrent()
	if got, want := timer.Current, 4*UpdateDelta(); got != want {
		t.Errorf("after 4 ticks up: %v, want %v", got, want)
	}

	timer.TickDown()
	timer.ClampCurrent()
	if got, want := timer.Current, 3*UpdateDelta(); got != want {
		t.Errorf("after 1 tick down: %v, want %v", got, want)
	}

	// ClampCurrent pins the timer to [0, Duration]
	for i := 0; i < 20; i++ {
		timer.TickDown()
	}
	timer.ClampCurrent()
	if timer.Current != 0 {
		t.Errorf("underflow not clamped: %v", timer.Current)
	}

	for i := 0; i < 20; i++ {
		timer.TickUp()
	}
	timer.ClampCurrent()
	if timer.Current != timer.Duration {
		t.Errorf("overflow not clamped: %v", timer.Current)
	}
}

func TestTimeSinceNow(t *testing.T) {
	resetGlobalTimer()
	defer resetGlobalTimer()

	globalTimer = 3 * time.Second

	if got := TimeSinceNow(time.Second); got != 2*time.Second {
		t.Errorf("TimeSinceNow: %v, want 2s", got)
	}
}

func TestTimerNormalize(t *testing.T) {
	timer := Timer{Duration: time.Second}

	timer.Current = 500 * time.Millisecond
	if got := timer.Normalize(); got != 0.5 {
		t.Errorf("Normalize: %v, want 0.5", got)
	}

	timer.Current = 2 * time.Second
	if got := timer.Normalize(); got != 1 {
		t.Errorf("Normalize past duration: %v, want 1", got)
	}
	if got := timer.NormalizeUnclamped(); got != 2 {
		t.Errorf("NormalizeUnclamped: %v, want 2", got)
	}
}
