package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		keyRepeatMap[key] = 0
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else if TimeSinceNow(time) > repeatRate {
		keyRepeatMap[key] = GlobalTimerNow()
		return true
	}

	return false
}

var inputCharsBuf []rune

// TypedChars returns the characters typed since the last tick.
// Valid until the next call.
func TypedChars() []rune {
	inputCharsBuf = eb.AppendInputChars(inputCharsBuf[:0])
	return inputCharsBuf
}
