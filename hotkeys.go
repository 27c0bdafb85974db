package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadAssetsKey   eb.Key = eb.KeyF5
	SaveColorTableKey eb.Key = eb.KeyF10

	ShowDebugConsoleKey = eb.KeyF1

	SwitchVariantKey eb.Key = eb.KeyV
	PauseKey         eb.Key = eb.KeySpace

	ScreenshotKey eb.Key = eb.KeyP

	QuitKey eb.Key = eb.KeyEscape
)
