//go:build !screenshot

package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

func RequestScreenshot() {
	ConsolePrintf("screenshots are disabled in this build")
}

func HandleScreenshotRequest(img *eb.Image) {}
