//go:build screenshot

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

func init() {
	ScreenshotEnabled = true

	DebugPutsPersist("screenshot", "true")
}

var screenshotRequested bool

func RequestScreenshot() {
	screenshotRequested = true
}

// HandleScreenshotRequest runs at the end of Draw so the saved frame
// includes everything, console and overlay included.
func HandleScreenshotRequest(img *eb.Image) {
	if !screenshotRequested {
		return
	}
	screenshotRequested = false

	if filename, err := TakeScreenshot(img); err != nil {
		ErrorLogger.Printf("failed to take screenshot : %v", err)
		ConsolePrintf("screenshot error: %v", err)
	} else {
		ConsolePrintf("saved %s", filename)
	}
}

func ImageImageFromEbImage(img *eb.Image) image.Image {
	bounds := img.Bounds()

	rgba := image.NewRGBA(RectWH(bounds.Dx(), bounds.Dy()))
	img.ReadPixels(rgba.Pix)

	return rgba
}

func TakeScreenshot(img *eb.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	dirPath, err := RelativePath("./")
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", err
	}

	var filename = fmt.Sprintf("pic-%s.png", timeStr)

	nameCounter := 1
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry.Name() == filename {
			nameCounter += 1
			filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
			// do it again!
			i = 0
		}
	}

	fullPath := filepath.Join(dirPath, filename)

	buffer := &bytes.Buffer{}
	imgImg := ImageImageFromEbImage(img)
	err = png.Encode(buffer, imgImg)
	if err != nil {
		return "", err
	}

	err = os.WriteFile(fullPath, buffer.Bytes(), 0644)
	if err != nil {
		return "", err
	}

	InfoLogger.Printf("saved screenshot to %s", fullPath)

	return filename, nil
}
