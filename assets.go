package main

import (
	"bytes"
	_ "embed"
	"image"
	"image/color"
	"os"
	"path/filepath"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	//go:embed assets/triangle_shader.go
	triangleShaderSrc []byte
	//go:embed assets/colors.json
	colorTableJson []byte
)

const (
	TriangleShaderPath = "assets/triangle_shader.go"
	ColorTablePath     = "assets/colors.json"
)

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(RectWH(3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

var ClearFace *ebt.GoTextFace

func init() {
	faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		ErrorLogger.Fatalf("failed to load font : %v", err)
	}

	ClearFace = &ebt.GoTextFace{
		Source: faceSource,
		Size:   64,
	}
}

// RelativePath resolves a path against the executable's directory so
// on-disk assets are found no matter where the app is launched from.
func RelativePath(path string) (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(exePath), path), nil
}

// assetSource returns the on-disk bytes of an asset when hot
// reloading is on and the file exists, the embedded bytes otherwise.
func assetSource(path string, embedded []byte) []byte {
	if !FlagHotReload {
		return embedded
	}

	fullPath, err := RelativePath(path)
	if err != nil {
		return embedded
	}

	onDisk, err := os.ReadFile(fullPath)
	if err != nil {
		return embedded
	}

	return onDisk
}

// LoadAssets loads or reloads every asset. A bad asset never replaces
// a good one: the previous shader and palette stay active and the
// error lands in the console.
func LoadAssets() {
	timer := NewProfTimer("LoadAssets")
	defer timer.Report()

	// color table
	{
		table, err := ColorTableFromJson(assetSource(ColorTablePath, colorTableJson))
		if err != nil {
			ErrorLogger.Printf("failed to load color table : %v", err)
			ConsolePrintf("color table error: %v", err)
		} else {
			ColorTable = table
		}
	}

	// triangle shader
	{
		err := LoadTriangleShader(assetSource(TriangleShaderPath, triangleShaderSrc))
		if err != nil {
			ErrorLogger.Printf("failed to load shader : %v", err)
			ConsolePrintf("shader error: %v", err)
		}
	}
}

// SaveColorTable writes the current palette next to the executable,
// creating the assets directory if this is the first save.
func SaveColorTable() {
	jsonBytes, err := ColorTableToJson(ColorTable)
	if err != nil {
		ErrorLogger.Printf("failed to serialize color table : %v", err)
		return
	}

	fullPath, err := RelativePath(ColorTablePath)
	if err != nil {
		ErrorLogger.Printf("failed to resolve color table path : %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		ErrorLogger.Printf("failed to create assets directory : %v", err)
		return
	}

	if err := os.WriteFile(fullPath, jsonBytes, 0644); err != nil {
		ErrorLogger.Printf("failed to save color table : %v", err)
		return
	}

	InfoLogger.Printf("saved color table to %s", fullPath)
	ConsolePrintf("saved color table to %s", fullPath)
}
