package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

var TheShaderManager struct {
	TriangleShader *eb.Shader

	// last compile failure, kept for the overlay; nil after a
	// successful load
	LoadError error
}

// LoadTriangleShader compiles the Kage source and swaps it in. On
// failure the previous shader keeps rendering.
func LoadTriangleShader(src []byte) error {
	sm := &TheShaderManager

	shader, err := eb.NewShader(src)
	if err != nil {
		sm.LoadError = err
		return err
	}

	if sm.TriangleShader != nil {
		sm.TriangleShader.Deallocate()
	}

	sm.TriangleShader = shader
	sm.LoadError = nil

	return nil
}
