package main

import (
	"github.com/chewxy/math32"
)

// The two vertex transformers below are the CPU rendition of the
// original vertex shaders. Ebitengine has no programmable vertex
// stage, so the "vertex shader" runs here, once per vertex, before
// the triangles are handed to the GPU.
//
// Both transformers are pure. They read nothing but their arguments
// and are safe to call from any number of goroutines at once.

type Vec3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec4 is a homogeneous clip-space position. W is 1 as produced by
// the transformers; ClipToScreen performs the perspective divide.
type Vec4 struct {
	X, Y, Z, W float32
}

func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// VertexTransformer maps one vertex position to clip space.
//
// elapsed is the time since app start in seconds. delta is the time
// since the last frame; both original shaders declared it as a
// uniform but never read it, and the signature keeps it so the frame
// loop can keep supplying both uniforms.
type VertexTransformer func(pos Vec3, elapsed, delta float32) Vec4

// RotateSlideTransform spins the vertex around the origin while the
// whole shape slides left and right.
//
// The angle wraps at 360 but is fed straight to radian trig, exactly
// like the shader it reproduces. Don't "fix" the wrap: it makes the
// rotation jump at every wrap point, and that jump is tested for.
func RotateSlideTransform(pos Vec3, elapsed, delta float32) Vec4 {
	_ = delta

	// floor-based mod keeps the angle in [0, 360) for negative
	// elapsed too, unlike a truncating fmod
	angle := elapsed - 360*math32.Floor(elapsed/360)
	sin, cos := math32.Sincos(angle)

	// column-major mat2(cos, -sin, sin, cos) * pos.xy
	rx := cos*pos.X + sin*pos.Y
	ry := -sin*pos.X + cos*pos.Y

	deltaX := math32.Sin(elapsed) / 2

	return V4(deltaX+rx, ry, pos.Z, 1)
}

// OscillateTransform slides the vertex along a small circle: half a
// unit of horizontal sine and vertical cosine.
func OscillateTransform(pos Vec3, elapsed, delta float32) Vec4 {
	_ = delta

	deltaX := math32.Sin(elapsed) / 2
	deltaY := math32.Cos(elapsed) / 2

	return V4(deltaX+pos.X, deltaY+pos.Y, pos.Z, 1)
}

type TransformVariant int

const (
	VariantRotateSlide TransformVariant = iota
	VariantOscillate

	TransformVariantCount
)

func (v TransformVariant) Transformer() VertexTransformer {
	switch v {
	case VariantRotateSlide:
		return RotateSlideTransform
	case VariantOscillate:
		return OscillateTransform
	}
	panic("unknown transform variant")
}

func (v TransformVariant) String() string {
	switch v {
	case VariantRotateSlide:
		return "rotate-slide"
	case VariantOscillate:
		return "oscillate"
	}
	return "invalid"
}
