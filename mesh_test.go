package main

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestClipToScreenCorners(t *testing.T) {
	viewport := FRectWH(640, 480)

	tests := []struct {
		clip Vec4
		x, y float64
	}{
		{V4(0, 0, 0, 1), 320, 240},
		{V4(-1, -1, 0, 1), 0, 480}, // bottom-left of clip space is bottom of screen
		{V4(1, 1, 0, 1), 640, 0},
		{V4(-1, 1, 0, 1), 0, 0},
		// perspective divide
		{V4(2, 2, 0, 2), 640, 0},
		{V4(1, -1, 0, 2), 480, 360},
	}

	for _, test := range tests {
		got := ClipToScreen(test.clip, viewport)
		if math.Abs(got.X-test.x) > 0.0001 || math.Abs(got.Y-test.y) > 0.0001 {
			t.Errorf("ClipToScreen(%v): got (%v, %v), want (%v, %v)",
				test.clip, got.X, got.Y, test.x, test.y)
		}
	}
}

func TestClipToScreenOffsetViewport(t *testing.T) {
	// right half of a 640x480 screen
	viewport := FRect(320, 0, 640, 480)

	got := ClipToScreen(V4(0, 0, 0, 1), viewport)
	if got.X != 480 || got.Y != 240 {
		t.Errorf("center of right half: got (%v, %v), want (480, 240)", got.X, got.Y)
	}
}

func TestTransformMeshMatchesDirectCalls(t *testing.T) {
	mesh := TriangleMesh()

	clip := TransformMesh(nil, mesh, OscillateTransform, 1.5, 0.016)

	if len(clip) != mesh.VertexCount() {
		t.Fatalf("got %d clip positions, want %d", len(clip), mesh.VertexCount())
	}

	for i, pos := range mesh.Positions {
		want := OscillateTransform(pos, 1.5, 0.016)
		if clip[i] != want {
			t.Errorf("vertex %d: got %v, want %v", i, clip[i], want)
		}
	}
}

func TestTransformMeshParallelMatchesSequential(t *testing.T) {
	// well past parallelThreshold so the chunked path runs
	const count = parallelThreshold * 4

	rng := rand.New(rand.NewSource(42))

	mesh := &Mesh{
		Positions: make([]Vec3, count),
		Colors:    make([]color.NRGBA, count),
	}
	for i := range mesh.Positions {
		mesh.Positions[i] = V3(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32())
	}

	parallel := TransformMesh(nil, mesh, RotateSlideTransform, 123.4, 0)

	for i, pos := range mesh.Positions {
		want := RotateSlideTransform(pos, 123.4, 0)
		if parallel[i] != want {
			t.Fatalf("vertex %d: parallel %v, sequential %v", i, parallel[i], want)
		}
	}
}

func TestTransformMeshReusesBuffer(t *testing.T) {
	mesh := TriangleMesh()

	buf := make([]Vec4, 0, 16)
	out := TransformMesh(buf, mesh, OscillateTransform, 0, 0)

	if cap(out) != 16 {
		t.Errorf("buffer not reused: cap %d, want 16", cap(out))
	}
}

func TestMeshToVertices(t *testing.T) {
	mesh := TriangleMesh()
	mesh.Colors[0] = color.NRGBA{255, 0, 0, 255}

	clip := TransformMesh(nil, mesh, OscillateTransform, 0, 0)
	vertices := MeshToVertices(nil, mesh, clip, FRectWH(640, 480))

	if len(vertices) != 3 {
		t.Fatalf("got %d vertices, want 3", len(vertices))
	}

	if vertices[0].ColorR != 1 || vertices[0].ColorG != 0 || vertices[0].ColorB != 0 {
		t.Errorf("vertex 0 color not carried over: %+v", vertices[0])
	}

	// at t=0 the oscillate transform shifts y by +0.5, so the first
	// vertex (-0.5, -0.5) lands at clip (-0.5, 0.0) -> screen (160, 240)
	if math.Abs(f64(vertices[0].DstX)-160) > 0.001 ||
		math.Abs(f64(vertices[0].DstY)-240) > 0.001 {
		t.Errorf("vertex 0 at (%v, %v), want (160, 240)",
			vertices[0].DstX, vertices[0].DstY)
	}
}
