package main

import (
	"image/color"
	"sync"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Mesh is the CPU-side vertex buffer: one position and one color per
// vertex, plus triangle indices. Positions are in the transformer's
// input space (clip space before animation).
type Mesh struct {
	Positions []Vec3
	Colors    []color.NRGBA
	Indices   []uint16
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleMesh is the demo triangle.
func TriangleMesh() *Mesh {
	return &Mesh{
		Positions: []Vec3{
			V3(-0.5, -0.5, 0),
			V3(0.5, -0.5, 0),
			V3(0, 0.5, 0),
		},
		Colors: []color.NRGBA{
			{255, 255, 255, 255},
			{255, 255, 255, 255},
			{255, 255, 255, 255},
		},
		Indices: []uint16{0, 1, 2},
	}
}

// vertices below this count aren't worth spawning goroutines for
const parallelThreshold = 1024

// TransformMesh runs the transformer over every mesh position and
// writes the clip-space results into dst, growing it if needed.
// Large meshes are chunked across goroutines; the transformer is
// pure so chunks never need to synchronize.
func TransformMesh(
	dst []Vec4,
	mesh *Mesh,
	transformer VertexTransformer,
	elapsed, delta float32,
) []Vec4 {
	count := len(mesh.Positions)

	if cap(dst) < count {
		dst = make([]Vec4, count)
	}
	dst = dst[:count]

	if count < parallelThreshold {
		for i, pos := range mesh.Positions {
			dst[i] = transformer(pos, elapsed, delta)
		}
		return dst
	}

	workers := min(8, (count+parallelThreshold-1)/parallelThreshold)
	chunk := (count + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < count; start += chunk {
		end := min(start+chunk, count)

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				dst[i] = transformer(mesh.Positions[i], elapsed, delta)
			}
		}(start, end)
	}
	wg.Wait()

	return dst
}

// ClipToScreen maps one clip-space position into a viewport:
// perspective divide, then NDC to pixels with y pointing down.
func ClipToScreen(clip Vec4, viewport FRectangle) FPoint {
	ndcX := f64(clip.X / clip.W)
	ndcY := f64(clip.Y / clip.W)

	return FPt(
		viewport.Min.X+(ndcX*0.5+0.5)*viewport.Dx(),
		viewport.Min.Y+(0.5-ndcY*0.5)*viewport.Dy(),
	)
}

// MeshToVertices fills vertices ready for DrawTriangles from the
// transformed clip positions and the mesh colors. Reuses dst.
func MeshToVertices(
	dst []eb.Vertex,
	mesh *Mesh,
	clip []Vec4,
	viewport FRectangle,
) []eb.Vertex {
	count := len(clip)

	if cap(dst) < count {
		dst = make([]eb.Vertex, count)
	}
	dst = dst[:count]

	for i, c := range clip {
		screen := ClipToScreen(c, viewport)
		clr := ColorNormalized(mesh.Colors[i], true)

		dst[i] = eb.Vertex{
			DstX:   f32(screen.X),
			DstY:   f32(screen.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: f32(clr[0]),
			ColorG: f32(clr[1]),
			ColorB: f32(clr[2]),
			ColorA: f32(clr[3]),
		}
	}

	return dst
}
