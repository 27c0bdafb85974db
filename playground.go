package main

import (
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Playground owns the demo scene: the triangle mesh and whichever
// transformer variants are animating it.
type Playground struct {
	Mesh *Mesh

	Variant  TransformVariant
	ShowBoth bool

	clipBuf   []Vec4
	vertexBuf []eb.Vertex
}

func NewPlayground() *Playground {
	p := new(Playground)
	p.Mesh = TriangleMesh()
	p.Variant = VariantRotateSlide

	p.registerConsoleCommands()

	return p
}

func (p *Playground) registerConsoleCommands() {
	c := TheConsole

	c.Register("variant", "variant a|b|both : pick the vertex transformer", func(args []string) {
		if len(args) != 1 {
			c.Printf("showing: %s", p.VariantLabel())
			return
		}

		switch args[0] {
		case "a":
			p.Variant = VariantRotateSlide
			p.ShowBoth = false
		case "b":
			p.Variant = VariantOscillate
			p.ShowBoth = false
		case "both":
			p.ShowBoth = true
		default:
			c.Printf("variant %q? want a, b or both", args[0])
			return
		}
		c.Printf("showing: %s", p.VariantLabel())
	})
	c.Register("pause", "freeze the time uniforms", func(args []string) {
		SetGlobalTimerPaused(true)
	})
	c.Register("resume", "unfreeze the time uniforms", func(args []string) {
		SetGlobalTimerPaused(false)
	})
	c.Register("reload", "reload shader and color table", func(args []string) {
		LoadAssets()
		c.Println("assets reloaded")
	})
}

func (p *Playground) VariantLabel() string {
	if p.ShowBoth {
		return fmt.Sprintf("both (%v | %v)", VariantRotateSlide, VariantOscillate)
	}
	return p.Variant.String()
}

func (p *Playground) Update() error {
	if IsKeyJustPressed(SwitchVariantKey) && !TheConsole.DoShow {
		if p.ShowBoth {
			p.ShowBoth = false
			p.Variant = VariantRotateSlide
		} else if p.Variant = (p.Variant + 1); p.Variant >= TransformVariantCount {
			p.ShowBoth = true
			p.Variant = VariantRotateSlide
		}
	}

	if IsKeyJustPressed(PauseKey) && !TheConsole.DoShow {
		SetGlobalTimerPaused(!IsGlobalTimerPaused())
	}

	DebugPrint("variant", p.VariantLabel())
	DebugPrintf("elapsed", "%.2fs", ElapsedSeconds())
	if IsGlobalTimerPaused() {
		DebugPrint("paused", "true")
	}

	return nil
}

func (p *Playground) Draw(dst *eb.Image) {
	dst.Fill(ColorTable[ColorBg])

	// keep the mesh colors in sync with the palette so edits to the
	// color table show up immediately
	p.Mesh.Colors[0] = ColorTable[ColorVertex1]
	p.Mesh.Colors[1] = ColorTable[ColorVertex2]
	p.Mesh.Colors[2] = ColorTable[ColorVertex3]

	if p.ShowBoth {
		half := ScreenWidth / 2
		p.drawVariant(dst, VariantRotateSlide, FRect(0, 0, half, ScreenHeight))
		p.drawVariant(dst, VariantOscillate, FRect(half, 0, ScreenWidth, ScreenHeight))
	} else {
		p.drawVariant(dst, p.Variant, FRectWH(ScreenWidth, ScreenHeight))
	}
}

func (p *Playground) drawVariant(
	dst *eb.Image,
	variant TransformVariant,
	viewport FRectangle,
) {
	elapsed := ElapsedSeconds()
	delta := DeltaSeconds()

	p.clipBuf = TransformMesh(p.clipBuf, p.Mesh, variant.Transformer(), elapsed, delta)
	p.vertexBuf = MeshToVertices(p.vertexBuf, p.Mesh, p.clipBuf, viewport)

	sm := &TheShaderManager

	if sm.TriangleShader != nil {
		op := &DrawTrianglesShaderOptions{}
		op.Uniforms = map[string]any{
			"Time": elapsed,
		}
		DrawTrianglesShader(dst, p.vertexBuf, p.Mesh.Indices, sm.TriangleShader, op)
	} else {
		// the vertices sample a single white texel, no filtering wanted
		BeginFilter(eb.FilterNearest)
		DrawTriangles(dst, p.vertexBuf, p.Mesh.Indices, WhiteImage, nil)
		EndFilter()
	}
}

func (p *Playground) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
