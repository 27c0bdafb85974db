package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Console is the in-app command console: a scrollback window plus a
// single command entry line. Commands are registered by whoever owns
// the state they poke at.

const (
	consoleScrollbackSize = 256
	consoleHistorySize    = 32
	consoleVisibleLines   = 12

	consoleShowDuration = time.Millisecond * 150
)

type ConsoleCommand struct {
	Name string
	Help string
	Func func(args []string)
}

type Console struct {
	DoShow bool

	// fade-in and fade-out of the console window
	ShowTimer Timer

	Scrollback CircularQueue[string]
	History    CircularQueue[string]

	Input        []rune
	historyIndex int // -1 when not browsing

	commands []ConsoleCommand

	renderTarget *eb.Image
}

var TheConsole = NewConsole()

func NewConsole() *Console {
	c := &Console{
		ShowTimer:    Timer{Duration: consoleShowDuration},
		Scrollback:   NewCircularQueue[string](consoleScrollbackSize),
		History:      NewCircularQueue[string](consoleHistorySize),
		historyIndex: -1,
	}

	c.Register("help", "list commands", func(args []string) {
		for _, cmd := range c.commands {
			c.Println(fmt.Sprintf("%-10s %s", cmd.Name, cmd.Help))
		}
	})
	c.Register("clear", "clear the scrollback", func(args []string) {
		c.Scrollback.Clear()
	})
	c.Register("copy", "copy the scrollback to the clipboard", func(args []string) {
		ClipboardWriteText(c.ScrollbackText())
	})
	c.Register("aa", "toggle anti-aliasing", func(args []string) {
		SetAntiAlias(!IsAntiAliasOn())
		c.Printf("anti-aliasing %v", IsAntiAliasOn())
	})
	c.Register("colors", "dump the color table", func(args []string) {
		for i := ColorTableIndex(0); i < ColorTableSize; i++ {
			c.Println(fmt.Sprintf("%-14s %s", i.String(), ColorToString(ColorTable[i])))
		}
	})

	return c
}

func (c *Console) Register(name, help string, fn func(args []string)) {
	c.commands = append(c.commands, ConsoleCommand{
		Name: name,
		Help: help,
		Func: fn,
	})
}

func (c *Console) Println(line string) {
	c.Scrollback.Enqueue(line)
}

func (c *Console) Printf(fmtStr string, values ...any) {
	c.Println(fmt.Sprintf(fmtStr, values...))
}

// ConsolePrintf writes to the global console from anywhere (asset
// reload errors land here even while the console is hidden).
func ConsolePrintf(fmtStr string, values ...any) {
	TheConsole.Printf(fmtStr, values...)
}

func (c *Console) ScrollbackText() string {
	var builder strings.Builder

	for i := 0; i < c.Scrollback.Length; i++ {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(c.Scrollback.At(i))
	}

	return builder.String()
}

// Exec echoes and runs one command line.
func (c *Console) Exec(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	c.Println("> " + line)
	c.History.Enqueue(line)

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	for _, cmd := range c.commands {
		if cmd.Name == name {
			cmd.Func(args)
			return
		}
	}

	c.Printf("unknown command %q (try help)", name)
}

func (c *Console) Update() {
	if c.DoShow {
		c.ShowTimer.TickUp()
	} else {
		c.ShowTimer.TickDown()
	}
	c.ShowTimer.ClampCurrent()

	if !c.DoShow {
		return
	}

	for _, r := range TypedChars() {
		c.Input = append(c.Input, r)
	}

	if IsKeyPressed(eb.KeyControl) && IsKeyJustPressed(eb.KeyV) {
		for _, r := range ClipboardReadText() {
			if r == '\n' || r == '\r' {
				r = ' '
			}
			c.Input = append(c.Input, r)
		}
	}

	if HandleKeyRepeat(time.Millisecond*350, time.Millisecond*50, eb.KeyBackspace) {
		if len(c.Input) > 0 {
			c.Input = c.Input[:len(c.Input)-1]
		}
	}

	if IsKeyJustPressed(eb.KeyEnter) {
		c.Exec(string(c.Input))
		c.Input = c.Input[:0]
		c.historyIndex = -1
	}

	// history browsing replaces the entry line
	if IsKeyJustPressed(eb.KeyArrowUp) && c.History.Length > 0 {
		if c.historyIndex < 0 {
			c.historyIndex = c.History.Length - 1
		} else if c.historyIndex > 0 {
			c.historyIndex--
		}
		c.Input = []rune(c.History.At(c.historyIndex))
	}
	if IsKeyJustPressed(eb.KeyArrowDown) && c.historyIndex >= 0 {
		c.historyIndex++
		if c.historyIndex >= c.History.Length {
			c.historyIndex = -1
			c.Input = c.Input[:0]
		} else {
			c.Input = []rune(c.History.At(c.historyIndex))
		}
	}
}

func (c *Console) Draw(dst *eb.Image) {
	showT := c.ShowTimer.Normalize()
	if showT <= 0 {
		return
	}

	const fontSize = 15
	const margin = 8

	scale := fontSize / FontSize(ClearFace)
	fontLineSpacing := FontLineSpacing(ClearFace) + 2

	// gather the tail of the scrollback plus the entry line
	var builder strings.Builder

	start := max(0, c.Scrollback.Length-consoleVisibleLines)
	for i := start; i < c.Scrollback.Length; i++ {
		builder.WriteString(c.Scrollback.At(i))
		builder.WriteString("\n")
	}
	builder.WriteString("> ")
	builder.WriteString(string(c.Input))
	builder.WriteString("_")

	text := builder.String()

	boxW := ScreenWidth * 0.7
	lineCount := strings.Count(text, "\n") + 1
	boxH := f64(lineCount)*fontLineSpacing*scale + margin*2

	createBuf := c.renderTarget == nil
	createBuf = createBuf || c.renderTarget.Bounds().Dx() < int(boxW+1)
	createBuf = createBuf || c.renderTarget.Bounds().Dy() < int(boxH+1)

	if createBuf {
		if c.renderTarget != nil {
			c.renderTarget.Deallocate()
		}
		c.renderTarget = eb.NewImageWithOptions(
			RectWH(int(boxW+1), int(boxH+1)),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	c.renderTarget.Clear()

	rect := FRectWH(boxW, boxH)

	// bg blends from the scene color while the window fades in
	bg := LerpColorRGBA(ColorTable[ColorBg], ColorTable[ColorConsoleBg], showT)

	FillRect(c.renderTarget, rect, bg)
	StrokeRect(c.renderTarget, rect.Inset(1), 2, ColorTable[ColorConsoleBorder])

	{
		op := &DrawTextOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(margin, margin)
		op.ColorScale.ScaleWithColor(ColorTable[ColorConsoleText])
		op.LayoutOptions.LineSpacing = fontLineSpacing

		DrawText(c.renderTarget, text, ClearFace, op)
	}

	{
		op := &DrawImageOptions{}
		op.ColorScale.ScaleWithColor(ColorFade(color.NRGBA{255, 255, 255, 255}, showT))
		// slides up from below the screen edge
		op.GeoM.Translate(margin, ScreenHeight-Lerp(0, boxH+margin, showT))

		BeginBlend(eb.BlendSourceOver)
		DrawImage(dst, c.renderTarget, op)
		EndBlend()
	}
}
