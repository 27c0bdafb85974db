package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	_ "net/http/pprof"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 640
	ScreenHeight float64 = 480
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagHotReload bool
var FlagPProf bool

var ScreenshotEnabled bool

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "enable hot reloading")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
}

var errQuit = errors.New("quit")

type App struct {
	Playground *Playground

	Watcher *AssetWatcher
}

func NewApp() *App {
	a := new(App)
	a.Playground = NewPlayground()

	if FlagHotReload {
		a.Watcher = NewAssetWatcher(time.Millisecond * 500)
		for _, path := range []string{TriangleShaderPath, ColorTablePath} {
			if fullPath, err := RelativePath(path); err == nil {
				a.Watcher.Watch(fullPath)
			}
		}
		a.Watcher.Start()
	}

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update window title
	// ==========================
	eb.SetWindowTitle("MulayGFX FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// asset loading and saving
	// ==========================
	if a.Watcher != nil {
		if stale := a.Watcher.StalePaths(); len(stale) > 0 {
			for _, path := range stale {
				InfoLogger.Printf("asset changed: %s", path)
				ConsolePrintf("asset changed: %s", path)
			}
			a.Watcher.ClearStalePaths()
			LoadAssets()
		}
		DebugPrintf("watching", "%d files", a.Watcher.WatchedCount())
	}

	if IsKeyJustPressed(ReloadAssetsKey) {
		LoadAssets()
	}

	if IsKeyJustPressed(SaveColorTableKey) {
		SaveColorTable()
	}

	// ==========================
	// console
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		TheConsole.DoShow = !TheConsole.DoShow
	}

	TheConsole.Update()

	// ==========================
	// screenshot and quitting
	// ==========================
	if IsKeyJustPressed(ScreenshotKey) {
		RequestScreenshot()
	}

	if IsKeyJustPressed(QuitKey) {
		return errQuit
	}

	if err := a.Playground.Update(); err != nil {
		return err
	}

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Playground.Draw(dst)

	if TheShaderManager.LoadError != nil {
		DebugPrintf("shader", "error: %v", TheShaderManager.LoadError)
	}

	TheConsole.Draw(dst)

	if TheConsole.DoShow {
		DrawDebugMsgs(dst)
	}

	HandleScreenshotRequest(dst)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return a.Playground.Layout(outsideWidth, outsideHeight)
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	LoadAssets()

	app := NewApp()

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("MulayGFX")

	if err := eb.RunGame(app); err != nil && !errors.Is(err, errQuit) {
		panic(err)
	}

	if app.Watcher != nil {
		app.Watcher.Stop()
	}
}
