package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/chronic-echo/chronic_echo/assets"
	"github.com/chronic-echo/chronic_echo/internal/game"
	"github.com/chronic-echo/chronic_echo/internal/input"
	"github.com/chronic-echo/chronic_echo/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	title    = "Chronic Echo"
	cellSize = 16 // on-screen pixels per text cell, twice the native 8
)

// keymap binds keyboard keys to pad buttons. Several keys may share a button.
var keymap = []struct {
	key    ebiten.Key
	button input.Buttons
}{
	{ebiten.KeyUp, input.ButtonUp},
	{ebiten.KeyW, input.ButtonUp},
	{ebiten.KeyDown, input.ButtonDown},
	{ebiten.KeyS, input.ButtonDown},
	{ebiten.KeyLeft, input.ButtonLeft},
	{ebiten.KeyA, input.ButtonLeft},
	{ebiten.KeyRight, input.ButtonRight},
	{ebiten.KeyD, input.ButtonRight},
	{ebiten.KeyZ, input.ButtonA},
	{ebiten.KeyEnter, input.ButtonStart},
	{ebiten.KeyX, input.ButtonB},
	{ebiten.KeyC, input.ButtonX},
	{ebiten.KeyV, input.ButtonY},
	{ebiten.KeyQ, input.ButtonL},
	{ebiten.KeyE, input.ButtonR},
	{ebiten.KeyBackspace, input.ButtonSelect},
	{ebiten.KeyTab, input.ButtonSelect},
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in session.
type Game struct {
	renderer *render.GridRenderer
	screen   *render.Screen
	session  *game.Session
}

func NewGame(cfg game.Config) *Game {
	data, err := game.LoadData(assets.Data)
	if err != nil {
		log.Fatalf("load data: %v", err)
	}
	screen := render.NewScreen()
	return &Game{
		renderer: render.NewGridRenderer(render.NewFontAtlas(), cellSize, cellSize),
		screen:   screen,
		session:  game.NewSession(cfg, data, screen),
	}
}

func heldButtons() input.Buttons {
	var held input.Buttons
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			held |= k.button
		}
	}
	return held
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.session.Update(heldButtons())
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.session.Render()
	g.renderer.DrawScreen(dst, g.screen)

	if g.session.Config.Debug {
		s := g.session
		info := fmt.Sprintf("TPS %.0f  %v  tick %d\n%s", ebiten.ActualTPS(), s.Screen(), s.Ticks, s.TileBelow())
		ebitenutil.DebugPrintAt(dst, info, 4, 4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Size()
}

// loadConfig reads the ini file, if any, and lets flags that were set on the
// command line override it.
func loadConfig() game.Config {
	path := flag.String("config", "chronicecho.ini", "settings file")
	scale := flag.Int("scale", 0, "window scale (overrides config)")
	seed := flag.Uint64("seed", 0, "random seed, 0 for random (overrides config)")
	debug := flag.Bool("debug", false, "show the debug overlay")
	save := flag.String("save", "", "save file path (overrides config)")
	flag.Parse()

	cfg, err := game.LoadConfig(*path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: %v", err)
		}
		cfg = game.DefaultConfig()
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Scale = *scale
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		case "save":
			cfg.SavePath = *save
		}
	})
	return cfg.Normalize()
}

func main() {
	cfg := loadConfig()

	g := NewGame(cfg)
	ebiten.SetWindowSize(render.ScreenWidth*cfg.Scale, render.ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
